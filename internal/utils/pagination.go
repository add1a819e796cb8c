package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds the page window extracted from a request.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// GetPagination extracts the page and limit from the query parameters,
// falling back to the defaults when either is missing or invalid.
func GetPagination(c *fiber.Ctx, defaultPage, defaultLimit int) Pagination {
	pageStr := c.Query("page", strconv.Itoa(defaultPage))
	limitStr := c.Query("limit", strconv.Itoa(defaultLimit))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	return Pagination{
		Page:  page,
		Limit: limit,
	}
}
