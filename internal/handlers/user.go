package handlers

import (
	"log"
	"strconv"

	"uniwise/internal/middleware"
	"uniwise/internal/models"
	"uniwise/internal/services/user"
	"uniwise/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the authenticated user's full profile.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	return utils.Success(c, usr)
}

// UpdateProfile applies profile changes. The profile image arrives as an
// optional multipart field.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	input := models.UpdateProfileInput{
		Name:       c.FormValue("name"),
		Department: c.FormValue("department"),
		Year:       c.FormValue("year"),
		Division:   c.FormValue("division"),
		Location:   c.FormValue("location"),
		Password:   c.FormValue("password"),
	}
	if input.Name == "" && c.Get("Content-Type") == "application/json" {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}
	}

	var imagePath string
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		imagePath, err = utils.SaveUpload(c, file)
		if err != nil {
			log.Printf("Profile image upload failed: %v", err)
			return utils.BadRequest(c, "Failed to store profile image")
		}
	}

	updated, err := h.userService.UpdateProfile(usr.ID, &input, imagePath)
	if err != nil {
		log.Printf("Profile update failed for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to update profile")
	}

	return utils.Success(c, updated)
}

// GetUserByID returns another user's public profile with their active
// listings and seller reviews.
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	profile, err := h.userService.PublicProfile(uint(id))
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, profile)
}

// GetPurchases returns the products the user has bought.
func (h *UserHandler) GetPurchases(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	purchases, err := h.userService.Purchases(usr.ID)
	if err != nil {
		log.Printf("Error fetching purchases for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to fetch purchases")
	}
	return utils.Success(c, purchases)
}

// GetSales returns the products the user has sold.
func (h *UserHandler) GetSales(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	sales, err := h.userService.Sales(usr.ID)
	if err != nil {
		log.Printf("Error fetching sales for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to fetch sales")
	}
	return utils.Success(c, sales)
}

// GetListings returns the user's active (unsold) listings.
func (h *UserHandler) GetListings(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	listings, err := h.userService.Listings(usr.ID)
	if err != nil {
		log.Printf("Error fetching listings for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to fetch listings")
	}
	return utils.Success(c, listings)
}
