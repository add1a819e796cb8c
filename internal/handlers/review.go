package handlers

import (
	"errors"
	"log"
	"strconv"

	"uniwise/internal/middleware"
	"uniwise/internal/models"
	"uniwise/internal/services/review"
	"uniwise/internal/utils"
	"uniwise/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewService review.Service
}

func NewReviewHandler(reviewService review.Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create records a review from the buyer of a sold product.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input models.CreateReviewInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Review(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	created, err := h.reviewService.Create(usr.ID, &input)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrProductNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, review.ErrNotSold):
			return utils.BadRequest(c, "You can only review purchased products")
		case errors.Is(err, review.ErrNotBuyer):
			return utils.Forbidden(c, "You can only review products you have purchased")
		case errors.Is(err, review.ErrAlreadyReviewed):
			return utils.BadRequest(c, "Product already reviewed")
		default:
			log.Printf("Review creation failed: %v", err)
			return utils.InternalError(c, "Failed to create review")
		}
	}

	return utils.Created(c, created)
}

// GetSellerReviews returns a seller's reviews with the average rating.
func (h *ReviewHandler) GetSellerReviews(c *fiber.Ctx) error {
	sellerID, err := strconv.ParseUint(c.Params("sellerId"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid seller id")
	}

	result, err := h.reviewService.ForSeller(uint(sellerID))
	if err != nil {
		if errors.Is(err, review.ErrSellerNotFound) {
			return utils.NotFound(c, "Seller not found")
		}
		log.Printf("Error fetching seller reviews: %v", err)
		return utils.InternalError(c, "Failed to fetch reviews")
	}

	return utils.Success(c, result)
}

// GetProductReviews returns a product's reviews.
func (h *ReviewHandler) GetProductReviews(c *fiber.Ctx) error {
	productID, err := strconv.ParseUint(c.Params("productId"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	reviews, err := h.reviewService.ForProduct(uint(productID))
	if err != nil {
		if errors.Is(err, review.ErrProductNotFound) {
			return utils.NotFound(c, "Product not found")
		}
		log.Printf("Error fetching product reviews: %v", err)
		return utils.InternalError(c, "Failed to fetch reviews")
	}

	return utils.Success(c, reviews)
}

// GetUserReviews returns the reviews written by the requester.
func (h *ReviewHandler) GetUserReviews(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	reviews, err := h.reviewService.ByUser(usr.ID)
	if err != nil {
		log.Printf("Error fetching reviews for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to fetch reviews")
	}

	return utils.Success(c, reviews)
}
