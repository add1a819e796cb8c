package handlers

import (
	"errors"
	"log"
	"strconv"

	"uniwise/internal/middleware"
	"uniwise/internal/services/wishlist"
	"uniwise/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	wishlistService wishlist.Service
}

func NewWishlistHandler(wishlistService wishlist.Service) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// Add puts a product on the requester's wishlist. Duplicate adds conflict.
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ProductID uint `json:"productId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.ProductID == 0 {
		return utils.BadRequest(c, "Product ID is required")
	}

	item, err := h.wishlistService.Add(usr.ID, input.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, wishlist.ErrProductNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, wishlist.ErrOwnProduct):
			return utils.BadRequest(c, "You cannot add your own product to wishlist")
		case errors.Is(err, wishlist.ErrAlreadyInList):
			return utils.BadRequest(c, "Product already in wishlist")
		default:
			log.Printf("Wishlist add failed: %v", err)
			return utils.InternalError(c, "Failed to add to wishlist")
		}
	}

	return utils.Created(c, fiber.Map{
		"message": "Product added to wishlist",
		"item":    item,
	})
}

// Remove takes a product off the requester's wishlist.
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	productID, err := strconv.ParseUint(c.Params("productId"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	if err := h.wishlistService.Remove(usr.ID, uint(productID)); err != nil {
		if errors.Is(err, wishlist.ErrNotInList) {
			return utils.BadRequest(c, "Product not in wishlist")
		}
		log.Printf("Wishlist remove failed: %v", err)
		return utils.InternalError(c, "Failed to remove from wishlist")
	}

	return utils.Success(c, fiber.Map{"message": "Product removed from wishlist"})
}

// Get returns the still-available products on the requester's wishlist.
func (h *WishlistHandler) Get(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	products, err := h.wishlistService.Products(usr.ID)
	if err != nil {
		log.Printf("Error fetching wishlist for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to fetch wishlist")
	}

	return utils.Success(c, fiber.Map{"products": products})
}

// Check reports whether a product is on the requester's wishlist.
func (h *WishlistHandler) Check(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	productID, err := strconv.ParseUint(c.Params("productId"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	inList, err := h.wishlistService.Contains(usr.ID, uint(productID))
	if err != nil {
		log.Printf("Wishlist check failed: %v", err)
		return utils.InternalError(c, "Failed to check wishlist")
	}

	return utils.Success(c, fiber.Map{"inWishlist": inList})
}
