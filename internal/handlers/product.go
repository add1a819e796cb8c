package handlers

import (
	"errors"
	"log"
	"strconv"

	"uniwise/internal/middleware"
	"uniwise/internal/models"
	"uniwise/internal/services/product"
	"uniwise/internal/utils"
	"uniwise/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const catalogPageSize = 10

type ProductHandler struct {
	productService product.Service
}

func NewProductHandler(productService product.Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// Create lists a new product. Images are required multipart fields.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	input := models.CreateProductInput{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Price:       price,
		Condition:   c.FormValue("condition"),
		Location:    c.FormValue("location"),
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		return utils.BadRequest(c, "Please upload at least one image")
	}

	images, err := utils.SaveUploads(c, form.File["images"])
	if err != nil {
		log.Printf("Image upload failed: %v", err)
		return utils.BadRequest(c, "Failed to store images")
	}
	input.Images = images

	v := validation.New()
	v.Product(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	created, err := h.productService.Create(usr, &input)
	if err != nil {
		log.Printf("Product creation failed for user %d: %v", usr.ID, err)
		return utils.InternalError(c, "Failed to create product")
	}

	return utils.Created(c, created)
}

// List returns a page of unsold products, filterable by keyword, category
// and condition.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 1, catalogPageSize)

	filter := models.ProductFilter{
		Keyword:   c.Query("keyword"),
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
	}

	catalog, err := h.productService.List(filter, p.Page, p.Limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return utils.InternalError(c, "Failed to fetch products")
	}

	return utils.Success(c, catalog)
}

// GetByID returns a single product with its seller populated.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	detail, err := h.productService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return utils.NotFound(c, "Product not found")
		}
		log.Printf("Error fetching product %d: %v", id, err)
		return utils.InternalError(c, "Failed to fetch product")
	}

	return utils.Success(c, detail)
}

// Update edits an unsold listing. Only the seller may update.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	input := models.UpdateProductInput{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Price:       price,
		Condition:   c.FormValue("condition"),
		Location:    c.FormValue("location"),
	}

	if form, err := c.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
		images, err := utils.SaveUploads(c, form.File["images"])
		if err != nil {
			return utils.BadRequest(c, "Failed to store images")
		}
		input.Images = images
	}

	updated, err := h.productService.Update(usr.ID, uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, product.ErrNotSeller):
			return utils.Unauthorized(c, "Not authorized to update this product")
		case errors.Is(err, product.ErrSoldLocked):
			return utils.BadRequest(c, "Cannot update a sold product")
		default:
			log.Printf("Product update failed: %v", err)
			return utils.InternalError(c, "Failed to update product")
		}
	}

	return utils.Success(c, updated)
}

// MarkSold records an off-platform sale. The seller or an admin may flip an
// unsold listing; a concurrent payment-completed sale wins and this returns
// a conflict.
func (h *ProductHandler) MarkSold(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	var body struct {
		BuyerID *uint `json:"buyerId"`
	}
	_ = c.BodyParser(&body)

	updated, err := h.productService.MarkSold(usr.ID, usr.IsAdmin, uint(id), body.BuyerID)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, product.ErrNotSeller):
			return utils.Unauthorized(c, "Not authorized to update this product")
		case errors.Is(err, product.ErrAlreadySold):
			return utils.BadRequest(c, "Product is already sold")
		default:
			log.Printf("Mark-sold failed for product %d: %v", id, err)
			return utils.InternalError(c, "Failed to mark product as sold")
		}
	}

	return utils.Success(c, updated)
}

// Delete removes an unsold listing. The seller or an admin may delete.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	if err := h.productService.Delete(usr.ID, usr.IsAdmin, uint(id)); err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return utils.NotFound(c, "Product not found")
		case errors.Is(err, product.ErrNotSeller):
			return utils.Unauthorized(c, "Not authorized to delete this product")
		case errors.Is(err, product.ErrSoldLocked):
			return utils.BadRequest(c, "Cannot delete a sold product")
		default:
			log.Printf("Product delete failed: %v", err)
			return utils.InternalError(c, "Failed to delete product")
		}
	}

	return utils.Success(c, fiber.Map{"message": "Product removed"})
}
