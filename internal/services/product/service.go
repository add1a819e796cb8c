package product

import (
	"errors"

	"uniwise/internal/models"
	"uniwise/internal/repositories"
)

var (
	ErrNotFound    = errors.New("product not found")
	ErrNotSeller   = errors.New("not authorized to modify this product")
	ErrSoldLocked  = errors.New("cannot modify a sold product")
	ErrAlreadySold = repositories.ErrProductAlreadySold
)

// CatalogPage is one page of the public listing catalogue.
type CatalogPage struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	Total    int64            `json:"total"`
}

// Detail is one listing as shown on the product page, with the seller's
// reviews for it attached.
type Detail struct {
	*models.Product
	Reviews []models.Review `json:"reviews"`
}

type Service interface {
	Create(seller *models.User, input *models.CreateProductInput) (*models.Product, error)
	List(filter models.ProductFilter, page, pageSize int) (*CatalogPage, error)
	GetByID(id uint) (*Detail, error)
	Update(userID, productID uint, input *models.UpdateProductInput) (*models.Product, error)
	Delete(userID uint, isAdmin bool, productID uint) error
	MarkSold(userID uint, isAdmin bool, productID uint, buyerID *uint) (*models.Product, error)
}

type service struct {
	productRepo repositories.ProductRepository
	reviewRepo  repositories.ReviewRepository
}

func NewService(productRepo repositories.ProductRepository, reviewRepo repositories.ReviewRepository) Service {
	return &service{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// Create lists a product. acceptsCrypto is frozen from the seller's
// verification state at creation time and never re-checked afterwards.
func (s *service) Create(seller *models.User, input *models.CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:          input.Name,
		SellerID:      seller.ID,
		Category:      input.Category,
		Description:   input.Description,
		Price:         input.Price,
		Images:        models.StringList(input.Images),
		Condition:     input.Condition,
		Location:      input.Location,
		AcceptsCrypto: seller.IsBlockchainVerified,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) List(filter models.ProductFilter, page, pageSize int) (*CatalogPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	products, total, err := s.productRepo.List(filter, pageSize, offset)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &CatalogPage{
		Products: products,
		Page:     page,
		Pages:    pages,
		Total:    total,
	}, nil
}

// GetByID returns the product with seller and reviews populated.
func (s *service) GetByID(id uint) (*Detail, error) {
	product, err := s.productRepo.GetByIDWithSeller(id)
	if err != nil {
		return nil, ErrNotFound
	}

	reviews, err := s.reviewRepo.ByProduct(id)
	if err != nil {
		return nil, err
	}

	return &Detail{Product: product, Reviews: reviews}, nil
}

func (s *service) Update(userID, productID uint, input *models.UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, ErrNotFound
	}

	if product.SellerID != userID {
		return nil, ErrNotSeller
	}
	if product.IsSold {
		return nil, ErrSoldLocked
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price > 0 {
		product.Price = input.Price
	}
	if input.Condition != "" {
		product.Condition = input.Condition
	}
	if input.Location != "" {
		product.Location = input.Location
	}
	if len(input.Images) > 0 {
		product.Images = models.StringList(input.Images)
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// MarkSold records an off-platform sale for an unsold listing. The seller or
// an admin may flip it; the buyer reference is optional since a cash sale may
// happen with someone who has no account.
func (s *service) MarkSold(userID uint, isAdmin bool, productID uint, buyerID *uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, ErrNotFound
	}

	if product.SellerID != userID && !isAdmin {
		return nil, ErrNotSeller
	}

	if err := s.productRepo.MarkSold(productID, buyerID); err != nil {
		return nil, err
	}

	product.IsSold = true
	product.BuyerID = buyerID
	return product, nil
}

func (s *service) Delete(userID uint, isAdmin bool, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return ErrNotFound
	}

	if product.SellerID != userID && !isAdmin {
		return ErrNotSeller
	}
	if product.IsSold {
		return ErrSoldLocked
	}

	return s.productRepo.Delete(productID)
}
