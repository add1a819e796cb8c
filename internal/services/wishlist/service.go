package wishlist

import (
	"errors"

	"uniwise/internal/models"
	"uniwise/internal/repositories"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOwnProduct      = errors.New("you cannot add your own product to wishlist")
	ErrAlreadyInList   = errors.New("product already in wishlist")
	ErrNotInList       = errors.New("product not in wishlist")
)

type Service interface {
	Add(userID, productID uint) (*models.WishlistItem, error)
	Remove(userID, productID uint) error
	Products(userID uint) ([]models.Product, error)
	Contains(userID, productID uint) (bool, error)
}

type service struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

func NewService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) Service {
	return &service{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Add puts a product on the user's wishlist. A second add of the same
// product is a conflict, not a duplicate entry.
func (s *service) Add(userID, productID uint) (*models.WishlistItem, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if product.SellerID == userID {
		return nil, ErrOwnProduct
	}

	exists, err := s.wishlistRepo.Exists(userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInList
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Add(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Remove(userID, productID uint) error {
	exists, err := s.wishlistRepo.Exists(userID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInList
	}
	return s.wishlistRepo.Remove(userID, productID)
}

// Products returns the wishlisted products still available for sale. Sold
// entries stay in storage but are filtered here.
func (s *service) Products(userID uint) ([]models.Product, error) {
	items, err := s.wishlistRepo.ForUser(userID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		if item.Product != nil && !item.Product.IsSold {
			products = append(products, *item.Product)
		}
	}
	return products, nil
}

func (s *service) Contains(userID, productID uint) (bool, error) {
	return s.wishlistRepo.Exists(userID, productID)
}
