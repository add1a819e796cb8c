package repositories

import (
	"uniwise/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository is the persistence surface for wishlist entries.
type WishlistRepository interface {
	Add(item *models.WishlistItem) error
	Exists(userID, productID uint) (bool, error)
	Remove(userID, productID uint) error
	ForUser(userID uint) ([]models.WishlistItem, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *wishlistRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *wishlistRepository) Remove(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}

func (r *wishlistRepository) ForUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Seller").
		Order("created_at desc").
		Find(&items).Error
	return items, err
}
