package repositories

import (
	"uniwise/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository is the persistence surface for reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByIDLoaded(id uint) (*models.Review, error)
	FindByUserAndProduct(userID, productID uint) (*models.Review, error)
	BySeller(sellerID uint) ([]models.Review, error)
	ByProduct(productID uint) ([]models.Review, error)
	ByUser(userID uint) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByIDLoaded(id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("User").
		Preload("Product").
		Preload("Seller").
		First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndProduct(userID, productID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) BySeller(sellerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("seller_id = ?", sellerID).
		Preload("User").
		Preload("Product").
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("product_id = ?", productID).
		Preload("User").
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("user_id = ?", userID).
		Preload("Product").
		Preload("Seller").
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}
