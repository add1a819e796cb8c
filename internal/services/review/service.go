package review

import (
	"errors"

	"uniwise/internal/models"
	"uniwise/internal/repositories"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSellerNotFound  = errors.New("seller not found")
	ErrNotSold         = errors.New("you can only review purchased products")
	ErrNotBuyer        = errors.New("you can only review products you have purchased")
	ErrAlreadyReviewed = errors.New("product already reviewed")
)

type Service interface {
	Create(userID uint, input *models.CreateReviewInput) (*models.Review, error)
	ForSeller(sellerID uint) (*models.SellerReviews, error)
	ForProduct(productID uint) ([]models.Review, error)
	ByUser(userID uint) ([]models.Review, error)
}

type service struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

func NewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository) Service {
	return &service{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Create records a review. Only the recorded buyer of a sold product may
// review it, and only once per (user, product) pair.
func (s *service) Create(userID uint, input *models.CreateReviewInput) (*models.Review, error) {
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if !product.IsSold {
		return nil, ErrNotSold
	}
	if product.BuyerID == nil || *product.BuyerID != userID {
		return nil, ErrNotBuyer
	}

	if existing, _ := s.reviewRepo.FindByUserAndProduct(userID, input.ProductID); existing != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		UserID:    userID,
		SellerID:  product.SellerID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByIDLoaded(review.ID)
}

// ForSeller returns a seller's reviews with the average rating.
func (s *service) ForSeller(sellerID uint) (*models.SellerReviews, error) {
	if _, err := s.userRepo.GetByID(sellerID); err != nil {
		return nil, ErrSellerNotFound
	}

	reviews, err := s.reviewRepo.BySeller(sellerID)
	if err != nil {
		return nil, err
	}

	var avg float64
	if len(reviews) > 0 {
		var total int
		for _, r := range reviews {
			total += r.Rating
		}
		avg = float64(total) / float64(len(reviews))
	}

	return &models.SellerReviews{
		Reviews:    reviews,
		AvgRating:  avg,
		NumReviews: len(reviews),
	}, nil
}

func (s *service) ForProduct(productID uint) ([]models.Review, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, ErrProductNotFound
	}
	return s.reviewRepo.ByProduct(productID)
}

func (s *service) ByUser(userID uint) ([]models.Review, error) {
	return s.reviewRepo.ByUser(userID)
}
