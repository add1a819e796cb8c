package user

import (
	"errors"

	"uniwise/internal/models"
	"uniwise/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("user with this email already exists")

// Profile is the public-profile view: the user without contact details,
// their newest unsold listings, and the reviews they received as a seller.
type Profile struct {
	User     models.PublicUser `json:"user"`
	Products []models.Product  `json:"products"`
	Reviews  []models.Review   `json:"reviews"`
}

type Service interface {
	Create(input *models.CreateUserInput) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, input *models.UpdateProfileInput, profileImage string) (*models.User, error)
	PublicProfile(userID uint) (*Profile, error)
	Purchases(userID uint) ([]models.Product, error)
	Sales(userID uint) ([]models.Product, error)
	Listings(userID uint) ([]models.Product, error)
}

type service struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	reviewRepo  repositories.ReviewRepository
}

func NewService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, reviewRepo repositories.ReviewRepository) Service {
	return &service{
		userRepo:    userRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *service) Create(input *models.CreateUserInput) (*models.User, error) {
	if existing, _ := s.userRepo.GetByEmail(input.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Name:                         input.Name,
		Email:                        input.Email,
		Password:                     string(hashedPassword),
		Department:                   input.Department,
		Year:                         input.Year,
		Division:                     input.Division,
		Location:                     input.Location,
		BlockchainVerificationStatus: models.VerificationNotApplied,
		ProfileImage:                 "default-profile.jpg",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile applies the provided fields, replaces the profile image when
// a new upload came in, and re-hashes the password if one was given.
func (s *service) UpdateProfile(userID uint, input *models.UpdateProfileInput, profileImage string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Department != "" {
		user.Department = input.Department
	}
	if input.Year != "" {
		user.Year = input.Year
	}
	if input.Division != "" {
		user.Division = input.Division
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if profileImage != "" {
		user.ProfileImage = profileImage
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("failed to hash password")
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) PublicProfile(userID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.UnsoldBySeller(userID, 10)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.BySeller(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:     user.Public(),
		Products: products,
		Reviews:  reviews,
	}, nil
}

func (s *service) Purchases(userID uint) ([]models.Product, error) {
	return s.productRepo.PurchasedBy(userID)
}

func (s *service) Sales(userID uint) ([]models.Product, error) {
	return s.productRepo.SoldBySeller(userID)
}

func (s *service) Listings(userID uint) ([]models.Product, error) {
	return s.productRepo.UnsoldBySeller(userID, 0)
}
