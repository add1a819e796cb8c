package auth

import (
	"errors"
	"log"

	"uniwise/internal/models"
	"uniwise/internal/repositories"
	"uniwise/internal/utils"
	"uniwise/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBlacklisted        = errors.New("account blacklisted")
	ErrInvalidWalletID    = errors.New("invalid wallet ID format, must be 15 digits")
	ErrAlreadyApplied     = errors.New("verification already applied")
)

type Service interface {
	Login(email, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	ApplyForVerification(userID uint, walletID string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{
		userRepo: userRepo,
	}
}

func (s *service) Login(email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		log.Printf("Login failed: user not found for %s", email)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for user %d", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	// Blacklisted accounts authenticate but are refused.
	if user.IsBlacklisted {
		return user, "", "", ErrBlacklisted
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}
	if user.IsBlacklisted {
		return "", "", ErrBlacklisted
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
}

// ApplyForVerification submits (or re-submits) a blockchain verification
// request. Only the not_applied and rejected states are eligible.
func (s *service) ApplyForVerification(userID uint, walletID string) (*models.User, error) {
	if !validation.IsValidWalletID(walletID) {
		return nil, ErrInvalidWalletID
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if !user.CanApplyForVerification() {
		return nil, ErrAlreadyApplied
	}

	user.WalletID = &walletID
	user.BlockchainVerificationStatus = models.VerificationPending

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
