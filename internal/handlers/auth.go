package handlers

import (
	"errors"
	"log"

	"uniwise/internal/config"
	"uniwise/internal/middleware"
	"uniwise/internal/models"
	"uniwise/internal/services/auth"
	"uniwise/internal/services/user"
	"uniwise/internal/utils"
	"uniwise/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
	userService user.Service
}

func NewAuthHandler(authService auth.Service, userService user.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register creates a new account restricted to the college email domain and
// returns tokens so the client is logged in immediately.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.UserRegistration(&input, config.CollegeEmailDomain())
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	created, err := h.userService.Create(&input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return utils.BadRequest(c, "User already exists")
		}
		log.Printf("Failed to create user: %v", err)
		return utils.InternalError(c, "Failed to create user")
	}

	_, accessToken, refreshToken, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		log.Printf("Post-registration login failed for %s: %v", input.Email, err)
		return utils.InternalError(c, "Account created but login failed")
	}

	return utils.Created(c, fiber.Map{
		"user":          created,
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

// Login authenticates a user. Blacklisted accounts are refused with the
// recorded reason.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	usr, accessToken, refreshToken, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBlacklisted) {
			return utils.Forbidden(c, "Your account has been blacklisted. Please contact admin.")
		}
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid email or password")
		}
		return utils.InternalError(c, "Authentication failed")
	}

	return utils.Success(c, fiber.Map{
		"user":          usr,
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return utils.Unauthorized(c, "Refresh token not provided")
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "Invalid refresh token")
	}

	return utils.Success(c, fiber.Map{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	return utils.Success(c, usr)
}

// ApplyBlockchainVerification submits a verification request with the
// user's 15-digit wallet identifier.
func (h *AuthHandler) ApplyBlockchainVerification(c *fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		WalletID string `json:"walletId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	updated, err := h.authService.ApplyForVerification(usr.ID, input.WalletID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidWalletID):
			return utils.BadRequest(c, "Invalid wallet ID format. Must be 15 digits.")
		case errors.Is(err, auth.ErrAlreadyApplied):
			return utils.BadRequest(c, "You have already applied for verification")
		default:
			log.Printf("Verification request failed for user %d: %v", usr.ID, err)
			return utils.InternalError(c, "Failed to submit verification request")
		}
	}

	return utils.Success(c, fiber.Map{
		"message":                      "Blockchain verification requested successfully",
		"blockchainVerificationStatus": updated.BlockchainVerificationStatus,
	})
}
