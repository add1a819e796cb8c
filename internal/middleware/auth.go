// Package middleware provides HTTP middleware for the fiber app:
// authentication, admin gating, and blockchain-verification gating.
package middleware

import (
	"log"
	"strings"

	"uniwise/internal/models"
	"uniwise/internal/services/auth"
	"uniwise/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates JWT bearer tokens and loads the current user
// into the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler checks the Authorization header, validates the token, and
// re-reads the user record so moderation and verification state is current.
// Blacklisted users keep read access but every mutating request is refused.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	user, err := m.authService.GetUserByID(claims.UserID)
	if err != nil {
		log.Printf("User %d from token not found", claims.UserID)
		return utils.Unauthorized(c, "invalid token")
	}

	if user.IsBlacklisted && c.Method() != fiber.MethodGet {
		return utils.Forbidden(c, "Your account has been blacklisted. Please contact admin.")
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	c.Locals("user", user)

	return c.Next()
}

// AdminOnly verifies that the authenticated user is an admin.
func AdminOnly(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	if !user.IsAdmin {
		return utils.Forbidden(c, "Access denied. Admin privileges required")
	}
	return c.Next()
}

// BlockchainVerified verifies that the authenticated user passed blockchain
// verification. Required on the crypto payment rail.
func BlockchainVerified(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	if !user.IsBlockchainVerified {
		return utils.Forbidden(c, "Blockchain verification required for crypto payments")
	}
	return c.Next()
}

// CurrentUser returns the user loaded by the auth middleware.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}
