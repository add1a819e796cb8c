package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims carried by every authenticated request.
// Moderation and verification state is re-read from the user record by the
// middleware, so revoking either takes effect without waiting for expiry.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
