package models

import (
	"gorm.io/gorm"
)

// Blockchain verification lifecycle for a user.
const (
	VerificationNotApplied = "not_applied"
	VerificationPending    = "pending"
	VerificationApproved   = "approved"
	VerificationRejected   = "rejected"
)

type User struct {
	gorm.Model
	Name                         string  `gorm:"not null" json:"name"`
	Email                        string  `gorm:"uniqueIndex;not null" json:"email"`
	Password                     string  `gorm:"not null" json:"-"`
	Department                   string  `gorm:"not null" json:"department"`
	Year                         string  `gorm:"not null" json:"year"`
	Division                     string  `json:"division"`
	Location                     string  `gorm:"not null" json:"location"`
	IsAdmin                      bool    `gorm:"default:false" json:"isAdmin"`
	IsBlacklisted                bool    `gorm:"default:false" json:"isBlacklisted"`
	BlacklistReason              string  `json:"blacklistReason,omitempty"`
	IsBlockchainVerified         bool    `gorm:"default:false" json:"isBlockchainVerified"`
	BlockchainVerificationStatus string  `gorm:"default:'not_applied'" json:"blockchainVerificationStatus"`
	WalletID                     *string `gorm:"unique;default:null" json:"walletId,omitempty"` // 15-digit wallet identifier
	ProfileImage                 string  `gorm:"default:'default-profile.jpg'" json:"profileImage"`
}

// CanApplyForVerification reports whether the user may submit (or re-submit)
// a blockchain verification request.
func (u *User) CanApplyForVerification() bool {
	return u.BlockchainVerificationStatus == VerificationNotApplied ||
		u.BlockchainVerificationStatus == VerificationRejected
}

// CreateUserInput is the registration payload.
type CreateUserInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Division   string `json:"division"`
	Location   string `json:"location"`
}

// UpdateProfileInput carries optional profile updates; empty fields are ignored.
type UpdateProfileInput struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Division   string `json:"division"`
	Location   string `json:"location"`
	Password   string `json:"password"`
}

// PublicUser is the projection of a user exposed to other users. It never
// carries the email or password hash.
type PublicUser struct {
	ID                   uint   `json:"id"`
	Name                 string `json:"name"`
	Department           string `json:"department"`
	Year                 string `json:"year"`
	Division             string `json:"division"`
	Location             string `json:"location"`
	IsBlockchainVerified bool   `json:"isBlockchainVerified"`
	ProfileImage         string `json:"profileImage"`
}

// Public returns the user's public projection.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                   u.ID,
		Name:                 u.Name,
		Department:           u.Department,
		Year:                 u.Year,
		Division:             u.Division,
		Location:             u.Location,
		IsBlockchainVerified: u.IsBlockchainVerified,
		ProfileImage:         u.ProfileImage,
	}
}
