package models

import (
	"gorm.io/gorm"
)

// Review rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Review is left by the buyer of a sold product. The seller reference is
// denormalized so per-seller aggregates stay a single query.
type Review struct {
	gorm.Model
	UserID    uint     `gorm:"not null;index:idx_review_user_product" json:"userId"`
	User      *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SellerID  uint     `gorm:"not null;index" json:"sellerId"`
	Seller    *User    `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	ProductID uint     `gorm:"not null;index:idx_review_user_product" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Rating    int      `gorm:"not null" json:"rating"`
	Comment   string   `gorm:"not null" json:"comment"`
}

// CreateReviewInput is the review payload.
type CreateReviewInput struct {
	ProductID uint   `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// SellerReviews bundles a seller's reviews with their aggregate rating.
type SellerReviews struct {
	Reviews    []Review `json:"reviews"`
	AvgRating  float64  `json:"avgRating"`
	NumReviews int      `json:"numReviews"`
}
