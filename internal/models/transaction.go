package models

import (
	"gorm.io/gorm"
)

// Payment methods
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCrypto   = "crypto"
)

// Transaction statuses
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionRefunded  = "refunded"
)

// Transaction is the immutable record of one sale. Only Status may change
// after creation (completed -> refunded through an admin action).
type Transaction struct {
	gorm.Model
	BuyerID               uint     `gorm:"not null;index" json:"buyerId"`
	Buyer                 *User    `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	SellerID              uint     `gorm:"not null;index" json:"sellerId"`
	Seller                *User    `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	ProductID             uint     `gorm:"not null;index" json:"productId"`
	Product               *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Amount                float64  `gorm:"not null" json:"amount"`
	PaymentMethod         string   `gorm:"not null" json:"paymentMethod"`
	PaymentID             string   `gorm:"not null" json:"paymentId"`
	CryptoTransactionHash string   `json:"cryptoTransactionHash,omitempty"`
	Status                string   `gorm:"not null;default:'pending'" json:"status"`
}
