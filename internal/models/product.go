package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Product categories
const (
	CategoryStationary       = "Stationary"
	CategoryBooks            = "Books"
	CategoryElectronics      = "Electronics"
	CategoryProjectMaterials = "Project Materials"
	CategoryOthers           = "Others"
)

// Product conditions
const (
	ConditionNew          = "New"
	ConditionLikeNew      = "Like New"
	ConditionSlightlyUsed = "Slightly Used"
	ConditionUsed         = "Used"
	ConditionHeavilyUsed  = "Heavily Used"
)

// StringList stores a slice of strings as a jsonb column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// MarshalJSON returns the JSON encoding
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// UnmarshalJSON sets the JSON encoding
func (l *StringList) UnmarshalJSON(data []byte) error {
	if l == nil {
		return errors.New("nil pointer")
	}
	return json.Unmarshal(data, (*[]string)(l))
}

type Product struct {
	gorm.Model
	Name          string     `gorm:"not null" json:"name"`
	SellerID      uint       `gorm:"not null;index" json:"sellerId"`
	Seller        *User      `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Category      string     `gorm:"not null" json:"category"`
	Description   string     `gorm:"not null" json:"description"`
	Price         float64    `gorm:"not null" json:"price"`
	Images        StringList `gorm:"type:jsonb" json:"images"`
	Condition     string     `gorm:"not null" json:"condition"`
	Location      string     `gorm:"not null" json:"location"`
	IsSold        bool       `gorm:"default:false;index" json:"isSold"`
	AcceptsCrypto bool       `gorm:"default:false" json:"acceptsCrypto"`
	BuyerID       *uint      `gorm:"default:null" json:"buyerId,omitempty"`
	Buyer         *User      `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	TransactionID *uint      `gorm:"default:null" json:"transactionId,omitempty"`
}

// CreateProductInput is the listing payload. Images arrive as multipart files
// and are resolved to stored paths by the handler.
type CreateProductInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Images      []string `json:"-"`
}

// UpdateProductInput carries optional listing updates; zero values are ignored.
type UpdateProductInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Images      []string `json:"-"`
}

// ProductFilter narrows catalogue queries.
type ProductFilter struct {
	Keyword   string
	Category  string
	Condition string
}
