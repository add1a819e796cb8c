package models

import (
	"gorm.io/gorm"
)

// WishlistItem is one saved product on a user's wishlist. The (user, product)
// pair is unique; entries for products that later sell are filtered at read
// time, not deleted.
type WishlistItem struct {
	gorm.Model
	UserID    uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
