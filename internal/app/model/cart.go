package model

import (
	"time"
)

// CartItem is one selected line in a user's cart. Repeated adds of the
// same product/size create additional rows rather than incrementing
// quantity. UserID is the opaque chat-platform identity string.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Size      string    `gorm:"not null" json:"size"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
