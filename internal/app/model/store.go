package model

import (
	"time"
)

// DefaultStoreID is the sentinel store that orphaned products fall back
// to when their owning store is deleted and no other store remains.
const DefaultStoreID uint = 1

type Store struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	ImageURL    string    `json:"image_url"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:StoreID" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}
