package model

import (
	"strings"
	"time"
)

type ProductCategory string

const (
	CategoryTee         ProductCategory = "tee"
	CategoryHoodie      ProductCategory = "hoodie"
	CategoryPants       ProductCategory = "pants"
	CategoryJacket      ProductCategory = "jacket"
	CategoryAccessories ProductCategory = "accessories"
)

type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	StoreID     uint            `gorm:"not null;default:1;index" json:"store_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       int64           `gorm:"not null" json:"price"` // whole currency units
	ImageURL    string          `json:"image_url"`
	Category    ProductCategory `gorm:"type:varchar(50)" json:"category"`
	Sizes       string          `json:"sizes"` // comma-separated, first entry is the default
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	CartItems []CartItem `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// SizeList splits the comma-separated Sizes column into labels.
func (p *Product) SizeList() []string {
	if p.Sizes == "" {
		return nil
	}
	parts := strings.Split(p.Sizes, ",")
	sizes := make([]string, 0, len(parts))
	for _, s := range parts {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			sizes = append(sizes, trimmed)
		}
	}
	return sizes
}
