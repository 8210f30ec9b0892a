package model

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the closed status set. The status
// update boundary rejects anything outside it.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

// Order is an append-only ledger row. Items holds the cart contents
// snapshotted by value at checkout time; it is stored opaque and never
// re-parsed against live product rows, so later catalog or cart
// mutation cannot rewrite order history.
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      string         `gorm:"not null;index" json:"user_id"`
	UserName    string         `json:"user_name,omitempty"`
	UserPhone   string         `json:"user_phone,omitempty"`
	UserAddress string         `json:"user_address,omitempty"`
	Items       datatypes.JSON `gorm:"not null" json:"items"`
	Total       int64          `gorm:"not null" json:"total"` // client-supplied, stored verbatim
	Status      OrderStatus    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
