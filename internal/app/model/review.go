package model

import (
	"time"
)

// Review and ReviewComment are append-only; there is no edit or delete
// surface for either.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `gorm:"not null;default:5" json:"rating"` // clamped to [1,5] at the boundary
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Comments []ReviewComment `gorm:"foreignKey:ReviewID" json:"comments"`
}

func (Review) TableName() string {
	return "reviews"
}

type ReviewComment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ReviewID  uint      `gorm:"not null;index" json:"review_id"`
	UserID    string    `gorm:"not null" json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Review Review `gorm:"foreignKey:ReviewID" json:"-"`
}

func (ReviewComment) TableName() string {
	return "review_comments"
}
