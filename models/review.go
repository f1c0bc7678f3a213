package models

import "time"

// Review is unique per (product, user). Ownership is exposed to clients as a
// server-computed is_owner flag, never inferred from display fields.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;uniqueIndex:idx_review_product_user" json:"product_id"`
	UserID    string    `gorm:"uniqueIndex:idx_review_product_user" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
