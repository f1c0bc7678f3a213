package models

import "time"

// Cart is owned by either an authenticated user (owner = user id) or a guest
// cart session (owner = session token). The unique index enforces ONE cart
// per identity.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	OwnerID   string     `gorm:"uniqueIndex" json:"-"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"index" json:"-"` // Faster queries
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `json:"quantity"`
	// Informational snapshot only. Totals are always recomputed from the
	// live product prices so client and server never drift.
	PriceAtAddINR float64   `json:"price_at_add_time_inr"`
	PriceAtAddUSD float64   `json:"price_at_add_time_usd"`
	AddedAt       time.Time `json:"added_at"`
}
