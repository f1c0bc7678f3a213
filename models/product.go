package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	PriceINR    float64 `gorm:"not null" json:"price_inr"`
	PriceUSD    float64 `gorm:"not null" json:"price_usd"`
	// Integer 0-100. Out-of-range values are a data-integrity concern for
	// admin tooling, not validated on the read path.
	DiscountPercentage int            `json:"discount_percentage"`
	Image              string         `json:"image"`
	DownloadURL        string         `json:"-"` // released only through paid-order downloads
	CategoryID         uint           `gorm:"index" json:"category_id"`
	Category           Category       `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
