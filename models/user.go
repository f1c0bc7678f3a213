package models

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"unique;not null" json:"email"`
	Username      string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	Avatar        string    `json:"avatar"`
	Country       string    `json:"country"` // drives display currency, see pricing
	IsStaff       bool      `json:"is_staff"`
	IsSuperuser   bool      `json:"is_superuser"`
	EmailVerified bool      `json:"email_verified"`
	Address       Address   `gorm:"embedded" json:"address"` // Embeds address fields directly
	Orders        []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}
