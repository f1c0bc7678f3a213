package models

import "time"

// CartSession is the opaque token correlating a guest's cart. It is a
// correlation key, not a credential: never rotated, no expiry.
type CartSession struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
