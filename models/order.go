package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (digital goods, no shipping leg)
	OrderStatusPending   OrderStatus = "pending"   // Gateway order created, widget not completed
	OrderStatusConfirmed OrderStatus = "confirmed" // Payment verified, downloads unlocked
	OrderStatusCancelled OrderStatus = "cancelled"

	// Payment statuses
	PaymentStatusPending PaymentStatus = "pending" // Payment not completed yet
	PaymentStatusPaid    PaymentStatus = "paid"    // Signature verified
	PaymentStatusFailed  PaymentStatus = "failed"  // Gateway reported failure
	// The widget reported success but our verification rejected the
	// signature. Money may have moved; support resolves these manually
	// unless the gateway webhook reconciles them first.
	PaymentStatusVerificationFailed PaymentStatus = "verification_failed"
	PaymentStatusRefunded           PaymentStatus = "refunded"
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        string        `gorm:"not null;index" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Currency      string        `json:"currency"` // INR or USD, fixed at creation
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	// Gateway-side transaction record, created before the widget is shown.
	GatewayOrderID   string    `gorm:"uniqueIndex" json:"gateway_order_id"`
	GatewayPaymentID string    `json:"gateway_payment_id,omitempty"`
	IdempotencyKey   string    `gorm:"uniqueIndex" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}

// OrderItem is a snapshot of the product at purchase time. UnitPrice is the
// effective (discounted) price in the order's currency.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
