package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// ShippingDetails is the destination block captured at checkout. All three
// fields are required; the frontends depend on these exact JSON names.
type ShippingDetails struct {
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

// PaymentResult records the gateway's view of the payment once a rail
// reconciles it into the order.
type PaymentResult struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	Method   string  `json:"method"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Order is the first validated snapshot of a purchase. Item size/color are
// checked against the live catalog at creation time and never re-validated,
// even if the product record changes afterwards.
type Order struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"index;not null" json:"user_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice      float64         `json:"totalPrice"` // client-supplied, see order controller
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	ShippingDetails ShippingDetails `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingDetails"`
	ShippedAt       *time.Time      `json:"shippedAt,omitempty"`
	CancelledAt     *time.Time      `json:"cancelledAt,omitempty"`
	IsPaid          bool            `gorm:"default:false" json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	PaymentResult   PaymentResult   `gorm:"embedded;embeddedPrefix:payment_" json:"paymentResult"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"index" json:"order_id"`
	ProductID string  `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Qty       int     `json:"qty"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}
