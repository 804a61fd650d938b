package models

import "time"

// Cart is a per-user scratch container. Items are appended as-is and only
// validated when they are turned into an order.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"cart_id"`
	ProductID string    `json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Qty       int       `json:"qty"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	AddedAt   time.Time `json:"added_at"`
}
