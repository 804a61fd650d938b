package models

import "time"

type PaymentRecordStatus string

const (
	PaymentRecordPending PaymentRecordStatus = "Pending"
	PaymentRecordPaid    PaymentRecordStatus = "Paid"
	PaymentRecordFailed  PaymentRecordStatus = "Failed"
)

// PaymentRecord is a ledger row for one payment attempt. OrderID carries the
// gateway's identifier ("ORDER_<id>" for PayHere, the intent id for Stripe);
// LocalOrderID links back to our own Order. Attempts are deliberately
// unguarded, so the same gateway id may appear on several PayHere rows — the
// index must stay non-unique or a checkout retry dies on insert.
type PaymentRecord struct {
	ID           string              `gorm:"primaryKey" json:"id"`
	OrderID      string              `gorm:"index" json:"order_id"`
	LocalOrderID string              `gorm:"index" json:"local_order_id"`
	UserID       string              `gorm:"index" json:"user_id"`
	Gateway      string              `json:"gateway"` // "stripe" or "payhere"
	Amount       float64             `json:"amount"`
	Currency     string              `json:"currency"`
	Status       PaymentRecordStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
