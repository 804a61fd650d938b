package paymentControllers

import (
	"time"

	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/models"
)

// PaymentOutcome is what a gateway reports for a successful payment,
// normalized so both rails feed the same transition.
type PaymentOutcome struct {
	GatewayOrderID string // PaymentRecord.OrderID ("ORDER_<id>" or intent id)
	PaymentID      string
	StatusText     string // e.g. "Paid via PayHere"
	Method         string
	Amount         float64
	Currency       string
}

// MarkOrderPaid is the single paid-state transition. Both the Stripe confirm
// path and the PayHere webhook go through it, so Order.IsPaid and the
// PaymentRecord ledger can never diverge by rail. Replaying the same outcome
// rewrites the same values and is not an error, which keeps gateway webhook
// retries safe.
func MarkOrderPaid(db *gorm.DB, orderID string, outcome PaymentOutcome) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items.Product").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		now := time.Now()
		order.IsPaid = true
		if order.PaidAt == nil {
			order.PaidAt = &now
		}
		order.PaymentResult = models.PaymentResult{
			ID:       outcome.PaymentID,
			Status:   outcome.StatusText,
			Method:   outcome.Method,
			Amount:   outcome.Amount,
			Currency: outcome.Currency,
		}
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		// Flip the matching ledger row. A missing row (e.g. the client paid
		// from a stale secret) leaves the order paid and the ledger alone.
		return tx.Model(&models.PaymentRecord{}).
			Where("order_id = ?", outcome.GatewayOrderID).
			Update("status", models.PaymentRecordPaid).Error
	})
	return order, err
}
