package payhereControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/config"
	orderControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/order"
	paymentControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/payment"
	"github.com/Kavinduranmal/Noirrage-sub000/models"
)

// OrderIDPrefix is prepended to our order id when handing it to PayHere, and
// stripped again when the webhook comes back.
const OrderIDPrefix = "ORDER_"

// Currency is the single settlement currency of the PayHere rail.
const Currency = "LKR"

type CheckoutRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// POST /api/payhere/checkout
//
// Returns the fields the frontend needs to open the hosted payment page:
// merchant id, prefixed order id, two-decimal amount and the outbound hash.
// A Pending ledger row is written per attempt; repeated calls for the same
// order create further attempts, the webhook settles whichever one the
// customer completes.
func Checkout(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		gatewayOrderID := OrderIDPrefix + order.ID
		hash := ComputeHash(cfg.PayHereMerchantID, gatewayOrderID, order.TotalPrice,
			Currency, cfg.PayHereMerchantSecret)

		record := models.PaymentRecord{
			ID:           uuid.NewString(),
			OrderID:      gatewayOrderID,
			LocalOrderID: order.ID,
			UserID:       order.UserID,
			Gateway:      "payhere",
			Amount:       order.TotalPrice,
			Currency:     Currency,
			Status:       models.PaymentRecordPending,
		}
		if uid, ok := userID.(string); ok && uid != "" {
			record.UserID = uid
		}
		if err := db.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment attempt"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"merchant_id": cfg.PayHereMerchantID,
			"order_id":    gatewayOrderID,
			"amount":      FormatAmount(order.TotalPrice),
			"currency":    Currency,
			"hash":        hash,
		})
	}
}

// POST /api/payhere/notify — form-encoded webhook PayHere calls after the
// customer finishes on the hosted page. The signature has already been
// checked by middleware.PayHereWebhookAuth.
//
// Non-success status codes are acknowledged with 200 so the gateway stops
// retrying; only genuine internal failures return 500 (which PayHere
// retries). Replays of a successful payload are harmless.
func Notify(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		gatewayOrderID := c.PostForm("order_id")
		statusCode := c.PostForm("status_code")

		if gatewayOrderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing order_id"})
			return
		}

		if statusCode != "2" {
			log.Printf("PayHere payment not completed for %s (status_code=%s)", gatewayOrderID, statusCode)
			// Decided failures settle their Pending ledger rows; "0" is
			// still in flight and stays Pending.
			switch statusCode {
			case "-1", "-2", "-3":
				if err := db.Model(&models.PaymentRecord{}).
					Where("order_id = ? AND status = ?", gatewayOrderID, models.PaymentRecordPending).
					Update("status", models.PaymentRecordFailed).Error; err != nil {
					log.Printf("❌ Failed to settle payment record for %s: %v", gatewayOrderID, err)
				}
			}
			c.String(http.StatusOK, "Payment not completed")
			return
		}

		amount, err := strconv.ParseFloat(c.PostForm("payhere_amount"), 64)
		if err != nil {
			log.Printf("PayHere notify with malformed payhere_amount %q for %s",
				c.PostForm("payhere_amount"), gatewayOrderID)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payhere_amount"})
			return
		}
		method := c.PostForm("method")
		if method == "" {
			method = "PayHere"
		}

		orderID := strings.TrimPrefix(gatewayOrderID, OrderIDPrefix)
		order, err := paymentControllers.MarkOrderPaid(db, orderID, paymentControllers.PaymentOutcome{
			GatewayOrderID: gatewayOrderID,
			PaymentID:      c.PostForm("payment_id"),
			StatusText:     "Paid via PayHere",
			Method:         method,
			Amount:         amount,
			Currency:       c.PostForm("payhere_currency"),
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			log.Printf("❌ PayHere reconciliation failed for %s: %v", gatewayOrderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		orderControllers.BroadcastOrderEvent("paid", order)
		c.String(http.StatusOK, "Order marked as paid")
	}
}
