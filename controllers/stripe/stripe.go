package stripeControllers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"gorm.io/gorm"

	orderControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/order"
	paymentControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/payment"
	"github.com/Kavinduranmal/Noirrage-sub000/models"
)

// Currency is the fixed settlement currency of the card rail.
const Currency = "usd"

// IntentClient is the slice of the Stripe API the flow uses. Handlers take
// it as an interface so tests can stub the gateway.
type IntentClient interface {
	NewIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	GetIntent(id string) (*stripe.PaymentIntent, error)
}

type apiClient struct {
	api *client.API
}

// NewClient builds the production Stripe client from the secret key.
func NewClient(secretKey string) IntentClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &apiClient{api: api}
}

func (c *apiClient) NewIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return c.api.PaymentIntents.New(params)
}

func (c *apiClient) GetIntent(id string) (*stripe.PaymentIntent, error) {
	return c.api.PaymentIntents.Get(id, nil)
}

type CreateIntentRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// POST /api/stripe/create-payment-intent
//
// Issues a gateway payment intent for the order total and hands the client
// secret back to the browser. No idempotency key is sent, so repeated calls
// mint further intents and further Pending ledger rows; the confirm step
// settles whichever intent the customer completed.
func CreatePaymentIntent(db *gorm.DB, sc IntentClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var req CreateIntentRequest
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

		// Stripe wants minor units; the catalog stores major units.
		amount := int64(math.Round(order.TotalPrice * 100))

		pi, err := sc.NewIntent(&stripe.PaymentIntentParams{
			Amount:   stripe.Int64(amount),
			Currency: stripe.String(Currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		})
		if err != nil {
			log.Printf("❌ Stripe intent creation failed for order %s: %v", order.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway error"})
			return
		}

		record := models.PaymentRecord{
			ID:           uuid.NewString(),
			OrderID:      pi.ID,
			LocalOrderID: order.ID,
			UserID:       order.UserID,
			Gateway:      "stripe",
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

		c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
	}
}

type ConfirmRequest struct {
	OrderID         string `json:"order_id" binding:"required"`
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

// POST /api/stripe/confirm
//
// The browser reports back after confirming the intent; the intent's status
// is re-checked server-side before the order is marked paid, through the
// same transition the PayHere webhook uses. The ledger row minted at intent
// creation binds the intent to its order: confirming a succeeded intent
// against a different order, or one whose amount does not cover the order
// total, is rejected.
func ConfirmPayment(db *gorm.DB, sc IntentClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmRequest
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

		pi, err := sc.GetIntent(req.PaymentIntentID)
		if err != nil {
			log.Printf("❌ Stripe intent lookup failed for %s: %v", req.PaymentIntentID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway error"})
			return
		}
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment not completed"})
			return
		}

		var record models.PaymentRecord
		if err := db.First(&record, "order_id = ?", pi.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Unknown payment attempt"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment record"})
			return
		}
		if record.LocalOrderID != order.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment does not belong to this order"})
			return
		}
		if pi.Amount != int64(math.Round(order.TotalPrice*100)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment amount does not match order total"})
			return
		}

		paidOrder, err := paymentControllers.MarkOrderPaid(db, req.OrderID, paymentControllers.PaymentOutcome{
			GatewayOrderID: pi.ID,
			PaymentID:      pi.ID,
			StatusText:     "Paid via Stripe",
			Method:         "Stripe",
			Amount:         float64(pi.Amount) / 100,
			Currency:       string(pi.Currency),
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		orderControllers.BroadcastOrderEvent("paid", paidOrder)
		c.JSON(http.StatusOK, paidOrder)
	}
}
