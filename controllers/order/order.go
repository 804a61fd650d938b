package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/mailer"
	"github.com/Kavinduranmal/Noirrage-sub000/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CreateOrderRequest struct {
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalPrice      float64          `json:"totalPrice" binding:"required"`
	ShippingDetails struct {
		Email         string `json:"email" binding:"required,email"`
		Address       string `json:"address" binding:"required"`
		ContactNumber string `json:"contactNumber" binding:"required"`
	} `json:"shippingDetails" binding:"required"`
}

// -------- Handlers --------

// POST /api/orders/create
//
// Every item is validated against the live catalog before anything is
// written, so a failure on item N leaves no partial order behind. The
// client's totalPrice is trusted as-is; the catalog total is recomputed
// only to log discrepancies for audit.
func CreateOrder(db *gorm.DB, mail mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		catalogTotal := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			if item.Size == "" || item.Color == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Size and color are required for every item"})
				return
			}

			var product models.Product
			if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Product not found: " + item.ProductID})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
				return
			}
			if !product.HasSize(item.Size) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size '" + item.Size + "' for product " + product.Name})
				return
			}
			if !product.HasColor(item.Color) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid color '" + item.Color + "' for product " + product.Name})
				return
			}

			catalogTotal = catalogTotal.Add(
				decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Qty))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Qty:       item.Qty,
				Size:      item.Size,
				Color:     item.Color,
			})
		}

		if !catalogTotal.Equal(decimal.NewFromFloat(req.TotalPrice)) {
			log.Printf("⚠️ order total mismatch for user %s: client %.2f, catalog %s",
				userID, req.TotalPrice, catalogTotal.StringFixed(2))
		}

		order := models.Order{
			ID:         uuid.NewString(),
			UserID:     userID,
			Items:      orderItems,
			TotalPrice: req.TotalPrice,
			Status:     models.OrderStatusPending,
			ShippingDetails: models.ShippingDetails{
				Email:         req.ShippingDetails.Email,
				Address:       req.ShippingDetails.Address,
				ContactNumber: req.ShippingDetails.ContactNumber,
			},
			CreatedAt: time.Now(),
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		if err := db.Preload("Items.Product").First(&order, "id = ?", order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		// Confirmation mail is best-effort: a send failure must not undo the
		// order or change the response.
		if mail != nil {
			go func(o models.Order) {
				if err := mail.SendOrderConfirmation(o); err != nil {
					log.Printf("❌ Failed to send confirmation for order %s: %v", o.ID, err)
				}
			}(order)
		}

		BroadcastOrderEvent("created", order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/byid — the requesting user's orders, newest first. An
// empty result is a valid empty list, not an error.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		orders := []models.Order{}
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/all (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/orders/:id/ship
//
// Shipped is terminal: once set, nothing in this flow moves the order back
// to Pending. There is intentionally no paid-guard before shipping.
func MarkShipped(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := loadOrderByParam(c, db)
		if !ok {
			return
		}
		if order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot ship a cancelled order"})
			return
		}

		now := time.Now()
		order.Status = models.OrderStatusShipped
		if order.ShippedAt == nil {
			order.ShippedAt = &now
		}
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		BroadcastOrderEvent("shipped", order)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/orders/:id/cancel
//
// Cancellation keeps the row with a terminal Cancelled status so the order
// history survives for audit; nothing is hard-deleted.
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := loadOrderByParam(c, db)
		if !ok {
			return
		}
		if order.Status == models.OrderStatusShipped {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot cancel a shipped order"})
			return
		}

		now := time.Now()
		order.Status = models.OrderStatusCancelled
		order.CancelledAt = &now
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		BroadcastOrderEvent("cancelled", order)
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// -------- Helpers --------

func loadOrderByParam(c *gin.Context, db *gorm.DB) (models.Order, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return models.Order{}, false
	}

	var order models.Order
	if err := db.Preload("Items.Product").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return models.Order{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return models.Order{}, false
	}
	return order, true
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := v.(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}
