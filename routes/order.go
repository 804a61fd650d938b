package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/config"
	orderControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/order"
	"github.com/Kavinduranmal/Noirrage-sub000/mailer"
	"github.com/Kavinduranmal/Noirrage-sub000/middleware"
)

// SetupOrderRoutes registers the "/api/orders/*" endpoints. Customer
// operations are JWT-protected; the admin listing, export and live feed sit
// behind the API key.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mail mailer.Mailer) {
	orders := r.Group("/api/orders")

	auth := orders.Group("")
	auth.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		auth.POST("/create", orderControllers.CreateOrder(db, mail))
		auth.GET("/byid", orderControllers.GetUserOrders(db))
		auth.PUT("/:id/ship", orderControllers.MarkShipped(db))
		auth.DELETE("/:id/cancel", orderControllers.CancelOrder(db))
	}

	admin := orders.Group("")
	admin.Use(middleware.ValidateAPIKey(cfg.AdminAPIKey))
	{
		admin.GET("/all", orderControllers.GetAllOrders(db))
		admin.GET("/export", orderControllers.ExportOrdersToExcel(db))
	}

	// websocket endpoint for real-time order updates
	orders.GET("/ws", orderControllers.OrderFeedHandler)
}
