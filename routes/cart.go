package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/config"
	cartControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/cart"
	"github.com/Kavinduranmal/Noirrage-sub000/middleware"
)

// SetupCartRoutes registers the "/api/cart/*" endpoints. JWT-protected.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	cart := r.Group("/api/cart")
	cart.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cart.POST("/add", cartControllers.AddCartItem(db))
		cart.GET("/view", cartControllers.GetUserCart(db))
		cart.DELETE("/remove/:itemId", cartControllers.RemoveCartItem(db))
	}
}
