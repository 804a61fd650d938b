package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/config"
	payhereControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/payhere"
	stripeControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/stripe"
	"github.com/Kavinduranmal/Noirrage-sub000/middleware"
)

// SetupPaymentRoutes registers both payment rails. The PayHere notify
// endpoint is gateway-called and carries its own signature auth instead of
// a bearer token.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sc stripeControllers.IntentClient) {
	st := r.Group("/api/stripe")
	st.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		st.POST("/create-payment-intent", stripeControllers.CreatePaymentIntent(db, sc))
		st.POST("/confirm", stripeControllers.ConfirmPayment(db, sc))
	}

	ph := r.Group("/api/payhere")
	{
		ph.POST("/checkout",
			middleware.ValidateToken(cfg.JWTSecret),
			payhereControllers.Checkout(db, cfg),
		)
		ph.POST("/notify",
			middleware.PayHereWebhookAuth(cfg.PayHereMerchantSecret, cfg.PayHereMode),
			payhereControllers.Notify(db),
		)
	}
}
