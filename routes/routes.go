package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/config"
	stripeControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/stripe"
	"github.com/Kavinduranmal/Noirrage-sub000/mailer"
)

// SetupRoutes is the single entry-point that wires up every route group.
// All gateway and mail clients come in constructed; nothing reaches for the
// environment past this point.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mail mailer.Mailer, sc stripeControllers.IntentClient) {
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg, mail)
	SetupPaymentRoutes(r, db, cfg, sc)
}
