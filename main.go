package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Kavinduranmal/Noirrage-sub000/config"
	stripeControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/stripe"
	"github.com/Kavinduranmal/Noirrage-sub000/mailer"
	"github.com/Kavinduranmal/Noirrage-sub000/models"
	"github.com/Kavinduranmal/Noirrage-sub000/routes"
)

func main() {
	log.Println("✅ Starting Noirrage API...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentRecord{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Clients are built once here and injected; nothing downstream touches
	// the environment.
	mail := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	stripeClient := stripeControllers.NewClient(cfg.StripeSecretKey)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, cfg, mail, stripeClient)

	// Start server — HTTPS directly when cert/key are configured (no
	// reverse proxy assumed), plain HTTP otherwise.
	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		log.Printf("🚀 Server running with TLS on port %s...", cfg.Port)
		if err := r.RunTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile); err != nil {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
		return
	}
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}
