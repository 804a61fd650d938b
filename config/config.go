package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config collects every environment setting at startup so clients can be
// constructed once and injected, instead of each package reaching for
// os.Getenv at call time.
type Config struct {
	Port        string
	DatabaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret   string
	AdminAPIKey string

	StripeSecretKey string

	PayHereMerchantID     string
	PayHereMerchantSecret string
	PayHereMode           string // "sandbox"/"dev" skips webhook signature checks

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	TLSCertFile string
	TLSKeyFile  string
}

// Load reads the process environment. godotenv.Load is expected to have run
// already (main does it).
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),

		PayHereMerchantID:     os.Getenv("PAYHERE_MERCHANT_ID"),
		PayHereMerchantSecret: os.Getenv("PAYHERE_MERCHANT_SECRET"),
		PayHereMode:           os.Getenv("PAYHERE_MODE"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnv("MAIL_FROM", os.Getenv("SMTP_USER")),

		TLSCertFile: os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:  os.Getenv("TLS_KEY_FILE"),
	}

	smtpPort := getEnv("SMTP_PORT", "587")
	p, err := strconv.Atoi(smtpPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", smtpPort, err)
	}
	cfg.SMTPPort = p

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// DSN builds the postgres connection string when DATABASE_URL is not set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
