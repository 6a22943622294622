package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	APIKey            string
	PosthogAPIKey     string
	RateLimitPeriod   time.Duration
	RateLimitRequests int64
	PDFPageWidth      float64
	PDFPageHeight     float64
	PDFPageMargin     float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "mindful-journal-app")
	viper.SetDefault("API_KEY", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 120)
	viper.SetDefault("PDF_PAGE_WIDTH", 612.0)
	viper.SetDefault("PDF_PAGE_HEIGHT", 792.0)
	viper.SetDefault("PDF_PAGE_MARGIN", 48.0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.APIKey = viper.GetString("API_KEY")
	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY environment variable not set. Login will be rejected.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	rateLimitPeriodStr := viper.GetString("RATE_LIMIT_PERIOD")
	rateLimitPeriod, err := time.ParseDuration(rateLimitPeriodStr)
	if err != nil {
		rateLimitPeriod = time.Minute
		log.Printf("Warning: Invalid value for RATE_LIMIT_PERIOD ('%s'). Defaulting to %s.\n", rateLimitPeriodStr, rateLimitPeriod.String())
	}
	cfg.RateLimitPeriod = rateLimitPeriod
	cfg.RateLimitRequests = viper.GetInt64("RATE_LIMIT_REQUESTS")

	// PDF page geometry, in points
	cfg.PDFPageWidth = viper.GetFloat64("PDF_PAGE_WIDTH")
	cfg.PDFPageHeight = viper.GetFloat64("PDF_PAGE_HEIGHT")
	cfg.PDFPageMargin = viper.GetFloat64("PDF_PAGE_MARGIN")
	if cfg.PDFPageWidth <= 0 || cfg.PDFPageHeight <= 0 || cfg.PDFPageMargin < 0 {
		log.Printf("Warning: Invalid PDF page geometry (%gx%g, margin %g). Using US Letter defaults.\n",
			cfg.PDFPageWidth, cfg.PDFPageHeight, cfg.PDFPageMargin)
		cfg.PDFPageWidth, cfg.PDFPageHeight, cfg.PDFPageMargin = 612, 792, 48
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}
