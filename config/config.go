package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Generation service configuration
	GenerationAPIKey  string
	GenerationAPIURL  string
	GenerationTimeout time.Duration

	// Stripe configuration
	StripeSecretKey     string
	StripePriceID       string
	StripeWebhookSecret string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to Docker secrets and then to development
// defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getSetting("SERVER_PORT", "server_port", "8080"),
		ServerHost: getSetting("SERVER_HOST", "server_host", "0.0.0.0"),

		DBHost:     getSetting("DB_HOST", "db_host", "localhost"),
		DBPort:     getSetting("DB_PORT", "db_port", "5432"),
		DBUser:     getSetting("DB_USER", "db_user", "postgres"),
		DBPassword: getSetting("DB_PASSWORD", "db_password", ""),
		DBName:     getSetting("DB_NAME", "db_name", "vitalplan"),
		DBSSLMode:  getSetting("DB_SSL_MODE", "db_ssl_mode", "disable"),

		RedisHost:     getSetting("REDIS_HOST", "redis_host", "localhost"),
		RedisPort:     getSetting("REDIS_PORT", "redis_port", "6379"),
		RedisPassword: getSetting("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      getSetting("REDIS_URL", "redis_url", ""),

		JWTSecret: getSetting("JWT_SECRET", "jwt_secret", ""),

		GenerationAPIKey: getSetting("GENERATION_API_KEY", "generation_api_key", ""),
		GenerationAPIURL: getSetting("GENERATION_API_URL", "generation_api_url",
			"https://api.deepseek.com/v1/chat/completions"),

		StripeSecretKey:     getSetting("STRIPE_SECRET_KEY", "stripe_secret_key", ""),
		StripePriceID:       getSetting("STRIPE_PRICE_ID", "stripe_price_id", ""),
		StripeWebhookSecret: getSetting("STRIPE_WEBHOOK_SECRET", "stripe_webhook_secret", ""),
		CheckoutSuccessURL:  getSetting("CHECKOUT_SUCCESS_URL", "checkout_success_url", "http://localhost:5173/dashboard"),
		CheckoutCancelURL:   getSetting("CHECKOUT_CANCEL_URL", "checkout_cancel_url", "http://localhost:5173/"),
	}

	if db := getSetting("REDIS_DB", "redis_db", "0"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	if timeout := getSetting("GENERATION_TIMEOUT", "generation_timeout", "30s"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid GENERATION_TIMEOUT value %q: %w", timeout, err)
		}
		cfg.GenerationTimeout = d
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getSetting resolves a setting from the environment, then from the
// Docker secrets directory, then from the default.
func getSetting(envVar, secretName, fallback string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	if value := readSecret(secretName); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
