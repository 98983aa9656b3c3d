package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	apperrors "crowdaid-backend/internal/errors"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
	FrontendURL    string   `mapstructure:"FRONTEND_URL"`

	// Redis configuration (rate limiting)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Rate limiting for the public emergency endpoint
	RateLimitRequests  int `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindowSec int `mapstructure:"RATE_LIMIT_WINDOW_SEC"`

	// Email configuration
	EmailEnabled bool   `mapstructure:"EMAIL_ENABLED"`
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	SMTPSSL      bool   `mapstructure:"SMTP_SSL"`

	// Notification fan-out
	NotificationWorkers    int `mapstructure:"NOTIFICATION_WORKERS"`
	NotificationQueueSize  int `mapstructure:"NOTIFICATION_QUEUE_SIZE"`
	NotificationPageSize   int `mapstructure:"NOTIFICATION_PAGE_SIZE"`
	NotificationTimeoutSec int `mapstructure:"NOTIFICATION_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "crowdaid")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "crowdaid")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")

	// Redis defaults; an empty address disables rate limiting
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SEC", 60)

	// Email defaults (mailhog-style local relay)
	viper.SetDefault("EMAIL_ENABLED", false)
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 1025)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "noreply@crowdaid.in")
	viper.SetDefault("SMTP_SSL", false)

	// Notification defaults
	viper.SetDefault("NOTIFICATION_WORKERS", 3)
	viper.SetDefault("NOTIFICATION_QUEUE_SIZE", 500)
	viper.SetDefault("NOTIFICATION_PAGE_SIZE", 50)
	viper.SetDefault("NOTIFICATION_TIMEOUT_SEC", 30)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return apperrors.NewConfigurationError("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return apperrors.NewConfigurationError("database name is required")
	}

	if config.EmailEnabled && config.SMTPHost == "" {
		return apperrors.ErrSMTPNotConfigured
	}

	if config.NotificationWorkers < 0 {
		return apperrors.NewConfigurationError("NOTIFICATION_WORKERS must not be negative")
	}

	if config.NotificationQueueSize < 1 {
		return apperrors.NewConfigurationError("NOTIFICATION_QUEUE_SIZE must be at least 1")
	}

	if config.NotificationPageSize < 1 {
		return apperrors.NewConfigurationError("NOTIFICATION_PAGE_SIZE must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RateLimitEnabled reports whether a Redis backend is configured for rate limiting
func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != "" && c.RateLimitRequests > 0
}

// RateLimitWindow returns the rate limiting window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

// NotificationTimeout returns the per-task deadline for notification fan-out
func (c *Config) NotificationTimeout() time.Duration {
	return time.Duration(c.NotificationTimeoutSec) * time.Second
}
