package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// insecureDevSecret is only ever used when AUTH_ALLOW_INSECURE_SECRET is set.
const insecureDevSecret = "dev-only-insecure-secret"

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
	JWTSecret           string `mapstructure:"JWT_SECRET"`
	JWTExpiryHours      int    `mapstructure:"JWT_EXPIRY_HOURS"`
	AllowInsecureSecret bool   `mapstructure:"AUTH_ALLOW_INSECURE_SECRET"`

	// Plan limits
	FreePlanNoteLimit int64 `mapstructure:"FREE_PLAN_NOTE_LIMIT"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
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
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "saas_notes")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults: no default secret. A missing JWT_SECRET is a startup
	// error unless AUTH_ALLOW_INSECURE_SECRET is set explicitly.
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_HOURS", 168)
	viper.SetDefault("AUTH_ALLOW_INSECURE_SECRET", false)

	// Plan defaults
	viper.SetDefault("FREE_PLAN_NOTE_LIMIT", 3)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
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
	if config.JWTSecret == "" {
		if !config.AllowInsecureSecret {
			return fmt.Errorf("JWT_SECRET must be set (or AUTH_ALLOW_INSECURE_SECRET=true for local development)")
		}
		logrus.Warn("JWT_SECRET is not set; falling back to an INSECURE development secret. Never run this in production.")
		config.JWTSecret = insecureDevSecret
	}

	if config.IsProduction() && config.AllowInsecureSecret {
		return fmt.Errorf("AUTH_ALLOW_INSECURE_SECRET must not be enabled in production")
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.FreePlanNoteLimit < 0 {
		return fmt.Errorf("FREE_PLAN_NOTE_LIMIT must not be negative")
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
