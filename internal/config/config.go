package config

import (
	"errors"
	"fmt"
	"strings"

	apperrors "orgbook-backend/internal/errors"

	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER
const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Storage configuration
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DataDir       string `mapstructure:"DATA_DIR"`

	// Database configuration (postgres driver only)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Import uploads
	MaxUploadMB int64 `mapstructure:"MAX_UPLOAD_MB"`
}

// Load merges defaults, an optional config.yaml (./ or ./config) and the
// environment, in that order of precedence from lowest to highest
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if cfg.StorageDriver == StorageDriverPostgres && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL(cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var defaults = map[string]any{
	"ENVIRONMENT":     "development",
	"PORT":            "7008",
	"LOG_LEVEL":       "info",
	"STORAGE_DRIVER":  StorageDriverSQLite,
	"DATA_DIR":        "./data",
	"DATABASE_URL":    "",
	"DB_HOST":         "localhost",
	"DB_PORT":         "5432",
	"DB_USER":         "postgres",
	"DB_PASSWORD":     "postgres",
	"DB_NAME":         "orgbook",
	"DB_SSL_MODE":     "disable",
	"ALLOWED_ORIGINS": []string{"http://localhost:3000", "http://localhost:5173"},
	"MAX_UPLOAD_MB":   20,
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
	switch config.StorageDriver {
	case StorageDriverSQLite, StorageDriverFile, StorageDriverMemory:
	case StorageDriverPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return apperrors.ErrDatabaseNameMissing
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownStorageDriver, config.StorageDriver)
	}

	if config.MaxUploadMB <= 0 {
		return apperrors.NewConfigurationError("MAX_UPLOAD_MB must be positive")
	}

	return nil
}

// MaxUploadBytes returns the import upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
