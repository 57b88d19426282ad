package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	MinIO     MinIOConfig
	Studio    StudioConfig
	FormRelay FormRelayConfig
	Crossref  CrossrefConfig
	Content   ContentConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	BaseURL     string // public base URL of the site
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base URL assets are served from
}

// StudioConfig gates the authoring API. A single admin account is
// provisioned through the environment; there is no self-registration.
type StudioConfig struct {
	JWTSecret         string
	TokenExpiry       time.Duration
	AdminUser         string
	AdminPasswordHash string // bcrypt hash
}

// FormRelayConfig identifies the external form-relay endpoint the contact
// form submits to.
type FormRelayConfig struct {
	Endpoint string // e.g. https://formspree.io
	FormID   string
	Timeout  time.Duration
}

// CrossrefConfig points at the bibliographic API used for best-effort
// citation-count enrichment.
type CrossrefConfig struct {
	BaseURL string
	Mailto  string // polite-pool contact address
	Timeout time.Duration
}

// ContentConfig controls the page revalidation window.
type ContentConfig struct {
	RevalidateInterval time.Duration // how long a built page projection is served from cache
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Portfolio API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			BaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "portfolio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "portfolio"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
		},
		Studio: StudioConfig{
			JWTSecret:         getEnv("STUDIO_JWT_SECRET", "change-me-in-production"),
			TokenExpiry:       getEnvDuration("STUDIO_TOKEN_EXPIRY", 12*time.Hour),
			AdminUser:         getEnv("STUDIO_ADMIN_USER", "admin"),
			AdminPasswordHash: getEnv("STUDIO_ADMIN_PASSWORD_HASH", ""),
		},
		FormRelay: FormRelayConfig{
			Endpoint: getEnv("FORM_RELAY_ENDPOINT", "https://formspree.io"),
			FormID:   getEnv("FORM_RELAY_FORM_ID", ""),
			Timeout:  getEnvDuration("FORM_RELAY_TIMEOUT", 10*time.Second),
		},
		Crossref: CrossrefConfig{
			BaseURL: getEnv("CROSSREF_BASE_URL", "https://api.crossref.org"),
			Mailto:  getEnv("CROSSREF_MAILTO", ""),
			Timeout: getEnvDuration("CROSSREF_TIMEOUT", 8*time.Second),
		},
		Content: ContentConfig{
			RevalidateInterval: getEnvDuration("CONTENT_REVALIDATE_INTERVAL", 60*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable for the current environment.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Studio.JWTSecret == "change-me-in-production" {
			return fmt.Errorf("STUDIO_JWT_SECRET must be set in production")
		}
		if c.Studio.AdminPasswordHash == "" {
			return fmt.Errorf("STUDIO_ADMIN_PASSWORD_HASH must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.FormRelay.FormID == "" {
			fmt.Println("WARNING: FORM_RELAY_FORM_ID not set - contact form will not submit")
		}
	}

	if c.Content.RevalidateInterval <= 0 {
		return fmt.Errorf("CONTENT_REVALIDATE_INTERVAL must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
