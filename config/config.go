package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// Storage Configuration
	DataDir   string
	UploadDir string

	// Auth Configuration
	JWTSecret     string
	JWTExpiration int

	// Payment Configuration
	CommissionRate float64

	// File Upload Configuration
	MaxUploadSize     int64
	AllowedExtensions []string

	// Rate Limiting Configuration
	RateLimitRequests int
	RateLimitWindow   int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "5000"),

		DataDir:   getEnv("DATA_DIR", "data"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		JWTSecret:     getEnv("JWT_SECRET", "mtd-store-secret-key-2024"),
		JWTExpiration: getEnvAsInt("JWT_EXPIRATION", 24*60*60), // 24 hours in seconds

		CommissionRate: getEnvAsFloat("COMMISSION_RATE", 0.05),

		MaxUploadSize:     getEnvAsInt64("MAX_UPLOAD_SIZE", 16*1024*1024), // 16MB
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "webp"},

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 1000),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	if c.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}
	if c.CommissionRate < 0 || c.CommissionRate >= 1 {
		return fmt.Errorf("invalid commission rate: %v", c.CommissionRate)
	}

	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	return nil
}

// IsAllowedExtension reports whether a filename carries an allow-listed image extension
func (c *Config) IsAllowedExtension(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %s, DataDir: %s}", c.Environment, c.Port, c.DataDir)
}
