package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store backend names accepted in STORE_BACKEND
const (
	StoreBackendFile      = "file"
	StoreBackendFirestore = "firestore"
	StoreBackendRedis     = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	Temperature   float64

	// Server
	Port  string
	Debug bool

	// Users allowed to log in and own a stored resume
	Users []string

	// Authentication
	JWTSecret      string
	JWTExpiryHours int

	// Resume store
	StoreBackend string
	ResumeDir    string

	// Firestore backend
	ProjectID string

	// Redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Optional raw-upload archival bucket (disabled when empty)
	ArchiveBucket string

	// Timeouts
	HTTPTimeoutSeconds int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// OpenAI
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		Temperature:   getEnvFloat("OPENAI_TEMPERATURE", 0.4),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Users
		Users: getEnvList("USERS", []string{"Ankit", "Medha"}),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),

		// Resume store
		StoreBackend: getEnv("STORE_BACKEND", StoreBackendFile),
		ResumeDir:    getEnv("RESUME_DIR", "./data"),

		// Firestore backend
		ProjectID: getEnv("PROJECT_ID", ""),

		// Redis backend
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		// Archival
		ArchiveBucket: getEnv("ARCHIVE_BUCKET", ""),

		// Timeouts
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 60),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return &ConfigError{Field: "OPENAI_API_KEY", Message: "OPENAI_API_KEY is required for resume analysis"}
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return &ConfigError{Field: "OPENAI_TEMPERATURE", Message: fmt.Sprintf("OPENAI_TEMPERATURE must be in [0, 2], got %g", c.Temperature)}
	}

	if len(c.Users) == 0 {
		return &ConfigError{Field: "USERS", Message: "at least one user must be configured"}
	}

	switch c.StoreBackend {
	case StoreBackendFile:
		if c.ResumeDir == "" {
			return &ConfigError{Field: "RESUME_DIR", Message: "RESUME_DIR is required for the file store backend"}
		}
	case StoreBackendFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the firestore store backend"}
		}
	case StoreBackendRedis:
		if c.RedisAddr == "" {
			return &ConfigError{Field: "REDIS_ADDR", Message: "REDIS_ADDR is required for the redis store backend"}
		}
	default:
		return &ConfigError{Field: "STORE_BACKEND", Message: fmt.Sprintf("unknown store backend %q (expected file, firestore or redis)", c.StoreBackend)}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
