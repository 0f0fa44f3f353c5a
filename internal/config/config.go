package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Database
	DatabaseURL string

	// gRPC
	GRPCHost string
	GRPCPort string

	// Security
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// DevOverrideHash is the bcrypt hash of the shared dev-override secret.
	// Unset disables the bypass entirely.
	DevOverrideHash string

	// Features
	VerificationEnabled bool

	// Email
	NotifierEnabled bool
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	EmailFrom       string

	// Environment
	Environment string
	LogLevel    string

	// Worker Pool
	EmailWorkerPoolSize int
	EmailTaskQueueSize  int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		GRPCHost:            getEnv("GRPC_HOST", "0.0.0.0"),
		GRPCPort:            getEnv("GRPC_PORT", "50051"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		BcryptCost:          getEnvInt("BCRYPT_COST", 10),
		DevOverrideHash:     getEnv("DEV_OVERRIDE_PASSWORD_HASH", ""),
		VerificationEnabled: getEnvBool("EMAIL_VERIFICATION_ENABLED", false),
		NotifierEnabled:     getEnvBool("NOTIFIER_ENABLED", false),
		SMTPHost:            getEnv("SMTP_HOST", "localhost"),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		EmailFrom:           getEnv("EMAIL_FROM", "noreply@photobook.example"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		EmailWorkerPoolSize: getEnvInt("EMAIL_WORKER_POOL_SIZE", 5),
		EmailTaskQueueSize:  getEnvInt("EMAIL_TASK_QUEUE_SIZE", 100),
	}

	tokenTTLMins := getEnvInt("TOKEN_TTL_MINUTES", 60)
	cfg.TokenTTL = time.Duration(tokenTTLMins) * time.Minute

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.TokenTTL < time.Minute || c.TokenTTL > 24*time.Hour {
		return fmt.Errorf("token ttl must be between 1 minute and 24 hours")
	}
	return nil
}

// getEnv retrieves an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// getEnvBool retrieves a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}
