package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	AdminUsername     string
	AdminPasswordHash string
	AttendantPassword string

	// RefreshInterval is the polling fallback for the live data store.
	RefreshInterval time.Duration

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	return value, nil
}

// Load reads configuration from environment variables, optionally seeded from
// a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL, err := requireEnv("DATABASE_URL")
	if err != nil {
		return nil, err
	}

	jwtKey, err := requireEnv("JWT_SECRET_KEY")
	if err != nil {
		return nil, err
	}

	adminHash, err := requireEnv("ADMIN_PASSWORD_HASH")
	if err != nil {
		return nil, err
	}

	attendantPassword, err := requireEnv("ATTENDANT_PASSWORD")
	if err != nil {
		return nil, err
	}

	r2AccountID, err := requireEnv("R2_ACCOUNT_ID")
	if err != nil {
		return nil, err
	}
	r2AccessKeyID, err := requireEnv("R2_ACCESS_KEY_ID")
	if err != nil {
		return nil, err
	}
	r2SecretAccessKey, err := requireEnv("R2_SECRET_ACCESS_KEY")
	if err != nil {
		return nil, err
	}
	r2BucketName, err := requireEnv("R2_BUCKET_NAME")
	if err != nil {
		return nil, err
	}
	r2PublicBaseURL, err := requireEnv("R2_PUBLIC_BASE_URL")
	if err != nil {
		return nil, err
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	refreshInterval := 5 * time.Minute
	if intervalStr := os.Getenv("REFRESH_INTERVAL"); intervalStr != "" {
		refreshInterval, err = time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL environment variable: %w", err)
		}
		if refreshInterval <= 0 {
			return nil, fmt.Errorf("REFRESH_INTERVAL must be positive, got %s", refreshInterval)
		}
	}

	cfg := &Config{
		DatabaseURL:       dbURL,
		JWTSecretKey:      jwtKey,
		ServerPort:        port,
		AdminUsername:     adminUser,
		AdminPasswordHash: adminHash,
		AttendantPassword: attendantPassword,
		RefreshInterval:   refreshInterval,
		R2AccountID:       r2AccountID,
		R2AccessKeyID:     r2AccessKeyID,
		R2SecretAccessKey: r2SecretAccessKey,
		R2BucketName:      r2BucketName,
		R2PublicBaseURL:   r2PublicBaseURL,
	}

	return cfg, nil
}
