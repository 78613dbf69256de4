package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
type Config struct {
	// DatabaseURL selects the Postgres snapshot store when set; otherwise
	// the snapshot is kept in SnapshotFile on local disk.
	DatabaseURL  string
	SnapshotFile string
	ServerPort   int

	// Cloudflare R2 export backup settings. All-or-nothing: leave the whole
	// block unset to keep exports local-only.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables, optionally loading a
// .env file first (useful for local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

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

	snapshotFile := os.Getenv("SNAPSHOT_FILE")
	if snapshotFile == "" {
		snapshotFile = "tournament.json"
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SnapshotFile:      snapshotFile,
		ServerPort:        port,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	if cfg.BackupConfigured() {
		if cfg.R2AccountID == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" || cfg.R2BucketName == "" {
			return nil, fmt.Errorf("incomplete R2 configuration: account id, key pair and bucket name are all required")
		}
	}

	return cfg, nil
}

// BackupConfigured reports whether any part of the R2 block is set.
func (c *Config) BackupConfigured() bool {
	return c.R2AccountID != "" || c.R2AccessKeyID != "" || c.R2SecretAccessKey != "" || c.R2BucketName != ""
}
