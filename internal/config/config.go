// Package config handles environment variable loading for the data
// directory, storage driver and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Storage driver names accepted by HIRELINK_STORAGE.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds all configuration values for the application.
type Config struct {
	// Directory holding the durable application collection
	DataDir string

	// Storage driver: "file" (default) or "sqlite"
	Storage string

	// Log level: debug, info, warn, error
	LogLevel string
}

// Load reads configuration from environment variables, after loading a
// .env file if one is present in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := os.Getenv("HIRELINK_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".hirelink")
	}

	driver := os.Getenv("HIRELINK_STORAGE")
	if driver == "" {
		driver = StorageFile
	}
	if driver != StorageFile && driver != StorageSQLite {
		return nil, fmt.Errorf("invalid HIRELINK_STORAGE %q: want %q or %q", driver, StorageFile, StorageSQLite)
	}

	level := os.Getenv("HIRELINK_LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return &Config{
		DataDir:  dataDir,
		Storage:  driver,
		LogLevel: level,
	}, nil
}
