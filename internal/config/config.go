// Package config loads padctl settings from PAD_* and LOG_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vdparikh/pad/alphabet"
)

// Config holds every setting padctl reads from the environment.
type Config struct {
	Pad     PadConfig
	Hash    HashConfig
	Seal    SealConfig
	Logging LoggingConfig
}

// PadConfig selects the padding key and working alphabet.
type PadConfig struct {
	Base       int
	Key        string
	KeysetPath string
}

// HashConfig configures the legacy password hash driver.
type HashConfig struct {
	SiteSalt   string
	Complexity int
}

// SealConfig holds the passphrase used by seal and open.
type SealConfig struct {
	Passphrase string
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string
	Format      string
	Development bool
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Pad: PadConfig{
			Base:       getEnvAsInt("PAD_BASE", alphabet.DefaultBase),
			Key:        getEnv("PAD_KEY", ""),
			KeysetPath: getEnv("PAD_KEYSET", ""),
		},
		Hash: HashConfig{
			SiteSalt:   getEnv("PAD_SITE_SALT", ""),
			Complexity: getEnvAsInt("PAD_HASH_COMPLEXITY", 5),
		},
		Seal: SealConfig{
			Passphrase: getEnv("PAD_SEAL_PASSPHRASE", ""),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Format:      getEnv("LOG_FORMAT", "json"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no command could run with.
func (c *Config) Validate() error {
	if _, err := alphabet.Resolve(c.Pad.Base); err != nil {
		return fmt.Errorf("PAD_BASE: %w", err)
	}
	if c.Hash.Complexity < 1 {
		return fmt.Errorf("PAD_HASH_COMPLEXITY must be at least 1, got %d", c.Hash.Complexity)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
