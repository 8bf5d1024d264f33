package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Core
	Debug bool

	// Server
	Port int

	// Content
	LessonsDir  string // empty means probe the default candidate paths
	StaticDir   string
	CatalogPath string // empty means use the built-in catalog
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Debug:       os.Getenv("DEBUG") == "true",
		Port:        8080,
		LessonsDir:  os.Getenv("LESSONS_DIR"),
		StaticDir:   getEnvOrDefault("STATIC_DIR", "static"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
