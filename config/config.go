// Package config handles configuration for the notes backend: compiled-in
// defaults, an optional YAML file, then environment variables, in that order.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the notes backend.
//
// An empty DatabaseURL selects the in-memory repository; setting it switches
// the service to the Postgres-backed one.
type Config struct {
	AppName     string `yaml:"app_name"`
	Version     string `yaml:"version"`
	Addr        string `yaml:"addr"`
	DatabaseURL string `yaml:"database_url"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.AppName = "Notes Backend API"
	c.Version = "1.0.0"
	c.Addr = ":8080"
	c.DatabaseURL = ""
}

// Load builds a Config by applying defaults, then overlaying values from an
// optional YAML file named by NOTES_CONFIG, then environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := os.Getenv("NOTES_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	overlayEnv(cfg)
	return cfg, nil
}

func overlayEnv(cfg *Config) {
	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.AppName = v
	}
	if v := os.Getenv("APP_VERSION"); v != "" {
		cfg.Version = v
	}
	if v := os.Getenv("NOTES_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NOTES_DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
}
