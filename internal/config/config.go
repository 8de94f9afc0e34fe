package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the translator storage service.
// Missing cloud identifiers are not fatal: the matching client is simply
// reported as not ready.
type Config struct {
	BucketName     string `envconfig:"BUCKET_NAME"`
	ProjectID      string `envconfig:"PROJECT_ID"`
	Port           int    `envconfig:"PORT" default:"8080"`
	VertexAIRegion string `envconfig:"VERTEX_AI_REGION" default:"us-central1"`
	SummaryModel   string `envconfig:"SUMMARY_MODEL" default:"gemini-2.0-flash-001"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	Version        string `envconfig:"SERVICE_VERSION" default:"3.0.0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if strings.TrimSpace(c.VertexAIRegion) == "" {
		return fmt.Errorf("VERTEX_AI_REGION cannot be empty")
	}
	if strings.TrimSpace(c.SummaryModel) == "" {
		return fmt.Errorf("SUMMARY_MODEL cannot be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LOG_LEVEL into a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse LOG_LEVEL=%q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
