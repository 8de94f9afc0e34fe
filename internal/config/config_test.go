package config

import (
	"log/slog"
	"os"
	"testing"
)

// unsetEnv clears a variable for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BUCKET_NAME", "docs-bucket")
	t.Setenv("PROJECT_ID", "demo-project")
	unsetEnv(t, "PORT", "LOG_LEVEL", "VERTEX_AI_REGION", "SUMMARY_MODEL", "SERVICE_VERSION")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.VertexAIRegion != "us-central1" {
		t.Fatalf("unexpected region: %q", cfg.VertexAIRegion)
	}
	if cfg.BucketName == "" {
		t.Fatalf("expected bucket to be configured")
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Addr())
	}
}

func TestLoadWithoutBucketIsNotFatal(t *testing.T) {
	unsetEnv(t, "BUCKET_NAME", "PROJECT_ID", "PORT", "LOG_LEVEL", "VERTEX_AI_REGION", "SUMMARY_MODEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BucketName != "" {
		t.Fatalf("expected bucket to be unconfigured, got %q", cfg.BucketName)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "empty region", mutate: func(c *Config) { c.VertexAIRegion = " " }, wantErr: true},
		{name: "empty model", mutate: func(c *Config) { c.SummaryModel = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Port:           8080,
				VertexAIRegion: "us-central1",
				SummaryModel:   "gemini-2.0-flash-001",
				LogLevel:       "info",
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	level, err := cfg.SlogLevel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", level)
	}
}
