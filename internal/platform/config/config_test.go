package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pathora/internal/platform/config"
)

func TestDefaultsWhenNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000/api" {
		t.Fatalf("unexpected default api url: %s", cfg.APIBaseURL)
	}
	if cfg.DBPath != filepath.Join(dir, "cache.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if cfg.LoadTimeout != 15*time.Second {
		t.Fatalf("unexpected load timeout: %v", cfg.LoadTimeout)
	}
}

func TestConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	payload := "api_base_url: http://file.example/api\nload_timeout_ms: 3000\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIBaseURL != "http://file.example/api" {
		t.Fatalf("file value should win over default, got %s", cfg.APIBaseURL)
	}
	if cfg.LoadTimeout != 3*time.Second {
		t.Fatalf("unexpected load timeout: %v", cfg.LoadTimeout)
	}

	t.Setenv("PATHORA_API_URL", "http://env.example/api/")
	cfg, err = config.New(dir)
	if err != nil {
		t.Fatalf("new config with env: %v", err)
	}
	if cfg.APIBaseURL != "http://env.example/api" {
		t.Fatalf("env value should win and be trimmed, got %s", cfg.APIBaseURL)
	}
}

func TestInvalidConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("malformed config file should fail")
	}
}
