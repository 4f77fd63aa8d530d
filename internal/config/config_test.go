package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("STORAGE_DIR", "")
	t.Setenv("CLIENT_DB_PATH", "")
	t.Setenv("SESSION_KEY", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("REDIS_ADDR", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.StorageBackend != BackendFS {
		t.Fatalf("StorageBackend default expected %q, got %q", BackendFS, cfg.StorageBackend)
	}
	if cfg.SessionKey != "mintopia_user" {
		t.Fatalf("SessionKey default expected 'mintopia_user', got %q", cfg.SessionKey)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("RedisAddr default expected 'localhost:6379', got %q", cfg.RedisAddr)
	}
	if cfg.ClientDBPath != "" {
		t.Fatalf("ClientDBPath must stay empty without STORAGE_DIR, got %q", cfg.ClientDBPath)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("STORAGE_DIR", dir)
	t.Setenv("CLIENT_DB_PATH", "")
	t.Setenv("SESSION_KEY", "app_user")
	t.Setenv("BASE_URL", "127.0.0.1:9000")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DEBUG", "true")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.StorageBackend != BackendSQLite {
		t.Fatalf("StorageBackend expected %q, got %q", BackendSQLite, cfg.StorageBackend)
	}
	if cfg.ClientDBPath != filepath.Join(dir, "client.sqlite") {
		t.Fatalf("ClientDBPath expected under STORAGE_DIR, got %q", cfg.ClientDBPath)
	}
	if cfg.SessionKey != "app_user" || cfg.BaseURL != "127.0.0.1:9000" || cfg.RedisDB != 3 || !cfg.Debug {
		t.Fatalf("env values not applied: %+v", cfg)
	}
}

func TestNewConfig_InvalidValuesFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("STORAGE_BACKEND", "floppy")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("invalid BASE_URL must fallback to %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.StorageBackend != BackendFS {
		t.Fatalf("unknown backend must fallback to fs, got %q", cfg.StorageBackend)
	}
}
