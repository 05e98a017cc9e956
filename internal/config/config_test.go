package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HIRELINK_DATA_DIR", "")
	t.Setenv("HIRELINK_STORAGE", "")
	t.Setenv("HIRELINK_LOG_LEVEL", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(cfg.DataDir) != ".hirelink" {
		t.Errorf("expected data dir under $HOME/.hirelink, got %s", cfg.DataDir)
	}
	if cfg.Storage != StorageFile {
		t.Errorf("expected storage %q, got %q", StorageFile, cfg.Storage)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("HIRELINK_DATA_DIR", "/var/lib/hirelink")
	t.Setenv("HIRELINK_STORAGE", "sqlite")
	t.Setenv("HIRELINK_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "/var/lib/hirelink" {
		t.Errorf("expected DataDir from env, got %s", cfg.DataDir)
	}
	if cfg.Storage != StorageSQLite {
		t.Errorf("expected sqlite storage, got %s", cfg.Storage)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestLoad_InvalidStorageDriver(t *testing.T) {
	t.Setenv("HIRELINK_STORAGE", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}
