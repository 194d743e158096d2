package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected default env to be dev, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if !cfg.DB.IsMemory() {
		t.Fatalf("expected memory driver by default, got %q", cfg.DB.Driver)
	}
	if cfg.Media.MaxUploadBytes != 5*1024*1024 {
		t.Fatalf("unexpected max upload bytes %d", cfg.Media.MaxUploadBytes)
	}
	if cfg.Media.MaxFiles != 10 {
		t.Fatalf("unexpected max files %d", cfg.Media.MaxFiles)
	}
	if !cfg.Catalog.SeedSampleData {
		t.Fatal("expected sample data seeding on by default")
	}
}

func TestLoad_SQLiteDriver(t *testing.T) {
	t.Setenv("DEALER_DB_DRIVER", "sqlite")
	t.Setenv("DEALER_DB_SQLITE_PATH", "/tmp/cars.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.IsMemory() {
		t.Fatal("expected sqlite driver")
	}
	if cfg.DB.SQLitePath != "/tmp/cars.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.DB.SQLitePath)
	}
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DEALER_DB_DRIVER", "mongodb")

	if _, err := Load(); err == nil {
		t.Fatal("expected unsupported driver to return an error")
	}
}
