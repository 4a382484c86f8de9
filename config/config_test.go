package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage != StoragePostgres {
		t.Errorf("Expected postgres storage, got %s", cfg.Storage)
	}
	if cfg.Database.Port != 5432 || cfg.Database.DBName != "trading_journal" {
		t.Errorf("Unexpected database defaults %+v", cfg.Database)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Cache.TTL != 60*time.Second {
		t.Errorf("Expected 60s cache TTL, got %v", cfg.Cache.TTL)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Expected tracing to be off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE", "memory")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("INSTRUMENTS_FILE", "/etc/journal/instruments.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage != StorageMemory || cfg.Server.Port != "9090" || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.Log.Level != "DEBUG" || !cfg.Telemetry.Enabled {
		t.Errorf("Unexpected log/tracing config %+v %+v", cfg.Log, cfg.Telemetry)
	}
	if cfg.InstrumentsFile != "/etc/journal/instruments.yaml" {
		t.Errorf("Unexpected instruments file %q", cfg.InstrumentsFile)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Storage: "mysql", Cache: CacheConfig{MaxCost: 1}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown storage")
	}

	cfg = Config{Storage: StoragePostgres, Cache: CacheConfig{MaxCost: 1}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing DB host")
	}

	cfg = Config{Storage: StorageMemory}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero cache cost")
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", DBName: "n", SSLMode: "require"}
	want := "host=h port=5433 user=u password=p dbname=n sslmode=require"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
