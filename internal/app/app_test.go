package app

import (
	"TradingJournal/config"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageMemory,
		Cache:   config.CacheConfig{TTL: time.Minute, MaxCost: 100},
	}
}

func TestNewMemoryApp(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, memoryConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close(ctx)

	if a.Journal == nil {
		t.Fatal("Expected a journal service")
	}
	if a.Journal.Calculator().Registry().Len() == 0 {
		t.Error("Expected the built-in instrument table")
	}
}

func TestNewWithInstrumentsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instruments.yaml")
	yaml := "instruments:\n  MYIDX:\n    pip_decimal_place: 1\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	cfg := memoryConfig()
	cfg.InstrumentsFile = path

	ctx := context.Background()
	a, err := New(ctx, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close(ctx)

	if info, ok := a.Journal.Calculator().Registry().Lookup("MYIDX"); !ok || info.PipDecimalPlace != 1 {
		t.Errorf("Expected overlay entry, got %+v %v", info, ok)
	}
}

func TestNewMissingInstrumentsFile(t *testing.T) {
	cfg := memoryConfig()
	cfg.InstrumentsFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := New(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("Expected error for missing instruments file")
	}
}
