package cache

import (
	"testing"
	"time"

	"TradingJournal/internal/models"
	"TradingJournal/internal/services/analytics"
)

func TestDashboardsSetGetClear(t *testing.T) {
	d, err := New(100, time.Minute)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer d.Close()

	dash := &analytics.Dashboard{Summary: analytics.Summary{TotalTrades: 3}}
	d.Set("a", dash)
	d.Wait()

	got, ok := d.Get("a")
	if !ok || got != dash {
		t.Fatalf("Expected the stored dashboard, got %v (found=%v)", got, ok)
	}

	d.Del("a")
	if _, ok := d.Get("a"); ok {
		t.Error("Expected entry to be deleted")
	}

	d.Set("b", dash)
	d.Wait()
	d.Clear()
	if _, ok := d.Get("b"); ok {
		t.Error("Expected cache to be empty after Clear")
	}
}

func TestDashboardsIgnoresNil(t *testing.T) {
	d, err := New(100, time.Minute)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer d.Close()

	d.Set("nil", nil)
	d.Wait()
	if _, ok := d.Get("nil"); ok {
		t.Error("Expected nil dashboard not to be stored")
	}
}

func TestDashboardKey(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a := DashboardKey(models.TradeFilter{AccountID: 1, Symbol: "EURUSD", From: &from}, 12)
	if a != "dashboard|1|EURUSD|2024-01-01|-|12" {
		t.Errorf("Unexpected key %q", a)
	}

	b := DashboardKey(models.TradeFilter{AccountID: 1, Symbol: "EURUSD", From: &from}, 6)
	if a == b {
		t.Error("Expected month limit to be part of the key")
	}
}
