package analytics

import (
	"fmt"
	"math"
	"testing"
)

func rrr(v float64) *float64 { return &v }

func rec(date, tm, symbol string, profit float64) Record {
	return Record{Date: date, Time: tm, Symbol: symbol, Profit: profit, Pips: profit / 10, IsWin: profit > 0}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleRecords() []Record {
	return []Record{
		rec("2024-06-03", "09:00:00", "EURUSD", 100),
		rec("2024-06-03", "14:30:00", "GBPUSD", -30),
		rec("2024-06-04", "10:00:00", "EURUSD", -50),
		rec("2024-06-05", "08:15:00", "XAUUSD", 200),
		rec("2024-06-09", "20:00:00", "GBPUSD", 0),
	}
}

func TestEmptyAggregationIsNeutral(t *testing.T) {
	var none []Record

	if got := WinRate(none); got != 0 {
		t.Errorf("WinRate(empty) = %v, want 0", got)
	}
	if got := EquityCurve(none); got == nil || len(got) != 0 {
		t.Errorf("EquityCurve(empty) = %#v, want empty slice", got)
	}
	if got := ProfitBySymbol(none); len(got) != 0 {
		t.Errorf("ProfitBySymbol(empty) = %#v", got)
	}
	if got := ProfitByWeekday(none); len(got) != 0 {
		t.Errorf("ProfitByWeekday(empty) = %#v", got)
	}
	if got := MonthlyPerformance(none, 12); len(got) != 0 {
		t.Errorf("MonthlyPerformance(empty) = %#v", got)
	}
	if BestTradingDay(none) != nil || WorstTradingDay(none) != nil {
		t.Error("Expected nil best/worst day for no trades")
	}

	m := ComputeRiskMetrics(none)
	if m != (RiskMetrics{}) {
		t.Errorf("ComputeRiskMetrics(empty) = %+v, want zero value", m)
	}

	d := BuildDashboard(none, 0)
	if d.Summary.TotalTrades != 0 || d.Summary.WinRate != 0 {
		t.Errorf("Unexpected summary %+v", d.Summary)
	}
}

func TestWinRate(t *testing.T) {
	got := WinRate(sampleRecords())
	if !almostEqual(got, 40) {
		t.Errorf("Expected 40%% win rate, got %v", got)
	}
}

func TestBestAndWorstTradingDay(t *testing.T) {
	records := sampleRecords()

	best := BestTradingDay(records)
	if best == nil || best.Date != "2024-06-05" || best.Profit != 200 || best.Count != 1 {
		t.Errorf("Unexpected best day %+v", best)
	}

	worst := WorstTradingDay(records)
	if worst == nil || worst.Date != "2024-06-04" || worst.Profit != -50 {
		t.Errorf("Unexpected worst day %+v", worst)
	}

	tied := []Record{rec("2024-01-02", "", "A", 50), rec("2024-01-01", "", "B", 50)}
	if got := BestTradingDay(tied); got.Date != "2024-01-01" {
		t.Errorf("Expected the earliest date to win a tie, got %s", got.Date)
	}
}

func TestProfitBySymbol(t *testing.T) {
	got := ProfitBySymbol(sampleRecords())

	want := []SymbolStat{
		{Symbol: "XAUUSD", Profit: 200, Count: 1},
		{Symbol: "EURUSD", Profit: 50, Count: 2},
		{Symbol: "GBPUSD", Profit: -30, Count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d symbols, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ProfitBySymbol[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestProfitByWeekday(t *testing.T) {
	got := ProfitByWeekday(append(sampleRecords(), Record{Date: "not-a-date", Profit: 999}))

	want := []WeekdayStat{
		{Weekday: "Monday", Profit: 70, Count: 2},
		{Weekday: "Tuesday", Profit: -50, Count: 1},
		{Weekday: "Wednesday", Profit: 200, Count: 1},
		{Weekday: "Sunday", Profit: 0, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d weekdays, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ProfitByWeekday[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEquityCurve(t *testing.T) {
	got := EquityCurve(sampleRecords())

	want := []EquityPoint{
		{Date: "2024-06-03", CumulativeEquity: 70},
		{Date: "2024-06-04", CumulativeEquity: 20},
		{Date: "2024-06-05", CumulativeEquity: 220},
		{Date: "2024-06-09", CumulativeEquity: 220},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EquityCurve[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEquityCurveSumsCentsExactly(t *testing.T) {
	records := []Record{
		rec("2024-01-01", "", "A", 0.1),
		rec("2024-01-01", "", "A", 0.2),
	}
	got := EquityCurve(records)
	if len(got) != 1 || got[0].CumulativeEquity != 0.3 {
		t.Errorf("Expected 0.3 equity, got %+v", got)
	}
}

func TestMonthlyPerformance(t *testing.T) {
	var records []Record
	for i := 0; i < 14; i++ {
		year, month := 2023+i/12, i%12+1
		date := fmt.Sprintf("%04d-%02d-15", year, month)
		records = append(records, rec(date, "", "EURUSD", float64(i+1)))
		records = append(records, rec(date, "", "EURUSD", -0.5))
	}

	got := MonthlyPerformance(records, 12)
	if len(got) != 12 {
		t.Fatalf("Expected 12 months, got %d", len(got))
	}
	if got[0].Month != "2024-02" {
		t.Errorf("Expected newest month first, got %s", got[0].Month)
	}
	if got[11].Month != "2023-03" {
		t.Errorf("Expected 2023-03 as oldest kept month, got %s", got[11].Month)
	}
	if got[0].Trades != 2 || got[0].Profit != 13.5 || got[0].WinRate != 50 {
		t.Errorf("Unexpected newest month %+v", got[0])
	}

	if def := MonthlyPerformance(records, 0); len(def) != DefaultMonthLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultMonthLimit, len(def))
	}
	if small := MonthlyPerformance(records, 3); len(small) != 3 {
		t.Errorf("Expected 3 months, got %d", len(small))
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	if s.TotalTrades != 5 || s.Wins != 2 || s.Losses != 2 || s.Breakeven != 1 {
		t.Errorf("Unexpected counts %+v", s)
	}
	if s.TotalProfit != 220 {
		t.Errorf("Expected total profit 220, got %v", s.TotalProfit)
	}
	if s.TotalPips != 22 {
		t.Errorf("Expected total pips 22, got %v", s.TotalPips)
	}
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard(sampleRecords(), 12)

	if d.BestDay == nil || d.BestDay.Date != "2024-06-05" {
		t.Errorf("Unexpected best day %+v", d.BestDay)
	}
	if len(d.EquityCurve) != 4 || len(d.ProfitBySymbol) != 3 || len(d.Monthly) != 1 {
		t.Errorf("Unexpected dashboard shape %+v", d)
	}
	if d.RiskMetrics.MaxDrawdown != 80 {
		t.Errorf("Expected max drawdown 80, got %v", d.RiskMetrics.MaxDrawdown)
	}
}
