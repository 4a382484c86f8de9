package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// WinRate is the share of winning trades in percent, 0 for no trades.
func WinRate(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	wins := 0
	for _, r := range records {
		if r.IsWin {
			wins++
		}
	}
	return float64(wins) / float64(len(records)) * 100
}

// BestTradingDay returns the date with the highest net profit, nil if there
// are no trades. On ties the earliest date wins.
func BestTradingDay(records []Record) *DayStat {
	return pickDay(records, func(candidate, best float64) bool { return candidate > best })
}

// WorstTradingDay returns the date with the lowest net profit.
func WorstTradingDay(records []Record) *DayStat {
	return pickDay(records, func(candidate, worst float64) bool { return candidate < worst })
}

func pickDay(records []Record, better func(candidate, current float64) bool) *DayStat {
	days := DailyProfit(records)
	if len(days) == 0 {
		return nil
	}
	pick := days[0]
	for _, d := range days[1:] {
		if better(d.Profit, pick.Profit) {
			pick = d
		}
	}
	return &pick
}

// ProfitBySymbol sums profit per symbol, highest first.
func ProfitBySymbol(records []Record) []SymbolStat {
	type agg struct {
		profit decimal.Decimal
		count  int
	}
	bySymbol := make(map[string]*agg)
	var order []string

	for _, r := range records {
		a, ok := bySymbol[r.Symbol]
		if !ok {
			a = &agg{}
			bySymbol[r.Symbol] = a
			order = append(order, r.Symbol)
		}
		a.profit = a.profit.Add(decimal.NewFromFloat(r.Profit))
		a.count++
	}

	stats := make([]SymbolStat, 0, len(order))
	for _, sym := range order {
		a := bySymbol[sym]
		stats = append(stats, SymbolStat{Symbol: sym, Profit: a.profit.InexactFloat64(), Count: a.count})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})
	return stats
}

// ProfitByWeekday sums profit per day of the week, Monday first. Weekdays
// without trades are left out, as are records with an unparseable date.
func ProfitByWeekday(records []Record) []WeekdayStat {
	var profit [7]decimal.Decimal
	var count [7]int

	for _, r := range records {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			continue
		}
		i := (int(d.Weekday()) + 6) % 7
		profit[i] = profit[i].Add(decimal.NewFromFloat(r.Profit))
		count[i]++
	}

	stats := make([]WeekdayStat, 0, 7)
	for i := 0; i < 7; i++ {
		if count[i] == 0 {
			continue
		}
		stats = append(stats, WeekdayStat{
			Weekday: time.Weekday((i + 1) % 7).String(),
			Profit:  profit[i].InexactFloat64(),
			Count:   count[i],
		})
	}
	return stats
}

// EquityCurve returns one point per trading day with the running total of
// net profit up to and including that day.
func EquityCurve(records []Record) []EquityPoint {
	days := DailyProfit(records)
	points := make([]EquityPoint, 0, len(days))

	equity := decimal.Zero
	for _, d := range days {
		equity = equity.Add(decimal.NewFromFloat(d.Profit))
		points = append(points, EquityPoint{Date: d.Date, CumulativeEquity: equity.InexactFloat64()})
	}
	return points
}

// MonthlyPerformance rolls trades up per calendar month, newest month first,
// keeping at most limit months. limit <= 0 means DefaultMonthLimit.
func MonthlyPerformance(records []Record, limit int) []MonthStat {
	if limit <= 0 {
		limit = DefaultMonthLimit
	}

	type agg struct {
		profit decimal.Decimal
		trades int
		wins   int
	}
	byMonth := make(map[string]*agg)
	for _, r := range records {
		if len(r.Date) < 7 {
			continue
		}
		month := r.Date[:7]
		a, ok := byMonth[month]
		if !ok {
			a = &agg{}
			byMonth[month] = a
		}
		a.profit = a.profit.Add(decimal.NewFromFloat(r.Profit))
		a.trades++
		if r.IsWin {
			a.wins++
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	if len(months) > limit {
		months = months[:limit]
	}

	stats := make([]MonthStat, 0, len(months))
	for _, m := range months {
		a := byMonth[m]
		stats = append(stats, MonthStat{
			Month:   m,
			Profit:  a.profit.InexactFloat64(),
			Trades:  a.trades,
			WinRate: float64(a.wins) / float64(a.trades) * 100,
		})
	}
	return stats
}

// Summarize returns headline totals.
func Summarize(records []Record) Summary {
	s := Summary{TotalTrades: len(records), WinRate: WinRate(records)}

	profit, pips := decimal.Zero, decimal.Zero
	for _, r := range records {
		profit = profit.Add(decimal.NewFromFloat(r.Profit))
		pips = pips.Add(decimal.NewFromFloat(r.Pips))
		switch {
		case r.IsWin:
			s.Wins++
		case r.Profit < 0:
			s.Losses++
		default:
			s.Breakeven++
		}
	}
	s.TotalProfit = profit.InexactFloat64()
	s.TotalPips = pips.InexactFloat64()
	return s
}

// BuildDashboard computes every view over the same records.
func BuildDashboard(records []Record, monthLimit int) *Dashboard {
	return &Dashboard{
		Summary:        Summarize(records),
		BestDay:        BestTradingDay(records),
		WorstDay:       WorstTradingDay(records),
		EquityCurve:    EquityCurve(records),
		ProfitBySymbol: ProfitBySymbol(records),
		ProfitByDay:    ProfitByWeekday(records),
		Monthly:        MonthlyPerformance(records, monthLimit),
		RiskMetrics:    ComputeRiskMetrics(records),
	}
}

// DailyProfit sums profit per date in ascending date order.
func DailyProfit(records []Record) []DayStat {
	type agg struct {
		profit decimal.Decimal
		count  int
	}
	byDate := make(map[string]*agg)
	for _, r := range records {
		a, ok := byDate[r.Date]
		if !ok {
			a = &agg{}
			byDate[r.Date] = a
		}
		a.profit = a.profit.Add(decimal.NewFromFloat(r.Profit))
		a.count++
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]DayStat, 0, len(dates))
	for _, d := range dates {
		days = append(days, DayStat{Date: d, Profit: byDate[d].profit.InexactFloat64(), Count: byDate[d].count})
	}
	return days
}
