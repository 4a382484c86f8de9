package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"TradingJournal/internal/services/analytics"

	"github.com/shopspring/decimal"
)

// Day is one row of the daily report.
type Day struct {
	Date    string
	Trades  int
	Profit  float64
	Pips    float64
	Winners int
	Losers  int
	WinRate float64
	Symbols []string
}

// Daily groups records by date in ascending order.
func Daily(records []analytics.Record) []Day {
	type agg struct {
		profit, pips decimal.Decimal
		day          Day
		seen         map[string]bool
	}
	byDate := make(map[string]*agg)

	for _, r := range records {
		a, ok := byDate[r.Date]
		if !ok {
			a = &agg{day: Day{Date: r.Date}, seen: make(map[string]bool)}
			byDate[r.Date] = a
		}
		a.profit = a.profit.Add(decimal.NewFromFloat(r.Profit))
		a.pips = a.pips.Add(decimal.NewFromFloat(r.Pips))
		a.day.Trades++
		switch {
		case r.IsWin:
			a.day.Winners++
		case r.Profit < 0:
			a.day.Losers++
		}
		if !a.seen[r.Symbol] {
			a.seen[r.Symbol] = true
			a.day.Symbols = append(a.day.Symbols, r.Symbol)
		}
	}

	days := make([]Day, 0, len(byDate))
	for _, a := range byDate {
		d := a.day
		d.Profit = a.profit.InexactFloat64()
		d.Pips = a.pips.InexactFloat64()
		d.WinRate = float64(d.Winners) / float64(d.Trades) * 100
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// PrintTable writes days and a totals line as an aligned table.
func PrintTable(w io.Writer, days []Day, summary analytics.Summary, risk analytics.RiskMetrics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "DATE\tTRADES\tP&L\tPIPS\tWIN%%\tSYMBOLS\n")
	fmt.Fprintf(tw, "────\t──────\t───\t────\t────\t───────\n")
	for _, d := range days {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f\t%.0f%%\t%s\n",
			d.Date,
			d.Trades,
			formatPL(d.Profit),
			d.Pips,
			d.WinRate,
			strings.Join(d.Symbols, " "),
		)
	}
	fmt.Fprintf(tw, "────\t──────\t───\t────\t────\t───────\n")
	fmt.Fprintf(tw, "TOTAL\t%d\t%s\t%.1f\t%.0f%%\t%d days\n",
		summary.TotalTrades,
		formatPL(summary.TotalProfit),
		summary.TotalPips,
		summary.WinRate,
		len(days),
	)
	fmt.Fprintf(tw, "\nPROFIT FACTOR\t%.2f\n", risk.ProfitFactor)
	fmt.Fprintf(tw, "MAX DRAWDOWN\t%s\n", formatPL(-risk.MaxDrawdown))
	fmt.Fprintf(tw, "AVG RRR\t%.2f\n", risk.AverageRRR)

	return tw.Flush()
}

// ExportCSV writes one CSV row per day.
func ExportCSV(w io.Writer, days []Day) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "trades", "profit", "pips", "win_rate", "winners", "losers", "symbols"}); err != nil {
		return err
	}
	for _, d := range days {
		if err := cw.Write([]string{
			d.Date,
			fmt.Sprintf("%d", d.Trades),
			fmt.Sprintf("%.2f", d.Profit),
			fmt.Sprintf("%.1f", d.Pips),
			fmt.Sprintf("%.1f", d.WinRate),
			fmt.Sprintf("%d", d.Winners),
			fmt.Sprintf("%d", d.Losers),
			strings.Join(d.Symbols, ";"),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatPL(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+$%.2f", v)
	}
	return fmt.Sprintf("-$%.2f", -v)
}
