package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// ComputeRiskMetrics derives the risk view of a trade set. All fields are 0
// for an empty set. ProfitFactor is 0 when there are no losing trades.
func ComputeRiskMetrics(records []Record) RiskMetrics {
	var m RiskMetrics
	if len(records) == 0 {
		return m
	}

	var (
		rrrSum              float64
		rrrCount            int
		grossWin, grossLoss decimal.Decimal
		wins, losses        int
	)

	maxProfit, minProfit := records[0].Profit, records[0].Profit
	for _, r := range records {
		if r.RRR != nil {
			rrrSum += *r.RRR
			rrrCount++
		}
		if r.Profit > maxProfit {
			maxProfit = r.Profit
		}
		if r.Profit < minProfit {
			minProfit = r.Profit
		}
		switch {
		case r.Profit > 0:
			grossWin = grossWin.Add(decimal.NewFromFloat(r.Profit))
			wins++
		case r.Profit < 0:
			grossLoss = grossLoss.Add(decimal.NewFromFloat(-r.Profit))
			losses++
		}
	}

	if rrrCount > 0 {
		m.AverageRRR = rrrSum / float64(rrrCount)
	}
	m.LargestWin = maxProfit
	m.LargestLoss = math.Abs(minProfit)
	if wins > 0 {
		m.AverageWin = grossWin.InexactFloat64() / float64(wins)
	}
	if losses > 0 {
		m.AverageLoss = grossLoss.InexactFloat64() / float64(losses)
		m.ProfitFactor = grossWin.InexactFloat64() / grossLoss.InexactFloat64()
	}
	m.MaxDrawdown = MaxDrawdown(records)
	return m
}

// MaxDrawdown walks the cumulative profit of the trades ordered by date and
// time and returns the largest fall from a running peak. The peak starts at
// the first cumulative value, so a series that only rises has no drawdown.
func MaxDrawdown(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}

	ordered := make([]Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].Time < ordered[j].Time
	})

	cumulative := decimal.Zero
	var peak, maxDD decimal.Decimal
	for i, r := range ordered {
		cumulative = cumulative.Add(decimal.NewFromFloat(r.Profit))
		if i == 0 || cumulative.GreaterThan(peak) {
			peak = cumulative
		}
		if dd := peak.Sub(cumulative); dd.GreaterThan(maxDD) {
			maxDD = dd
		}
	}
	return maxDD.InexactFloat64()
}
