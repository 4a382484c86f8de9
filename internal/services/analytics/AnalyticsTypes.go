package analytics

// Record is one priced trade as the aggregator sees it.
type Record struct {
	Date   string   `json:"date"` // 2006-01-02
	Time   string   `json:"time"` // 15:04:05, orders trades within a day
	Symbol string   `json:"symbol"`
	Profit float64  `json:"profit"`
	Pips   float64  `json:"pips"`
	IsWin  bool     `json:"is_win"`
	RRR    *float64 `json:"rrr,omitempty"`
}

type DayStat struct {
	Date   string  `json:"date"`
	Profit float64 `json:"profit"`
	Count  int     `json:"count"`
}

type SymbolStat struct {
	Symbol string  `json:"symbol"`
	Profit float64 `json:"profit"`
	Count  int     `json:"count"`
}

type WeekdayStat struct {
	Weekday string  `json:"weekday"`
	Profit  float64 `json:"profit"`
	Count   int     `json:"count"`
}

type EquityPoint struct {
	Date             string  `json:"date"`
	CumulativeEquity float64 `json:"cumulative_equity"`
}

type MonthStat struct {
	Month   string  `json:"month"` // 2006-01
	Profit  float64 `json:"profit"`
	Trades  int     `json:"trades"`
	WinRate float64 `json:"win_rate"`
}

type RiskMetrics struct {
	AverageRRR   float64 `json:"average_rrr"`
	LargestWin   float64 `json:"largest_win"`
	LargestLoss  float64 `json:"largest_loss"`
	AverageWin   float64 `json:"average_win"`
	AverageLoss  float64 `json:"average_loss"`
	ProfitFactor float64 `json:"profit_factor"`
	MaxDrawdown  float64 `json:"max_drawdown"`
}

type Summary struct {
	TotalTrades int     `json:"total_trades"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Breakeven   int     `json:"breakeven"`
	TotalProfit float64 `json:"total_profit"`
	TotalPips   float64 `json:"total_pips"`
	WinRate     float64 `json:"win_rate"`
}

// Dashboard bundles every view for one trade set.
type Dashboard struct {
	Summary        Summary       `json:"summary"`
	BestDay        *DayStat      `json:"best_day"`
	WorstDay       *DayStat      `json:"worst_day"`
	EquityCurve    []EquityPoint `json:"equity_curve"`
	ProfitBySymbol []SymbolStat  `json:"profit_by_symbol"`
	ProfitByDay    []WeekdayStat `json:"profit_by_day"`
	Monthly        []MonthStat   `json:"monthly"`
	RiskMetrics    RiskMetrics   `json:"risk_metrics"`
}

const DefaultMonthLimit = 12
