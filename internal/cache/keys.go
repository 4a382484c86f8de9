package cache

import (
	"fmt"
	"time"

	"TradingJournal/internal/models"
)

// DashboardKey identifies a dashboard query. Nil dates render as "-".
func DashboardKey(f models.TradeFilter, monthLimit int) string {
	return fmt.Sprintf("dashboard|%d|%s|%s|%s|%d",
		f.AccountID, f.Symbol, day(f.From), day(f.To), monthLimit)
}

func day(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(models.TradeDateLayout)
}
