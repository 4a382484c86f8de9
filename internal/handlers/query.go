package handlers

import (
	"TradingJournal/internal/models"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func parseLimit(v string, def, min, max int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min || n > max {
		return def
	}
	return n
}

// parseFilter reads account_id, symbol, from and to.
func parseFilter(c *gin.Context) (models.TradeFilter, error) {
	var f models.TradeFilter

	if raw := strings.TrimSpace(c.Query("account_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return f, fmt.Errorf("invalid account_id %q", raw)
		}
		f.AccountID = uint(id)
	}
	f.Symbol = strings.ToUpper(strings.TrimSpace(c.Query("symbol")))

	var err error
	if f.From, err = parseDay(c.Query("from")); err != nil {
		return f, fmt.Errorf("invalid from: %w", err)
	}
	if f.To, err = parseDay(c.Query("to")); err != nil {
		return f, fmt.Errorf("invalid to: %w", err)
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, fmt.Errorf("to is before from")
	}
	return f, nil
}

func parseDay(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(models.TradeDateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("expected yyyy-mm-dd, got %q", raw)
	}
	return &t, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return uint(id), nil
}
