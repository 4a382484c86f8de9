package economics

import (
	"fmt"
	"strings"
)

// UnitsPerLot is the size of one standard lot in base units.
const UnitsPerLot = 100000

const DefaultAccountCurrency = "USD"

type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

// ParseDirection accepts Buy/Sell in any case, and long/short as aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "long":
		return Buy, nil
	case "sell", "short":
		return Sell, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Input is everything needed to price one trade.
type Input struct {
	Symbol          string    `json:"symbol"`
	Direction       Direction `json:"direction"`
	EntryPrice      float64   `json:"entry_price"`
	ExitPrice       float64   `json:"exit_price"`
	LotSize         float64   `json:"lot_size"`
	StopLoss        *float64  `json:"stop_loss,omitempty"`
	TakeProfit      *float64  `json:"take_profit,omitempty"`
	AccountCurrency string    `json:"account_currency,omitempty"`
}

// Result is the money-space view of a trade.
type Result struct {
	Profit   float64  `json:"profit"`
	Pips     float64  `json:"pips"`
	PipValue float64  `json:"pip_value"`
	IsWin    bool     `json:"is_win"`
	RRR      *float64 `json:"rrr"`
	Currency string   `json:"currency"`

	// Converted is false for cross pairs with no USD leg. Their profit is
	// left in the quote currency.
	Converted bool `json:"converted"`
}
