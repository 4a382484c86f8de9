package journal

import (
	"TradingJournal/internal/models"
	"TradingJournal/internal/services/analytics"
	"context"
	"errors"
)

var (
	ErrTradeNotFound   = errors.New("trade not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnusableLotSize = errors.New("lot size is not usable: entry and stop are too close")
)

// TradeStore persists trades. Implemented by the gorm and memory repositories.
type TradeStore interface {
	Create(ctx context.Context, trade *models.Trade) error
	FindByID(ctx context.Context, id string) (*models.Trade, error)
	Update(ctx context.Context, trade *models.Trade) error
	Delete(ctx context.Context, id string) (bool, error)
	Find(ctx context.Context, filter models.TradeFilter) ([]models.Trade, error)
	GetTotalProfit(ctx context.Context, filter models.TradeFilter) (float64, error)
}

type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindAll(ctx context.Context) ([]models.Account, error)
	UpdateBalance(ctx context.Context, id uint, balance float64) error
}

// DashboardCache holds computed dashboards between trade writes.
type DashboardCache interface {
	Get(key string) (*analytics.Dashboard, bool)
	Set(key string, dash *analytics.Dashboard)
	Clear()
}

// TradeInput is a trade as entered by the user.
type TradeInput struct {
	AccountID       uint     `json:"account_id"`
	Symbol          string   `json:"symbol"`
	Direction       string   `json:"direction"`
	EntryPrice      float64  `json:"entry_price"`
	ExitPrice       float64  `json:"exit_price"`
	LotSize         float64  `json:"lot_size"`
	StopLoss        *float64 `json:"stop_loss"`
	TakeProfit      *float64 `json:"take_profit"`
	TradeDate       string   `json:"trade_date"` // 2006-01-02
	TradeTime       string   `json:"trade_time"` // 15:04 or 15:04:05
	Notes           string   `json:"notes"`
	AccountCurrency string   `json:"account_currency"`
}

type PositionSizeInput struct {
	Symbol         string  `json:"symbol"`
	AccountID      uint    `json:"account_id"`
	AccountBalance float64 `json:"account_balance"`
	RiskPercentage float64 `json:"risk_percentage"`
	EntryPrice     float64 `json:"entry_price"`
	StopLoss       float64 `json:"stop_loss"`
}

type PositionSize struct {
	Symbol         string  `json:"symbol"`
	AccountBalance float64 `json:"account_balance"`
	RiskAmount     float64 `json:"risk_amount"`
	PipDistance    float64 `json:"pip_distance"`
	LotSize        float64 `json:"lot_size"`
}

// AccountSummary is an account with its balance moved by all recorded trades.
type AccountSummary struct {
	models.Account
	Equity float64
}
