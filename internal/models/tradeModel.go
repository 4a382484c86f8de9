package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trade struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	AccountID uint   `gorm:"index"`
	Symbol    string `gorm:"index;not null"`
	Direction string `gorm:"not null"`

	EntryPrice float64  `gorm:"type:decimal(20,8);not null"`
	ExitPrice  float64  `gorm:"type:decimal(20,8);not null"`
	LotSize    float64  `gorm:"type:decimal(20,8);not null"`
	StopLoss   *float64 `gorm:"type:decimal(20,8)"`
	TakeProfit *float64 `gorm:"type:decimal(20,8)"`

	TradeDate time.Time `gorm:"type:date;index;not null"`
	TradeTime string    `gorm:"type:varchar(8)"`
	Notes     string    `gorm:"type:text"`

	// Computed by the economics calculator on create and update.
	Profit   float64  `gorm:"type:decimal(20,2)"`
	Pips     float64  `gorm:"type:decimal(20,1)"`
	PipValue float64  `gorm:"type:decimal(20,2)"`
	RRR      *float64 `gorm:"column:rrr;type:decimal(10,1)"`
	IsWin    bool     `gorm:"index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

const (
	TradeDateLayout = "2006-01-02"
	TradeTimeLayout = "15:04:05"
)

// BeforeCreate assigns a UUID when the caller did not.
func (t *Trade) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TradeFilter narrows a trade query. Zero fields do not filter.
type TradeFilter struct {
	AccountID uint
	Symbol    string
	From      *time.Time
	To        *time.Time
}

// Matches reports whether t passes the filter. Used by stores that filter in memory.
func (f TradeFilter) Matches(t *Trade) bool {
	if f.AccountID != 0 && t.AccountID != f.AccountID {
		return false
	}
	if f.Symbol != "" && t.Symbol != f.Symbol {
		return false
	}
	if f.From != nil && t.TradeDate.Before(*f.From) {
		return false
	}
	if f.To != nil && t.TradeDate.After(*f.To) {
		return false
	}
	return true
}
