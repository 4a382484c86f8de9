package repositories

import (
	"TradingJournal/internal/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new instance of TradeRepository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create adds a new Trade record to the database
func (r *TradeRepository) Create(ctx context.Context, trade *models.Trade) error {
	if trade == nil {
		return errors.New("trade cannot be nil")
	}
	return r.db.WithContext(ctx).Create(trade).Error
}

// FindByID retrieves a Trade record by its ID
func (r *TradeRepository) FindByID(ctx context.Context, id string) (*models.Trade, error) {
	if id == "" {
		return nil, errors.New("invalid id")
	}
	var trade models.Trade
	err := r.db.WithContext(ctx).First(&trade, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &trade, err
}

// Update modifies an existing Trade record
func (r *TradeRepository) Update(ctx context.Context, trade *models.Trade) error {
	if trade == nil {
		return errors.New("trade cannot be nil")
	}
	return r.db.WithContext(ctx).Save(trade).Error
}

// Delete removes a Trade record by ID. It reports whether a row was removed.
func (r *TradeRepository) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("invalid id")
	}
	res := r.db.WithContext(ctx).Delete(&models.Trade{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Find retrieves trades matching the filter ordered by date and time
func (r *TradeRepository) Find(ctx context.Context, filter models.TradeFilter) ([]models.Trade, error) {
	q := r.db.WithContext(ctx).Model(&models.Trade{})
	if filter.AccountID != 0 {
		q = q.Where("account_id = ?", filter.AccountID)
	}
	if filter.Symbol != "" {
		q = q.Where("symbol = ?", filter.Symbol)
	}
	if filter.From != nil {
		q = q.Where("trade_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("trade_date <= ?", *filter.To)
	}

	var trades []models.Trade
	err := q.Order("trade_date ASC").Order("trade_time ASC").Order("created_at ASC").Find(&trades).Error
	return trades, err
}

// GetTotalProfit sums the stored profit of all trades matching the filter
func (r *TradeRepository) GetTotalProfit(ctx context.Context, filter models.TradeFilter) (float64, error) {
	q := r.db.WithContext(ctx).Model(&models.Trade{})
	if filter.AccountID != 0 {
		q = q.Where("account_id = ?", filter.AccountID)
	}
	var total float64
	err := q.Select("COALESCE(SUM(profit), 0)").Scan(&total).Error
	return total, err
}
