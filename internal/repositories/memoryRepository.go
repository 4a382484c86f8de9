package repositories

import (
	"TradingJournal/internal/models"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryTradeRepository keeps trades in process memory. It backs
// STORAGE=memory and the service tests.
type MemoryTradeRepository struct {
	mu     sync.RWMutex
	trades map[string]models.Trade
}

func NewMemoryTradeRepository() *MemoryTradeRepository {
	return &MemoryTradeRepository{trades: make(map[string]models.Trade)}
}

func (r *MemoryTradeRepository) Create(_ context.Context, trade *models.Trade) error {
	if trade == nil {
		return errors.New("trade cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if trade.ID == "" {
		trade.ID = uuid.NewString()
	}
	if _, exists := r.trades[trade.ID]; exists {
		return errors.New("duplicate trade id")
	}
	now := time.Now()
	trade.CreatedAt, trade.UpdatedAt = now, now
	r.trades[trade.ID] = *trade
	return nil
}

func (r *MemoryTradeRepository) FindByID(_ context.Context, id string) (*models.Trade, error) {
	if id == "" {
		return nil, errors.New("invalid id")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trades[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *MemoryTradeRepository) Update(_ context.Context, trade *models.Trade) error {
	if trade == nil {
		return errors.New("trade cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trades[trade.ID]; !ok {
		return errors.New("trade not found")
	}
	trade.UpdatedAt = time.Now()
	r.trades[trade.ID] = *trade
	return nil
}

func (r *MemoryTradeRepository) Delete(_ context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("invalid id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trades[id]; !ok {
		return false, nil
	}
	delete(r.trades, id)
	return true, nil
}

func (r *MemoryTradeRepository) Find(_ context.Context, filter models.TradeFilter) ([]models.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trades := make([]models.Trade, 0, len(r.trades))
	for _, t := range r.trades {
		if filter.Matches(&t) {
			trades = append(trades, t)
		}
	}
	sort.Slice(trades, func(i, j int) bool {
		if !trades[i].TradeDate.Equal(trades[j].TradeDate) {
			return trades[i].TradeDate.Before(trades[j].TradeDate)
		}
		if trades[i].TradeTime != trades[j].TradeTime {
			return trades[i].TradeTime < trades[j].TradeTime
		}
		return trades[i].CreatedAt.Before(trades[j].CreatedAt)
	})
	return trades, nil
}

func (r *MemoryTradeRepository) GetTotalProfit(ctx context.Context, filter models.TradeFilter) (float64, error) {
	trades, err := r.Find(ctx, models.TradeFilter{AccountID: filter.AccountID})
	if err != nil {
		return 0, err
	}
	var total float64
	for _, t := range trades {
		total += t.Profit
	}
	return total, nil
}

type MemoryAccountRepository struct {
	mu       sync.RWMutex
	nextID   uint
	accounts map[uint]models.Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{accounts: make(map[uint]models.Account)}
}

func (r *MemoryAccountRepository) Create(_ context.Context, account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.Name == account.Name {
			return errors.New("duplicate account name")
		}
	}
	r.nextID++
	account.ID = r.nextID
	now := time.Now()
	account.CreatedAt, account.UpdatedAt = now, now
	r.accounts[account.ID] = *account
	return nil
}

func (r *MemoryAccountRepository) FindByID(_ context.Context, id uint) (*models.Account, error) {
	if id == 0 {
		return nil, errors.New("invalid ID")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *MemoryAccountRepository) FindAll(_ context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *MemoryAccountRepository) UpdateBalance(_ context.Context, id uint, balance float64) error {
	if id == 0 {
		return errors.New("invalid ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return errors.New("account not found")
	}
	a.Balance = balance
	a.UpdatedAt = time.Now()
	r.accounts[id] = a
	return nil
}
