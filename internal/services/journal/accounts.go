package journal

import (
	"TradingJournal/internal/models"
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

func (s *Service) CreateAccount(ctx context.Context, name, currency string, balance float64) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", ErrInvalidInput)
	}
	if balance < 0 || math.IsNaN(balance) || math.IsInf(balance, 0) {
		return nil, fmt.Errorf("%w: balance must be a non-negative number", ErrInvalidInput)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code, got %q", ErrInvalidInput, currency)
	}

	account := &models.Account{Name: name, Currency: currency, Balance: balance}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	s.log.Info("account_created",
		zap.Uint("account_id", account.ID),
		zap.String("name", account.Name),
		zap.Float64("balance", account.Balance),
	)
	return account, nil
}

// ListAccounts returns every account with its current equity.
func (s *Service) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	accounts, err := s.accounts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		profit, err := s.trades.GetTotalProfit(ctx, models.TradeFilter{AccountID: a.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to total profit for account %d: %w", a.ID, err)
		}
		summaries = append(summaries, AccountSummary{Account: a, Equity: equity(a.Balance, profit)})
	}
	return summaries, nil
}

func (s *Service) GetAccount(ctx context.Context, id uint) (*AccountSummary, error) {
	return s.accountSummary(ctx, id)
}

func (s *Service) UpdateAccountBalance(ctx context.Context, id uint, balance float64) error {
	if balance < 0 || math.IsNaN(balance) || math.IsInf(balance, 0) {
		return fmt.Errorf("%w: balance must be a non-negative number", ErrInvalidInput)
	}
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if err := s.accounts.UpdateBalance(ctx, id, balance); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	s.log.Info("account_balance_updated", zap.Uint("account_id", id), zap.Float64("balance", balance))
	return nil
}

func (s *Service) accountSummary(ctx context.Context, id uint) (*AccountSummary, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	profit, err := s.trades.GetTotalProfit(ctx, models.TradeFilter{AccountID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to total profit: %w", err)
	}
	return &AccountSummary{Account: *account, Equity: equity(account.Balance, profit)}, nil
}

func equity(balance, profit float64) float64 {
	return math.Round((balance+profit)*100) / 100
}
