package journal

import (
	"TradingJournal/internal/cache"
	"TradingJournal/internal/logger"
	"TradingJournal/internal/models"
	"TradingJournal/internal/services/analytics"
	"TradingJournal/internal/services/economics"
	"TradingJournal/internal/telemetry"
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type Service struct {
	trades   TradeStore
	accounts AccountStore
	calc     *economics.Calculator
	cache    DashboardCache
	log      *zap.Logger
	tracer   *telemetry.Tracer

	// gen counts trade writes. A dashboard is only cached when no write
	// happened while it was being built.
	mu  sync.Mutex
	gen uint64
}

// NewService wires the journal. cache and tracer may be nil.
func NewService(
	trades TradeStore,
	accounts AccountStore,
	calc *economics.Calculator,
	dashboards DashboardCache,
	log *zap.Logger,
	tracer *telemetry.Tracer,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if tracer == nil {
		tracer = telemetry.Disabled()
	}
	return &Service{
		trades:   trades,
		accounts: accounts,
		calc:     calc,
		cache:    dashboards,
		log:      log,
		tracer:   tracer,
	}
}

func (s *Service) Calculator() *economics.Calculator {
	return s.calc
}

// RecordTrade validates the input, prices it and stores it.
func (s *Service) RecordTrade(ctx context.Context, in TradeInput) (trade *models.Trade, err error) {
	ctx, span := s.tracer.Start(ctx, "journal.record_trade", attribute.String("symbol", in.Symbol))
	defer func() { telemetry.End(span, err) }()

	trade = &models.Trade{}
	if err := s.apply(ctx, trade, in); err != nil {
		return nil, err
	}
	if err := s.trades.Create(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}
	s.invalidate()

	logger.Trade(s.log, "trade_recorded", trade.ID, trade.Symbol, trade.Direction, trade.Profit, trade.Pips)
	return trade, nil
}

// UpdateTrade replaces the user-entered fields of a trade and reprices it.
func (s *Service) UpdateTrade(ctx context.Context, id string, in TradeInput) (trade *models.Trade, err error) {
	ctx, span := s.tracer.Start(ctx, "journal.update_trade", attribute.String("trade_id", id))
	defer func() { telemetry.End(span, err) }()

	trade, err = s.GetTrade(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, trade, in); err != nil {
		return nil, err
	}
	if err := s.trades.Update(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}
	s.invalidate()

	logger.Trade(s.log, "trade_updated", trade.ID, trade.Symbol, trade.Direction, trade.Profit, trade.Pips)
	return trade, nil
}

func (s *Service) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	trade, err := s.trades.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find trade: %w", err)
	}
	if trade == nil {
		return nil, ErrTradeNotFound
	}
	return trade, nil
}

func (s *Service) DeleteTrade(ctx context.Context, id string) error {
	deleted, err := s.trades.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	if !deleted {
		return ErrTradeNotFound
	}
	s.invalidate()
	s.log.Info("trade_deleted", zap.String("trade_id", id))
	return nil
}

func (s *Service) ListTrades(ctx context.Context, filter models.TradeFilter) ([]models.Trade, error) {
	trades, err := s.trades.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// Preview prices a trade without storing it.
func (s *Service) Preview(ctx context.Context, in economics.Input) (economics.Result, error) {
	if err := validateEconomics(in.Symbol, in.EntryPrice, in.ExitPrice, in.LotSize, in.StopLoss, in.TakeProfit); err != nil {
		return economics.Result{}, err
	}
	if in.Direction != economics.Buy && in.Direction != economics.Sell {
		d, err := economics.ParseDirection(string(in.Direction))
		if err != nil {
			return economics.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		in.Direction = d
	}
	return s.calc.CalculateProfit(ctx, in)
}

// PositionSize recommends a lot size. With an account id the account's
// equity replaces AccountBalance.
func (s *Service) PositionSize(ctx context.Context, in PositionSizeInput) (PositionSize, error) {
	if strings.TrimSpace(in.Symbol) == "" {
		return PositionSize{}, fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}
	if in.RiskPercentage <= 0 || in.RiskPercentage > 100 {
		return PositionSize{}, fmt.Errorf("%w: risk_percentage must be between 0-100, got %.2f", ErrInvalidInput, in.RiskPercentage)
	}
	if in.EntryPrice <= 0 || in.StopLoss <= 0 {
		return PositionSize{}, fmt.Errorf("%w: entry_price and stop_loss must be positive", ErrInvalidInput)
	}

	balance := in.AccountBalance
	if in.AccountID != 0 {
		summary, err := s.accountSummary(ctx, in.AccountID)
		if err != nil {
			return PositionSize{}, err
		}
		balance = summary.Equity
	}
	if balance <= 0 {
		return PositionSize{}, fmt.Errorf("%w: account balance must be positive", ErrInvalidInput)
	}

	lots := s.calc.CalculatePositionSize(in.Symbol, balance, in.RiskPercentage, in.EntryPrice, in.StopLoss)
	if !economics.IsUsableLotSize(lots) {
		s.log.Warn("unusable_lot_size",
			zap.String("symbol", in.Symbol),
			zap.Float64("entry_price", in.EntryPrice),
			zap.Float64("stop_loss", in.StopLoss),
			zap.Float64("lot_size", lots),
		)
		return PositionSize{}, ErrUnusableLotSize
	}

	return PositionSize{
		Symbol:         strings.ToUpper(strings.TrimSpace(in.Symbol)),
		AccountBalance: balance,
		RiskAmount:     economics.Round(balance*in.RiskPercentage/100, 2),
		PipDistance:    economics.Round(math.Abs(s.calc.PipsBetween(in.Symbol, in.EntryPrice, in.StopLoss)), 1),
		LotSize:        lots,
	}, nil
}

// Dashboard aggregates the trades matching filter. Results are cached until
// the next trade write.
func (s *Service) Dashboard(ctx context.Context, filter models.TradeFilter, monthLimit int) (dash *analytics.Dashboard, err error) {
	if monthLimit <= 0 {
		monthLimit = analytics.DefaultMonthLimit
	}
	key := cache.DashboardKey(filter, monthLimit)
	if s.cache != nil {
		if d, ok := s.cache.Get(key); ok {
			return d, nil
		}
	}
	gen := s.generation()

	ctx, span := s.tracer.Start(ctx, "journal.dashboard", attribute.String("cache_key", key))
	defer func() { telemetry.End(span, err) }()

	records, err := s.Records(ctx, filter)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("trades", len(records)))

	dash = analytics.BuildDashboard(records, monthLimit)
	s.store(key, dash, gen)
	return dash, nil
}

// Records loads the trades matching filter in aggregator form.
func (s *Service) Records(ctx context.Context, filter models.TradeFilter) ([]analytics.Record, error) {
	trades, err := s.ListTrades(ctx, filter)
	if err != nil {
		return nil, err
	}
	records := make([]analytics.Record, 0, len(trades))
	for i := range trades {
		records = append(records, ToRecord(&trades[i]))
	}
	return records, nil
}

func ToRecord(t *models.Trade) analytics.Record {
	return analytics.Record{
		Date:   t.TradeDate.Format(models.TradeDateLayout),
		Time:   t.TradeTime,
		Symbol: t.Symbol,
		Profit: t.Profit,
		Pips:   t.Pips,
		IsWin:  t.IsWin,
		RRR:    t.RRR,
	}
}

// apply validates in, copies it onto trade and fills the computed fields.
func (s *Service) apply(ctx context.Context, trade *models.Trade, in TradeInput) error {
	if err := validateEconomics(in.Symbol, in.EntryPrice, in.ExitPrice, in.LotSize, in.StopLoss, in.TakeProfit); err != nil {
		return err
	}
	direction, err := economics.ParseDirection(in.Direction)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	date, err := time.Parse(models.TradeDateLayout, in.TradeDate)
	if err != nil {
		return fmt.Errorf("%w: trade_date must be yyyy-mm-dd, got %q", ErrInvalidInput, in.TradeDate)
	}
	tod, err := parseTradeTime(in.TradeTime)
	if err != nil {
		return err
	}
	if in.AccountID != 0 {
		account, err := s.accounts.FindByID(ctx, in.AccountID)
		if err != nil {
			return fmt.Errorf("failed to find account: %w", err)
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if in.AccountCurrency == "" {
			in.AccountCurrency = account.Currency
		}
	}

	econ := economics.Input{
		Symbol:          in.Symbol,
		Direction:       direction,
		EntryPrice:      in.EntryPrice,
		ExitPrice:       in.ExitPrice,
		LotSize:         in.LotSize,
		StopLoss:        positiveOrNil(in.StopLoss),
		TakeProfit:      positiveOrNil(in.TakeProfit),
		AccountCurrency: in.AccountCurrency,
	}
	res, err := s.calc.CalculateProfit(ctx, econ)
	if err != nil {
		return fmt.Errorf("failed to price trade: %w", err)
	}
	if math.IsNaN(res.Profit) || math.IsInf(res.Profit, 0) {
		return fmt.Errorf("%w: trade produces a non-finite profit", ErrInvalidInput)
	}

	trade.AccountID = in.AccountID
	trade.Symbol = strings.ToUpper(strings.TrimSpace(in.Symbol))
	trade.Direction = string(direction)
	trade.EntryPrice = in.EntryPrice
	trade.ExitPrice = in.ExitPrice
	trade.LotSize = in.LotSize
	trade.StopLoss = econ.StopLoss
	trade.TakeProfit = econ.TakeProfit
	trade.TradeDate = date
	trade.TradeTime = tod
	trade.Notes = in.Notes

	trade.Profit = res.Profit
	trade.Pips = res.Pips
	trade.PipValue = res.PipValue
	trade.RRR = res.RRR
	trade.IsWin = res.IsWin
	return nil
}

func (s *Service) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.cache != nil {
		s.cache.Clear()
	}
}

func (s *Service) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// store caches dash unless a trade write happened since gen was taken.
func (s *Service) store(key string, dash *analytics.Dashboard, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil || s.gen != gen {
		return
	}
	s.cache.Set(key, dash)
}

func validateEconomics(symbol string, entry, exit, lot float64, stop, target *float64) error {
	switch {
	case strings.TrimSpace(symbol) == "":
		return fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	case !positive(entry):
		return fmt.Errorf("%w: entry_price must be positive", ErrInvalidInput)
	case !positive(exit):
		return fmt.Errorf("%w: exit_price must be positive", ErrInvalidInput)
	case !positive(lot):
		return fmt.Errorf("%w: lot_size must be positive", ErrInvalidInput)
	case stop != nil && (*stop < 0 || math.IsNaN(*stop) || math.IsInf(*stop, 0)):
		return fmt.Errorf("%w: stop_loss must not be negative", ErrInvalidInput)
	case target != nil && (*target < 0 || math.IsNaN(*target) || math.IsInf(*target, 0)):
		return fmt.Errorf("%w: take_profit must not be negative", ErrInvalidInput)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func parseTradeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "00:00:00", nil
	}
	for _, layout := range []string{models.TradeTimeLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(models.TradeTimeLayout), nil
		}
	}
	return "", fmt.Errorf("%w: trade_time must be hh:mm or hh:mm:ss, got %q", ErrInvalidInput, s)
}
