package app

import (
	"TradingJournal/config"
	"TradingJournal/internal/cache"
	"TradingJournal/internal/instruments"
	"TradingJournal/internal/models"
	"TradingJournal/internal/repositories"
	"TradingJournal/internal/services/economics"
	"TradingJournal/internal/services/journal"
	"TradingJournal/internal/telemetry"
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const Version = "1.0.0"

// App holds the wired journal and everything that needs closing.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Journal *journal.Service
	Tracer  *telemetry.Tracer

	cache *cache.Dashboards
	db    *gorm.DB
}

// New builds the journal from cfg: storage, instrument table, cache and tracer.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	registry := instruments.Default()
	if cfg.InstrumentsFile != "" {
		r, err := instruments.LoadFile(cfg.InstrumentsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load instruments: %w", err)
		}
		registry = r
		log.Info("instruments_loaded", zap.String("file", cfg.InstrumentsFile), zap.Int("count", r.Len()))
	}

	a := &App{Config: cfg, Logger: log, Tracer: telemetry.Disabled()}

	var (
		trades   journal.TradeStore
		accounts journal.AccountStore
	)
	switch cfg.Storage {
	case config.StorageMemory:
		trades = repositories.NewMemoryTradeRepository()
		accounts = repositories.NewMemoryAccountRepository()
	default:
		db, err := setupDatabase(cfg.Database)
		if err != nil {
			return nil, err
		}
		a.db = db
		trades = repositories.NewTradeRepository(db)
		accounts = repositories.NewAccountRepository(db)
	}
	log.Info("storage_ready", zap.String("storage", cfg.Storage))

	c, err := cache.New(cfg.Cache.MaxCost, cfg.Cache.TTL)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	a.cache = c

	if cfg.Telemetry.Enabled {
		t, err := telemetry.New(ctx, Version, os.Stderr)
		if err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("failed to start tracing: %w", err)
		}
		a.Tracer = t
	}

	calc := economics.NewCalculator(registry, nil)
	a.Journal = journal.NewService(trades, accounts, calc, c, log, a.Tracer)
	return a, nil
}

func setupDatabase(dbConfig config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Account{}, &models.Trade{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// Close flushes spans and releases the cache and database.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Tracer != nil {
		if err := a.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if a.cache != nil {
		a.cache.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("database close: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}
