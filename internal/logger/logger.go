package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. format is "json" (production encoder) or
// "console"; level is one of DEBUG, INFO, WARN, ERROR.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console", "text":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: must be json or console", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = lvl > zapcore.DebugLevel

	return cfg.Build()
}

// Trade logs a recorded or updated trade with its computed economics.
func Trade(log *zap.Logger, event, id, symbol, direction string, profit, pips float64) {
	log.Info(event,
		zap.String("type", "TRADE"),
		zap.String("trade_id", id),
		zap.String("symbol", symbol),
		zap.String("direction", direction),
		zap.Float64("profit", profit),
		zap.Float64("pips", pips),
	)
}
