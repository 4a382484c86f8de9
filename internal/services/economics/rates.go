package economics

import (
	"context"

	"TradingJournal/internal/instruments"
)

// RateProvider supplies the factor that turns quote-currency amounts into USD.
type RateProvider interface {
	RateToUSD(ctx context.Context, symbol string, info instruments.Info, price float64) (float64, error)
}

// PriceImpliedRates derives the rate from the trade's own price: the price
// itself when USD is the quote, its inverse when USD is the base and 1 for
// everything else. Crosses without a USD leg are therefore not converted.
type PriceImpliedRates struct{}

func (PriceImpliedRates) RateToUSD(_ context.Context, _ string, info instruments.Info, price float64) (float64, error) {
	switch {
	case info.USDIsQuote:
		return price, nil
	case info.USDIsBase:
		return 1 / price, nil
	default:
		return 1, nil
	}
}

// FixedRates returns preset rates per symbol and defers to Fallback for the rest.
// CalculateProfit only asks for a rate on USD-base pairs (USDJPY, USDCAD); a
// rate listed for a cross or a USD-quote pair is never used.
type FixedRates struct {
	Rates    map[string]float64
	Fallback RateProvider
}

func (f FixedRates) RateToUSD(ctx context.Context, symbol string, info instruments.Info, price float64) (float64, error) {
	if r, ok := f.Rates[symbol]; ok {
		return r, nil
	}
	if f.Fallback != nil {
		return f.Fallback.RateToUSD(ctx, symbol, info, price)
	}
	return PriceImpliedRates{}.RateToUSD(ctx, symbol, info, price)
}
