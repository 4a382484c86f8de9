package economics

import (
	"context"
	"fmt"
	"math"
	"strings"

	"TradingJournal/internal/instruments"

	"github.com/shopspring/decimal"
)

type Calculator struct {
	registry *instruments.Registry
	rates    RateProvider
}

// NewCalculator creates a calculator. A nil registry means the built-in one,
// nil rates means PriceImpliedRates.
func NewCalculator(registry *instruments.Registry, rates RateProvider) *Calculator {
	if registry == nil {
		registry = instruments.Default()
	}
	if rates == nil {
		rates = PriceImpliedRates{}
	}
	return &Calculator{registry: registry, rates: rates}
}

func (c *Calculator) Registry() *instruments.Registry {
	return c.registry
}

// PipValue is the price distance of one pip: 10^-pipDecimalPlace.
func (c *Calculator) PipValue(symbol string) float64 {
	return math.Pow10(-c.registry.Info(symbol).PipDecimalPlace)
}

// PipsBetween measures exit-entry in pips. The sign follows price, not trade direction.
func (c *Calculator) PipsBetween(symbol string, entryPrice, exitPrice float64) float64 {
	return (exitPrice - entryPrice) / c.PipValue(symbol)
}

func (c *Calculator) ConversionRateToUSD(ctx context.Context, symbol string, currentPrice float64) (float64, error) {
	symbol = normalizeSymbol(symbol)
	return c.rates.RateToUSD(ctx, symbol, c.registry.Info(symbol), currentPrice)
}

// CalculateProfit prices a closed trade. Profit is converted with the exit
// price only when USD is the base currency; USD-quoted instruments already
// produce USD and crosses are left unconverted.
func (c *Calculator) CalculateProfit(ctx context.Context, in Input) (Result, error) {
	symbol := normalizeSymbol(in.Symbol)
	info := c.registry.Info(symbol)
	pipValue := c.PipValue(symbol)

	pips := c.PipsBetween(symbol, in.EntryPrice, in.ExitPrice)
	if in.Direction == Sell {
		pips = -pips
	}

	units := in.LotSize * UnitsPerLot
	profit := pips * pipValue * units
	pipMoney := pipValue * units

	converted := info.USDIsQuote
	if info.USDIsBase {
		rate, err := c.ConversionRateToUSD(ctx, symbol, in.ExitPrice)
		if err != nil {
			return Result{}, fmt.Errorf("conversion rate for %s: %w", symbol, err)
		}
		profit *= rate
		pipMoney *= rate
		converted = true
	}

	currency := in.AccountCurrency
	if currency == "" {
		currency = DefaultAccountCurrency
	}

	profit = Round(profit, 2)
	return Result{
		Profit:    profit,
		Pips:      Round(pips, 1),
		PipValue:  Round(pipMoney, 2),
		IsWin:     profit > 0,
		RRR:       CalculateRRR(in.StopLoss, in.TakeProfit, in.EntryPrice),
		Currency:  currency,
		Converted: converted,
	}, nil
}

// CalculateRRR returns reward/risk rounded to one decimal, or nil when a
// bound is missing or the risk is zero. Only distances are used, so a stop
// on the wrong side of entry is not detected here.
func CalculateRRR(stopLoss, takeProfit *float64, entryPrice float64) *float64 {
	if stopLoss == nil || takeProfit == nil || *stopLoss == 0 || *takeProfit == 0 {
		return nil
	}
	risk := math.Abs(entryPrice - *stopLoss)
	if risk == 0 {
		return nil
	}
	reward := math.Abs(*takeProfit - entryPrice)
	rrr := Round(reward/risk, 1)
	return &rrr
}

// CalculatePositionSize returns the lot size that loses riskPercentage of
// accountBalance when the stop is hit. Entry equal to stop gives +Inf or NaN;
// check the result with IsUsableLotSize.
func (c *Calculator) CalculatePositionSize(symbol string, accountBalance, riskPercentage, entryPrice, stopLoss float64) float64 {
	riskAmount := accountBalance * riskPercentage / 100
	pipDistance := math.Abs(c.PipsBetween(symbol, entryPrice, stopLoss))
	lots := riskAmount / (pipDistance * c.PipValue(symbol) * UnitsPerLot)
	return Round(lots, 2)
}

// IsUsableLotSize reports whether v can be shown or stored as a lot size.
func IsUsableLotSize(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Round rounds half away from zero on the shortest decimal form of v, so
// 700.0000000001 becomes 700 and 1.005 becomes 1.01. Non-finite values pass
// through unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
