// Package strategy holds the pricing strategies and their registry.
package strategy

import (
	"errors"
	"fmt"
	"sort"

	"mpu/internal/config"
	"mpu/internal/domain"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Result is the outcome of a price computation. A result either carries a
// price or reports that too few comparable listings were found.
type Result struct {
	price  float64
	priced bool
}

func Priced(price float64) Result {
	return Result{price: price, priced: true}
}

func InsufficientData() Result {
	return Result{}
}

// Price returns the computed price and whether there is one.
func (r Result) Price() (float64, bool) {
	return r.price, r.priced
}

// Insufficient reports a shortage of suitable examples.
func (r Result) Insufficient() bool {
	return !r.priced
}

// CurrentPrice computes a suggested price for one stock row.
type CurrentPrice interface {
	Name() string
	ComputePrice(row domain.StockRow, extract *domain.MarketExtract) (Result, error)
}

// PriceUpdate adjusts a priced inventory before it is reviewed.
type PriceUpdate interface {
	Name() string
	DeriveColumns(rows []domain.StockRow) ([]domain.StockRow, error)
}

var currentPrices = map[string]func(config.StrategyConfig) (CurrentPrice, error){
	"median":           newMedian,
	"market_and_lower": newMarketAndLower,
}

var priceUpdates = map[string]func(config.StrategyConfig) (PriceUpdate, error){
	"initial": newInitial,
	"bounded": newBounded,
}

func NewCurrentPrice(cfg config.StrategyConfig) (CurrentPrice, error) {
	build, ok := currentPrices[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("current price %q: %w", cfg.Name, ErrUnknownStrategy)
	}
	return build(cfg)
}

func NewPriceUpdate(cfg config.StrategyConfig) (PriceUpdate, error) {
	build, ok := priceUpdates[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("price update %q: %w", cfg.Name, ErrUnknownStrategy)
	}
	return build(cfg)
}

// CurrentPriceNames lists the registered current price strategies.
func CurrentPriceNames() []string {
	return sortedKeys(currentPrices)
}

// PriceUpdateNames lists the registered price update strategies.
func PriceUpdateNames() []string {
	return sortedKeys(priceUpdates)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
