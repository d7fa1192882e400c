package strategy

import (
	"fmt"

	"mpu/internal/config"
	"mpu/internal/domain"
)

type medianOptions struct {
	MinExamples int `yaml:"min_examples"`
}

// Median prices a row at the median of its comparable listings.
type Median struct {
	minExamples int
}

func newMedian(cfg config.StrategyConfig) (CurrentPrice, error) {
	opts := medianOptions{MinExamples: 3}
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.MinExamples < 1 {
		return nil, fmt.Errorf("median: min_examples must be positive, got %d", opts.MinExamples)
	}
	return &Median{minExamples: opts.MinExamples}, nil
}

func (m *Median) Name() string {
	return "median"
}

func (m *Median) ComputePrice(row domain.StockRow, extract *domain.MarketExtract) (Result, error) {
	prices := comparablePrices(row, extract)
	if len(prices) < m.minExamples {
		return InsufficientData(), nil
	}

	mid := len(prices) / 2
	if len(prices)%2 == 1 {
		return Priced(prices[mid]), nil
	}
	return Priced((prices[mid-1] + prices[mid]) / 2), nil
}
