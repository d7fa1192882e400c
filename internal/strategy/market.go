package strategy

import (
	"fmt"

	"mpu/internal/config"
	"mpu/internal/domain"
)

type marketAndLowerOptions struct {
	MinExamples int `yaml:"min_examples"`
	LowestCount int `yaml:"lowest_count"`
}

// MarketAndLower prices a row at the mean of the cheapest comparable
// listings, never above the product's price guide trend.
type MarketAndLower struct {
	minExamples int
	lowestCount int
}

func newMarketAndLower(cfg config.StrategyConfig) (CurrentPrice, error) {
	opts := marketAndLowerOptions{MinExamples: 3, LowestCount: 5}
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.MinExamples < 1 || opts.LowestCount < 1 {
		return nil, fmt.Errorf("market_and_lower: min_examples and lowest_count must be positive")
	}
	return &MarketAndLower{minExamples: opts.MinExamples, lowestCount: opts.LowestCount}, nil
}

func (m *MarketAndLower) Name() string {
	return "market_and_lower"
}

func (m *MarketAndLower) ComputePrice(row domain.StockRow, extract *domain.MarketExtract) (Result, error) {
	prices := comparablePrices(row, extract)
	if len(prices) < m.minExamples {
		return InsufficientData(), nil
	}

	if len(prices) > m.lowestCount {
		prices = prices[:m.lowestCount]
	}

	var sum float64
	for _, p := range prices {
		sum += p
	}
	price := sum / float64(len(prices))

	// the trend is given for the non-foil version only
	if guide := extract.Info.PriceGuide; guide != nil && !row.Foil && guide.Trend > 0 && price > guide.Trend {
		price = guide.Trend
	}
	return Priced(price), nil
}
