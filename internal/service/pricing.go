package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"mpu/internal/config"
	"mpu/internal/domain"
	"mpu/internal/metrics"
)

// Pricer suggests a price for one stock row. It fetches at most two market
// extracts per row: the default sample, then a widened one when the strategy
// reports too few suitable examples.
type Pricer struct {
	extracts      ExtractProvider
	strategy      PriceComputer
	defaultSample int
	widenedSample int
	force         bool
	metrics       metrics.Recorder
	logger        *slog.Logger
}

func NewPricer(
	extracts ExtractProvider,
	strategy PriceComputer,
	cfg config.PricingConfig,
	force bool,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *Pricer {
	return &Pricer{
		extracts:      extracts,
		strategy:      strategy,
		defaultSample: cfg.DefaultSampleSize,
		widenedSample: cfg.WidenedSampleSize,
		force:         force,
		metrics:       recorder,
		logger:        logger.With("component", "pricer", "strategy", strategy.Name()),
	}
}

// Price returns NaN when the row cannot be priced. Only strategy failures
// other than a shortage of examples are returned as errors.
func (p *Pricer) Price(ctx context.Context, row domain.StockRow) (float64, error) {
	logger := p.logger.With("product_id", row.ProductID, "article_id", row.ArticleID)

	price, done, err := p.attempt(ctx, logger, row, p.defaultSample, p.force)
	if err != nil || done {
		return price, err
	}

	p.metrics.RecordShortageRetry()
	logger.Info("suitable examples shortage, widening sample", "max_results", p.widenedSample)

	price, done, err = p.attempt(ctx, logger, row, p.widenedSample, p.force)
	if err != nil || done {
		return price, err
	}

	logger.Warn("suitable examples shortage, row left for manual pricing")
	p.metrics.RecordRowUnpriced()
	return math.NaN(), nil
}

// PriceTask adapts Price to the runner.
func (p *Pricer) PriceTask(ctx context.Context, task Task) (float64, error) {
	return p.Price(ctx, task.Row)
}

// attempt reports done unless the strategy found too few examples.
func (p *Pricer) attempt(ctx context.Context, logger *slog.Logger, row domain.StockRow, maxResults int, force bool) (float64, bool, error) {
	extract, err := p.extracts.Get(ctx, row, maxResults, force)
	if err != nil {
		logger.Error("failed to get market extract", "max_results", maxResults, "error", err)
		p.metrics.RecordRowFailed()
		return math.NaN(), true, nil
	}

	res, err := p.strategy.ComputePrice(row, extract)
	if err != nil {
		return math.NaN(), true, fmt.Errorf("compute price of product %d: %w", row.ProductID, err)
	}

	price, ok := res.Price()
	if !ok {
		return math.NaN(), false, nil
	}

	p.metrics.RecordRowPriced()
	return price, true, nil
}
