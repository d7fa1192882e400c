package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mpu/internal/domain"
)

// StockFileName is the reviewed inventory written by getstock.
const StockFileName = "stock.xlsx"

type GetStockConfig struct {
	OutputPath   string
	MinimumPrice float64
}

// GetStockService prices the whole stock and saves it for review.
type GetStockService struct {
	stock     StockSource
	pricer    *Pricer
	runner    *Runner
	updater   ColumnDeriver
	inventory InventoryStore
	logger    *slog.Logger
	config    GetStockConfig
}

func NewGetStockService(
	stock StockSource,
	pricer *Pricer,
	runner *Runner,
	updater ColumnDeriver,
	inventory InventoryStore,
	logger *slog.Logger,
	cfg GetStockConfig,
) *GetStockService {
	return &GetStockService{
		stock:     stock,
		pricer:    pricer,
		runner:    runner,
		updater:   updater,
		inventory: inventory,
		logger:    logger.With("command", "getstock"),
		config:    cfg,
	}
}

func (s *GetStockService) Run(ctx context.Context) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{RunID: uuid.New()}
	s.logger.Info("starting getstock",
		"run_id", stats.RunID,
		"price_update", s.updater.Name(),
	)

	rows, err := s.stock.FetchStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stock: %w", err)
	}

	rows = FilterMinimumPrice(rows, s.config.MinimumPrice)
	s.logger.Info("computing prices", "rows", len(rows), "minimum_price", s.config.MinimumPrice)

	prices := s.runner.Run(ctx, rows, s.pricer.PriceTask)
	for i := range rows {
		rows[i].SuggestedPrice = prices[i]
		if math.IsNaN(prices[i]) {
			stats.Unpriced++
		} else {
			stats.Priced++
		}
	}
	stats.Rows = len(rows)

	rows = PrepareInventory(rows)

	rows, err = s.updater.DeriveColumns(rows)
	if err != nil {
		return nil, fmt.Errorf("derive columns: %w", err)
	}

	path := filepath.Join(s.config.OutputPath, StockFileName)
	if err := s.inventory.SaveInventory(path, rows); err != nil {
		return nil, fmt.Errorf("save inventory: %w", err)
	}

	basic := ComputeBasicStats(rows)
	stats.Duration = time.Since(startTime)

	s.logger.Info("getstock completed",
		"path", path,
		"rows", stats.Rows,
		"priced", stats.Priced,
		"unpriced", stats.Unpriced,
		"current_value", basic.TotalCurrentPrice,
		"suggested_value", basic.TotalSuggestedPrice,
		"relative_diff", fmt.Sprintf("%.2f%%", basic.RelativeDiff),
		"duration", stats.Duration,
	)

	return stats, nil
}

// FilterMinimumPrice drops the rows priced under minimum. A zero minimum
// keeps everything.
func FilterMinimumPrice(rows []domain.StockRow, minimum float64) []domain.StockRow {
	if minimum <= 0 {
		return rows
	}
	var filtered []domain.StockRow
	for _, r := range rows {
		if r.Price >= minimum {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
