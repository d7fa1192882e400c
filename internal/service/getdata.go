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
	"mpu/internal/inventory"
)

// StockCSVName is the local stock export read by getdata.
const StockCSVName = "stock.csv"

type GetDataConfig struct {
	InputPath    string
	MinimumPrice float64
	SampleSize   int
	Force        bool
}

// GetDataService fills the market extract cache for a local stock export
// without pricing anything.
type GetDataService struct {
	extracts ExtractProvider
	runner   *Runner
	logger   *slog.Logger
	config   GetDataConfig
}

func NewGetDataService(extracts ExtractProvider, runner *Runner, logger *slog.Logger, cfg GetDataConfig) *GetDataService {
	return &GetDataService{
		extracts: extracts,
		runner:   runner,
		logger:   logger.With("command", "getdata"),
		config:   cfg,
	}
}

func (s *GetDataService) Run(ctx context.Context) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{RunID: uuid.New()}

	path := filepath.Join(s.config.InputPath, StockCSVName)
	rows, err := inventory.ReadCSVFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stock: %w", err)
	}

	rows = FilterMinimumPrice(rows, s.config.MinimumPrice)
	s.logger.Info("fetching market extracts",
		"run_id", stats.RunID,
		"rows", len(rows),
		"force", s.config.Force,
	)

	results := s.runner.Run(ctx, rows, s.fetch)
	for _, r := range results {
		if math.IsNaN(r) {
			stats.Failed++
		}
	}
	stats.Rows = len(rows)
	stats.Duration = time.Since(startTime)

	s.logger.Info("getdata completed",
		"rows", stats.Rows,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *GetDataService) fetch(ctx context.Context, task Task) (float64, error) {
	if _, err := s.extracts.Get(ctx, task.Row, s.config.SampleSize, s.config.Force); err != nil {
		return math.NaN(), fmt.Errorf("get market extract of product %d: %w", task.Row.ProductID, err)
	}
	return 0, nil
}
