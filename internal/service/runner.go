package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"mpu/internal/config"
	"mpu/internal/domain"
	"mpu/internal/metrics"
)

// Task is one row handed to a RowFunc.
type Task struct {
	Index int
	Row   domain.StockRow
}

type RowFunc func(ctx context.Context, task Task) (float64, error)

// Runner applies a RowFunc to every row, sequentially or on a bounded pool.
type Runner struct {
	parallel  bool
	workers   int
	chunkSize int
	metrics   metrics.Recorder
	logger    *slog.Logger
}

func NewRunner(cfg config.PricingConfig, recorder metrics.Recorder, logger *slog.Logger) *Runner {
	chunkSize := cfg.ChunkSize
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &Runner{
		parallel:  cfg.ParallelEnabled(),
		workers:   cfg.Workers,
		chunkSize: chunkSize,
		metrics:   recorder,
		logger:    logger.With("component", "runner"),
	}
}

// Run returns one result per row, results[i] belonging to rows[i]. A row
// whose function fails or panics gets NaN.
func (r *Runner) Run(ctx context.Context, rows []domain.StockRow, fn RowFunc) []float64 {
	results := make([]float64, len(rows))

	if !r.parallel || r.workers <= 1 {
		r.logger.Info("sequential execution", "rows", len(rows))
		for i := range rows {
			results[i] = r.runRow(ctx, Task{Index: i, Row: rows[i]}, fn)
		}
		return results
	}

	r.logger.Info("parallel execution",
		"rows", len(rows),
		"workers", r.workers,
		"chunk_size", r.chunkSize,
	)

	var g errgroup.Group
	g.SetLimit(r.workers)

	for start := 0; start < len(rows); start += r.chunkSize {
		start := start
		end := min(start+r.chunkSize, len(rows))
		g.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = r.runRow(ctx, Task{Index: i, Row: rows[i]}, fn)
			}
			return nil
		})
	}
	// runRow never fails; the group only bounds how many chunks run at once
	_ = g.Wait()

	return results
}

func (r *Runner) runRow(ctx context.Context, task Task, fn RowFunc) (result float64) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("row processing panicked",
				"index", task.Index,
				"product_id", task.Row.ProductID,
				"article_id", task.Row.ArticleID,
				"panic", fmt.Sprint(rec),
			)
			r.metrics.RecordRowFailed()
			result = math.NaN()
		}
	}()

	price, err := fn(ctx, task)
	if err != nil {
		r.logger.Error("row processing failed",
			"index", task.Index,
			"product_id", task.Row.ProductID,
			"article_id", task.Row.ArticleID,
			"error", err,
		)
		r.metrics.RecordRowFailed()
		return math.NaN()
	}
	return price
}
