package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mpu/internal/domain"
	"mpu/internal/metrics"
)

// NotUpdatedLayout formats the timestamp of the not-updated inventory file.
const NotUpdatedLayout = "2006-01-02T15-04-05"

var ErrUpdateCancelled = errors.New("update cancelled")

type UpdateConfig struct {
	StockFile     string
	MaxPerRequest int
	AssumeYes     bool
}

type UpdateResult struct {
	RunID          uuid.UUID
	Updated        int
	NotUpdated     int
	Refused        int
	Requests       int
	ValueDiff      decimal.Decimal
	NotUpdatedFile string
	Duration       time.Duration
}

// UpdateService writes the approved prices of a reviewed inventory back to
// the marketplace.
type UpdateService struct {
	inventory InventoryStore
	writer    PriceWriter
	confirmer Confirmer
	updateLog UpdateLogStore
	txManager TransactionManager
	publisher Publisher
	metrics   metrics.Recorder
	logger    *slog.Logger
	config    UpdateConfig
	now       func() time.Time
}

// NewUpdateService builds the service. updateLog, txManager and publisher
// are optional and may be nil.
func NewUpdateService(
	inventory InventoryStore,
	writer PriceWriter,
	confirmer Confirmer,
	updateLog UpdateLogStore,
	txManager TransactionManager,
	publisher Publisher,
	recorder metrics.Recorder,
	logger *slog.Logger,
	cfg UpdateConfig,
) *UpdateService {
	if cfg.MaxPerRequest < 1 {
		cfg.MaxPerRequest = 1
	}
	return &UpdateService{
		inventory: inventory,
		writer:    writer,
		confirmer: confirmer,
		updateLog: updateLog,
		txManager: txManager,
		publisher: publisher,
		metrics:   recorder,
		logger:    logger.With("command", "update"),
		config:    cfg,
		now:       time.Now,
	}
}

func (s *UpdateService) Run(ctx context.Context) (*UpdateResult, error) {
	startTime := s.now()
	result := &UpdateResult{RunID: uuid.New()}

	rows, err := s.inventory.LoadInventory(s.config.StockFile)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	rows = ApplyManualPrices(rows)

	var approved, rejected []domain.StockRow
	for _, r := range rows {
		if r.Approved() && r.HasSuggestedPrice() {
			approved = append(approved, r)
		} else {
			rejected = append(rejected, r)
		}
	}
	result.NotUpdated = len(rejected)
	result.ValueDiff = valueDiff(approved)

	if !s.config.AssumeYes {
		prompt := fmt.Sprintf(
			"You are about to update %d price(s) for a total value difference of %s€.",
			len(approved), result.ValueDiff.StringFixed(2),
		)
		ok, err := s.confirmer.Confirm(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("confirm update: %w", err)
		}
		if !ok {
			s.logger.Info("update cancelled by user")
			return result, ErrUpdateCancelled
		}
	}

	s.logger.Info("updating article prices",
		"run_id", result.RunID,
		"articles", len(approved),
		"max_per_request", s.config.MaxPerRequest,
	)

	for start := 0; start < len(approved); start += s.config.MaxPerRequest {
		chunk := approved[start:min(start+s.config.MaxPerRequest, len(approved))]

		updates := make([]domain.PriceUpdate, len(chunk))
		for i, r := range chunk {
			updates[i] = domain.UpdateFromRow(r)
		}

		ack, err := s.writer.WritePriceUpdates(ctx, updates)
		if err != nil {
			return result, fmt.Errorf("write price updates %d-%d: %w", start, start+len(chunk), err)
		}
		result.Requests++
		result.Updated += len(chunk)
		if ack != nil {
			result.Refused += len(ack.NotUpdated)
		}
		s.metrics.RecordPriceUpdates(len(chunk))

		s.record(ctx, result.RunID, chunk)
	}

	result.NotUpdatedFile = filepath.Join(
		filepath.Dir(s.config.StockFile),
		fmt.Sprintf("notUpdatedStock-%s.xlsx", s.now().Format(NotUpdatedLayout)),
	)
	if err := s.inventory.SaveInventory(result.NotUpdatedFile, rejected); err != nil {
		return result, fmt.Errorf("save not updated articles: %w", err)
	}

	result.Duration = s.now().Sub(startTime)

	s.logger.Info("update completed",
		"updated", result.Updated,
		"refused", result.Refused,
		"not_updated", result.NotUpdated,
		"requests", result.Requests,
		"value_diff", result.ValueDiff.StringFixed(2),
		"not_updated_file", result.NotUpdatedFile,
		"duration", result.Duration,
	)

	return result, nil
}

// record stores and publishes a written chunk. The prices are already live
// at this point, so failures are only logged.
func (s *UpdateService) record(ctx context.Context, runID uuid.UUID, chunk []domain.StockRow) {
	if s.updateLog == nil && s.publisher == nil {
		return
	}

	appliedAt := s.now()
	applied := make([]domain.AppliedUpdate, len(chunk))
	for i, r := range chunk {
		applied[i] = domain.AppliedUpdate{
			RunID:         runID,
			ArticleID:     r.ArticleID,
			ProductID:     r.ProductID,
			PreviousPrice: r.Price,
			NewPrice:      r.SuggestedPrice,
			Amount:        r.Amount,
			Comments:      r.Comments,
			AppliedAt:     appliedAt,
		}
	}

	if s.updateLog != nil && s.txManager != nil {
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.updateLog.InsertBatch(txCtx, applied)
		})
		if err != nil {
			s.logger.Error("failed to log price updates", "count", len(applied), "error", err)
		}
	}

	if s.publisher != nil {
		for i := range applied {
			if err := s.publisher.Publish(ctx, runID, &applied[i]); err != nil {
				s.logger.Error("failed to publish price update",
					"article_id", applied[i].ArticleID,
					"error", err,
				)
			}
		}
	}
}

func valueDiff(rows []domain.StockRow) decimal.Decimal {
	previous, next := decimal.Zero, decimal.Zero
	for _, r := range rows {
		amount := decimal.NewFromInt(int64(r.Amount))
		previous = previous.Add(decimal.NewFromFloat(r.Price).Mul(amount))
		next = next.Add(decimal.NewFromFloat(r.SuggestedPrice).Mul(amount))
	}
	return next.Sub(previous)
}
