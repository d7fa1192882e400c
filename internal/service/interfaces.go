package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"mpu/internal/domain"
	"mpu/internal/source/cardmarket"
	"mpu/internal/strategy"
)

type ExtractProvider interface {
	Get(ctx context.Context, row domain.StockRow, maxResults int, force bool) (*domain.MarketExtract, error)
}

type StockSource interface {
	FetchStock(ctx context.Context) ([]domain.StockRow, error)
}

type PriceWriter interface {
	WritePriceUpdates(ctx context.Context, updates []domain.PriceUpdate) (*cardmarket.WriteAck, error)
}

type PriceComputer interface {
	Name() string
	ComputePrice(row domain.StockRow, extract *domain.MarketExtract) (strategy.Result, error)
}

type ColumnDeriver interface {
	Name() string
	DeriveColumns(rows []domain.StockRow) ([]domain.StockRow, error)
}

type InventoryStore interface {
	SaveInventory(path string, rows []domain.StockRow) error
	LoadInventory(path string) ([]domain.StockRow, error)
}

type StatsSheet interface {
	AppendStats(path string, snapshot *domain.StatsSnapshot) error
}

type SnapshotStore interface {
	Insert(ctx context.Context, snapshot *domain.StatsSnapshot) (int64, error)
	InsertGroups(ctx context.Context, snapshotID int64, groups []domain.StatsGroup) error
}

type UpdateLogStore interface {
	InsertBatch(ctx context.Context, updates []domain.AppliedUpdate) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, runID uuid.UUID, update *domain.AppliedUpdate) error
	Close() error
}

type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
