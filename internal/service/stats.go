package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"mpu/internal/domain"
)

// StatsFileName is the default stats workbook.
const StatsFileName = "stockStats.xlsx"

const (
	DimensionGlobal        = "Global"
	DimensionPriceCategory = "PriceCategories"
	DimensionFoil          = "Foil?"
	DimensionSigned        = "Signed?"
	DimensionCondition     = "Condition"
	DimensionLanguage      = "Language"
)

type priceCategory struct {
	name  string
	upper float64
}

// sup5Threshold is the lower bound of the 5to30 category.
const sup5Threshold = 5

// priceCategories are [lower, upper): a price equal to a bound belongs to
// the category above it. The last one is open ended.
var priceCategories = []priceCategory{
	{"Inf0.30", 0.30},
	{"0.30to2", 2},
	{"2to5", sup5Threshold},
	{"5to30", 30},
	{"Sup30", 0},
}

type StatsConfig struct {
	StatsFile string
}

// StatsService appends a snapshot of the current stock to the stats
// workbook and, when configured, to the database.
type StatsService struct {
	stock     StockSource
	sheet     StatsSheet
	snapshots SnapshotStore
	txManager TransactionManager
	logger    *slog.Logger
	config    StatsConfig
	now       func() time.Time
}

// NewStatsService builds the service. snapshots and txManager may be nil.
func NewStatsService(
	stock StockSource,
	sheet StatsSheet,
	snapshots SnapshotStore,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg StatsConfig,
) *StatsService {
	return &StatsService{
		stock:     stock,
		sheet:     sheet,
		snapshots: snapshots,
		txManager: txManager,
		logger:    logger.With("command", "stats"),
		config:    cfg,
		now:       time.Now,
	}
}

func (s *StatsService) Run(ctx context.Context) (*domain.StatsSnapshot, error) {
	rows, err := s.stock.FetchStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stock: %w", err)
	}

	snapshot := ComputeStats(rows, s.now())
	snapshot.RunID = uuid.New()

	if err := s.sheet.AppendStats(s.config.StatsFile, snapshot); err != nil {
		return nil, fmt.Errorf("append stats: %w", err)
	}

	if s.snapshots != nil && s.txManager != nil {
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			id, err := s.snapshots.Insert(txCtx, snapshot)
			if err != nil {
				return fmt.Errorf("insert snapshot: %w", err)
			}
			snapshot.ID = id

			if err := s.snapshots.InsertGroups(txCtx, id, snapshot.Groups); err != nil {
				return fmt.Errorf("insert groups: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("store snapshot: %w", err)
		}
	}

	s.logger.Info("stats completed",
		"run_id", snapshot.RunID,
		"path", s.config.StatsFile,
		"nb_cards", snapshot.NbCards,
		"stock_total_value", snapshot.StockTotalValue,
	)

	return snapshot, nil
}

// ComputeStats aggregates the stock globally and per dimension. Counts are
// card counts, so every row weighs its amount.
func ComputeStats(rows []domain.StockRow, takenAt time.Time) *domain.StatsSnapshot {
	snapshot := &domain.StatsSnapshot{TakenAt: takenAt}

	var totalCount int
	var totalValue float64
	for _, r := range rows {
		totalCount += r.Amount
		totalValue += r.Price * float64(r.Amount)

		if r.Foil {
			snapshot.NbFoil += r.Amount
		} else {
			snapshot.NbNotFoil += r.Amount
		}
		if r.Price >= sup5Threshold {
			snapshot.NbCardsSup5 += r.Amount
		}
		if r.Price < 0.30 {
			snapshot.NbCardsInf030 += r.Amount
		}
	}

	snapshot.NbCards = totalCount
	snapshot.StockTotalValue = totalValue
	if totalCount > 0 {
		snapshot.FoilPercentage = float64(snapshot.NbFoil) / float64(totalCount) * 100
		snapshot.AvgCardPrice = totalValue / float64(totalCount)
	}

	snapshot.Groups = append(snapshot.Groups,
		aggregate(rows, DimensionGlobal, totalCount, totalValue, func(domain.StockRow) string { return DimensionGlobal })...)
	snapshot.Groups = append(snapshot.Groups,
		aggregate(rows, DimensionPriceCategory, totalCount, totalValue, func(r domain.StockRow) string { return priceCategoryOf(r.Price) })...)
	snapshot.Groups = append(snapshot.Groups,
		aggregate(rows, DimensionFoil, totalCount, totalValue, func(r domain.StockRow) string { return yesNo(r.Foil) })...)
	snapshot.Groups = append(snapshot.Groups,
		aggregate(rows, DimensionSigned, totalCount, totalValue, func(r domain.StockRow) string { return yesNo(r.Signed) })...)
	snapshot.Groups = append(snapshot.Groups,
		aggregate(rows, DimensionCondition, totalCount, totalValue, func(r domain.StockRow) string { return string(r.Condition) })...)
	snapshot.Groups = append(snapshot.Groups,
		aggregate(rows, DimensionLanguage, totalCount, totalValue, func(r domain.StockRow) string { return languageOf(r.LanguageID) })...)

	return snapshot
}

func aggregate(rows []domain.StockRow, dimension string, totalCount int, totalValue float64, key func(domain.StockRow) string) []domain.StatsGroup {
	byValue := make(map[string]*domain.StatsGroup)
	for _, r := range rows {
		k := key(r)
		g, ok := byValue[k]
		if !ok {
			g = &domain.StatsGroup{Dimension: dimension, Value: k}
			byValue[k] = g
		}
		g.TotalCount += r.Amount
		g.TotalValue += r.Price * float64(r.Amount)
	}

	groups := make([]domain.StatsGroup, 0, len(byValue))
	for _, g := range byValue {
		if g.TotalCount > 0 {
			g.AvgValue = g.TotalValue / float64(g.TotalCount)
		}
		if totalCount > 0 {
			g.PctCount = float64(g.TotalCount) / float64(totalCount) * 100
		}
		if totalValue > 0 {
			g.PctValue = g.TotalValue / totalValue * 100
		}
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	return groups
}

func priceCategoryOf(price float64) string {
	for _, c := range priceCategories {
		if c.upper == 0 || price < c.upper {
			return c.name
		}
	}
	return priceCategories[len(priceCategories)-1].name
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

func languageOf(id int) string {
	if name := domain.LanguageName(id); name != "" {
		return name
	}
	return "Unknown"
}
