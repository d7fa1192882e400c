// Package extract keeps one market extract per product on disk.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"mpu/internal/config"
	"mpu/internal/domain"
	"mpu/internal/metrics"
	"mpu/internal/source/cardmarket"
)

// DirName is the cache subdirectory created under the configured root.
const DirName = "market_extract"

// ArticleFetcher is the part of the marketplace client the cache needs.
type ArticleFetcher interface {
	FetchProductInfo(ctx context.Context, productID int64) (domain.ProductInfo, error)
	FetchProductArticles(ctx context.Context, productID int64, q cardmarket.ArticleQuery) ([]domain.Article, error)
}

// Store is the market extract cache. Concurrent use is safe as long as
// callers accept last-writer-wins for rows sharing a product.
type Store struct {
	dir            string
	client         ArticleFetcher
	minCondition   domain.Condition
	foilSampleSize int
	metrics        metrics.Recorder
	logger         *slog.Logger
}

// NewStore creates the cache directory under root if needed.
func NewStore(root string, client ArticleFetcher, cfg config.PricingConfig, recorder metrics.Recorder, logger *slog.Logger) (*Store, error) {
	minCondition, err := domain.ParseCondition(cfg.MinCondition)
	if err != nil {
		return nil, fmt.Errorf("parse min condition: %w", err)
	}

	dir := filepath.Join(root, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create market extract directory: %w", err)
	}

	return &Store{
		dir:            dir,
		client:         client,
		minCondition:   minCondition,
		foilSampleSize: cfg.FoilSampleSize,
		metrics:        recorder,
		logger:         logger.With("component", "market_extract"),
	}, nil
}

// Dir returns the directory holding the extract files.
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the extract for the row's product. Unless force is set, a
// stored extract is used and only its foil section is fetched when the row
// is foil and the section is missing. A stored sample that hit its cap is
// refetched when a larger one is asked for.
func (s *Store) Get(ctx context.Context, row domain.StockRow, maxResults int, force bool) (*domain.MarketExtract, error) {
	if !force {
		extract, err := s.load(row.ProductID)
		switch {
		case err == nil && extract.Capped(maxResults):
			s.logger.Debug("stored sample too small, refetching",
				"product_id", row.ProductID, "stored", len(extract.Articles), "max_results", maxResults)
		case err == nil:
			s.metrics.RecordCacheHit()
			return s.repair(ctx, row, extract)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	s.metrics.RecordCacheMiss()
	return s.populate(ctx, row, maxResults)
}

func (s *Store) repair(ctx context.Context, row domain.StockRow, extract *domain.MarketExtract) (*domain.MarketExtract, error) {
	if !needsFoil(row, extract) {
		return extract, nil
	}

	if err := s.addFoil(ctx, row.ProductID, extract); err != nil {
		return nil, err
	}
	s.metrics.RecordCacheRepair()

	if err := s.save(row.ProductID, extract); err != nil {
		return nil, err
	}
	return extract, nil
}

func (s *Store) populate(ctx context.Context, row domain.StockRow, maxResults int) (*domain.MarketExtract, error) {
	articles, err := s.client.FetchProductArticles(ctx, row.ProductID, cardmarket.ArticleQuery{
		MinCondition: s.minCondition,
		MaxResults:   maxResults,
	})
	if err != nil {
		return nil, err
	}

	info, err := s.client.FetchProductInfo(ctx, row.ProductID)
	if err != nil {
		return nil, err
	}

	extract := &domain.MarketExtract{Articles: articles, Info: info, SampleSize: maxResults}
	if needsFoil(row, extract) {
		if err := s.addFoil(ctx, row.ProductID, extract); err != nil {
			return nil, err
		}
	}

	if err := s.save(row.ProductID, extract); err != nil {
		return nil, err
	}
	return extract, nil
}

func needsFoil(row domain.StockRow, extract *domain.MarketExtract) bool {
	return row.Foil && !extract.HasFoilSection()
}

func (s *Store) addFoil(ctx context.Context, productID int64, extract *domain.MarketExtract) error {
	foil := true
	articles, err := s.client.FetchProductArticles(ctx, productID, cardmarket.ArticleQuery{
		MinCondition: s.minCondition,
		MaxResults:   s.foilSampleSize,
		Foil:         &foil,
	})
	if err != nil {
		return err
	}
	extract.SetFoilArticles(articles)
	return nil
}

func (s *Store) path(productID int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(productID, 10)+".json")
}

func (s *Store) load(productID int64) (*domain.MarketExtract, error) {
	data, err := os.ReadFile(s.path(productID))
	if err != nil {
		return nil, err
	}

	var extract domain.MarketExtract
	if err := json.Unmarshal(data, &extract); err != nil {
		return nil, fmt.Errorf("decode market extract %d: %w", productID, err)
	}
	return &extract, nil
}

// save replaces the product file as a whole.
func (s *Store) save(productID int64, extract *domain.MarketExtract) error {
	data, err := json.Marshal(extract)
	if err != nil {
		return fmt.Errorf("encode market extract %d: %w", productID, err)
	}

	tmp, err := os.CreateTemp(s.dir, strconv.FormatInt(productID, 10)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write market extract %d: %w", productID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close market extract %d: %w", productID, err)
	}
	if err := os.Rename(tmp.Name(), s.path(productID)); err != nil {
		return fmt.Errorf("replace market extract %d: %w", productID, err)
	}

	s.logger.Debug("saved market extract", "product_id", productID)
	return nil
}
