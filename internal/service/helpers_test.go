package service

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"mpu/internal/config"
	"mpu/internal/domain"
	"mpu/internal/metrics"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testRecorder() *metrics.Collector {
	return metrics.NewCollector(prometheus.NewRegistry())
}

func testPricingConfig() config.PricingConfig {
	return config.PricingConfig{
		DefaultSampleSize: 100,
		WidenedSampleSize: 500,
		FoilSampleSize:    50,
		MinCondition:      "EX",
		Workers:           4,
		ChunkSize:         3,
	}
}

func stockRow(articleID, productID int64, condition domain.Condition, price float64) domain.StockRow {
	row := domain.NewStockRow()
	row.ArticleID = articleID
	row.ProductID = productID
	row.Condition = condition
	row.Price = price
	row.Amount = 1
	row.LanguageID = 2
	return row
}

func forProduct(productID int64) gomock.Matcher {
	return cond(func(r domain.StockRow) bool { return r.ProductID == productID })
}

// cond is a typed gomock.Cond: values that are not a T never match.
func cond[T any](fn func(x T) bool) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		v, ok := x.(T)
		return ok && fn(v)
	})
}
