package service

import (
	"math"
	"slices"
	"sort"

	"mpu/internal/domain"
)

// BasicStats summarizes the value of an inventory before and after pricing.
type BasicStats struct {
	TotalCurrentPrice   float64
	TotalSuggestedPrice float64
	RelativeDiff        float64
}

// PrepareInventory sets the approval flag and the relative price difference
// of every row, then orders the rows so that unapproved rows come first and,
// within each group, the largest moves lead. Rows without a difference go
// last in their group.
func PrepareInventory(rows []domain.StockRow) []domain.StockRow {
	out := slices.Clone(rows)

	for i := range out {
		r := &out[i]
		r.PriceApproval = 1
		if !r.HasSuggestedPrice() || r.HasManualMarker() {
			r.PriceApproval = 0
		}
		r.RelativePriceDiff = domain.RelativeDiff(r.Price, r.SuggestedPrice)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PriceApproval != b.PriceApproval {
			return a.PriceApproval < b.PriceApproval
		}
		aNaN, bNaN := math.IsNaN(a.RelativePriceDiff), math.IsNaN(b.RelativePriceDiff)
		if aNaN || bNaN {
			return !aNaN && bNaN
		}
		return math.Abs(a.RelativePriceDiff) > math.Abs(b.RelativePriceDiff)
	})

	return out
}

// ApplyManualPrices lets a manual price replace the suggested one. Such rows
// are approved and their comments carry the manual price marker.
func ApplyManualPrices(rows []domain.StockRow) []domain.StockRow {
	out := slices.Clone(rows)

	for i := range out {
		r := &out[i]
		if r.ManualPrice == nil {
			continue
		}
		r.SuggestedPrice = *r.ManualPrice
		r.PriceApproval = 1
		if !r.HasManualMarker() {
			r.Comments += domain.ManualPriceMarker
		}
	}

	return out
}

// ComputeBasicStats values the inventory at current and suggested prices.
// Rows without a suggested price count at their current price.
func ComputeBasicStats(rows []domain.StockRow) BasicStats {
	var stats BasicStats
	for _, r := range rows {
		amount := float64(r.Amount)
		stats.TotalCurrentPrice += r.Price * amount

		suggested := r.SuggestedPrice
		if math.IsNaN(suggested) {
			suggested = r.Price
		}
		stats.TotalSuggestedPrice += suggested * amount
	}

	stats.RelativeDiff = math.NaN()
	if stats.TotalCurrentPrice != 0 {
		stats.RelativeDiff = (stats.TotalCurrentPrice - stats.TotalSuggestedPrice) / stats.TotalCurrentPrice * 100
	}
	return stats
}
