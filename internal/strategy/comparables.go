package strategy

import (
	"sort"

	"mpu/internal/domain"
)

// comparablePrices returns the sorted prices of the listings that can stand
// in for row: same foil section, same language, at least as good, and not
// signed, altered or sold as playset unless the row is.
func comparablePrices(row domain.StockRow, extract *domain.MarketExtract) []float64 {
	if extract == nil {
		return nil
	}

	var prices []float64
	for _, a := range extract.Comparables(row.Foil) {
		if a.Price <= 0 {
			continue
		}
		if row.LanguageID > 0 && a.Language.ID != 0 && a.Language.ID != row.LanguageID {
			continue
		}
		if row.Condition != "" && !domain.Condition(a.Condition).AtLeast(row.Condition) {
			continue
		}
		if a.IsSigned && !row.Signed {
			continue
		}
		if a.IsAltered && !row.Altered {
			continue
		}
		if a.IsPlayset && !row.Playset {
			continue
		}
		prices = append(prices, a.Price)
	}

	sort.Float64s(prices)
	return prices
}
