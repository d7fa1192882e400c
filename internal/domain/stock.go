package domain

import (
	"math"
	"strings"
)

// ManualPriceMarker tags rows whose price was pinned by hand.
const ManualPriceMarker = "<M>"

// StockRow is one listing of the seller's stock.
type StockRow struct {
	ArticleID     int64
	ProductID     int64
	EnglishName   string
	LocalName     string
	Expansion     string
	ExpansionName string
	Price         float64
	LanguageID    int
	Condition     Condition
	Foil          bool
	Signed        bool
	Playset       bool
	Altered       bool
	Comments      string
	Amount        int
	OnSale        bool
	CurrencyID    int
	CurrencyCode  string

	ManualPrice       *float64
	SuggestedPrice    float64 // NaN when no price could be resolved
	PriceApproval     int
	RelativePriceDiff float64
}

// NewStockRow returns a row with no suggested price yet.
func NewStockRow() StockRow {
	return StockRow{
		SuggestedPrice:    math.NaN(),
		RelativePriceDiff: math.NaN(),
	}
}

func (r StockRow) HasSuggestedPrice() bool {
	return !math.IsNaN(r.SuggestedPrice)
}

func (r StockRow) HasManualMarker() bool {
	return strings.Contains(r.Comments, ManualPriceMarker)
}

// Approved reports whether the row can be written back without review.
func (r StockRow) Approved() bool {
	return r.PriceApproval == 1
}

// RelativeDiff returns (suggested-current)/current in percent, rounded to two
// decimals. It is NaN when either price is missing or current is zero.
func RelativeDiff(current, suggested float64) float64 {
	if math.IsNaN(current) || math.IsNaN(suggested) || current == 0 {
		return math.NaN()
	}
	return math.Round((suggested-current)/current*100*100) / 100
}

// PriceUpdate is one record of a batched price write.
type PriceUpdate struct {
	ArticleID int64
	Comments  string
	Count     int
	Price     float64
}

// UpdateFromRow builds the write record for an approved row.
func UpdateFromRow(r StockRow) PriceUpdate {
	return PriceUpdate{
		ArticleID: r.ArticleID,
		Comments:  r.Comments,
		Count:     r.Amount,
		Price:     r.SuggestedPrice,
	}
}
