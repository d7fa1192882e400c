package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatsSnapshot is one aggregate view of the stock at a point in time.
type StatsSnapshot struct {
	ID              int64        `db:"id"`
	RunID           uuid.UUID    `db:"run_id"`
	TakenAt         time.Time    `db:"taken_at"`
	NbCards         int          `db:"nb_cards"`
	NbFoil          int          `db:"nb_foil"`
	NbNotFoil       int          `db:"nb_not_foil"`
	FoilPercentage  float64      `db:"foil_percentage"`
	NbCardsSup5     int          `db:"nb_cards_sup5"`
	NbCardsInf030   int          `db:"nb_cards_inf030"`
	AvgCardPrice    float64      `db:"avg_card_price"`
	StockTotalValue float64      `db:"stock_total_value"`
	Groups          []StatsGroup `db:"-"`
}

// StatsGroup aggregates the rows sharing one value of a dimension
// (e.g. Condition=NM).
type StatsGroup struct {
	Dimension  string  `db:"dimension"`
	Value      string  `db:"value"`
	TotalCount int     `db:"total_count"`
	TotalValue float64 `db:"total_value"`
	AvgValue   float64 `db:"avg_value"`
	PctCount   float64 `db:"pct_count"`
	PctValue   float64 `db:"pct_value"`
}

// AppliedUpdate records a price written back to the marketplace.
type AppliedUpdate struct {
	RunID         uuid.UUID `db:"run_id"`
	ArticleID     int64     `db:"article_id"`
	ProductID     int64     `db:"product_id"`
	PreviousPrice float64   `db:"previous_price"`
	NewPrice      float64   `db:"new_price"`
	Amount        int       `db:"amount"`
	Comments      string    `db:"comments"`
	AppliedAt     time.Time `db:"applied_at"`
}

// RunStats summarizes one pricing pass.
type RunStats struct {
	RunID    uuid.UUID
	Rows     int
	Priced   int
	Unpriced int
	Failed   int
	Duration time.Duration
}
