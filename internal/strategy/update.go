package strategy

import (
	"fmt"
	"math"

	"mpu/internal/config"
	"mpu/internal/domain"
)

type initialOptions struct {
	Floor float64 `yaml:"floor"`
}

// Initial rounds suggested prices to cents and keeps them above a floor.
type Initial struct {
	floor float64
}

func newInitial(cfg config.StrategyConfig) (PriceUpdate, error) {
	opts := initialOptions{Floor: 0.02}
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	return &Initial{floor: opts.Floor}, nil
}

func (s *Initial) Name() string {
	return "initial"
}

func (s *Initial) DeriveColumns(rows []domain.StockRow) ([]domain.StockRow, error) {
	out := make([]domain.StockRow, len(rows))
	for i, r := range rows {
		if r.HasSuggestedPrice() {
			r.SuggestedPrice = math.Max(math.Round(r.SuggestedPrice*100)/100, s.floor)
			r.RelativePriceDiff = domain.RelativeDiff(r.Price, r.SuggestedPrice)
		}
		out[i] = r
	}
	return out, nil
}

type boundedOptions struct {
	Floor           float64 `yaml:"floor"`
	MaxRelativeDiff float64 `yaml:"max_relative_diff"`
}

// Bounded behaves like Initial and withdraws the approval of rows whose
// price moves by more than the allowed percentage.
type Bounded struct {
	initial         Initial
	maxRelativeDiff float64
}

func newBounded(cfg config.StrategyConfig) (PriceUpdate, error) {
	opts := boundedOptions{Floor: 0.02, MaxRelativeDiff: 50}
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if opts.MaxRelativeDiff <= 0 {
		return nil, fmt.Errorf("bounded: max_relative_diff must be positive, got %v", opts.MaxRelativeDiff)
	}
	return &Bounded{
		initial:         Initial{floor: opts.Floor},
		maxRelativeDiff: opts.MaxRelativeDiff,
	}, nil
}

func (s *Bounded) Name() string {
	return "bounded"
}

func (s *Bounded) DeriveColumns(rows []domain.StockRow) ([]domain.StockRow, error) {
	out, err := s.initial.DeriveColumns(rows)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if diff := out[i].RelativePriceDiff; !math.IsNaN(diff) && math.Abs(diff) > s.maxRelativeDiff {
			out[i].PriceApproval = 0
		}
	}
	return out, nil
}
