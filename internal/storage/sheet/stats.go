package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"slices"
	"time"

	"github.com/xuri/excelize/v2"

	"mpu/internal/domain"
)

const (
	shortStatsSheet = "Sheet1"
	largeStatsSheet = "large_stats"

	// TimestampLayout is how snapshot times are written to the workbook.
	TimestampLayout = "2006-01-02T15:04:05"
)

var ErrMalformedStats = errors.New("malformed stats workbook")

var shortStatsHeader = []string{
	"datetime",
	"NbCards",
	"NbFoil",
	"NbNotFoil",
	"FoilPercentage",
	"NbCardsSup5",
	"NbCardsInf0.30",
	"AvgCardPrice",
	"StockTotalValue",
}

var largeStatsHeader = []string{
	"datetime",
	"Dimension",
	"Value",
	"TNb",
	"TVal",
	"AvgVal",
	"%(Nb)",
	"%(Val)",
}

var shortStatsFormats = map[string]columnFormat{
	"datetime":        {width: 20},
	"NbCards":         {width: 9},
	"NbFoil":          {width: 9},
	"NbNotFoil":       {width: 11},
	"FoilPercentage":  {width: 15},
	"NbCardsSup5":     {width: 13},
	"NbCardsInf0.30":  {width: 15},
	"AvgCardPrice":    {width: 14},
	"StockTotalValue": {width: 16},
}

var largeStatsFormats = map[string]columnFormat{
	"datetime":  {width: 20},
	"Dimension": {width: 16},
	"Value":     {width: 12},
}

// AppendStats adds the snapshot to the stats workbook at path, creating the
// workbook when it does not exist. An existing workbook whose layout is not
// the expected one is left untouched and ErrMalformedStats is returned.
func (s *Store) AppendStats(path string, snapshot *domain.StatsSnapshot) error {
	f, created, err := openOrCreate(path)
	if err != nil {
		return err
	}
	defer f.Close()

	shortNext, err := nextRow(f, shortStatsSheet, shortStatsHeader, created)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	largeNext, err := nextRow(f, largeStatsSheet, largeStatsHeader, created)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	takenAt := snapshot.TakenAt.Format(TimestampLayout)

	short := []any{
		takenAt,
		snapshot.NbCards,
		snapshot.NbFoil,
		snapshot.NbNotFoil,
		round2(snapshot.FoilPercentage),
		snapshot.NbCardsSup5,
		snapshot.NbCardsInf030,
		round2(snapshot.AvgCardPrice),
		round2(snapshot.StockTotalValue),
	}
	if err := setRow(f, shortStatsSheet, shortNext, short); err != nil {
		return err
	}

	for i, g := range snapshot.Groups {
		large := []any{
			takenAt,
			g.Dimension,
			g.Value,
			g.TotalCount,
			round2(g.TotalValue),
			round2(g.AvgValue),
			round2(g.PctCount),
			round2(g.PctValue),
		}
		if err := setRow(f, largeStatsSheet, largeNext+i, large); err != nil {
			return err
		}
	}

	if created {
		if err := applyFormats(f, shortStatsSheet, shortStatsHeader, shortStatsFormats); err != nil {
			return err
		}
		if err := applyFormats(f, largeStatsSheet, largeStatsHeader, largeStatsFormats); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save stats workbook: %w", err)
	}

	s.logger.Info("stats saved", "path", path, "groups", len(snapshot.Groups))
	return nil
}

func openOrCreate(path string) (*excelize.File, bool, error) {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return excelize.NewFile(), true, nil
	case err != nil:
		return nil, false, fmt.Errorf("stat stats workbook: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("open stats workbook: %w", err)
	}
	return f, false, nil
}

// nextRow validates the sheet layout and returns the first free row number.
func nextRow(f *excelize.File, sheet string, header []string, created bool) (int, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		if !created {
			return 0, fmt.Errorf("%w: sheet %q is missing", ErrMalformedStats, sheet)
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return 0, fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		if !created {
			return 0, fmt.Errorf("%w: sheet %q is empty", ErrMalformedStats, sheet)
		}
		if err := setRow(f, sheet, 1, toAny(header)); err != nil {
			return 0, err
		}
		return 2, nil
	}

	if !slices.Equal(rows[0], header) {
		return 0, fmt.Errorf("%w: unexpected header in sheet %q", ErrMalformedStats, sheet)
	}
	for i, r := range rows[1:] {
		if len(r) == 0 {
			continue
		}
		if _, err := time.Parse(TimestampLayout, r[0]); err != nil {
			return 0, fmt.Errorf("%w: row %d of sheet %q has no valid datetime", ErrMalformedStats, i+2, sheet)
		}
	}
	return len(rows) + 1, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of sheet %s: %w", row, sheet, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
