// Package sheet persists inventories and stock statistics as xlsx workbooks.
package sheet

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"mpu/internal/domain"
	"mpu/internal/inventory"
)

const inventorySheet = "Sheet1"

type columnFormat struct {
	hidden bool
	width  float64
	color  string
}

var inventoryFormats = map[string]columnFormat{
	inventory.ColArticleID:      {hidden: true},
	inventory.ColLocalName:      {hidden: true},
	inventory.ColEnglishName:    {width: 30},
	inventory.ColExpansionName:  {hidden: true},
	inventory.ColSigned:         {hidden: true},
	inventory.ColPlayset:        {hidden: true},
	inventory.ColAltered:        {hidden: true},
	inventory.ColCurrencyID:     {hidden: true},
	inventory.ColCurrencyCode:   {hidden: true},
	inventory.ColPrice:          {color: "949494"},
	inventory.ColSuggestedPrice: {color: "949494"},
	inventory.ColPriceApproval:  {color: "F0F8FF"},
}

type Store struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	return &Store{logger: logger.With("component", "sheet")}
}

// SaveInventory writes the priced inventory to path, replacing any file.
func (s *Store) SaveInventory(path string, rows []domain.StockRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeTable(f, inventorySheet, inventory.Names(inventory.PricedColumns), len(rows), func(i int) []any {
		return inventory.Values(&rows[i], inventory.PricedColumns)
	}); err != nil {
		return err
	}

	if err := applyFormats(f, inventorySheet, inventory.Names(inventory.PricedColumns), inventoryFormats); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save inventory workbook: %w", err)
	}

	s.logger.Info("inventory saved", "path", path, "rows", len(rows))
	return nil
}

// LoadInventory reads back a workbook written by SaveInventory, possibly
// edited by hand.
func (s *Store) LoadInventory(path string) ([]domain.StockRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory workbook: %w", err)
	}
	defer f.Close()

	records, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read inventory rows: %w", err)
	}

	rows, err := inventory.Decode(records)
	if err != nil {
		return nil, fmt.Errorf("decode inventory %s: %w", path, err)
	}

	s.logger.Info("inventory loaded", "path", path, "rows", len(rows))
	return rows, nil
}

func writeTable(f *excelize.File, sheet string, header []string, n int, row func(i int) []any) error {
	headerCells := toAny(header)
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return nil
}

func applyFormats(f *excelize.File, sheet string, header []string, formats map[string]columnFormat) error {
	for i, name := range header {
		format, ok := formats[name]
		if !ok {
			continue
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if format.hidden {
			if err := f.SetColVisible(sheet, col, false); err != nil {
				return fmt.Errorf("hide column %s: %w", name, err)
			}
		}
		if format.width > 0 {
			if err := f.SetColWidth(sheet, col, col, format.width); err != nil {
				return fmt.Errorf("set width of column %s: %w", name, err)
			}
		}
		if format.color != "" {
			style, err := f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{format.color}},
			})
			if err != nil {
				return fmt.Errorf("create style: %w", err)
			}
			if err := f.SetColStyle(sheet, col, style); err != nil {
				return fmt.Errorf("color column %s: %w", name, err)
			}
		}
	}
	return nil
}
