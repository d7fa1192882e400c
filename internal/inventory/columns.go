// Package inventory maps stock rows to and from the tabular layout of the
// marketplace stock export.
package inventory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mpu/internal/domain"
)

// Column is one named column of the stock table.
type Column struct {
	Name string
	get  func(r *domain.StockRow) any
	set  func(r *domain.StockRow, v string) error
}

// Value returns the cell value of the column for r. Unset prices are nil.
func (c Column) Value(r *domain.StockRow) any {
	return c.get(r)
}

const (
	ColArticleID         = "idArticle"
	ColProductID         = "idProduct"
	ColEnglishName       = "English Name"
	ColLocalName         = "Local Name"
	ColExpansion         = "Exp."
	ColExpansionName     = "Exp. Name"
	ColPrice             = "Price"
	ColLanguage          = "Language"
	ColCondition         = "Condition"
	ColFoil              = "Foil?"
	ColSigned            = "Signed?"
	ColPlayset           = "Playset?"
	ColAltered           = "Altered?"
	ColComments          = "Comments"
	ColAmount            = "Amount"
	ColOnSale            = "onSale"
	ColCurrencyID        = "idCurrency"
	ColCurrencyCode      = "Currency Code"
	ColManualPrice       = "ManualPrice"
	ColSuggestedPrice    = "SuggestedPrice"
	ColPriceApproval     = "PriceApproval"
	ColRelativePriceDiff = "RelativePriceDiff"
)

// StockColumns is the layout of the marketplace stock export.
var StockColumns = []Column{
	{ColArticleID, func(r *domain.StockRow) any { return r.ArticleID }, setInt64(func(r *domain.StockRow) *int64 { return &r.ArticleID })},
	{ColProductID, func(r *domain.StockRow) any { return r.ProductID }, setInt64(func(r *domain.StockRow) *int64 { return &r.ProductID })},
	{ColEnglishName, func(r *domain.StockRow) any { return r.EnglishName }, setString(func(r *domain.StockRow) *string { return &r.EnglishName })},
	{ColLocalName, func(r *domain.StockRow) any { return r.LocalName }, setString(func(r *domain.StockRow) *string { return &r.LocalName })},
	{ColExpansion, func(r *domain.StockRow) any { return r.Expansion }, setString(func(r *domain.StockRow) *string { return &r.Expansion })},
	{ColExpansionName, func(r *domain.StockRow) any { return r.ExpansionName }, setString(func(r *domain.StockRow) *string { return &r.ExpansionName })},
	{ColPrice, func(r *domain.StockRow) any { return r.Price }, setFloat(func(r *domain.StockRow) *float64 { return &r.Price })},
	{ColLanguage, func(r *domain.StockRow) any { return r.LanguageID }, setInt(func(r *domain.StockRow) *int { return &r.LanguageID })},
	{ColCondition, func(r *domain.StockRow) any { return string(r.Condition) }, setCondition},
	{ColFoil, func(r *domain.StockRow) any { return flag(r.Foil) }, setFlag(func(r *domain.StockRow) *bool { return &r.Foil })},
	{ColSigned, func(r *domain.StockRow) any { return flag(r.Signed) }, setFlag(func(r *domain.StockRow) *bool { return &r.Signed })},
	{ColPlayset, func(r *domain.StockRow) any { return flag(r.Playset) }, setFlag(func(r *domain.StockRow) *bool { return &r.Playset })},
	{ColAltered, func(r *domain.StockRow) any { return flag(r.Altered) }, setFlag(func(r *domain.StockRow) *bool { return &r.Altered })},
	{ColComments, func(r *domain.StockRow) any { return r.Comments }, setString(func(r *domain.StockRow) *string { return &r.Comments })},
	{ColAmount, func(r *domain.StockRow) any { return r.Amount }, setInt(func(r *domain.StockRow) *int { return &r.Amount })},
	{ColOnSale, func(r *domain.StockRow) any { return boolInt(r.OnSale) }, setFlag(func(r *domain.StockRow) *bool { return &r.OnSale })},
	{ColCurrencyID, func(r *domain.StockRow) any { return r.CurrencyID }, setInt(func(r *domain.StockRow) *int { return &r.CurrencyID })},
	{ColCurrencyCode, func(r *domain.StockRow) any { return r.CurrencyCode }, setString(func(r *domain.StockRow) *string { return &r.CurrencyCode })},
}

// PricedColumns is the layout of the reviewed inventory: the stock export
// followed by the pricing columns.
var PricedColumns = append(append([]Column{}, StockColumns...),
	Column{ColManualPrice, getManualPrice, setManualPrice},
	Column{ColSuggestedPrice, func(r *domain.StockRow) any { return nanToNil(r.SuggestedPrice) }, setOptionalFloat(func(r *domain.StockRow) *float64 { return &r.SuggestedPrice })},
	Column{ColPriceApproval, func(r *domain.StockRow) any { return r.PriceApproval }, setInt(func(r *domain.StockRow) *int { return &r.PriceApproval })},
	Column{ColRelativePriceDiff, func(r *domain.StockRow) any { return nanToNil(r.RelativePriceDiff) }, setOptionalFloat(func(r *domain.StockRow) *float64 { return &r.RelativePriceDiff })},
)

// Names returns the header line for cols.
func Names(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// Values returns the cells of r in the order of cols.
func Values(r *domain.StockRow, cols []Column) []any {
	values := make([]any, len(cols))
	for i, c := range cols {
		values[i] = c.Value(r)
	}
	return values
}

// Decode turns a header line followed by records into stock rows. Columns
// that are not known are ignored, missing ones keep their zero value.
func Decode(records [][]string) ([]domain.StockRow, error) {
	if len(records) == 0 {
		return nil, nil
	}

	byName := make(map[string]Column, len(PricedColumns))
	for _, c := range PricedColumns {
		byName[c.Name] = c
	}

	header := records[0]
	cols := make([]*Column, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if c, ok := byName[name]; ok {
			cols[i] = &c
			seen[name] = true
		}
	}
	for _, required := range []string{ColArticleID, ColProductID, ColPrice} {
		if !seen[required] {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	rows := make([]domain.StockRow, 0, len(records)-1)
	for line, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := domain.NewStockRow()
		for i, value := range rec {
			if i >= len(cols) || cols[i] == nil {
				continue
			}
			if err := cols[i].set(&row, strings.TrimSpace(value)); err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line+2, cols[i].Name, err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func flag(b bool) string {
	if b {
		return "X"
	}
	return ""
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nanToNil(f float64) any {
	if math.IsNaN(f) {
		return nil
	}
	return f
}

func getManualPrice(r *domain.StockRow) any {
	if r.ManualPrice == nil {
		return nil
	}
	return *r.ManualPrice
}

func setManualPrice(r *domain.StockRow, v string) error {
	if v == "" {
		r.ManualPrice = nil
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	r.ManualPrice = &f
	return nil
}

func setCondition(r *domain.StockRow, v string) error {
	if v == "" {
		return nil
	}
	c, err := domain.ParseCondition(v)
	if err != nil {
		return err
	}
	r.Condition = c
	return nil
}

func setString(field func(*domain.StockRow) *string) func(*domain.StockRow, string) error {
	return func(r *domain.StockRow, v string) error {
		*field(r) = v
		return nil
	}
}

func setFlag(field func(*domain.StockRow) *bool) func(*domain.StockRow, string) error {
	return func(r *domain.StockRow, v string) error {
		*field(r) = v != "" && v != "0"
		return nil
	}
}

func setInt(field func(*domain.StockRow) *int) func(*domain.StockRow, string) error {
	return func(r *domain.StockRow, v string) error {
		if v == "" {
			*field(r) = 0
			return nil
		}
		// spreadsheets hand integers back as "1" or "1.0"
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(r) = int(f)
		return nil
	}
}

func setInt64(field func(*domain.StockRow) *int64) func(*domain.StockRow, string) error {
	return func(r *domain.StockRow, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*field(r) = n
		return nil
	}
}

func setFloat(field func(*domain.StockRow) *float64) func(*domain.StockRow, string) error {
	return func(r *domain.StockRow, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(r) = f
		return nil
	}
}

func setOptionalFloat(field func(*domain.StockRow) *float64) func(*domain.StockRow, string) error {
	return func(r *domain.StockRow, v string) error {
		if v == "" {
			*field(r) = math.NaN()
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(r) = f
		return nil
	}
}
