package cardmarket

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"

	"mpu/internal/domain"
	"mpu/internal/inventory"
)

// StockSeparator is the field separator of the marketplace stock export.
const StockSeparator = ';'

// DecodeStockFile turns the base64 gzip payload of stock/file into rows.
func DecodeStockFile(encoded string) ([]domain.StockRow, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64 stock: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open gzip stock: %w", err)
	}
	defer zr.Close()

	rows, err := inventory.ParseCSV(zr, StockSeparator)
	if err != nil {
		return nil, fmt.Errorf("parse stock: %w", err)
	}
	return rows, nil
}
