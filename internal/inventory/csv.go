package inventory

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"mpu/internal/domain"
)

// ParseCSV reads a stock table with the given field separator.
func ParseCSV(r io.Reader, comma rune) ([]domain.StockRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return Decode(records)
}

// ReadCSVFile reads a stock table from disk. The separator is ';' when the
// header line holds more of them than commas, ',' otherwise.
func ReadCSVFile(path string) ([]domain.StockRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stock file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	header, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("read stock file: %w", err)
	}
	if i := bytes.IndexByte(header, '\n'); i >= 0 {
		header = header[:i]
	}

	comma := ','
	if bytes.Count(header, []byte{';'}) > bytes.Count(header, []byte{','}) {
		comma = ';'
	}

	rows, err := ParseCSV(br, comma)
	if err != nil {
		return nil, fmt.Errorf("parse stock file %s: %w", path, err)
	}
	return rows, nil
}
