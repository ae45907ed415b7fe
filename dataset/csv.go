// Package dataset loads series from CSV files and DuckDB databases.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/govalues/decimal"

	"github.com/krfricke/arima"
)

type csvConfig struct {
	header    bool
	column    string
	index     int
	delimiter rune
}

type CSVOption func(*csvConfig)

// WithoutHeader treats the first row as data. Column selection then falls
// back to position, defaulting to the first column.
func WithoutHeader() CSVOption {
	return func(c *csvConfig) {
		c.header = false
	}
}

// WithColumn selects the value column by header name.
func WithColumn(name string) CSVOption {
	return func(c *csvConfig) {
		c.column = name
	}
}

// WithColumnIndex selects the value column by zero-based position.
func WithColumnIndex(i int) CSVOption {
	return func(c *csvConfig) {
		c.index = i
	}
}

// WithDelimiter changes the field delimiter, for semicolon or tab files.
func WithDelimiter(r rune) CSVOption {
	return func(c *csvConfig) {
		c.delimiter = r
	}
}

// ReadCSV extracts one numeric column as a series. By default the file is
// expected to carry a header row and the last column is read, matching the
// common "ds,y" layout of forecasting datasets. Blank cells and NA markers
// are skipped; values are parsed as exact decimals before the float64
// conversion.
func ReadCSV(r io.Reader, opts ...CSVOption) ([]float64, error) {
	cfg := csvConfig{header: true, index: -1, delimiter: ','}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.column != "" && !cfg.header {
		return nil, fmt.Errorf("dataset: column %q needs a header row: %w", cfg.column, arima.ErrInvalidParameters)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.delimiter
	cr.TrimLeadingSpace = true

	idx := cfg.index
	if cfg.header {
		hdr, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("dataset: read header: %w", err)
		}
		if cfg.column != "" {
			idx = -1
			for i, h := range hdr {
				if strings.TrimSpace(h) == cfg.column {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, fmt.Errorf("dataset: column %q not found: %w", cfg.column, arima.ErrInvalidParameters)
			}
		} else if idx < 0 {
			idx = len(hdr) - 1
		}
	} else if idx < 0 {
		idx = 0
	}

	var out []float64
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", row, err)
		}
		if idx >= len(rec) {
			return nil, fmt.Errorf("dataset: row %d has %d columns, need %d: %w",
				row, len(rec), idx+1, arima.ErrInvalidParameters)
		}

		cell := strings.TrimSpace(rec[idx])
		if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
			continue
		}
		dec, err := decimal.Parse(cell)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: parse %q: %w", row, cell, err)
		}
		f, ok := dec.Float64()
		if !ok {
			return nil, fmt.Errorf("dataset: row %d: %q does not fit float64: %w",
				row, cell, arima.ErrNumericalInstability)
		}
		out = append(out, f)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("dataset: no usable values: %w", arima.ErrInsufficientData)
	}
	return out, nil
}

// LoadCSV reads a series from a file on disk.
func LoadCSV(path string, opts ...CSVOption) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, opts...)
}
