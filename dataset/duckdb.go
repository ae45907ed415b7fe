package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	duckdb "github.com/marcboeker/go-duckdb"
)

var (
	ErrNotOpen = errors.New("reader not open")
)

// Reader loads series from a DuckDB database. DuckDB files are a convenient
// store for tick and bar archives; a single-column query turns any of them
// into a modelling series.
type Reader struct {
	dsn string
	db  *sql.DB
}

// NewReader prepares a reader for the given data source name. An empty dsn
// opens an in-memory database.
func NewReader(dsn string) *Reader {
	return &Reader{dsn: dsn}
}

func (r *Reader) Open() error {
	db, err := sql.Open("duckdb", r.dsn)
	if err != nil {
		return fmt.Errorf("dataset: open %q: %w", r.dsn, err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// Series runs a query that selects exactly one numeric column and returns it
// in row order. DECIMAL columns come back through the driver's exact
// representation, NULL rows are skipped.
func (r *Reader) Series(ctx context.Context, query string, args ...any) ([]float64, error) {
	if r.db == nil {
		return nil, fmt.Errorf("dataset: %w", ErrNotOpen)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dataset: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("dataset: columns: %w", err)
	}
	if len(cols) != 1 {
		return nil, fmt.Errorf("dataset: query selects %d columns, need exactly 1", len(cols))
	}

	var out []float64
	for rows.Next() {
		var cell any
		if err := rows.Scan(&cell); err != nil {
			return nil, fmt.Errorf("dataset: scan row %d: %w", len(out)+1, err)
		}
		if cell == nil {
			continue
		}
		v, err := cellToFloat64(cell)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", len(out)+1, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: rows: %w", err)
	}
	return out, nil
}

func cellToFloat64(cell any) (float64, error) {
	switch v := cell.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case duckdb.Decimal:
		return v.Float64(), nil
	case string:
		return parseDecimal(v)
	case []byte:
		return parseDecimal(string(v))
	default:
		return 0, fmt.Errorf("unsupported column type %T", cell)
	}
}

func parseDecimal(s string) (float64, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	f, ok := d.Float64()
	if !ok {
		return 0, fmt.Errorf("%q does not fit float64", s)
	}
	return f, nil
}
