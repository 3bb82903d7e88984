// Package dataset reads enrollment rows from CSV (plain or compressed),
// XLSX, PostgreSQL or the local SQLite cache.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

var (
	// ErrUnsupportedFormat is returned for paths whose extension names no
	// known format.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyDataset is returned when no usable row survives loading.
	ErrEmptyDataset = errors.New("dataset has no rows")
)

// Stats summarises what a reader kept and dropped.
type Stats struct {
	Records     int
	Kept        int
	SkippedRows int
	NullCells   int
}

// header maps required columns to record positions.
type header map[string]int

func parseHeader(cols []string) (header, error) {
	h := make(header, len(cols))
	for i, c := range cols {
		// BOM on the first cell of exported CSVs
		c = strings.TrimPrefix(c, "\ufeff")
		h[strings.TrimSpace(c)] = i
	}
	var missing []string
	for _, want := range enrollment.Columns {
		if _, ok := h[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return h, nil
}

func (h header) cell(record []string, col string) string {
	i := h[col]
	if i >= len(record) {
		return ""
	}
	return record[i]
}

// parseRecord converts one record. ok is false when year or month cannot be
// read; counts that are empty or not numbers become nil.
func (h header) parseRecord(record []string, st *Stats) (enrollment.Row, bool) {
	year, errY := parseInt(h.cell(record, enrollment.ColumnYear))
	month, errM := parseInt(h.cell(record, enrollment.ColumnMonth))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return enrollment.Row{}, false
	}

	row := enrollment.Row{
		Region: h.cell(record, enrollment.ColumnState),
		Year:   year,
		Month:  month,
	}
	row.Total = parseCount(h.cell(record, enrollment.ColumnTotal), st)
	row.GroupVIII = parseCount(h.cell(record, enrollment.ColumnGroupVIII), st)
	row.NewlyEligible = parseCount(h.cell(record, enrollment.ColumnNewlyEligible), st)
	return row, true
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	// spreadsheets sometimes store years as 2014.0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

// parseCount reads a nullable count. Empty cells and anything that is not a
// plain number are treated as missing.
func parseCount(s string, st *Stats) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		st.NullCells++
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		st.NullCells++
		return nil
	}
	return &f
}
