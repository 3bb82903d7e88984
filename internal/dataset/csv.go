package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/willibrandon/enrollview/internal/enrollment"
	"github.com/willibrandon/enrollview/internal/logger"
)

// ReadCSV reads enrollment rows from a CSV stream with a header line.
// Records with an unreadable year or month are skipped and counted.
func ReadCSV(r io.Reader) ([]enrollment.Row, Stats, error) {
	var st Stats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	first, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, st, ErrEmptyDataset
	}
	if err != nil {
		return nil, st, fmt.Errorf("failed to read header: %w", err)
	}
	h, err := parseHeader(first)
	if err != nil {
		return nil, st, err
	}

	var rows []enrollment.Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, st, fmt.Errorf("failed to read record %d: %w", st.Records+1, err)
		}
		st.Records++

		row, ok := h.parseRecord(record, &st)
		if !ok {
			st.SkippedRows++
			line, _ := cr.FieldPos(0)
			logger.Debug("Skipping CSV record", "line", line)
			continue
		}
		rows = append(rows, row)
	}
	st.Kept = len(rows)
	return rows, st, nil
}

// WriteCSV writes rows with the standard header. Missing counts are left
// empty.
func WriteCSV(w io.Writer, rows []enrollment.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(enrollment.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Region,
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Month),
			formatCount(r.Total),
			formatCount(r.GroupVIII),
			formatCount(r.NewlyEligible),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCount(v *float64) string {
	if !enrollment.Valid(v) {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
