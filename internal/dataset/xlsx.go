package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

// ReadXLSX reads enrollment rows from a workbook. An empty sheet name uses
// the first sheet. The header is the first row that contains every required
// column, so title rows above the table are tolerated.
func ReadXLSX(path, sheet string) ([]enrollment.Row, Stats, error) {
	var st Stats

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, st, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, st, ErrEmptyDataset
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, st, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	start := -1
	var h header
	var headerErr error
	for i, rec := range records {
		if isBlank(rec) {
			continue
		}
		h, headerErr = parseHeader(rec)
		if headerErr == nil {
			start = i + 1
			break
		}
	}
	if start < 0 {
		if headerErr == nil {
			return nil, st, ErrEmptyDataset
		}
		return nil, st, headerErr
	}

	var rows []enrollment.Row
	for _, rec := range records[start:] {
		if isBlank(rec) {
			continue
		}
		st.Records++
		row, ok := h.parseRecord(rec, &st)
		if !ok {
			st.SkippedRows++
			continue
		}
		rows = append(rows, row)
	}
	st.Kept = len(rows)
	return rows, st, nil
}

// WriteXLSX saves rows to a new workbook with a single sheet.
func WriteXLSX(path, sheet string, rows []enrollment.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Enrollment"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(enrollment.Columns))
	for i, c := range enrollment.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Region, r.Year, r.Month, cellValue(r.Total), cellValue(r.GroupVIII), cellValue(r.NewlyEligible)}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func cellValue(v *float64) any {
	if !enrollment.Valid(v) {
		return nil
	}
	return *v
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
