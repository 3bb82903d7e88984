package chart

import (
	"time"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

type mapSource map[string][]enrollment.Row

func (m mapSource) Rows(region string) []enrollment.Row {
	return m[region]
}

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// monthlyRows builds n consecutive monthly rows for region starting at
// (year, month) with strictly increasing counts.
func monthlyRows(region string, year, month, n int) []enrollment.Row {
	rows := make([]enrollment.Row, 0, n)
	for i := 0; i < n; i++ {
		d := time.Date(year, time.Month(month+i), 1, 0, 0, 0, 0, time.UTC)
		rows = append(rows, enrollment.Row{
			Region:        region,
			Year:          d.Year(),
			Month:         int(d.Month()),
			Total:         enrollment.Float(float64(1000 + i)),
			GroupVIII:     enrollment.Float(float64(200 + i)),
			NewlyEligible: enrollment.Float(float64(100 + i)),
		})
	}
	return rows
}

func seriesOf(id string, points ...Point) Series {
	return Series{SeriesConfig: SeriesConfig{ID: id, Label: id}, Values: points}
}
