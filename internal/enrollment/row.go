package enrollment

import (
	"math"
	"time"
)

// Source column headers of the published enrollment file.
const (
	ColumnState         = "State"
	ColumnYear          = "Enrollment Year"
	ColumnMonth         = "Enrollment Month"
	ColumnTotal         = "Total Medicaid Enrollees"
	ColumnGroupVIII     = "Total VIII Group Enrollees"
	ColumnNewlyEligible = "Total VIII Group Newly Eligible Enrollees"
)

// Columns lists the required headers in file order.
var Columns = []string{
	ColumnState,
	ColumnYear,
	ColumnMonth,
	ColumnTotal,
	ColumnGroupVIII,
	ColumnNewlyEligible,
}

// Row is one (region, year, month) observation. A nil count means the
// source cell was empty or not a number.
type Row struct {
	Region        string
	Year          int
	Month         int
	Total         *float64
	GroupVIII     *float64
	NewlyEligible *float64
}

// Date returns the first day of the row's month.
func (r Row) Date() time.Time {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Float returns a pointer to v, for building rows.
func Float(v float64) *float64 {
	return &v
}

// Valid reports whether a nullable count holds a usable number.
func Valid(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
