package enrollment

import "fmt"

// Default year bounds applied at load time.
const (
	DefaultMinYear = 2014
	DefaultMaxYear = 2021
)

// YearRange bounds the enrollment years kept in a Dataset, inclusive.
type YearRange struct {
	Min int
	Max int
}

// DefaultYearRange returns the 2014–2021 range.
func DefaultYearRange() YearRange {
	return YearRange{Min: DefaultMinYear, Max: DefaultMaxYear}
}

// Contains reports whether year lies within the range.
func (yr YearRange) Contains(year int) bool {
	return year >= yr.Min && year <= yr.Max
}

// Validate checks the range is well formed.
func (yr YearRange) Validate() error {
	if yr.Min > yr.Max {
		return fmt.Errorf("min year %d is after max year %d", yr.Min, yr.Max)
	}
	return nil
}

// Dataset is the loaded, read-only set of rows grouped by canonical region.
// It is built once and never mutated, so it can be shared freely.
type Dataset struct {
	rows     []Row
	byRegion map[string][]Row
	regions  []string
	years    YearRange
}

// NewDataset normalizes region names, drops rows outside years and groups
// the remainder by region. Input order within a region is preserved.
func NewDataset(rows []Row, years YearRange) *Dataset {
	ds := &Dataset{
		rows:     make([]Row, 0, len(rows)),
		byRegion: make(map[string][]Row),
		years:    years,
	}

	var names []string
	for _, r := range rows {
		if !years.Contains(r.Year) {
			continue
		}
		r.Region = NormalizeName(r.Region)
		ds.rows = append(ds.rows, r)
		if _, seen := ds.byRegion[r.Region]; !seen {
			names = append(names, r.Region)
		}
		ds.byRegion[r.Region] = append(ds.byRegion[r.Region], r)
	}
	ds.regions = SortRegions(names)

	return ds
}

// Rows returns the rows for one region. Callers must not modify the slice.
func (d *Dataset) Rows(region string) []Row {
	return d.byRegion[region]
}

// All returns every row kept by the dataset. Callers must not modify it.
func (d *Dataset) All() []Row {
	return d.rows
}

// Regions returns the canonical regions in selector order.
func (d *Dataset) Regions() []string {
	out := make([]string, len(d.regions))
	copy(out, d.regions)
	return out
}

// HasRegion reports whether the dataset contains rows for region.
func (d *Dataset) HasRegion(region string) bool {
	_, ok := d.byRegion[region]
	return ok
}

// Len returns the number of rows kept.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Years returns the year bounds the dataset was built with.
func (d *Dataset) Years() YearRange {
	return d.years
}
