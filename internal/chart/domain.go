package chart

import (
	"math"
	"time"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

// TimeRange is an inclusive [Start, End] interval on the x axis.
type TimeRange struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
}

// Span returns End - Start.
func (r TimeRange) Span() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether t lies within the range, bounds included.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Mid returns the midpoint of the range.
func (r TimeRange) Mid() time.Time {
	return r.Start.Add(r.Span() / 2)
}

// IsZero reports whether the range is unset.
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// YDomain is the value range of the y axis.
type YDomain struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FullExtent returns the min/max date over rows. ok is false for no rows.
func FullExtent(rows []enrollment.Row) (TimeRange, bool) {
	if len(rows) == 0 {
		return TimeRange{}, false
	}
	r := TimeRange{Start: rows[0].Date(), End: rows[0].Date()}
	for _, row := range rows[1:] {
		d := row.Date()
		if d.Before(r.Start) {
			r.Start = d
		}
		if d.After(r.End) {
			r.End = d
		}
	}
	return r, true
}

// ComputeYDomain computes the padded y range for the values visible in
// view. Only the focused series contributes when focus is set.
func ComputeYDomain(all []Series, focus string, view TimeRange, mode Mode) YDomain {
	selected := all
	if focus != "" {
		selected = nil
		if s, ok := findSeries(all, focus); ok {
			selected = []Series{s}
		}
	}

	minVal, maxVal := math.Inf(1), math.Inf(-1)
	found := false
	for _, s := range selected {
		for _, p := range s.Values {
			if !view.Contains(p.Date) {
				continue
			}
			found = true
			minVal = math.Min(minVal, p.Value)
			maxVal = math.Max(maxVal, p.Value)
		}
	}

	if !found {
		if mode == ModeShare {
			return YDomain{Min: 0, Max: 100}
		}
		return YDomain{Min: 0, Max: 1}
	}

	// zero range falls back to the max, then to 1
	valueRange := maxVal - minVal
	if valueRange == 0 {
		valueRange = maxVal
	}
	if valueRange == 0 {
		valueRange = 1
	}
	padding := valueRange * 0.1

	y := YDomain{
		Min: math.Max(0, minVal-padding),
		Max: maxVal + padding,
	}
	if mode == ModeShare {
		y.Max = math.Min(100, y.Max)
	}
	return y
}
