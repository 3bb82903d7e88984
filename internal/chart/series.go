package chart

import (
	"math"
	"sort"
	"time"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

// Series ids.
const (
	SeriesTotal      = "total"
	SeriesVIII       = "viii"
	SeriesNewly      = "newly"
	SeriesShareVIII  = "share_viii"
	SeriesShareNewly = "share_newly"
)

// SeriesConfig describes a series' identity and legend appearance.
type SeriesConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

var countsConfig = []SeriesConfig{
	{ID: SeriesTotal, Label: "Total Medicaid enrollees", Color: "#1f77b4"},
	{ID: SeriesVIII, Label: "VIII group enrollees", Color: "#ff7f0e"},
	{ID: SeriesNewly, Label: "Newly eligible VIII enrollees", Color: "#2ca02c"},
}

var shareConfig = []SeriesConfig{
	{ID: SeriesShareVIII, Label: "VIII group ÷ Total Medicaid", Color: "#ff7f0e"},
	{ID: SeriesShareNewly, Label: "Newly eligible VIII ÷ Total Medicaid", Color: "#2ca02c"},
}

// Configs returns the series configuration for a mode, in display order.
func Configs(mode Mode) []SeriesConfig {
	src := countsConfig
	if mode == ModeShare {
		src = shareConfig
	}
	out := make([]SeriesConfig, len(src))
	copy(out, src)
	return out
}

// Point is one observation of a series.
type Point struct {
	Date  time.Time `yaml:"date"`
	Value float64   `yaml:"value"`
}

// Series is a named, colored sequence of points sorted ascending by date.
type Series struct {
	SeriesConfig `yaml:",inline"`
	Values       []Point `yaml:"values"`
}

// ValueAt returns the value recorded at exactly t.
func (s Series) ValueAt(t time.Time) (float64, bool) {
	i := sort.Search(len(s.Values), func(i int) bool {
		return !s.Values[i].Date.Before(t)
	})
	if i < len(s.Values) && s.Values[i].Date.Equal(t) {
		return s.Values[i].Value, true
	}
	return 0, false
}

// DeriveSeries turns one region's rows into the series for mode. Rows are
// sorted by date on a copy; points without a usable value are dropped.
func DeriveSeries(rows []enrollment.Row, mode Mode) []Series {
	sorted := make([]enrollment.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().Before(sorted[j].Date())
	})

	var pick []func(enrollment.Row) *float64
	if mode == ModeShare {
		pick = []func(enrollment.Row) *float64{
			func(r enrollment.Row) *float64 { return share(r.GroupVIII, r.Total) },
			func(r enrollment.Row) *float64 { return share(r.NewlyEligible, r.Total) },
		}
	} else {
		pick = []func(enrollment.Row) *float64{
			func(r enrollment.Row) *float64 { return r.Total },
			func(r enrollment.Row) *float64 { return r.GroupVIII },
			func(r enrollment.Row) *float64 { return r.NewlyEligible },
		}
	}

	configs := Configs(mode)
	series := make([]Series, len(configs))
	for i, cfg := range configs {
		values := make([]Point, 0, len(sorted))
		for _, r := range sorted {
			v := pick[i](r)
			if !enrollment.Valid(v) {
				continue
			}
			values = append(values, Point{Date: r.Date(), Value: *v})
		}
		series[i] = Series{SeriesConfig: cfg, Values: values}
	}
	return series
}

// share computes num/den*100. Both operands must be present and non-zero;
// a zero numerator is treated as missing, not as a 0% share.
func share(num, den *float64) *float64 {
	if !enrollment.Valid(num) || !enrollment.Valid(den) || *num == 0 || *den == 0 {
		return nil
	}
	v := *num / *den * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// findSeries returns the series with id.
func findSeries(series []Series, id string) (Series, bool) {
	for _, s := range series {
		if s.ID == id {
			return s, true
		}
	}
	return Series{}, false
}
