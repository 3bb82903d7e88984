package chart

import (
	"math"
	"testing"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeYDomain(t *testing.T) {
	view := TimeRange{Start: date(2015, 1), End: date(2015, 12)}

	tests := []struct {
		name    string
		series  []Series
		focus   string
		mode    Mode
		wantMin float64
		wantMax float64
	}{
		{
			name: "counts padding",
			series: []Series{seriesOf("a",
				Point{date(2015, 1), 10}, Point{date(2015, 2), 20}, Point{date(2015, 3), 30})},
			mode:    ModeCounts,
			wantMin: 8,
			wantMax: 32,
		},
		{
			name:    "share clamps max to 100",
			series:  []Series{seriesOf("a", Point{date(2015, 1), 10}, Point{date(2015, 2), 90})},
			mode:    ModeShare,
			wantMin: 2,
			wantMax: 98,
		},
		{
			name:    "share clamps above 100",
			series:  []Series{seriesOf("a", Point{date(2015, 1), 50}, Point{date(2015, 2), 99})},
			mode:    ModeShare,
			wantMin: 45.1,
			wantMax: 100,
		},
		{
			name:    "counts no values",
			series:  []Series{seriesOf("a")},
			mode:    ModeCounts,
			wantMin: 0,
			wantMax: 1,
		},
		{
			name:    "share no values",
			series:  []Series{seriesOf("a")},
			mode:    ModeShare,
			wantMin: 0,
			wantMax: 100,
		},
		{
			name:    "zero range falls back to max",
			series:  []Series{seriesOf("a", Point{date(2015, 1), 5}, Point{date(2015, 2), 5})},
			mode:    ModeCounts,
			wantMin: 4.5,
			wantMax: 5.5,
		},
		{
			name:    "all zero falls back to one",
			series:  []Series{seriesOf("a", Point{date(2015, 1), 0})},
			mode:    ModeCounts,
			wantMin: 0,
			wantMax: 0.1,
		},
		{
			name: "points outside view ignored",
			series: []Series{seriesOf("a",
				Point{date(2014, 6), 1000}, Point{date(2015, 1), 10}, Point{date(2015, 12), 30}, Point{date(2016, 1), 0})},
			mode:    ModeCounts,
			wantMin: 8,
			wantMax: 32,
		},
		{
			name: "focus selects one series",
			series: []Series{
				seriesOf("a", Point{date(2015, 1), 1000}),
				seriesOf("b", Point{date(2015, 1), 10}, Point{date(2015, 2), 30}),
			},
			focus:   "b",
			mode:    ModeCounts,
			wantMin: 8,
			wantMax: 32,
		},
		{
			name:    "unknown focus has no values",
			series:  []Series{seriesOf("a", Point{date(2015, 1), 10})},
			focus:   "zzz",
			mode:    ModeCounts,
			wantMin: 0,
			wantMax: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := ComputeYDomain(tt.series, tt.focus, view, tt.mode)
			if !approx(y.Min, tt.wantMin) || !approx(y.Max, tt.wantMax) {
				t.Errorf("ComputeYDomain() = {%v, %v}, want {%v, %v}", y.Min, y.Max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestFullExtent(t *testing.T) {
	if _, ok := FullExtent(nil); ok {
		t.Error("expected no extent for no rows")
	}

	rows := []enrollment.Row{
		{Year: 2016, Month: 5},
		{Year: 2014, Month: 2},
		{Year: 2021, Month: 12},
	}
	r, ok := FullExtent(rows)
	if !ok {
		t.Fatal("expected an extent")
	}
	if !r.Start.Equal(date(2014, 2)) || !r.End.Equal(date(2021, 12)) {
		t.Errorf("FullExtent() = %v..%v", r.Start, r.End)
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := TimeRange{Start: date(2015, 1), End: date(2015, 6)}
	if !r.Contains(date(2015, 1)) || !r.Contains(date(2015, 6)) {
		t.Error("bounds should be inclusive")
	}
	if r.Contains(date(2015, 7)) {
		t.Error("2015-07 is outside the range")
	}
}
