package chart

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Granularity is the x-axis tick interval.
type Granularity string

const (
	// GranularityQuarter ticks every third month.
	GranularityQuarter Granularity = "quarter"
	// GranularityYear ticks every January.
	GranularityYear Granularity = "year"
)

// Tick label layouts.
const (
	MonthTickLayout = "Jan 2006"
	YearTickLayout  = "2006"
)

// monthTickThreshold is the widest view, in 30-day months, that still gets
// month ticks.
const monthTickThreshold = 18

// YTickCount is the number of y ticks requested from the tick generator.
const YTickCount = 6

// TimeTick is one labelled x-axis tick.
type TimeTick struct {
	At    time.Time `yaml:"at"`
	Label string    `yaml:"label"`
}

// ValueTick is one labelled y-axis tick.
type ValueTick struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

// XAxis describes the x-axis for a view.
type XAxis struct {
	Granularity Granularity `yaml:"granularity"`
	Layout      string      `yaml:"layout"`
	Ticks       []TimeTick  `yaml:"ticks"`
}

// Format formats t with the axis' label layout.
func (a XAxis) Format(t time.Time) string {
	return t.UTC().Format(a.Layout)
}

// GranularityFor picks tick granularity from the view span.
func GranularityFor(view TimeRange) Granularity {
	months := float64(view.Span()) / float64(30*24*time.Hour)
	if months <= monthTickThreshold {
		return GranularityQuarter
	}
	return GranularityYear
}

// BuildXAxis computes the ticks for view.
func BuildXAxis(view TimeRange) XAxis {
	axis := XAxis{Granularity: GranularityFor(view)}

	start := view.Start.UTC()
	var t time.Time
	step := func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }
	if axis.Granularity == GranularityQuarter {
		axis.Layout = MonthTickLayout
		// first month boundary on Jan/Apr/Jul/Oct not before start
		month := int(start.Month()) - 1
		t = time.Date(start.Year(), time.Month(month-month%3+1), 1, 0, 0, 0, 0, time.UTC)
		if t.Before(start) {
			t = t.AddDate(0, 3, 0)
		}
		step = func(t time.Time) time.Time { return t.AddDate(0, 3, 0) }
	} else {
		axis.Layout = YearTickLayout
		t = time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		if t.Before(start) {
			t = t.AddDate(1, 0, 0)
		}
	}

	for ; !t.After(view.End); t = step(t) {
		axis.Ticks = append(axis.Ticks, TimeTick{At: t, Label: t.Format(axis.Layout)})
	}
	return axis
}

// BuildYTicks returns roughly count evenly spaced, round-valued ticks
// covering y, labelled for mode.
func BuildYTicks(y YDomain, count int, mode Mode) []ValueTick {
	values := niceTicks(y.Min, y.Max, count)
	ticks := make([]ValueTick, len(values))
	for i, v := range values {
		ticks[i] = ValueTick{Value: v, Label: FormatYValue(v, mode)}
	}
	return ticks
}

// FormatYValue formats an axis value: percentages for share mode, SI
// abbreviations with two significant digits for counts.
func FormatYValue(v float64, mode Mode) string {
	if mode == ModeShare {
		return strconv.FormatFloat(v, 'f', -1, 64) + "%"
	}
	return formatSI(v)
}

func formatSI(v float64) string {
	if v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
		scale := math.Pow(10, math.Floor(math.Log10(math.Abs(v)))-1)
		v = math.Round(v/scale) * scale
	}
	value, prefix := humanize.ComputeSI(v)
	abs := math.Abs(value)
	switch {
	case abs >= 10:
		return fmt.Sprintf("%.0f%s", value, prefix)
	default:
		return fmt.Sprintf("%.1f%s", value, prefix)
	}
}

// niceTicks generates ticks at multiples of 1, 2, 5 or 10 times a power of
// ten between start and stop.
func niceTicks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) || math.IsNaN(inc) {
		return nil
	}

	var ticks []float64
	if inc > 0 {
		lo, hi := math.Ceil(start/inc), math.Floor(stop/inc)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i*inc)
		}
	} else {
		inc = -inc
		lo, hi := math.Ceil(start*inc), math.Floor(stop*inc)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i/inc)
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// tickIncrement returns the tick step, or its negated reciprocal when the
// step is below one (keeps the multiplication exact for small steps).
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case errRatio >= math.Sqrt(50):
		factor = 10
	case errRatio >= math.Sqrt(10):
		factor = 5
	case errRatio >= math.Sqrt(2):
		factor = 2
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}
