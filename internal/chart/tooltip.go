package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

// TooltipDateLayout formats the tooltip header date.
const TooltipDateLayout = "2006-01"

// TooltipLine is one series' value at the tooltip date.
type TooltipLine struct {
	SeriesID string  `yaml:"series_id"`
	Label    string  `yaml:"label"`
	Color    string  `yaml:"color"`
	Value    float64 `yaml:"value"`
	Text     string  `yaml:"text"`
}

// Tooltip summarises every series at a single date.
type Tooltip struct {
	Region     string        `yaml:"region"`
	RegionName string        `yaml:"region_name"`
	Date       time.Time     `yaml:"date"`
	DateLabel  string        `yaml:"date_label"`
	Lines      []TooltipLine `yaml:"lines"`
}

// String renders the tooltip as plain text, one line per entry.
func (t Tooltip) String() string {
	var b strings.Builder
	b.WriteString(t.RegionName)
	b.WriteString("\n")
	b.WriteString(t.DateLabel)
	for _, l := range t.Lines {
		fmt.Fprintf(&b, "\n%s: %s", l.Label, l.Text)
	}
	return b.String()
}

// ResolveTooltip finds the data point nearest to at in the first series and
// reports, for that exact date, every series that has a value there. It
// returns false when at lies past the last reference point or the reference
// series has fewer than two points.
func ResolveTooltip(region string, mode Mode, series []Series, at time.Time) (Tooltip, bool) {
	if len(series) == 0 {
		return Tooltip{}, false
	}
	ref := series[0].Values
	if len(ref) < 2 {
		return Tooltip{}, false
	}

	// left bisect starting at 1 so ref[i-1] always exists
	i := 1 + sort.Search(len(ref)-1, func(k int) bool {
		return !ref[k+1].Date.Before(at)
	})
	if i <= 0 || i >= len(ref) {
		return Tooltip{}, false
	}

	d0, d1 := ref[i-1], ref[i]
	nearest := d0
	if at.Sub(d0.Date) > d1.Date.Sub(at) {
		nearest = d1
	}

	tip := Tooltip{
		Region:     region,
		RegionName: enrollment.DisplayName(region),
		Date:       nearest.Date,
		DateLabel:  nearest.Date.UTC().Format(TooltipDateLayout),
	}
	for _, s := range series {
		v, ok := s.ValueAt(nearest.Date)
		if !ok || math.IsNaN(v) {
			continue
		}
		tip.Lines = append(tip.Lines, TooltipLine{
			SeriesID: s.ID,
			Label:    s.Label,
			Color:    s.Color,
			Value:    v,
			Text:     FormatTooltipValue(v, mode),
		})
	}
	return tip, true
}

// FormatTooltipValue renders counts as grouped integers and shares as
// one-decimal percentages.
func FormatTooltipValue(v float64, mode Mode) string {
	if mode == ModeShare {
		return fmt.Sprintf("%.1f%%", v)
	}
	return humanize.Comma(int64(math.Round(v)))
}
