package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

const (
	legendMarker = "━━"
	legendGap    = "   "
)

// legendSpan is the horizontal extent of one rendered legend item.
type legendSpan struct {
	id         string
	start, end int
}

// Legend renders the chart legend on a single line and maps clicks back to
// series ids.
type Legend struct {
	width int
	items []chart.LegendItem
	spans []legendSpan
}

// NewLegend creates an empty legend.
func NewLegend() *Legend {
	return &Legend{}
}

// SetWidth sets the available width.
func (l *Legend) SetWidth(width int) {
	l.width = width
}

// SetItems replaces the legend entries.
func (l *Legend) SetItems(items []chart.LegendItem) {
	l.items = items
}

// Items returns the legend entries in display order.
func (l *Legend) Items() []chart.LegendItem {
	return l.items
}

// View renders the legend, truncated to the available width.
func (l *Legend) View() string {
	l.spans = l.spans[:0]

	var b strings.Builder
	col := 0
	for i, it := range l.items {
		if i > 0 {
			b.WriteString(legendGap)
			col += runewidth.StringWidth(legendGap)
		}
		opacity := 1.0
		if it.Dimmed {
			opacity = chart.DimmedOpacity
		}
		color := SeriesColor(it.Color, opacity)
		label := it.Label
		labelStyle := lipgloss.NewStyle().Foreground(styles.Current.Text)
		switch {
		case it.Focused:
			labelStyle = labelStyle.Bold(true).Underline(true)
		case it.Dimmed:
			labelStyle = labelStyle.Foreground(styles.Current.TextDim)
		}
		text := lipgloss.NewStyle().Foreground(color).Render(legendMarker) + " " + labelStyle.Render(label)

		w := runewidth.StringWidth(legendMarker) + 1 + runewidth.StringWidth(label)
		l.spans = append(l.spans, legendSpan{id: it.ID, start: col, end: col + w})
		col += w
		b.WriteString(text)
	}

	out := b.String()
	if l.width > 0 && ansi.StringWidth(out) > l.width {
		out = ansi.Truncate(out, l.width, "…")
	}
	return out
}

// ItemAt returns the series id rendered at column x of the last View.
func (l *Legend) ItemAt(x int) (string, bool) {
	if l.width > 0 && x >= l.width {
		return "", false
	}
	for _, s := range l.spans {
		if x >= s.start && x < s.end {
			return s.id, true
		}
	}
	return "", false
}
