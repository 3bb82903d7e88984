package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// RenderTooltip renders t as a bordered box: region, month and one colored
// line per series.
func RenderTooltip(t chart.Tooltip) string {
	lines := []string{
		styles.HeaderStyle.Render(t.RegionName),
		styles.MutedStyle.Render(t.DateLabel),
	}
	for _, l := range t.Lines {
		marker := lipgloss.NewStyle().Foreground(SeriesColor(l.Color, 1)).Render("●")
		lines = append(lines, marker+" "+l.Label+": "+lipgloss.NewStyle().Bold(true).Render(l.Text))
	}
	return styles.TooltipStyle.Render(strings.Join(lines, "\n"))
}

// PlaceTooltip overlays box on base next to plot column col. The box goes
// right of the pointer when it fits and left of it otherwise.
func PlaceTooltip(base, box string, bounds PlotBounds, col int) string {
	w := lipgloss.Width(box)
	x := bounds.Left + col + 2
	if x+w > bounds.Left+bounds.Width {
		x = bounds.Left + col - w - 1
	}
	if x < 0 {
		x = 0
	}
	return Overlay(base, box, x, bounds.Top+1)
}

// Overlay draws top over base with its top-left corner at cell (x, y).
// Lines of top that fall below base are dropped.
func Overlay(base, top string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		bl := baseLines[row]
		left := ansi.Truncate(bl, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bl, x+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}
