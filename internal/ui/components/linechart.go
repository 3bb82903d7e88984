// Package components provides reusable UI components.
package components

import (
	"math"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// Minimum drawable chart size in cells.
const (
	MinChartWidth  = 30
	MinChartHeight = 8
)

// PlotBounds is the data area of a rendered chart, in cells relative to the
// chart's top-left corner.
type PlotBounds struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Contains reports whether cell (x, y) lies in the plot area.
func (b PlotBounds) Contains(x, y int) bool {
	return x >= b.Left && x < b.Left+b.Width && y >= b.Top && y < b.Top+b.Height
}

// Column converts an x cell to a plot-relative column.
func (b PlotBounds) Column(x int) float64 {
	return float64(x - b.Left)
}

// LineChart draws a chart.Frame as a braille time-series line chart.
type LineChart struct {
	width  int
	height int

	frame  chart.Frame
	ready  bool
	model  tslc.Model
	bounds PlotBounds
}

// NewLineChart creates an empty line chart.
func NewLineChart() *LineChart {
	return &LineChart{width: MinChartWidth, height: MinChartHeight}
}

// SetSize sets the chart dimensions, axes included.
func (c *LineChart) SetSize(width, height int) {
	c.width = max(width, MinChartWidth)
	c.height = max(height, MinChartHeight)
	if c.ready {
		c.rebuild()
	}
}

// SetFrame replaces the frame to draw.
func (c *LineChart) SetFrame(frame chart.Frame) {
	c.frame = frame
	c.ready = !frame.NoData && len(frame.Paths) > 0 && !frame.View.IsZero()
	if c.ready {
		c.rebuild()
	}
}

// Bounds returns the data area of the last render.
func (c *LineChart) Bounds() PlotBounds {
	return c.bounds
}

// Ready reports whether the chart has a drawable frame.
func (c *LineChart) Ready() bool {
	return c.ready
}

func (c *LineChart) rebuild() {
	f := c.frame
	y := f.Y
	if y.Max <= y.Min {
		y.Max = y.Min + 1
	}

	step := xLabelStep(c.width)
	window := labelWindow(f.View, step, c.width)
	m := tslc.New(c.width, c.height,
		tslc.WithXYSteps(step, 2),
		tslc.WithTimeRange(f.View.Start, f.View.End),
		tslc.WithYRange(y.Min, y.Max),
		tslc.WithXLabelFormatter(func(_ int, v float64) string {
			return xTickLabel(f.XAxis, time.Unix(int64(v), 0), window)
		}),
		tslc.WithYLabelFormatter(func(_ int, v float64) string {
			return chart.FormatYValue(v, f.Mode)
		}),
		tslc.WithAxesStyles(styles.AxisStyle, styles.AxisLabelStyle),
	)
	// The frame already carries the domains; points must never move them.
	m.AutoMinX, m.AutoMaxX, m.AutoMinY, m.AutoMaxY = false, false, false, false

	var names []string
	for _, p := range drawOrder(f.Paths, f.Focus) {
		pushed := 0
		for _, pt := range p.Points {
			if !f.View.Contains(pt.Date) {
				continue
			}
			v := math.Min(math.Max(pt.Value, y.Min), y.Max)
			m.PushDataSet(p.ID, tslc.TimePoint{Time: pt.Date, Value: v})
			pushed++
		}
		if pushed == 0 {
			continue
		}
		m.SetDataSetStyle(p.ID, lipgloss.NewStyle().Foreground(SeriesColor(p.Color, p.Opacity)))
		names = append(names, p.ID)
	}

	m.DrawBrailleDataSets(names)
	if t := f.Tooltip; t != nil {
		m.SetColumnBackgroundStyle(t.Date, lipgloss.NewStyle().Background(styles.Current.BackgroundHi))
	}

	c.model = m
	c.bounds = PlotBounds{
		Left:   m.Origin().X + 1,
		Top:    0,
		Width:  m.GraphWidth(),
		Height: m.Origin().Y,
	}
}

// View renders the chart.
func (c *LineChart) View() string {
	if !c.ready {
		msg := chart.NoDataMessage
		if c.frame.Message != "" {
			msg = c.frame.Message
		}
		return lipgloss.NewStyle().
			Width(c.width).
			Height(c.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(styles.Current.TextDim).
			Render(msg)
	}
	return c.model.View()
}

// drawOrder returns paths with the focused one last so it is drawn on top.
func drawOrder(paths []chart.Path, focus string) []chart.Path {
	out := make([]chart.Path, 0, len(paths))
	var focused *chart.Path
	for i := range paths {
		if paths[i].ID == focus {
			focused = &paths[i]
			continue
		}
		out = append(out, paths[i])
	}
	if focused != nil {
		out = append(out, *focused)
	}
	return out
}

// xLabelStep spaces x labels so "Jan 2006" labels do not collide.
func xLabelStep(width int) int {
	if width < 60 {
		return 12
	}
	return 10
}

// labelWindow is half the time covered by one x label step.
func labelWindow(view chart.TimeRange, step, width int) time.Duration {
	if width <= 0 {
		return 0
	}
	return time.Duration(float64(view.Span()) * float64(step) / float64(width) / 2)
}

// xTickLabel returns the label of the axis tick nearest at, or "" when no
// tick lies within window. Axes without ticks fall back to the layout.
func xTickLabel(axis chart.XAxis, at time.Time, window time.Duration) string {
	if len(axis.Ticks) == 0 {
		return axis.Format(at)
	}
	best, bestDist := "", window+1
	for _, t := range axis.Ticks {
		d := t.At.Sub(at)
		if d < 0 {
			d = -d
		}
		if d <= window && d < bestDist {
			best, bestDist = t.Label, d
		}
	}
	return best
}

// SeriesColor returns a terminal color for a series. Terminals cannot draw
// translucent lines, so opacity below 1 blends the color into the
// background.
func SeriesColor(hex string, opacity float64) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return styles.Current.Text
	}
	if opacity >= 1 {
		return lipgloss.Color(c.Hex())
	}
	bg, err := colorful.Hex(string(styles.Current.Background))
	if err != nil {
		return lipgloss.Color(c.Hex())
	}
	return lipgloss.Color(bg.BlendRgb(c, math.Max(opacity, 0)).Clamped().Hex())
}
