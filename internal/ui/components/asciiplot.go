package components

import (
	"math"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/willibrandon/enrollview/internal/chart"
)

// Fallback plot used when the terminal is too small for the braille chart
// and by the plot command.

// seriesColors maps series ids to the nearest ANSI colors.
var seriesColors = map[string]asciigraph.AnsiColor{
	chart.SeriesTotal:      asciigraph.Blue,
	chart.SeriesVIII:       asciigraph.Orange,
	chart.SeriesNewly:      asciigraph.Green,
	chart.SeriesShareVIII:  asciigraph.Orange,
	chart.SeriesShareNewly: asciigraph.Green,
}

// PlotGrid aligns the visible points of every path on the monthly grid of
// frame.View. Months a path has no value for are NaN.
func PlotGrid(frame chart.Frame) ([]time.Time, [][]float64) {
	var months []time.Time
	start := time.Date(frame.View.Start.Year(), frame.View.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if start.Before(frame.View.Start) {
		start = start.AddDate(0, 1, 0)
	}
	for d := start; !d.After(frame.View.End); d = d.AddDate(0, 1, 0) {
		months = append(months, d)
	}

	index := make(map[time.Time]int, len(months))
	for i, m := range months {
		index[m] = i
	}
	data := make([][]float64, len(frame.Paths))
	for i, p := range frame.Paths {
		row := make([]float64, len(months))
		for j := range row {
			row[j] = math.NaN()
		}
		for _, pt := range p.Points {
			if j, ok := index[pt.Date.UTC()]; ok {
				row[j] = pt.Value
			}
		}
		data[i] = row
	}
	return months, data
}

// RenderPlot draws frame with asciigraph in about width x height cells,
// legend and caption included. Series longer than the plot width are
// averaged down; shorter ones keep one column per month.
func RenderPlot(frame chart.Frame, width, height int) string {
	if frame.NoData || len(frame.Paths) == 0 {
		return chart.NoDataMessage
	}
	months, data := PlotGrid(frame)
	if len(months) < 2 {
		return chart.NoDataMessage
	}

	graphWidth := max(width-12, 20)
	graphHeight := max(height-3, 4)

	colors := make([]asciigraph.AnsiColor, len(frame.Paths))
	legends := make([]string, len(frame.Paths))
	for i, p := range frame.Paths {
		data[i] = resample(data[i], graphWidth)
		colors[i] = seriesColors[p.ID]
		if p.Opacity < 1 {
			colors[i] = asciigraph.Gray
		}
		legends[i] = p.Label
	}

	precision := uint(0)
	if frame.Mode == chart.ModeShare {
		precision = 1
	}
	caption := frame.Title + " (" + frame.XAxis.Format(months[0]) + " – " + frame.XAxis.Format(months[len(months)-1]) + ")"

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(graphHeight),
		asciigraph.LowerBound(frame.Y.Min),
		asciigraph.UpperBound(frame.Y.Max),
		asciigraph.Precision(precision),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
	return strings.TrimRight(graph, "\n")
}
