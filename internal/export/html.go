package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/willibrandon/enrollview/internal/chart"
)

// WriteHTML writes a self-contained interactive page for frame. Every point
// of the full range is included and the data-zoom slider starts at the
// frame's view.
func WriteHTML(w io.Writer, frame chart.Frame, o Options) error {
	if frame.NoData || len(frame.Paths) == 0 {
		return ErrNoData
	}
	line := buildLine(frame, o)
	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

func buildLine(frame chart.Frame, o Options) *charts.Line {
	width, height := o.size()
	start, end := zoomPercent(frame.Full, frame.View)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: frame.Title,
			Width:     fmt.Sprintf("%dpx", width),
			Height:    fmt.Sprintf("%dpx", height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    frame.Title,
			Subtitle: frame.RegionName,
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: frame.YLabel,
			Min:  frame.Y.Min,
			Max:  frame.Y.Max,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "8%",
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: start, End: end},
			opts.DataZoom{Type: "inside", Start: start, End: end},
		),
	)

	for _, p := range frame.Paths {
		data := make([]opts.LineData, len(p.Points))
		for i, pt := range p.Points {
			data[i] = opts.LineData{Value: []interface{}{pt.Date.UnixMilli(), pt.Value}}
		}
		line.AddSeries(p.Label, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: p.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Color:   p.Color,
				Width:   2,
				Opacity: opts.Float(float32(p.Opacity)),
			}),
		)
	}
	return line
}

// zoomPercent expresses view as start/end percentages of full.
func zoomPercent(full, view chart.TimeRange) (float32, float32) {
	span := full.Span()
	if span <= 0 {
		return 0, 100
	}
	start := float64(view.Start.Sub(full.Start)) / float64(span) * 100
	end := float64(view.End.Sub(full.Start)) / float64(span) * 100
	return float32(clampPercent(start)), float32(clampPercent(end))
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
