package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	enchart "github.com/willibrandon/enrollview/internal/chart"
)

// WriteImage draws the visible part of frame as a PNG or SVG line chart.
// Dimmed paths keep their color with reduced alpha.
func WriteImage(w io.Writer, frame enchart.Frame, format Format, opts Options) error {
	if frame.NoData || len(frame.Paths) == 0 {
		return ErrNoData
	}
	graph := buildGraph(frame, opts)
	if len(graph.Series) == 0 {
		return fmt.Errorf("%w: no points in the visible range", ErrNoData)
	}

	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	return nil
}

func buildGraph(frame enchart.Frame, opts Options) chart.Chart {
	width, height := opts.size()

	xTicks := make([]chart.Tick, len(frame.XAxis.Ticks))
	for i, t := range frame.XAxis.Ticks {
		xTicks[i] = chart.Tick{Value: chart.TimeToFloat64(t.At), Label: t.Label}
	}
	yTicks := make([]chart.Tick, len(frame.YTicks))
	for i, t := range frame.YTicks {
		yTicks[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}

	graph := chart.Chart{
		Title:  frame.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionUnderTick,
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(frame.View.Start),
				Max: chart.TimeToFloat64(frame.View.End),
			},
			Ticks: xTicks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return frame.XAxis.Format(chart.TimeFromFloat64(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: frame.YLabel,
			Range: &chart.ContinuousRange{
				Min: frame.Y.Min,
				Max: frame.Y.Max,
			},
			Ticks: yTicks,
		},
	}

	for _, p := range frame.Paths {
		pts := visiblePoints(p, frame.View)
		if len(pts) == 0 {
			continue
		}
		xs := make([]time.Time, len(pts))
		ys := make([]float64, len(pts))
		for i, pt := range pts {
			xs[i] = pt.Date
			ys[i] = pt.Value
		}
		graph.Series = append(graph.Series, chart.TimeSeries{
			Name: p.Label,
			Style: chart.Style{
				StrokeColor: strokeColor(p.Color, p.Opacity),
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(graph.Series) > 0 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	return graph
}

func strokeColor(hex string, opacity float64) drawing.Color {
	c := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	if opacity < 0 {
		opacity = 0
	}
	if opacity < 1 {
		c.A = uint8(opacity * 255)
	}
	return c
}
