package app

import (
	"fmt"
	"strings"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/config"
	"github.com/willibrandon/enrollview/internal/enrollment"
	"github.com/willibrandon/enrollview/internal/logger"
)

// Options is the initial chart state applied once the dataset is loaded.
type Options struct {
	// Region is a raw or canonical region name; empty picks the default.
	Region string
	// Mode is the initial mode; empty uses chart.default_mode.
	Mode chart.Mode
	// Focus is a series id of Mode to focus.
	Focus string
	// Zoom factors applied in order after the first draw.
	Zoom []float64
}

// ResolveRegion maps a user-supplied region to its canonical name. The
// aggregate display name is accepted for the aggregate region.
func ResolveRegion(ds *enrollment.Dataset, region string) string {
	if strings.TrimSpace(region) == "" {
		return enrollment.DefaultRegion(ds.Regions())
	}
	if strings.EqualFold(region, enrollment.TotalsDisplayName) {
		return enrollment.TotalsRegion
	}
	name := enrollment.NormalizeName(region)
	if !ds.HasRegion(name) {
		for _, r := range ds.Regions() {
			if strings.EqualFold(r, name) {
				return r
			}
		}
	}
	return name
}

// NewChart builds a controller over ds, draws the initial region and mode,
// then applies the focus and zoom of opts.
func NewChart(ds *enrollment.Dataset, cfg *config.Config, opts Options) (*chart.Controller, chart.Frame, error) {
	mode := opts.Mode
	if mode == "" {
		m, err := chart.ParseMode(cfg.Chart.DefaultMode)
		if err != nil {
			return nil, chart.Frame{}, err
		}
		mode = m
	}

	ctrl := chart.NewController(ds, chart.WithZoomFactors(cfg.Chart.ZoomInFactor, cfg.Chart.ZoomOutFactor))
	region := ResolveRegion(ds, opts.Region)
	if !ds.HasRegion(region) {
		logger.Warn("Region not in dataset", "region", opts.Region, "resolved", region)
	}
	frame := ctrl.Redraw(region, mode, false)

	if opts.Focus != "" {
		if !hasSeries(mode, opts.Focus) {
			return nil, chart.Frame{}, fmt.Errorf("unknown series %q for mode %s (want one of %s)",
				opts.Focus, mode, strings.Join(seriesIDs(mode), ", "))
		}
		frame = ctrl.Handle(chart.LegendClick{ID: opts.Focus})
	}
	for _, f := range opts.Zoom {
		if !chart.ValidZoomFactor(f) {
			return nil, chart.Frame{}, fmt.Errorf("zoom factor must be a finite number > 0, got %v", f)
		}
		frame = ctrl.Handle(chart.ZoomBy{Factor: f})
	}
	return ctrl, frame, nil
}

func seriesIDs(mode chart.Mode) []string {
	configs := chart.Configs(mode)
	ids := make([]string, len(configs))
	for i, c := range configs {
		ids[i] = c.ID
	}
	return ids
}

func hasSeries(mode chart.Mode, id string) bool {
	for _, s := range seriesIDs(mode) {
		if s == id {
			return true
		}
	}
	return false
}

// regionTrends returns the total-enrollment values of every region, used
// for the region picker sparklines.
func regionTrends(ds *enrollment.Dataset) map[string][]float64 {
	trends := make(map[string][]float64)
	for _, r := range ds.Regions() {
		series := chart.DeriveSeries(ds.Rows(r), chart.ModeCounts)
		if len(series) == 0 {
			continue
		}
		values := make([]float64, len(series[0].Values))
		for i, p := range series[0].Values {
			values[i] = p.Value
		}
		trends[r] = values
	}
	return trends
}
