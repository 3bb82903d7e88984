package chart

import (
	"github.com/willibrandon/enrollview/internal/enrollment"
	"github.com/willibrandon/enrollview/internal/logger"
)

// NoDataMessage is shown in place of the chart when a region has no rows.
const NoDataMessage = "No data for this state."

// Default zoom factors for the zoom-in and zoom-out actions.
const (
	DefaultZoomInFactor  = 0.5
	DefaultZoomOutFactor = 2.0
)

// RowSource provides the raw rows of a region.
type RowSource interface {
	Rows(region string) []enrollment.Row
}

// Path is one drawn series line.
type Path struct {
	SeriesConfig `yaml:",inline"`
	Opacity      float64 `yaml:"opacity"`
	Points       []Point `yaml:"-"`
}

// Frame is everything a renderer needs to draw the chart. It is a pure
// projection of the controller state after a redraw.
type Frame struct {
	Region     string `yaml:"region"`
	RegionName string `yaml:"region_name"`
	Mode       Mode   `yaml:"mode"`
	Title      string `yaml:"title"`
	YLabel     string `yaml:"y_label"`

	NoData  bool   `yaml:"no_data"`
	Message string `yaml:"message,omitempty"`

	Paths  []Path       `yaml:"paths"`
	Full   TimeRange    `yaml:"full"`
	View   TimeRange    `yaml:"view"`
	Y      YDomain      `yaml:"y"`
	XAxis  XAxis        `yaml:"x_axis"`
	YTicks []ValueTick  `yaml:"y_ticks"`
	Legend []LegendItem `yaml:"legend"`
	Focus  string       `yaml:"focus,omitempty"`
	Diff   PathDiff     `yaml:"diff"`

	Tooltip *Tooltip `yaml:"tooltip,omitempty"`
}

// Path returns the path for series id.
func (f Frame) Path(id string) (Path, bool) {
	for _, p := range f.Paths {
		if p.ID == id {
			return p, true
		}
	}
	return Path{}, false
}

// Controller owns the interactive chart state: selected region and mode,
// per-mode focus, the viewport and the series of the last redraw. It is not
// safe for concurrent use.
type Controller struct {
	src RowSource

	region string
	mode   Mode
	drawn  bool

	focus    Focus
	viewport Viewport
	series   []Series
	pathIDs  []string
	frame    Frame

	tooltip *Tooltip
	dragX   float64

	zoomIn  float64
	zoomOut float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithZoomFactors overrides the factors used by ZoomIn and ZoomOut events.
func WithZoomFactors(in, out float64) Option {
	return func(c *Controller) {
		if in > 0 && in < 1 {
			c.zoomIn = in
		}
		if out > 1 {
			c.zoomOut = out
		}
	}
}

// NewController creates a controller reading rows from src.
func NewController(src RowSource, opts ...Option) *Controller {
	c := &Controller{
		src:     src,
		mode:    ModeCounts,
		zoomIn:  DefaultZoomInFactor,
		zoomOut: DefaultZoomOutFactor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Redraw recomputes the frame for region and mode. With preserveView the
// current full and view domains are kept; otherwise both are reset to the
// region's extent.
func (c *Controller) Redraw(region string, mode Mode, preserveView bool) Frame {
	c.region = region
	c.mode = mode
	c.drawn = true

	frame := Frame{
		Region:     region,
		RegionName: enrollment.DisplayName(region),
		Mode:       mode,
		Title:      mode.Title(region),
		YLabel:     mode.YLabel(),
	}

	rows := c.src.Rows(region)
	var series []Series
	if len(rows) > 0 {
		series = DeriveSeries(rows, mode)
	}
	if len(series) == 0 || len(series[0].Values) == 0 {
		logger.Debug("No data for region", "region", region, "mode", string(mode), "rows", len(rows))
		frame.NoData = true
		frame.Message = NoDataMessage
		frame.Diff = DiffPaths(c.pathIDs, nil)
		c.series = nil
		c.pathIDs = nil
		c.tooltip = nil
		c.viewport.Clear()
		c.frame = frame
		return frame
	}

	if !preserveView || !c.viewport.IsSet() {
		full, _ := FullExtent(rows)
		c.viewport.SetFull(full)
		c.tooltip = nil
	}
	view := c.viewport.View()
	focus := c.focus.Get(mode)

	y := ComputeYDomain(series, focus, view, mode)

	frame.Full = c.viewport.Full()
	frame.View = view
	frame.Y = y
	frame.XAxis = BuildXAxis(view)
	frame.YTicks = BuildYTicks(y, YTickCount, mode)
	frame.Legend = BuildLegend(mode, focus)
	frame.Focus = focus

	ids := make([]string, len(series))
	frame.Paths = make([]Path, len(series))
	for i, s := range series {
		ids[i] = s.ID
		frame.Paths[i] = Path{
			SeriesConfig: s.SeriesConfig,
			Opacity:      Opacity(focus, s.ID),
			Points:       s.Values,
		}
	}
	frame.Diff = DiffPaths(c.pathIDs, ids)
	frame.Tooltip = c.tooltip

	c.series = series
	c.pathIDs = ids
	c.frame = frame
	return frame
}

// Frame returns the result of the last redraw.
func (c *Controller) Frame() Frame {
	return c.frame
}

// Series returns the series computed by the last redraw.
func (c *Controller) Series() []Series {
	return c.series
}

// Region returns the selected region.
func (c *Controller) Region() string {
	return c.region
}

// Mode returns the selected mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Focus returns the focused series id for mode.
func (c *Controller) Focus(mode Mode) string {
	return c.focus.Get(mode)
}

// View returns the visible time range.
func (c *Controller) View() TimeRange {
	return c.viewport.View()
}

// Full returns the full time range of the selected region.
func (c *Controller) Full() TimeRange {
	return c.viewport.Full()
}

// Dragging reports whether a pan gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.viewport.Panning()
}

// Tooltip returns the current tooltip, if any.
func (c *Controller) Tooltip() (Tooltip, bool) {
	if c.tooltip == nil {
		return Tooltip{}, false
	}
	return *c.tooltip, true
}

func (c *Controller) setTooltip(t *Tooltip) {
	c.tooltip = t
	c.frame.Tooltip = t
}
