package chart

import "time"

// Event is a user interaction fed to Controller.Handle.
type Event interface {
	event()
}

// SelectRegion switches to another region.
type SelectRegion struct{ Region string }

// SelectMode switches the display mode.
type SelectMode struct{ Mode Mode }

// ZoomIn narrows the view by the controller's zoom-in factor.
type ZoomIn struct{}

// ZoomOut widens the view by the controller's zoom-out factor.
type ZoomOut struct{}

// ZoomBy scales the view span by Factor.
type ZoomBy struct{ Factor float64 }

// ResetZoom shows the full domain.
type ResetZoom struct{}

// DragStart begins a pan gesture at plot column X.
type DragStart struct{ X float64 }

// PointerMove reports the pointer at plot column X of a Width-wide plot.
// While dragging it pans; otherwise it moves the tooltip.
type PointerMove struct{ X, Width float64 }

// DragEnd finishes a pan gesture.
type DragEnd struct{}

// PointerLeave reports the pointer left the plot area.
type PointerLeave struct{}

// LegendClick toggles focus on series ID in the active mode.
type LegendClick struct{ ID string }

// PanBy pans the view by Delta columns of a Width-wide plot in one step.
type PanBy struct{ Delta, Width float64 }

func (SelectRegion) event() {}
func (SelectMode) event()   {}
func (ZoomIn) event()       {}
func (ZoomOut) event()      {}
func (ZoomBy) event()       {}
func (ResetZoom) event()    {}
func (DragStart) event()    {}
func (PointerMove) event()  {}
func (DragEnd) event()      {}
func (PointerLeave) event() {}
func (LegendClick) event()  {}
func (PanBy) event()        {}

// Handle applies ev to the controller and returns the resulting frame.
// Region and mode changes reset focus and the viewport; everything else
// redraws with the current domains preserved.
func (c *Controller) Handle(ev Event) Frame {
	switch e := ev.(type) {
	case SelectRegion:
		c.focus.Reset()
		c.viewport.EndPan()
		return c.Redraw(e.Region, c.mode, false)

	case SelectMode:
		c.focus.Reset()
		c.viewport.EndPan()
		return c.Redraw(c.region, e.Mode, false)
	}

	if !c.drawn {
		return c.frame
	}

	switch e := ev.(type) {
	case ZoomIn:
		return c.zoom(c.zoomIn)
	case ZoomOut:
		return c.zoom(c.zoomOut)
	case ZoomBy:
		return c.zoom(e.Factor)

	case ResetZoom:
		c.viewport.Reset()
		return c.Redraw(c.region, c.mode, true)

	case DragStart:
		if c.viewport.BeginPan() {
			c.dragX = e.X
			c.setTooltip(nil)
		}
		return c.frame

	case PointerMove:
		if c.viewport.Panning() {
			c.viewport.PanTo(e.X-c.dragX, e.Width)
			return c.Redraw(c.region, c.mode, true)
		}
		c.setTooltip(c.resolveAt(e.X, e.Width))
		return c.frame

	case DragEnd:
		c.viewport.EndPan()
		return c.frame

	case PointerLeave:
		c.viewport.EndPan()
		c.setTooltip(nil)
		return c.frame

	case LegendClick:
		if _, ok := findConfig(c.mode, e.ID); !ok {
			return c.frame
		}
		c.focus.Toggle(c.mode, e.ID)
		return c.Redraw(c.region, c.mode, true)

	case PanBy:
		if !c.viewport.BeginPan() {
			return c.frame
		}
		c.viewport.PanTo(e.Delta, e.Width)
		c.viewport.EndPan()
		return c.Redraw(c.region, c.mode, true)
	}
	return c.frame
}

func (c *Controller) zoom(factor float64) Frame {
	c.viewport.Zoom(factor)
	return c.Redraw(c.region, c.mode, true)
}

// resolveAt maps plot column x to a date in the view and resolves the
// tooltip there.
func (c *Controller) resolveAt(x, width float64) *Tooltip {
	if c.frame.NoData || width <= 0 || !c.viewport.IsSet() {
		return nil
	}
	view := c.viewport.View()
	at := view.Start.Add(time.Duration(x / width * float64(view.Span())))
	tip, ok := ResolveTooltip(c.region, c.mode, c.series, at)
	if !ok {
		return nil
	}
	return &tip
}

func findConfig(mode Mode, id string) (SeriesConfig, bool) {
	for _, cfg := range Configs(mode) {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return SeriesConfig{}, false
}
