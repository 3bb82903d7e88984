package chart

import (
	"math"
	"time"
)

// MinViewSpan is the narrowest window zooming may produce.
const MinViewSpan = 90 * 24 * time.Hour

// Viewport owns the full x extent of the selected region and the currently
// visible window inside it. The zero value is unset: zoom and pan are no-ops
// until SetFull is called.
type Viewport struct {
	full TimeRange
	view TimeRange
	set  bool

	panning  bool
	panStart TimeRange
}

// SetFull installs a new full domain and shows all of it.
func (v *Viewport) SetFull(full TimeRange) {
	v.full = full
	v.view = full
	v.set = true
	v.panning = false
}

// Clear forgets the full domain.
func (v *Viewport) Clear() {
	*v = Viewport{}
}

// IsSet reports whether a full domain exists.
func (v *Viewport) IsSet() bool {
	return v.set
}

// Full returns the full domain.
func (v *Viewport) Full() TimeRange {
	return v.full
}

// View returns the visible window.
func (v *Viewport) View() TimeRange {
	return v.view
}

// Zoom scales the visible span by factor around the window's midpoint.
// Factors below 1 zoom in. The result never gets narrower than MinViewSpan
// nor wider than the full domain, and is shifted back inside the full domain
// if it would cross an edge.
func (v *Viewport) Zoom(factor float64) {
	if !v.set || !ValidZoomFactor(factor) {
		return
	}

	fullSpan := v.full.Span()
	minSpan := MinViewSpan
	if minSpan > fullSpan {
		minSpan = fullSpan
	}

	// Clamp before converting; large factors overflow a Duration.
	scaled := math.Min(math.Max(float64(v.view.Span())*factor, float64(minSpan)), float64(fullSpan))
	span := time.Duration(scaled)

	start := v.view.Mid().Add(-span / 2)
	v.view = v.clampShift(start, span)
}

// ValidZoomFactor reports whether factor is a finite positive number.
func ValidZoomFactor(factor float64) bool {
	return factor > 0 && !math.IsInf(factor, 0) && !math.IsNaN(factor)
}

// Reset shows the whole full domain again.
func (v *Viewport) Reset() {
	if !v.set {
		return
	}
	v.view = v.full
}

// BeginPan captures the current window as the anchor of a drag gesture.
// It returns false when there is nothing to pan.
func (v *Viewport) BeginPan() bool {
	if !v.set {
		return false
	}
	v.panning = true
	v.panStart = v.view
	return true
}

// Panning reports whether a drag gesture is in progress.
func (v *Viewport) Panning() bool {
	return v.panning
}

// PanTo moves the window captured by BeginPan by deltaPixels, where
// pixelWidth pixels span the captured window. Dragging right (positive
// delta) reveals earlier dates.
func (v *Viewport) PanTo(deltaPixels, pixelWidth float64) {
	if !v.set || !v.panning || pixelWidth <= 0 {
		return
	}
	span := v.panStart.Span()
	offset := time.Duration(-deltaPixels / pixelWidth * float64(span))
	v.view = v.clampShift(v.panStart.Start.Add(offset), span)
}

// EndPan finishes a drag gesture.
func (v *Viewport) EndPan() {
	v.panning = false
	v.panStart = TimeRange{}
}

// clampShift places a window of span starting at start, shifting it (never
// resizing it) so it stays inside the full domain.
func (v *Viewport) clampShift(start time.Time, span time.Duration) TimeRange {
	end := start.Add(span)
	if start.Before(v.full.Start) {
		start = v.full.Start
		end = start.Add(span)
	}
	if end.After(v.full.End) {
		end = v.full.End
		start = end.Add(-span)
	}
	return TimeRange{Start: start, End: end}
}
