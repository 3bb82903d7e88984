// Package export renders a chart frame to files: PNG and SVG images, an
// interactive HTML page and a YAML snapshot.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/willibrandon/enrollview/internal/chart"
)

// ErrNoData is returned when a frame without paths is exported.
var ErrNoData = errors.New("nothing to export: " + chart.NoDataMessage)

// Format is an export target.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
	FormatYAML Format = "yaml"
)

// Default image size in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 600
)

// Options tunes image and page output.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// FormatFromPath picks the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want .png, .svg, .html or .yaml)", filepath.Ext(path))
}

// Write renders frame in format to w.
func Write(w io.Writer, frame chart.Frame, format Format, opts Options) error {
	switch format {
	case FormatPNG, FormatSVG:
		return WriteImage(w, frame, format, opts)
	case FormatHTML:
		return WriteHTML(w, frame, opts)
	case FormatYAML:
		return WriteSnapshot(w, frame)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// visiblePoints returns the points of p inside view.
func visiblePoints(p chart.Path, view chart.TimeRange) []chart.Point {
	out := make([]chart.Point, 0, len(p.Points))
	for _, pt := range p.Points {
		if view.Contains(pt.Date) {
			out = append(out, pt)
		}
	}
	return out
}
