package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/logger"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// StatusBar represents the status bar component
type StatusBar struct {
	width int

	source    string
	fromCache bool
	region    string
	mode      chart.Mode
	view      chart.TimeRange
	full      chart.TimeRange
	focus     string

	message      string
	messageError bool
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the width of the status bar
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetSource sets the dataset source label.
func (s *StatusBar) SetSource(source string, fromCache bool) {
	s.source = source
	s.fromCache = fromCache
}

// SetFrame updates region, mode and domain indicators from frame.
func (s *StatusBar) SetFrame(frame chart.Frame) {
	s.region = frame.RegionName
	s.mode = frame.Mode
	s.view = frame.View
	s.full = frame.Full
	s.focus = frame.Focus
}

// SetMessage shows a transient message; an empty text clears it.
func (s *StatusBar) SetMessage(text string, isError bool) {
	s.message = text
	s.messageError = isError
}

// Zoom returns the current zoom level as full span / view span.
func (s *StatusBar) Zoom() float64 {
	if s.view.Span() <= 0 || s.full.Span() <= 0 {
		return 1
	}
	return float64(s.full.Span()) / float64(s.view.Span())
}

// View renders the status bar
func (s *StatusBar) View() string {
	parts := []string{styles.HeaderStyle.Render(s.region)}
	if s.mode != "" {
		parts = append(parts, string(s.mode))
	}
	if !s.view.IsZero() {
		r := fmt.Sprintf("%s – %s", s.view.Start.Format("Jan 2006"), s.view.End.Format("Jan 2006"))
		if z := s.Zoom(); z > 1.01 {
			r += fmt.Sprintf(" (%.1fx)", z)
		}
		parts = append(parts, r)
	}
	if s.focus != "" {
		parts = append(parts, "focus: "+s.focus)
	}

	src := s.source
	if s.fromCache {
		src += " (cached)"
	}
	if src != "" {
		parts = append(parts, styles.MutedStyle.Render(src))
	}

	warnCount, errCount := logger.GetCounts()
	if warnCount > 0 {
		parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("⚠ %d", warnCount)))
	}
	if errCount > 0 {
		parts = append(parts, styles.ErrorStyle.Render(fmt.Sprintf("✕ %d", errCount)))
	}

	if s.message != "" {
		style := styles.SuccessStyle
		if s.messageError {
			style = styles.ErrorStyle
		}
		parts = append(parts, style.Render(s.message))
	}

	line := strings.Join(parts, " | ")
	if s.width > 0 {
		return styles.StatusBarStyle.Width(s.width).MaxHeight(1).Render(line)
	}
	return styles.StatusBarStyle.Render(line)
}

// ShortView renders region and mode only.
func (s *StatusBar) ShortView() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, styles.HeaderStyle.Render(s.region), " ", string(s.mode))
}
