// Package chart implements the interactive enrollment chart: series
// derivation, scale domains, viewport zoom/pan, legend focus and the redraw
// pipeline that keeps them consistent.
package chart

import (
	"fmt"
	"strings"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

// Mode selects how enrollment is displayed.
type Mode string

const (
	// ModeCounts plots absolute enrollee counts.
	ModeCounts Mode = "counts"
	// ModeShare plots group-VIII shares of total enrollment, in percent.
	ModeShare Mode = "share"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCounts:
		return ModeCounts, nil
	case ModeShare:
		return ModeShare, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want counts or share)", s)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeShare {
		return ModeCounts
	}
	return ModeShare
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Title returns the chart title for a region in this mode.
func (m Mode) Title(region string) string {
	if m == ModeShare {
		return "Expansion share for " + enrollment.DisplayName(region)
	}
	return "Enrollment counts for " + enrollment.DisplayName(region)
}

// YLabel returns the y-axis caption.
func (m Mode) YLabel() string {
	if m == ModeShare {
		return "Expansion share (%)"
	}
	return "Number of enrollees"
}
