// Package ui provides Bubbletea TUI building blocks for enrollview.
package ui

import (
	"time"

	"github.com/willibrandon/enrollview/internal/dataset"
)

// DatasetLoadedMsg carries a successfully loaded dataset.
type DatasetLoadedMsg struct {
	Result *dataset.Result
}

// DatasetErrorMsg reports a failed dataset load.
type DatasetErrorMsg struct {
	Err error
}

// ClipboardResultMsg reports the outcome of a clipboard copy.
type ClipboardResultMsg struct {
	Text string
	Err  error
}

// StatusMsg shows a transient message in the status bar.
type StatusMsg struct {
	Text  string
	Error bool
}

// ClearStatusMsg clears a transient status message set at At.
type ClearStatusMsg struct {
	At time.Time
}
