package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/enrollview/internal/logger"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// DebugPanel lists the warnings and errors captured by the logger.
type DebugPanel struct {
	viewport viewport.Model
	width    int
	height   int
	visible  bool
}

// NewDebugPanel creates a hidden debug panel.
func NewDebugPanel() *DebugPanel {
	return &DebugPanel{viewport: viewport.New(0, 0)}
}

func (d *DebugPanel) panelSize() (int, int) {
	w := max(d.width*80/100, 60)
	h := max(d.height*60/100, 10)
	return w, h
}

// SetSize sets the screen dimensions the panel is centered in.
func (d *DebugPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
	w, h := d.panelSize()
	d.viewport.Width = w - 4
	d.viewport.Height = h - 6
}

// Toggle toggles panel visibility.
func (d *DebugPanel) Toggle() {
	d.visible = !d.visible
	if d.visible {
		d.refresh()
	}
}

// IsVisible returns whether the panel is visible.
func (d *DebugPanel) IsVisible() bool {
	return d.visible
}

func (d *DebugPanel) refresh() {
	entries := logger.GetEntries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		style := styles.MutedStyle
		switch {
		case e.Level >= slog.LevelError:
			style = styles.ErrorStyle
		case e.Level >= slog.LevelWarn:
			style = styles.WarningStyle
		}
		lines = append(lines, style.Render(e.Format()))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.MutedStyle.Render("No warnings or errors"))
	}
	d.viewport.SetContent(strings.Join(lines, "\n"))
	d.viewport.GotoBottom()
}

// Update handles keys while the panel is visible.
func (d *DebugPanel) Update(msg tea.Msg) (*DebugPanel, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "!", "q":
			d.visible = false
			return d, nil
		case "c":
			logger.ClearCounts()
			d.refresh()
			return d, nil
		}
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the panel centered on screen.
func (d *DebugPanel) View() string {
	if !d.visible {
		return ""
	}
	w, _ := d.panelSize()
	warnCount, errCount := logger.GetCounts()

	header := styles.TitleStyle.Render("Debug Panel") +
		styles.MutedStyle.Render(fmt.Sprintf(" (%d warnings, %d errors)", warnCount, errCount))
	if logger.LogPath != "" {
		header += "\n" + styles.MutedStyle.Render(logger.LogPath)
	}
	rule := strings.Repeat("─", w-4)
	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		rule,
		d.viewport.View(),
		rule,
		styles.MutedStyle.Render("[!/Esc] close  [c] clear counts  [j/k] scroll"),
	)
	panel := styles.HelpDialogStyle.Padding(0, 1).Width(w).Render(content)
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, panel)
}
