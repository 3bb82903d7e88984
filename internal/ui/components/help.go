package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// helpSections titles the groups of KeyMap.FullHelp, in order.
var helpSections = []string{"States", "Mode", "Zoom & pan", "Legend", "General"}

// HelpText renders the keyboard shortcut overlay and the one-line hint bar.
type HelpText struct {
	width  int
	height int
	short  help.Model
}

// NewHelp creates a new help component
func NewHelp() *HelpText {
	h := &HelpText{short: help.New()}
	h.short.Styles.ShortKey = styles.HelpKeyStyle.UnsetWidth()
	h.short.Styles.ShortDesc = styles.MutedStyle
	return h
}

// SetSize sets the size of the help component
func (h *HelpText) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.short.Width = width
}

// View renders the help screen from grouped bindings.
func (h *HelpText) View(groups [][]key.Binding) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for i, group := range groups {
		if i < len(helpSections) {
			b.WriteString(styles.HeaderStyle.Render(helpSections[i]))
			b.WriteString("\n")
		}
		for _, k := range group {
			hk := k.Help()
			b.WriteString(styles.HelpKeyStyle.Render(hk.Key))
			b.WriteString(styles.HelpDescStyle.Render(hk.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedStyle.Render("Mouse: drag to pan, wheel to zoom, click legend to focus"))

	dialog := styles.HelpDialogStyle.Render(b.String())
	if h.width > 0 {
		dialog = lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}

// ShortHelp renders a one-line hint for bindings.
func (h *HelpText) ShortHelp(bindings []key.Binding) string {
	return h.short.ShortHelpView(bindings)
}
