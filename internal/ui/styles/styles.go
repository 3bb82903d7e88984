// Package styles provides centralized Lipgloss styling for the enrollview UI.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by SetTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary      lipgloss.Color
	Text         lipgloss.Color
	TextDim      lipgloss.Color
	Background   lipgloss.Color
	BackgroundHi lipgloss.Color
	Border       lipgloss.Color
	Success      lipgloss.Color
	Warning      lipgloss.Color
	Error        lipgloss.Color
	Info         lipgloss.Color
}

// DarkPalette is the default palette.
var DarkPalette = Palette{
	Primary:      lipgloss.Color("#7D56F4"),
	Text:         lipgloss.Color("#FFFFFF"),
	TextDim:      lipgloss.Color("#6C7086"),
	Background:   lipgloss.Color("#1E1E2E"),
	BackgroundHi: lipgloss.Color("#313244"),
	Border:       lipgloss.Color("#6C7086"),
	Success:      lipgloss.Color("#04B575"),
	Warning:      lipgloss.Color("#FFB86C"),
	Error:        lipgloss.Color("#FF5555"),
	Info:         lipgloss.Color("#8BE9FD"),
}

// LightPalette is used with the light theme.
var LightPalette = Palette{
	Primary:      lipgloss.Color("#5A3FC0"),
	Text:         lipgloss.Color("#1E1E2E"),
	TextDim:      lipgloss.Color("#7C7F93"),
	Background:   lipgloss.Color("#FAFAFA"),
	BackgroundHi: lipgloss.Color("#E6E9EF"),
	Border:       lipgloss.Color("#9CA0B0"),
	Success:      lipgloss.Color("#40A02B"),
	Warning:      lipgloss.Color("#DF8E1D"),
	Error:        lipgloss.Color("#D20F39"),
	Info:         lipgloss.Color("#04A5E5"),
}

// Current is the active palette.
var Current = DarkPalette

// Styles built from the active palette. SetTheme rebuilds them.
var (
	TitleStyle      lipgloss.Style
	SubtitleStyle   lipgloss.Style
	MutedStyle      lipgloss.Style
	AxisStyle       lipgloss.Style
	AxisLabelStyle  lipgloss.Style
	TooltipStyle    lipgloss.Style
	StatusBarStyle  lipgloss.Style
	HelpStyle       lipgloss.Style
	HelpDialogStyle lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpDescStyle   lipgloss.Style
	HeaderStyle     lipgloss.Style
	ErrorStyle      lipgloss.Style
	ErrorBoxStyle   lipgloss.Style
	WarningStyle    lipgloss.Style
	SuccessStyle    lipgloss.Style
	InfoStyle       lipgloss.Style
	SelectedStyle   lipgloss.Style
)

func init() {
	apply(DarkPalette)
}

// SetTheme switches the active palette.
func SetTheme(name string) error {
	switch name {
	case "", ThemeDark:
		apply(DarkPalette)
	case ThemeLight:
		apply(LightPalette)
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

func apply(p Palette) {
	Current = p

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.TextDim)
	MutedStyle = lipgloss.NewStyle().Foreground(p.TextDim)
	AxisStyle = lipgloss.NewStyle().Foreground(p.Border)
	AxisLabelStyle = lipgloss.NewStyle().Foreground(p.TextDim)

	TooltipStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Foreground(p.Text).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.BackgroundHi).
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().Foreground(p.TextDim).Padding(0, 1)
	HelpDialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Width(16)
	HelpDescStyle = lipgloss.NewStyle().Foreground(p.Text)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)

	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	ErrorBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Error).
		Padding(1, 2)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	InfoStyle = lipgloss.NewStyle().Foreground(p.Info)
	SelectedStyle = lipgloss.NewStyle().Foreground(p.Background).Background(p.Primary).Bold(true)
}

// Center centers text within width.
func Center(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
