package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the chart screen
type KeyMap struct {
	Quit  key.Binding
	Help  key.Binding
	Debug key.Binding
	Close key.Binding

	// Region and mode
	NextRegion key.Binding
	PrevRegion key.Binding
	Filter     key.Binding
	ToggleMode key.Binding
	Counts     key.Binding
	Share      key.Binding

	// Viewport
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ResetZoom key.Binding
	PanLeft   key.Binding
	PanRight  key.Binding

	// Legend focus (1-3)
	Focus1 key.Binding
	Focus2 key.Binding
	Focus3 key.Binding

	Copy key.Binding
}

// DefaultKeyMap returns the default keyboard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Debug: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "debug panel"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),

		NextRegion: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next state"),
		),
		PrevRegion: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous state"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find state"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mode"),
		),
		Counts: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "counts"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "expansion share"),
		),

		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		ResetZoom: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset zoom"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "pan right"),
		),

		Focus1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "focus series 1"),
		),
		Focus2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "focus series 2"),
		),
		Focus3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "focus series 3"),
		),

		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy tooltip"),
		),
	}
}

// FocusBindings returns the legend focus bindings in legend order.
func (k KeyMap) FocusBindings() []key.Binding {
	return []key.Binding{k.Focus1, k.Focus2, k.Focus3}
}

// ShortHelp returns a quick help view for the key bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevRegion, k.NextRegion, k.ToggleMode, k.ZoomIn, k.ZoomOut, k.Help, k.Quit}
}

// FullHelp returns the full help view for all key bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevRegion, k.NextRegion, k.Filter},
		{k.ToggleMode, k.Counts, k.Share},
		{k.ZoomIn, k.ZoomOut, k.ResetZoom, k.PanLeft, k.PanRight},
		{k.Focus1, k.Focus2, k.Focus3, k.Copy},
		{k.Help, k.Debug, k.Close, k.Quit},
	}
}
