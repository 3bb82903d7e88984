package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/willibrandon/enrollview/internal/enrollment"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

const (
	pickerRows       = 12
	pickerSparkWidth = 16
	pickerNameWidth  = 26
)

// RegionPicker is a filterable list of regions, each shown with a sparkline
// of its total enrollment.
type RegionPicker struct {
	width  int
	height int

	input    textinput.Model
	regions  []string
	trends   map[string][]float64
	filtered []string
	cursor   int
	visible  bool
}

// NewRegionPicker creates a hidden picker.
func NewRegionPicker() *RegionPicker {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter states"
	ti.CharLimit = 40
	return &RegionPicker{input: ti}
}

// SetRegions sets the selectable regions, in display order, and the series
// drawn next to each.
func (p *RegionPicker) SetRegions(regions []string, trends map[string][]float64) {
	p.regions = regions
	p.trends = trends
	p.applyFilter()
}

// SetSize sets the screen dimensions the picker is centered in.
func (p *RegionPicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Open shows the picker with current preselected.
func (p *RegionPicker) Open(current string) tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	p.applyFilter()
	for i, r := range p.filtered {
		if r == current {
			p.cursor = i
		}
	}
	return p.input.Focus()
}

// Close hides the picker.
func (p *RegionPicker) Close() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns whether the picker is shown.
func (p *RegionPicker) IsVisible() bool {
	return p.visible
}

// Filtered returns the regions matching the current filter.
func (p *RegionPicker) Filtered() []string {
	return p.filtered
}

// Update handles input. It returns the chosen region once enter is pressed
// on a match.
func (p *RegionPicker) Update(msg tea.Msg) (string, bool, tea.Cmd) {
	if !p.visible {
		return "", false, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			p.Close()
			return "", false, nil
		case "enter":
			if len(p.filtered) == 0 {
				return "", false, nil
			}
			choice := p.filtered[p.cursor]
			p.Close()
			return choice, true, nil
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return "", false, nil
		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return "", false, nil
		}
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.applyFilter()
	}
	return "", false, cmd
}

func (p *RegionPicker) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(p.input.Value()))
	p.filtered = p.filtered[:0]
	for _, r := range p.regions {
		name := strings.ToLower(enrollment.DisplayName(r))
		if q == "" || strings.Contains(name, q) || strings.Contains(strings.ToLower(r), q) {
			p.filtered = append(p.filtered, r)
		}
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = max(len(p.filtered)-1, 0)
	}
}

// View renders the picker centered on screen.
func (p *RegionPicker) View() string {
	if !p.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Select a state"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	start := 0
	if p.cursor >= pickerRows {
		start = p.cursor - pickerRows + 1
	}
	end := min(start+pickerRows, len(p.filtered))
	for i := start; i < end; i++ {
		r := p.filtered[i]
		name := runewidth.FillRight(runewidth.Truncate(enrollment.DisplayName(r), pickerNameWidth, "…"), pickerNameWidth)
		if i == p.cursor {
			name = styles.SelectedStyle.Render(name)
		}
		data := p.trends[r]
		b.WriteString(name + " " + RenderSparkline(data, pickerSparkWidth, styles.Current.Info) + " " + GetTrend(data).String())
		b.WriteString("\n")
	}
	if len(p.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("no matching states"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d of %d  [↑/↓] move  [enter] select  [esc] cancel", len(p.filtered), len(p.regions))))

	dialog := styles.HelpDialogStyle.Render(b.String())
	if p.width > 0 {
		dialog = lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}
