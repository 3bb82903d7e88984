package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/config"
	"github.com/willibrandon/enrollview/internal/dataset"
	"github.com/willibrandon/enrollview/internal/logger"
	"github.com/willibrandon/enrollview/internal/ui"
	"github.com/willibrandon/enrollview/internal/ui/components"
	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// Screen rows used by everything but the chart: header, legend, status bar.
const chromeRows = 3

// chartTop is the screen row of the chart's first line.
const chartTop = 1

// Model represents the main Bubbletea application model
type Model struct {
	config *config.Config
	opts   Options

	// UI state
	width  int
	height int

	// Keyboard bindings
	keys ui.KeyMap

	// Loading state
	spinner spinner.Model
	loading bool
	loadErr error

	// Chart state
	result  *dataset.Result
	ctrl    *chart.Controller
	frame   chart.Frame
	regions []string

	// UI components
	chart      *components.LineChart
	legend     *components.Legend
	statusBar  *components.StatusBar
	help       *components.HelpText
	debugPanel *components.DebugPanel
	picker     *components.RegionPicker
	clipboard  *ui.ClipboardWriter

	// Application state
	helpVisible bool
	quitting    bool
	ready       bool

	// Pointer state
	inPlot     bool
	pointerCol int
	statusAt   time.Time
}

// New creates a new application model
func New(cfg *config.Config, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.InfoStyle

	return Model{
		config:     cfg,
		opts:       opts,
		keys:       ui.DefaultKeyMap(),
		spinner:    sp,
		loading:    true,
		chart:      components.NewLineChart(),
		legend:     components.NewLegend(),
		statusBar:  components.NewStatusBar(),
		help:       components.NewHelp(),
		debugPanel: components.NewDebugPanel(),
		picker:     components.NewRegionPicker(),
		clipboard:  ui.NewClipboardWriter(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadDataset(m.config),
	)
}

// Frame returns the frame currently on screen.
func (m Model) Frame() chart.Frame {
	return m.frame
}

// Err returns the dataset load error, if loading failed.
func (m Model) Err() error {
	return m.loadErr
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ui.DatasetLoadedMsg:
		m.loading = false
		return m.datasetLoaded(msg.Result)

	case ui.DatasetErrorMsg:
		m.loading = false
		m.loadErr = msg.Err
		return m, nil

	case ui.ClipboardResultMsg:
		if msg.Err != nil {
			logger.Warn("Clipboard copy failed", "error", msg.Err)
			return m.setStatus("copy failed: "+msg.Err.Error(), true)
		}
		return m.setStatus("tooltip copied", false)

	case ui.StatusMsg:
		return m.setStatus(msg.Text, msg.Error)

	case ui.ClearStatusMsg:
		if msg.At.Equal(m.statusAt) {
			m.statusBar.SetMessage("", false)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) datasetLoaded(res *dataset.Result) (tea.Model, tea.Cmd) {
	ctrl, frame, err := NewChart(res.Dataset, m.config, m.opts)
	if err != nil {
		m.loadErr = err
		return m, nil
	}
	m.result = res
	m.ctrl = ctrl
	m.regions = res.Dataset.Regions()
	m.picker.SetRegions(m.regions, regionTrends(res.Dataset))
	m.statusBar.SetSource(res.Source, res.FromCache)
	m.setFrame(frame)
	return m, nil
}

func (m *Model) resize() {
	m.chart.SetSize(m.width, m.chartHeight())
	m.legend.SetWidth(m.width)
	m.statusBar.SetSize(m.width)
	m.help.SetSize(m.width, m.height)
	m.debugPanel.SetSize(m.width, m.height)
	m.picker.SetSize(m.width, m.height)
}

func (m Model) chartHeight() int {
	return m.height - chromeRows
}

// narrow reports whether the terminal is too small for the braille chart.
func (m Model) narrow() bool {
	return m.width < components.MinChartWidth || m.chartHeight() < components.MinChartHeight
}

// apply dispatches ev to the controller and shows the resulting frame.
func (m *Model) apply(ev chart.Event) {
	if m.ctrl == nil {
		return
	}
	m.setFrame(m.ctrl.Handle(ev))
}

func (m *Model) setFrame(frame chart.Frame) {
	if !frame.Diff.Empty() {
		logger.Debug("Chart paths changed",
			"added", frame.Diff.Added, "removed", frame.Diff.Removed, "kept", frame.Diff.Kept)
	}
	m.frame = frame
	m.chart.SetFrame(frame)
	m.legend.SetItems(frame.Legend)
	m.statusBar.SetFrame(frame)
}

func (m Model) setStatus(text string, isError bool) (tea.Model, tea.Cmd) {
	m.statusAt = time.Now()
	m.statusBar.SetMessage(text, isError)
	return m, clearStatusAfter(m.statusAt)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Overlays own the keyboard while open
	if m.debugPanel.IsVisible() {
		var cmd tea.Cmd
		m.debugPanel, cmd = m.debugPanel.Update(msg)
		return m, cmd
	}
	if m.picker.IsVisible() {
		region, ok, cmd := m.picker.Update(msg)
		if ok {
			m.apply(chart.SelectRegion{Region: region})
		}
		return m, cmd
	}
	if m.helpVisible {
		if key.Matches(msg, m.keys.Help, m.keys.Close) {
			m.helpVisible = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		return m, nil
	case key.Matches(msg, m.keys.Debug):
		m.debugPanel.Toggle()
		return m, nil
	}

	if m.ctrl == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextRegion):
		m.cycleRegion(1)
	case key.Matches(msg, m.keys.PrevRegion):
		m.cycleRegion(-1)
	case key.Matches(msg, m.keys.Filter):
		return m, m.picker.Open(m.ctrl.Region())

	case key.Matches(msg, m.keys.ToggleMode):
		m.apply(chart.SelectMode{Mode: m.ctrl.Mode().Toggle()})
	case key.Matches(msg, m.keys.Counts):
		if m.ctrl.Mode() != chart.ModeCounts {
			m.apply(chart.SelectMode{Mode: chart.ModeCounts})
		}
	case key.Matches(msg, m.keys.Share):
		if m.ctrl.Mode() != chart.ModeShare {
			m.apply(chart.SelectMode{Mode: chart.ModeShare})
		}

	case key.Matches(msg, m.keys.ZoomIn):
		m.apply(chart.ZoomIn{})
	case key.Matches(msg, m.keys.ZoomOut):
		m.apply(chart.ZoomOut{})
	case key.Matches(msg, m.keys.ResetZoom):
		m.apply(chart.ResetZoom{})
	case key.Matches(msg, m.keys.PanLeft):
		m.pan(1)
	case key.Matches(msg, m.keys.PanRight):
		m.pan(-1)

	case key.Matches(msg, m.keys.Copy):
		tt, ok := m.ctrl.Tooltip()
		if !ok {
			return m.setStatus("no tooltip to copy", true)
		}
		return m, copyToClipboard(m.clipboard, tt.String())

	default:
		for i, b := range m.keys.FocusBindings() {
			if key.Matches(msg, b) && i < len(m.frame.Legend) {
				m.apply(chart.LegendClick{ID: m.frame.Legend[i].ID})
				break
			}
		}
	}
	return m, nil
}

// cycleRegion selects the region step places away in selector order.
func (m *Model) cycleRegion(step int) {
	if len(m.regions) == 0 {
		return
	}
	idx := 0
	for i, r := range m.regions {
		if r == m.ctrl.Region() {
			idx = i
			break
		}
	}
	idx = (idx + step + len(m.regions)) % len(m.regions)
	m.apply(chart.SelectRegion{Region: m.regions[idx]})
}

// pan shifts the view by pan_step columns; dir 1 reveals earlier dates.
func (m *Model) pan(dir int) {
	width := m.chart.Bounds().Width
	if width <= 0 {
		width = max(m.width, components.MinChartWidth)
	}
	m.apply(chart.PanBy{
		Delta: float64(dir * m.config.Chart.PanStep),
		Width: float64(width),
	})
}

// handleMouse maps mouse input on the chart and legend to chart events.
// Pressing in the plot starts a drag; motion pans while dragging and
// moves the tooltip otherwise.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ctrl == nil || m.overlayOpen() || m.narrow() {
		return m, nil
	}

	legendRow := chartTop + m.chartHeight()
	if msg.Y == legendRow {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if id, ok := m.legend.ItemAt(msg.X); ok {
				m.apply(chart.LegendClick{ID: id})
			}
		}
		return m.leavePlot(), nil
	}

	bounds := m.chart.Bounds()
	x, y := msg.X, msg.Y-chartTop
	inside := bounds.Contains(x, y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if inside {
			m.apply(chart.ZoomBy{Factor: m.config.Chart.ZoomInFactor})
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if inside {
			m.apply(chart.ZoomBy{Factor: m.config.Chart.ZoomOutFactor})
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside {
			m.inPlot = true
			m.apply(chart.DragStart{X: bounds.Column(x)})
		}
	case msg.Action == tea.MouseActionRelease:
		m.apply(chart.DragEnd{})

	case msg.Action == tea.MouseActionMotion:
		if !inside {
			return m.leavePlot(), nil
		}
		m.inPlot = true
		m.pointerCol = int(bounds.Column(x))
		m.apply(chart.PointerMove{X: bounds.Column(x), Width: float64(bounds.Width)})
	}
	return m, nil
}

// leavePlot ends any drag and hides the tooltip once the pointer leaves
// the plot area.
func (m Model) leavePlot() Model {
	if m.inPlot {
		m.inPlot = false
		m.apply(chart.PointerLeave{})
	}
	return m
}

func (m Model) overlayOpen() bool {
	return m.helpVisible || m.debugPanel.IsVisible() || m.picker.IsVisible()
}

// View renders the application UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	if m.loadErr != nil {
		box := styles.ErrorBoxStyle.Render(FormatLoadError(m.loadErr)) + "\n\n" +
			styles.MutedStyle.Render("press q to quit")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	if m.loading {
		msg := m.spinner.View() + " Loading dataset..."
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	switch {
	case m.debugPanel.IsVisible():
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.debugPanel.View())
	case m.picker.IsVisible():
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.picker.View())
	case m.helpVisible:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View(m.keys.FullHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderChart(),
		m.legend.View(),
		m.statusBar.View(),
	)
}

// renderHeader renders the chart title and y-axis label
func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render(m.frame.Title)
	if m.frame.YLabel == "" {
		return title
	}
	return title + "  " + styles.SubtitleStyle.Render(m.frame.YLabel)
}

// renderChart renders the braille chart with its tooltip, or the ascii
// plot when the terminal is too small.
func (m Model) renderChart() string {
	if m.narrow() {
		return components.RenderPlot(m.frame, m.width, max(m.chartHeight()-2, 3))
	}

	view := m.chart.View()
	tt := m.frame.Tooltip
	if tt == nil || !m.config.UI.ShowTooltip || !m.chart.Ready() {
		return view
	}
	return components.PlaceTooltip(view, components.RenderTooltip(*tt), m.chart.Bounds(), m.pointerCol)
}
