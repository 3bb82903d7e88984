package app

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/config"
	"github.com/willibrandon/enrollview/internal/dataset"
	"github.com/willibrandon/enrollview/internal/enrollment"
	"github.com/willibrandon/enrollview/internal/ui"
)

func testConfig() *config.Config {
	return &config.Config{
		Dataset: config.DatasetConfig{Path: "enrollment.csv", MinYear: 2014, MaxYear: 2021},
		Chart: config.ChartConfig{
			ZoomInFactor:  0.5,
			ZoomOutFactor: 2,
			PanStep:       4,
			DefaultMode:   "counts",
		},
		UI: config.UIConfig{Theme: "dark", ShowTooltip: true},
	}
}

func monthlyRows(region string, year, months int) []enrollment.Row {
	rows := make([]enrollment.Row, months)
	for i := range rows {
		rows[i] = enrollment.Row{
			Region:        region,
			Year:          year + i/12,
			Month:         i%12 + 1,
			Total:         enrollment.Float(float64(1000 + i*10)),
			GroupVIII:     enrollment.Float(float64(200 + i)),
			NewlyEligible: enrollment.Float(float64(100 + i)),
		}
	}
	return rows
}

func testDataset() *enrollment.Dataset {
	rows := monthlyRows("Totals", 2014, 48)
	rows = append(rows, monthlyRows("Ohio", 2015, 24)...)
	rows = append(rows, monthlyRows("Amer. Samoa", 2016, 12)...)
	return enrollment.NewDataset(rows, enrollment.DefaultYearRange())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedModel returns a sized model with the test dataset loaded.
func loadedModel(t *testing.T, width, height int) Model {
	t.Helper()
	m := New(testConfig(), Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	next, _ = next.Update(ui.DatasetLoadedMsg{Result: &dataset.Result{
		Dataset: testDataset(),
		Source:  "enrollment.csv",
		Format:  dataset.FormatCSV,
	}})
	model := next.(Model)
	if model.loadErr != nil {
		t.Fatalf("unexpected load error: %v", model.loadErr)
	}
	return model
}

func send(m Model, msgs ...tea.Msg) Model {
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = next.Update(msg)
	}
	return next.(Model)
}

func TestResolveRegion(t *testing.T) {
	ds := testDataset()
	tests := []struct {
		in   string
		want string
	}{
		{"", "Totals"},
		{"United States (total)", "Totals"},
		{"Ohio", "Ohio"},
		{"ohio", "Ohio"},
		{"Amer. Samoa", "American Samoa"},
		{"Guam", "Guam"},
	}
	for _, tt := range tests {
		if got := ResolveRegion(ds, tt.in); got != tt.want {
			t.Errorf("ResolveRegion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewChart(t *testing.T) {
	ds := testDataset()
	cfg := testConfig()

	ctrl, frame, err := NewChart(ds, cfg, Options{Region: "Ohio", Focus: chart.SeriesVIII, Zoom: []float64{0.5}})
	if err != nil {
		t.Fatalf("NewChart: %v", err)
	}
	if ctrl.Region() != "Ohio" || frame.Region != "Ohio" {
		t.Errorf("region = %q", frame.Region)
	}
	if frame.Focus != chart.SeriesVIII {
		t.Errorf("focus = %q, want %q", frame.Focus, chart.SeriesVIII)
	}
	if frame.View.Span() >= frame.Full.Span() {
		t.Errorf("view %v not zoomed inside full %v", frame.View, frame.Full)
	}

	_, frame, err = NewChart(ds, cfg, Options{Mode: chart.ModeShare})
	if err != nil {
		t.Fatalf("NewChart share: %v", err)
	}
	if frame.Mode != chart.ModeShare || frame.Region != "Totals" {
		t.Errorf("frame = %s/%s", frame.Region, frame.Mode)
	}

	if _, _, err := NewChart(ds, cfg, Options{Focus: "bogus"}); err == nil {
		t.Error("expected error for unknown focus series")
	}
	if _, _, err := NewChart(ds, cfg, Options{Zoom: []float64{0}}); err == nil {
		t.Error("expected error for zero zoom factor")
	}
	for _, f := range []float64{math.Inf(1), math.NaN()} {
		if _, _, err := NewChart(ds, cfg, Options{Zoom: []float64{f}}); err == nil {
			t.Errorf("expected error for zoom factor %v", f)
		}
	}

	_, frame, err = NewChart(ds, cfg, Options{Region: "Guam"})
	if err != nil {
		t.Fatalf("NewChart Guam: %v", err)
	}
	if !frame.NoData || frame.Message != chart.NoDataMessage {
		t.Errorf("expected no-data frame, got %+v", frame)
	}
}

func TestRegionTrends(t *testing.T) {
	trends := regionTrends(testDataset())
	if len(trends["Totals"]) != 48 {
		t.Errorf("Totals trend has %d values, want 48", len(trends["Totals"]))
	}
	if got := trends["Ohio"][0]; got != 1000 {
		t.Errorf("Ohio first value = %v, want 1000", got)
	}
}

func TestModel_Loading(t *testing.T) {
	m := send(New(testConfig(), Options{}), tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.View(), "Loading dataset") {
		t.Errorf("expected loading view, got %q", m.View())
	}

	m = send(m, ui.DatasetErrorMsg{Err: fmt.Errorf("read: %w", dataset.ErrEmptyDataset)})
	if !strings.Contains(m.View(), "no usable rows") {
		t.Errorf("expected error view, got %q", m.View())
	}

	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Error("expected quit command on error screen")
	}
}

func TestModel_DatasetLoaded(t *testing.T) {
	m := loadedModel(t, 100, 30)

	f := m.Frame()
	if f.Region != "Totals" || f.Mode != chart.ModeCounts {
		t.Errorf("frame = %s/%s, want Totals/counts", f.Region, f.Mode)
	}
	if f.NoData {
		t.Fatal("unexpected no-data frame")
	}
	view := m.View()
	if !strings.Contains(view, "Enrollment counts for United States (total)") {
		t.Error("view missing chart title")
	}
	if !strings.Contains(view, "Total Medicaid enrollees") {
		t.Error("view missing legend")
	}
}

func TestModel_RegionAndModeKeys(t *testing.T) {
	m := loadedModel(t, 100, 30)

	m = send(m, keyRunes("]"))
	if got := m.Frame().Region; got != "American Samoa" {
		t.Errorf("after ] region = %q, want American Samoa", got)
	}
	m = send(m, keyRunes("["), keyRunes("["))
	if got := m.Frame().Region; got != "Ohio" {
		t.Errorf("after [[ region = %q, want Ohio (wraps)", got)
	}

	m = send(m, keyRunes("m"))
	if m.Frame().Mode != chart.ModeShare {
		t.Errorf("after m mode = %s, want share", m.Frame().Mode)
	}
	m = send(m, keyRunes("c"))
	if m.Frame().Mode != chart.ModeCounts {
		t.Errorf("after c mode = %s, want counts", m.Frame().Mode)
	}
}

func TestModel_FocusKeys(t *testing.T) {
	m := loadedModel(t, 100, 30)

	m = send(m, keyRunes("2"))
	if m.Frame().Focus != chart.SeriesVIII {
		t.Errorf("after 2 focus = %q, want %q", m.Frame().Focus, chart.SeriesVIII)
	}
	m = send(m, keyRunes("2"))
	if m.Frame().Focus != "" {
		t.Errorf("second 2 should clear focus, got %q", m.Frame().Focus)
	}

	m = send(m, keyRunes("s"), keyRunes("3"))
	if m.Frame().Focus != "" {
		t.Errorf("share mode has two series, 3 should be ignored; focus = %q", m.Frame().Focus)
	}
}

func TestModel_ZoomAndPanKeys(t *testing.T) {
	m := loadedModel(t, 100, 30)
	full := m.Frame().Full

	m = send(m, keyRunes("+"))
	zoomed := m.Frame().View
	if zoomed.Span() >= full.Span() {
		t.Fatalf("zoom in did not narrow the view: %v", zoomed)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.Frame().View.Start.Before(zoomed.Start) {
		t.Errorf("pan left should reveal earlier dates: %v -> %v", zoomed.Start, m.Frame().View.Start)
	}
	if m.Frame().View.Span() != zoomed.Span() {
		t.Errorf("pan changed the span: %v -> %v", zoomed.Span(), m.Frame().View.Span())
	}

	m = send(m, keyRunes("0"))
	if !m.Frame().View.Start.Equal(full.Start) || !m.Frame().View.End.Equal(full.End) {
		t.Errorf("reset view = %v, want %v", m.Frame().View, full)
	}
}

func TestModel_MouseDragAndTooltip(t *testing.T) {
	m := loadedModel(t, 100, 30)
	m = send(m, keyRunes("+"))
	before := m.Frame().View

	b := m.chart.Bounds()
	if b.Width <= 0 || b.Height <= 0 {
		t.Fatalf("chart bounds not set: %+v", b)
	}
	x := b.Left + b.Width/2
	y := chartTop + b.Top + b.Height/2

	m = send(m,
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x + 10, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
	)
	if !m.Frame().View.Start.Before(before.Start) {
		t.Errorf("dragging right should reveal earlier dates: %v -> %v", before.Start, m.Frame().View.Start)
	}
	if m.Frame().Tooltip != nil {
		t.Error("tooltip shown while dragging")
	}

	m = send(m,
		tea.MouseMsg{X: x + 10, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
	)
	if m.Frame().Tooltip == nil {
		t.Fatal("expected tooltip after hover")
	}
	if m.Frame().Tooltip.RegionName != "United States (total)" {
		t.Errorf("tooltip region = %q", m.Frame().Tooltip.RegionName)
	}

	m = send(m, tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if m.Frame().Tooltip != nil {
		t.Error("tooltip should hide when the pointer leaves the plot")
	}
}

func TestModel_MouseWheelAndLegend(t *testing.T) {
	m := loadedModel(t, 100, 30)
	full := m.Frame().Full
	b := m.chart.Bounds()
	x := b.Left + b.Width/2
	y := chartTop + b.Top + b.Height/2

	m = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.Frame().View.Span() >= full.Span() {
		t.Errorf("wheel up did not zoom in: %v", m.Frame().View)
	}

	legendRow := chartTop + m.chartHeight()
	m = send(m, tea.MouseMsg{X: 0, Y: legendRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Frame().Focus != chart.SeriesTotal {
		t.Errorf("legend click focus = %q, want %q", m.Frame().Focus, chart.SeriesTotal)
	}
}

func TestModel_Overlays(t *testing.T) {
	m := loadedModel(t, 100, 30)

	m = send(m, keyRunes("?"))
	if !m.helpVisible {
		t.Fatal("help not shown")
	}
	m = send(m, keyRunes("]"))
	if m.Frame().Region != "Totals" {
		t.Error("keys should not reach the chart while help is open")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.helpVisible {
		t.Error("esc should close help")
	}

	m = send(m, keyRunes("/"))
	if !m.picker.IsVisible() {
		t.Fatal("region picker not shown")
	}
	m = send(m, keyRunes("ohio"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker.IsVisible() {
		t.Error("picker should close after a choice")
	}
	if m.Frame().Region != "Ohio" {
		t.Errorf("picked region = %q, want Ohio", m.Frame().Region)
	}

	m = send(m, keyRunes("!"))
	if !m.debugPanel.IsVisible() {
		t.Error("debug panel not shown")
	}
}

func TestModel_CopyWithoutTooltip(t *testing.T) {
	m := loadedModel(t, 100, 30)
	_, cmd := m.Update(keyRunes("y"))
	if cmd == nil {
		t.Error("expected a status clear command")
	}
}

func TestModel_NarrowFallback(t *testing.T) {
	m := loadedModel(t, 24, 10)
	if !m.narrow() {
		t.Fatal("expected narrow layout")
	}
	if m.View() == "" {
		t.Error("narrow view is empty")
	}
	// Mouse input is ignored without a braille chart
	m = send(m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.Frame().View.Span() != m.Frame().Full.Span() {
		t.Error("wheel zoomed in the narrow layout")
	}
}

func TestFormatLoadError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", fmt.Errorf("failed to open dataset: %w", os.ErrNotExist), "Dataset not found"},
		{"format", fmt.Errorf("%w: data.json", dataset.ErrUnsupportedFormat), "Unsupported dataset format"},
		{"column", fmt.Errorf("%w: State", dataset.ErrMissingColumn), "missing a required column"},
		{"empty", dataset.ErrEmptyDataset, "no usable rows"},
		{"postgres", errors.New("failed to connect to database: dial tcp: connection refused"), "Cannot reach the PostgreSQL source"},
		{"query", errors.New("failed to query enrollment: relation does not exist"), "could not be read"},
		{"other", errors.New("boom"), "Failed to load dataset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLoadError(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatLoadError() = %q, want it to contain %q", got, tt.want)
			}
			if !strings.Contains(got, tt.err.Error()) {
				t.Errorf("FormatLoadError() dropped the original error")
			}
		})
	}
}

func TestDatasetOptions(t *testing.T) {
	cfg := testConfig()
	cfg.Dataset.Sheet = "Data"
	opts := DatasetOptions(cfg)
	if opts.Path != "enrollment.csv" || opts.Sheet != "Data" {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Years != (enrollment.YearRange{Min: 2014, Max: 2021}) {
		t.Errorf("years = %+v", opts.Years)
	}
	if opts.Cache != nil {
		t.Error("DatasetOptions should not open the cache")
	}
}
