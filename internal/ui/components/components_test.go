package components

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/enrollview/internal/chart"
	"github.com/willibrandon/enrollview/internal/enrollment"
)

func testController(t *testing.T) *chart.Controller {
	t.Helper()
	var rows []enrollment.Row
	for i := 0; i < 24; i++ {
		rows = append(rows, enrollment.Row{
			Region:        "Totals",
			Year:          2014 + i/12,
			Month:         i%12 + 1,
			Total:         enrollment.Float(float64(60000000 + i*100000)),
			GroupVIII:     enrollment.Float(float64(9000000 + i*50000)),
			NewlyEligible: enrollment.Float(float64(7000000 + i*40000)),
		})
	}
	return chart.NewController(enrollment.NewDataset(rows, enrollment.DefaultYearRange()))
}

func TestPlotBounds(t *testing.T) {
	b := PlotBounds{Left: 10, Top: 0, Width: 50, Height: 12}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 0, true},
		{59, 11, true},
		{9, 5, false},
		{60, 5, false},
		{20, 12, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if got := b.Column(15); got != 5 {
		t.Errorf("Column(15) = %v, want 5", got)
	}
}

func TestLineChart(t *testing.T) {
	c := testController(t)
	lc := NewLineChart()
	lc.SetSize(80, 20)
	lc.SetFrame(c.Redraw("Totals", chart.ModeCounts, false))

	if !lc.Ready() {
		t.Fatal("Ready() = false for a frame with data")
	}
	b := lc.Bounds()
	if b.Left <= 0 || b.Width <= 0 || b.Height <= 0 {
		t.Fatalf("Bounds() = %+v, want positive plot area", b)
	}
	if b.Left+b.Width > 80 {
		t.Errorf("plot area %+v exceeds chart width", b)
	}

	braille := false
	for _, r := range lc.View() {
		if r >= 0x2800 && r <= 0x28FF {
			braille = true
			break
		}
	}
	if !braille {
		t.Error("View() has no braille cells")
	}

	lc.SetFrame(c.Redraw("Guam", chart.ModeCounts, false))
	if lc.Ready() {
		t.Error("Ready() = true for a no-data frame")
	}
	if !strings.Contains(lc.View(), chart.NoDataMessage) {
		t.Errorf("no-data view = %q", lc.View())
	}
}

func TestXTickLabel(t *testing.T) {
	jan := time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2014, 7, 1, 0, 0, 0, 0, time.UTC)
	axis := chart.XAxis{Layout: "2006-01", Ticks: []chart.TimeTick{
		{At: jan, Label: "2014"},
		{At: jul, Label: "Jul 2014"},
	}}
	window := 20 * 24 * time.Hour

	if got := xTickLabel(axis, jan.AddDate(0, 0, 10), window); got != "2014" {
		t.Errorf("near January = %q, want 2014", got)
	}
	if got := xTickLabel(axis, jul.AddDate(0, 0, -5), window); got != "Jul 2014" {
		t.Errorf("near July = %q, want Jul 2014", got)
	}
	if got := xTickLabel(axis, jan.AddDate(0, 3, 0), window); got != "" {
		t.Errorf("between ticks = %q, want empty", got)
	}
	if got := xTickLabel(chart.XAxis{Layout: "2006-01"}, jul, window); got != "2014-07" {
		t.Errorf("no ticks = %q, want layout fallback", got)
	}

	view := chart.TimeRange{Start: jan, End: jan.Add(100 * 24 * time.Hour)}
	if w := labelWindow(view, 10, 100); w != 5*24*time.Hour {
		t.Errorf("labelWindow = %v, want 5 days", w)
	}
}

func TestDrawOrder(t *testing.T) {
	paths := []chart.Path{
		{SeriesConfig: chart.SeriesConfig{ID: "a"}},
		{SeriesConfig: chart.SeriesConfig{ID: "b"}},
		{SeriesConfig: chart.SeriesConfig{ID: "c"}},
	}
	got := drawOrder(paths, "a")
	if got[2].ID != "a" || len(got) != 3 {
		t.Errorf("drawOrder focus a = %v", got)
	}
	if got := drawOrder(paths, ""); got[0].ID != "a" || got[2].ID != "c" {
		t.Errorf("drawOrder no focus = %v", got)
	}
}

func TestSeriesColor(t *testing.T) {
	if got := SeriesColor("#1f77b4", 1); got != "#1f77b4" {
		t.Errorf("SeriesColor opaque = %q", got)
	}
	if got := SeriesColor("#1f77b4", 0); got != "#1e1e2e" {
		t.Errorf("SeriesColor transparent = %q, want background", got)
	}
	if got := SeriesColor("#1f77b4", 0.5); got == "#1f77b4" || got == "#1e1e2e" {
		t.Errorf("SeriesColor half = %q, want a blend", got)
	}
}

func TestLegendItemAt(t *testing.T) {
	l := NewLegend()
	l.SetItems(chart.BuildLegend(chart.ModeCounts, chart.SeriesVIII))
	if out := l.View(); !strings.Contains(out, "VIII group enrollees") {
		t.Fatalf("View() = %q", out)
	}

	tests := []struct {
		x      int
		wantID string
		wantOK bool
	}{
		{0, chart.SeriesTotal, true},
		{26, chart.SeriesTotal, true},
		{28, "", false},
		{30, chart.SeriesVIII, true},
		{500, "", false},
	}
	for _, tt := range tests {
		id, ok := l.ItemAt(tt.x)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ItemAt(%d) = (%q, %v), want (%q, %v)", tt.x, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name string
		base string
		top  string
		x, y int
		want string
	}{
		{"inside", "aaaaa\nbbbbb\nccccc", "XY", 1, 1, "aaaaa\nbXYbb\nccccc"},
		{"past end", "ab", "X", 4, 0, "ab  X"},
		{"clipped rows", "aa\nbb", "X\nY\nZ", 0, 1, "aa\nXb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlay(tt.base, tt.top, tt.x, tt.y); got != tt.want {
				t.Errorf("Overlay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTooltip(t *testing.T) {
	c := testController(t)
	c.Redraw("Totals", chart.ModeCounts, false)
	c.Handle(chart.PointerMove{X: 0, Width: 100})
	tip, ok := c.Tooltip()
	if !ok {
		t.Fatal("no tooltip at the left edge")
	}
	out := RenderTooltip(tip)
	for _, want := range []string{"United States (total)", "2014-01", "60,000,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("tooltip missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil, 2, ""); got != "──" {
		t.Errorf("empty sparkline = %q", got)
	}
	if got := RenderSparkline([]float64{0, 7}, 2, ""); got != "▁█" {
		t.Errorf("sparkline = %q, want ▁█", got)
	}
	if got := RenderSparkline([]float64{1, math.NaN(), 1}, 3, ""); got != "▁ ▁" {
		t.Errorf("sparkline with gap = %q", got)
	}
}

func TestResample(t *testing.T) {
	got := resample([]float64{1, 2, 3, 4}, 2)
	if len(got) != 2 || got[0] != 1.5 || got[1] != 3.5 {
		t.Errorf("resample() = %v, want [1.5 3.5]", got)
	}
	got = resample([]float64{math.NaN(), math.NaN(), 3, 5}, 2)
	if !math.IsNaN(got[0]) || got[1] != 4 {
		t.Errorf("resample() with NaN = %v", got)
	}
}

func TestGetTrend(t *testing.T) {
	tests := []struct {
		data []float64
		want Trend
	}{
		{[]float64{1, 1, 1, 2, 2, 2}, TrendUp},
		{[]float64{2, 2, 2, 1, 1, 1}, TrendDown},
		{[]float64{5, 5, 5}, TrendStable},
		{[]float64{5}, TrendStable},
	}
	for _, tt := range tests {
		if got := GetTrend(tt.data); got != tt.want {
			t.Errorf("GetTrend(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestPlotGrid(t *testing.T) {
	c := testController(t)
	frame := c.Redraw("Totals", chart.ModeCounts, false)

	months, data := PlotGrid(frame)
	if len(months) != 24 {
		t.Fatalf("len(months) = %d, want 24", len(months))
	}
	if len(data) != 3 || data[0][0] != 60000000 {
		t.Errorf("data[0][0] = %v", data[0][0])
	}

	frame = c.Handle(chart.ZoomIn{})
	months, _ = PlotGrid(frame)
	if len(months) >= 24 || len(months) == 0 {
		t.Errorf("zoomed grid has %d months", len(months))
	}
}

func TestRenderPlot(t *testing.T) {
	c := testController(t)
	out := RenderPlot(c.Redraw("Totals", chart.ModeCounts, false), 80, 15)
	if !strings.Contains(out, "Enrollment counts for United States (total)") {
		t.Errorf("plot missing caption:\n%s", out)
	}
	if got := RenderPlot(c.Redraw("Guam", chart.ModeCounts, false), 80, 15); got != chart.NoDataMessage {
		t.Errorf("no-data plot = %q", got)
	}
}

func TestRegionPicker(t *testing.T) {
	p := NewRegionPicker()
	p.SetRegions([]string{"Totals", "Ohio", "Oregon", "Texas"}, nil)
	p.Open("Ohio")
	if !p.IsVisible() || p.cursor != 1 {
		t.Fatalf("Open: visible=%v cursor=%d", p.IsVisible(), p.cursor)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("or")})
	if got := p.Filtered(); len(got) != 1 || got[0] != "Oregon" {
		t.Fatalf("Filtered() = %v, want [Oregon]", got)
	}
	if !strings.Contains(p.View(), "1 of 4") {
		t.Errorf("View() missing count")
	}

	choice, ok, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !ok || choice != "Oregon" {
		t.Errorf("enter = (%q, %v), want (Oregon, true)", choice, ok)
	}
	if p.IsVisible() {
		t.Error("picker still visible after selection")
	}

	p.Open("Totals")
	if _, ok, _ := p.Update(tea.KeyMsg{Type: tea.KeyEsc}); ok || p.IsVisible() {
		t.Error("esc should close without a choice")
	}
}
