package chart

import (
	"reflect"
	"testing"
)

func TestFocus_TogglePerMode(t *testing.T) {
	var f Focus

	f.Toggle(ModeCounts, SeriesVIII)
	f.Toggle(ModeShare, SeriesShareNewly)

	if f.Get(ModeCounts) != SeriesVIII {
		t.Errorf("counts focus = %q, want %q", f.Get(ModeCounts), SeriesVIII)
	}
	if f.Get(ModeShare) != SeriesShareNewly {
		t.Errorf("share focus = %q, want %q", f.Get(ModeShare), SeriesShareNewly)
	}

	f.Toggle(ModeCounts, SeriesVIII)
	if f.Get(ModeCounts) != "" {
		t.Error("toggling the focused id should clear it")
	}
	if f.Get(ModeShare) != SeriesShareNewly {
		t.Error("clearing counts focus touched share focus")
	}

	f.Toggle(ModeCounts, SeriesTotal)
	f.Toggle(ModeCounts, SeriesNewly)
	if f.Get(ModeCounts) != SeriesNewly {
		t.Error("toggling another id should move focus")
	}

	f.Reset()
	if f.Get(ModeCounts) != "" || f.Get(ModeShare) != "" {
		t.Error("Reset should clear both slots")
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		focus, id string
		want      float64
	}{
		{"", SeriesTotal, 1},
		{SeriesTotal, SeriesTotal, 1},
		{SeriesTotal, SeriesVIII, DimmedOpacity},
	}
	for _, tt := range tests {
		if got := Opacity(tt.focus, tt.id); got != tt.want {
			t.Errorf("Opacity(%q, %q) = %v, want %v", tt.focus, tt.id, got, tt.want)
		}
	}
}

func TestBuildLegend(t *testing.T) {
	items := BuildLegend(ModeCounts, "")
	if len(items) != 3 {
		t.Fatalf("expected 3 legend items, got %d", len(items))
	}
	for _, it := range items {
		if it.Dimmed || it.Focused {
			t.Errorf("item %s should be plain without focus", it.ID)
		}
	}
	if items[0].Color != "#1f77b4" || items[1].Color != "#ff7f0e" || items[2].Color != "#2ca02c" {
		t.Errorf("unexpected palette: %s %s %s", items[0].Color, items[1].Color, items[2].Color)
	}

	items = BuildLegend(ModeShare, SeriesShareNewly)
	if len(items) != 2 {
		t.Fatalf("expected 2 legend items, got %d", len(items))
	}
	if !items[0].Dimmed || items[0].Focused {
		t.Error("share_viii should be dimmed")
	}
	if items[1].Dimmed || !items[1].Focused {
		t.Error("share_newly should be focused")
	}
}

func TestDiffPaths(t *testing.T) {
	d := DiffPaths(
		[]string{SeriesTotal, SeriesVIII, SeriesNewly},
		[]string{SeriesShareVIII, SeriesShareNewly},
	)
	if !reflect.DeepEqual(d.Added, []string{SeriesShareVIII, SeriesShareNewly}) {
		t.Errorf("Added = %v", d.Added)
	}
	if !reflect.DeepEqual(d.Removed, []string{SeriesTotal, SeriesVIII, SeriesNewly}) {
		t.Errorf("Removed = %v", d.Removed)
	}
	if len(d.Kept) != 0 {
		t.Errorf("Kept = %v, want none", d.Kept)
	}

	d = DiffPaths([]string{"a", "b"}, []string{"b", "a"})
	if !d.Empty() || !reflect.DeepEqual(d.Kept, []string{"b", "a"}) {
		t.Errorf("reordering should keep everything, got %+v", d)
	}
}
