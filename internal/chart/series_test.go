package chart

import (
	"math"
	"testing"

	"github.com/willibrandon/enrollview/internal/enrollment"
)

func TestDeriveSeries_Counts(t *testing.T) {
	rows := []enrollment.Row{
		{Year: 2015, Month: 3, Total: enrollment.Float(30), GroupVIII: enrollment.Float(3), NewlyEligible: enrollment.Float(1)},
		{Year: 2015, Month: 1, Total: nil, GroupVIII: enrollment.Float(1), NewlyEligible: enrollment.Float(math.NaN())},
		{Year: 2015, Month: 2, Total: enrollment.Float(20), GroupVIII: enrollment.Float(2), NewlyEligible: enrollment.Float(0)},
	}

	series := DeriveSeries(rows, ModeCounts)

	if len(series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(series))
	}
	wantIDs := []string{SeriesTotal, SeriesVIII, SeriesNewly}
	for i, id := range wantIDs {
		if series[i].ID != id {
			t.Errorf("series[%d].ID = %q, want %q", i, series[i].ID, id)
		}
	}

	// total is missing for January
	total := series[0].Values
	if len(total) != 2 {
		t.Fatalf("expected 2 total points, got %d", len(total))
	}
	if !total[0].Date.Equal(date(2015, 2)) || !total[1].Date.Equal(date(2015, 3)) {
		t.Errorf("total points not sorted by date: %v", total)
	}

	viii := series[1].Values
	if len(viii) != 3 {
		t.Fatalf("expected 3 viii points, got %d", len(viii))
	}
	if !viii[0].Date.Equal(date(2015, 1)) {
		t.Errorf("viii[0].Date = %v, want 2015-01", viii[0].Date)
	}

	// NaN dropped, zero kept in counts mode
	newly := series[2].Values
	if len(newly) != 2 {
		t.Fatalf("expected 2 newly points, got %d", len(newly))
	}
	if newly[0].Value != 0 {
		t.Errorf("newly[0].Value = %v, want 0", newly[0].Value)
	}
}

func TestDeriveSeries_Share(t *testing.T) {
	rows := []enrollment.Row{
		{Year: 2016, Month: 1, Total: enrollment.Float(1000), GroupVIII: enrollment.Float(250), NewlyEligible: enrollment.Float(100)},
		{Year: 2016, Month: 2, Total: enrollment.Float(1000), GroupVIII: enrollment.Float(0), NewlyEligible: enrollment.Float(50)},
		{Year: 2016, Month: 3, Total: enrollment.Float(0), GroupVIII: enrollment.Float(50), NewlyEligible: enrollment.Float(10)},
		{Year: 2016, Month: 4, Total: nil, GroupVIII: enrollment.Float(50), NewlyEligible: enrollment.Float(10)},
	}

	series := DeriveSeries(rows, ModeShare)

	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[0].ID != SeriesShareVIII || series[1].ID != SeriesShareNewly {
		t.Fatalf("unexpected series order: %s, %s", series[0].ID, series[1].ID)
	}

	viii := series[0].Values
	if len(viii) != 1 {
		t.Fatalf("expected 1 share_viii point, got %d: %v", len(viii), viii)
	}
	if viii[0].Value != 25 {
		t.Errorf("share_viii = %v, want 25", viii[0].Value)
	}

	newly := series[1].Values
	if len(newly) != 2 {
		t.Fatalf("expected 2 share_newly points, got %d", len(newly))
	}
	if newly[1].Value != 5 {
		t.Errorf("share_newly[1] = %v, want 5", newly[1].Value)
	}
}

func TestDeriveSeries_DoesNotReorderInput(t *testing.T) {
	rows := []enrollment.Row{
		{Year: 2017, Month: 5, Total: enrollment.Float(5)},
		{Year: 2017, Month: 1, Total: enrollment.Float(1)},
	}
	DeriveSeries(rows, ModeCounts)
	if rows[0].Month != 5 {
		t.Error("DeriveSeries reordered its input")
	}
}

func TestSeries_ValueAt(t *testing.T) {
	s := seriesOf("x",
		Point{Date: date(2018, 1), Value: 1},
		Point{Date: date(2018, 3), Value: 3},
	)

	if v, ok := s.ValueAt(date(2018, 3)); !ok || v != 3 {
		t.Errorf("ValueAt(2018-03) = %v, %v; want 3, true", v, ok)
	}
	if _, ok := s.ValueAt(date(2018, 2)); ok {
		t.Error("ValueAt should not match a date between points")
	}
	if _, ok := s.ValueAt(date(2019, 1)); ok {
		t.Error("ValueAt should not match past the end")
	}
}

func TestConfigs_ReturnsCopy(t *testing.T) {
	c := Configs(ModeCounts)
	c[0].Label = "changed"
	if Configs(ModeCounts)[0].Label == "changed" {
		t.Error("Configs exposed the package configuration")
	}
}

func TestMode(t *testing.T) {
	if m, err := ParseMode(" Share "); err != nil || m != ModeShare {
		t.Errorf("ParseMode(Share) = %v, %v", m, err)
	}
	if _, err := ParseMode("bars"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if ModeCounts.Toggle() != ModeShare || ModeShare.Toggle() != ModeCounts {
		t.Error("Toggle should flip modes")
	}
	if got := ModeCounts.Title("Totals"); got != "Enrollment counts for United States (total)" {
		t.Errorf("Title = %q", got)
	}
	if got := ModeShare.Title("Ohio"); got != "Expansion share for Ohio" {
		t.Errorf("Title = %q", got)
	}
}
