package chart

import (
	"reflect"
	"testing"
	"time"
)

func tickLabels(ticks []TimeTick) []string {
	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.Label
	}
	return labels
}

func TestBuildXAxis_Years(t *testing.T) {
	axis := BuildXAxis(fullDomain())

	if axis.Granularity != GranularityYear {
		t.Fatalf("granularity = %s, want year", axis.Granularity)
	}
	want := []string{"2014", "2015", "2016", "2017", "2018", "2019", "2020", "2021"}
	if got := tickLabels(axis.Ticks); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestBuildXAxis_Quarters(t *testing.T) {
	axis := BuildXAxis(TimeRange{Start: date(2020, 2), End: date(2021, 1)})

	if axis.Granularity != GranularityQuarter {
		t.Fatalf("granularity = %s, want quarter", axis.Granularity)
	}
	want := []string{"Apr 2020", "Jul 2020", "Oct 2020", "Jan 2021"}
	if got := tickLabels(axis.Ticks); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if axis.Format(date(2020, 5)) != "May 2020" {
		t.Errorf("Format = %q", axis.Format(date(2020, 5)))
	}
}

func TestGranularityFor_Threshold(t *testing.T) {
	start := date(2016, 1)
	month := 30 * 24 * time.Hour

	if g := GranularityFor(TimeRange{Start: start, End: start.Add(18 * month)}); g != GranularityQuarter {
		t.Errorf("18 months should use quarter ticks, got %s", g)
	}
	if g := GranularityFor(TimeRange{Start: start, End: start.Add(18*month + 24*time.Hour)}); g != GranularityYear {
		t.Errorf("past 18 months should use year ticks, got %s", g)
	}
}

func TestBuildYTicks(t *testing.T) {
	ticks := BuildYTicks(YDomain{Min: 8, Max: 32}, YTickCount, ModeCounts)

	want := []float64{10, 15, 20, 25, 30}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d: %v", len(ticks), len(want), ticks)
	}
	for i, v := range want {
		if ticks[i].Value != v {
			t.Errorf("tick %d = %v, want %v", i, ticks[i].Value, v)
		}
	}
	if ticks[0].Label != "10" {
		t.Errorf("label = %q, want 10", ticks[0].Label)
	}

	share := BuildYTicks(YDomain{Min: 0, Max: 100}, YTickCount, ModeShare)
	if len(share) != 6 || share[1].Label != "20%" || share[5].Label != "100%" {
		t.Errorf("unexpected share ticks: %v", share)
	}
}

func TestFormatYValue(t *testing.T) {
	tests := []struct {
		v    float64
		mode Mode
		want string
	}{
		{0, ModeCounts, "0.0"},
		{1500000, ModeCounts, "1.5M"},
		{25000000, ModeCounts, "25M"},
		{500000, ModeCounts, "500k"},
		{125000, ModeCounts, "130k"},
		{123456, ModeCounts, "120k"},
		{999.6, ModeCounts, "1.0k"},
		{-2345678, ModeCounts, "-2.3M"},
		{12.5, ModeShare, "12.5%"},
		{40, ModeShare, "40%"},
	}
	for _, tt := range tests {
		if got := FormatYValue(tt.v, tt.mode); got != tt.want {
			t.Errorf("FormatYValue(%v, %s) = %q, want %q", tt.v, tt.mode, got, tt.want)
		}
	}
}

func TestNiceTicks_Small(t *testing.T) {
	ticks := niceTicks(0, 1, 6)
	if len(ticks) != 6 || ticks[1] != 0.2 || ticks[5] != 1 {
		t.Errorf("niceTicks(0, 1) = %v", ticks)
	}
}
