package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders data as a single line of block characters, width
// cells wide. NaN values render as blanks.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(data) == 0 {
		return strings.Repeat("─", width)
	}

	data = resample(data, width)
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	valueRange := maxVal - minVal
	if valueRange <= 0 || math.IsInf(valueRange, 0) {
		valueRange = 1
	}

	var sb strings.Builder
	for _, v := range data {
		if math.IsNaN(v) {
			sb.WriteRune(' ')
			continue
		}
		idx := int((v - minVal) / valueRange * 7)
		idx = min(max(idx, 0), 7)
		sb.WriteRune(sparkBlocks[idx])
	}
	if color == "" {
		return sb.String()
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// resample averages data into at most width buckets, skipping NaN.
func resample(data []float64, width int) []float64 {
	if len(data) <= width {
		return data
	}

	result := make([]float64, width)
	bucketSize := float64(len(data)) / float64(width)
	for i := 0; i < width; i++ {
		start := int(float64(i) * bucketSize)
		end := min(int(float64(i+1)*bucketSize), len(data))
		if start >= end {
			start = max(end-1, 0)
		}

		sum, count := 0.0, 0
		for _, v := range data[start:end] {
			if math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
		if count == 0 {
			result[i] = math.NaN()
			continue
		}
		result[i] = sum / float64(count)
	}
	return result
}

// Trend is the overall direction of a series.
type Trend int

const (
	TrendStable Trend = iota
	TrendUp
	TrendDown
)

// GetTrend compares the averages of the first and last thirds of data.
// Moves under 5% of the first-third average count as stable.
func GetTrend(data []float64) Trend {
	if len(data) < 2 {
		return TrendStable
	}
	third := max(len(data)/3, 1)

	var firstSum, lastSum float64
	for _, v := range data[:third] {
		firstSum += v
	}
	for _, v := range data[len(data)-third:] {
		lastSum += v
	}
	firstAvg := firstSum / float64(third)
	lastAvg := lastSum / float64(third)

	diff := lastAvg - firstAvg
	threshold := math.Abs(firstAvg) * 0.05
	switch {
	case diff > threshold:
		return TrendUp
	case diff < -threshold:
		return TrendDown
	}
	return TrendStable
}

// String returns an arrow for the trend.
func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	}
	return "→"
}
