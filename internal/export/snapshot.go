package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/willibrandon/enrollview/internal/chart"
)

// PathStats summarises one path over the full and visible ranges.
type PathStats struct {
	ID      string  `yaml:"id"`
	Points  int     `yaml:"points"`
	Visible int     `yaml:"visible"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	First   string  `yaml:"first"`
	Last    string  `yaml:"last"`
}

// Snapshot is the YAML document written by WriteSnapshot.
type Snapshot struct {
	Frame chart.Frame `yaml:"frame"`
	Stats []PathStats `yaml:"stats,omitempty"`
}

// NewSnapshot builds the snapshot document for frame.
func NewSnapshot(frame chart.Frame) Snapshot {
	s := Snapshot{Frame: frame}
	for _, p := range frame.Paths {
		st := PathStats{ID: p.ID, Points: len(p.Points)}
		for i, pt := range p.Points {
			if i == 0 || pt.Value < st.Min {
				st.Min = pt.Value
			}
			if i == 0 || pt.Value > st.Max {
				st.Max = pt.Value
			}
			if frame.View.Contains(pt.Date) {
				st.Visible++
			}
		}
		if n := len(p.Points); n > 0 {
			st.First = p.Points[0].Date.Format(chart.TooltipDateLayout)
			st.Last = p.Points[n-1].Date.Format(chart.TooltipDateLayout)
		}
		s.Stats = append(s.Stats, st)
	}
	return s
}

// MarshalSnapshot encodes the snapshot of frame as YAML.
func MarshalSnapshot(frame chart.Frame) ([]byte, error) {
	out, err := yaml.Marshal(NewSnapshot(frame))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return out, nil
}

// WriteSnapshot writes the YAML snapshot of frame to w. No-data frames are
// written too; they carry the message instead of paths.
func WriteSnapshot(w io.Writer, frame chart.Frame) error {
	out, err := MarshalSnapshot(frame)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
