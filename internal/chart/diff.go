package chart

// PathDiff compares the series ids of two consecutive frames.
type PathDiff struct {
	Added   []string `yaml:"added,omitempty"`
	Removed []string `yaml:"removed,omitempty"`
	Kept    []string `yaml:"kept,omitempty"`
}

// Empty reports whether nothing changed between the frames.
func (d PathDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// DiffPaths reports which ids in next are new, which ids from prev are gone
// and which survive. Added and Kept follow next's order; Removed follows
// prev's.
func DiffPaths(prev, next []string) PathDiff {
	before := make(map[string]bool, len(prev))
	for _, id := range prev {
		before[id] = true
	}
	after := make(map[string]bool, len(next))
	for _, id := range next {
		after[id] = true
	}

	var d PathDiff
	for _, id := range next {
		if before[id] {
			d.Kept = append(d.Kept, id)
		} else {
			d.Added = append(d.Added, id)
		}
	}
	for _, id := range prev {
		if !after[id] {
			d.Removed = append(d.Removed, id)
		}
	}
	return d
}
