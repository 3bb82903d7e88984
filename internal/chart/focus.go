package chart

// Focus tracks the isolated series, one slot per mode. Slots are
// independent: toggling in one mode never touches the other.
type Focus struct {
	counts string
	share  string
}

// Get returns the focused series id for mode, or "" when none.
func (f *Focus) Get(mode Mode) string {
	if mode == ModeShare {
		return f.share
	}
	return f.counts
}

// Toggle focuses id in mode, or clears the slot if id is already focused.
func (f *Focus) Toggle(mode Mode, id string) {
	slot := &f.counts
	if mode == ModeShare {
		slot = &f.share
	}
	if *slot == id {
		*slot = ""
		return
	}
	*slot = id
}

// Reset clears both slots.
func (f *Focus) Reset() {
	f.counts = ""
	f.share = ""
}

// Opacity returns the path opacity for series id under focus.
func Opacity(focus, id string) float64 {
	if focus != "" && focus != id {
		return DimmedOpacity
	}
	return 1
}

// DimmedOpacity is applied to non-focused paths while a focus is set.
const DimmedOpacity = 0.25
