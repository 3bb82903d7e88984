package chart

// LegendItem is one clickable legend entry.
type LegendItem struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Color   string `yaml:"color"`
	Focused bool   `yaml:"focused"`
	Dimmed  bool   `yaml:"dimmed"`
}

// BuildLegend lists the legend entries for mode. While focus is set every
// item other than the focused one is dimmed.
func BuildLegend(mode Mode, focus string) []LegendItem {
	configs := Configs(mode)
	items := make([]LegendItem, len(configs))
	for i, cfg := range configs {
		items[i] = LegendItem{
			ID:      cfg.ID,
			Label:   cfg.Label,
			Color:   cfg.Color,
			Focused: focus != "" && focus == cfg.ID,
			Dimmed:  focus != "" && focus != cfg.ID,
		}
	}
	return items
}
