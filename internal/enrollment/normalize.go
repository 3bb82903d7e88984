// Package enrollment holds the Medicaid enrollment data model: raw rows,
// canonical region names and the immutable in-memory dataset.
package enrollment

import (
	"sort"
	"strings"
)

const (
	// TotalsRegion is the aggregate pseudo-region present in the source data.
	TotalsRegion = "Totals"

	// TotalsDisplayName is how the aggregate region is labelled in the UI.
	TotalsDisplayName = "United States (total)"
)

// NormalizeName maps a raw free-text region label to its canonical name.
// Footnote markers (*) are stripped and the known abbreviation variants for
// American Samoa and the District of Columbia are folded together.
func NormalizeName(name string) string {
	if name == "" {
		return name
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(name, "*", ""))
	lower := strings.ToLower(cleaned)

	switch {
	case strings.HasPrefix(lower, "amer.") && strings.Contains(lower, "samoa"):
		return "American Samoa"
	case lower == "american samoa":
		return "American Samoa"
	case strings.HasPrefix(lower, "dist.") && strings.Contains(lower, "col"):
		return "District of Columbia"
	case lower == "district of columbia" || lower == "district of columbia.":
		return "District of Columbia"
	}

	return cleaned
}

// DisplayName returns the label shown for a region in selectors and titles.
func DisplayName(region string) string {
	if region == TotalsRegion {
		return TotalsDisplayName
	}
	return region
}

// SortRegions returns a sorted copy of regions. The aggregate region, when
// present, always comes first; everything else is ascending by name.
func SortRegions(regions []string) []string {
	sorted := make([]string, 0, len(regions))
	hasTotals := false
	for _, r := range regions {
		if r == TotalsRegion {
			hasTotals = true
			continue
		}
		sorted = append(sorted, r)
	}
	sort.Strings(sorted)

	if hasTotals {
		sorted = append([]string{TotalsRegion}, sorted...)
	}
	return sorted
}

// DefaultRegion picks the initially selected region from a sorted listing.
func DefaultRegion(sorted []string) string {
	for _, r := range sorted {
		if r == TotalsRegion {
			return r
		}
	}
	if len(sorted) == 0 {
		return ""
	}
	return sorted[0]
}
