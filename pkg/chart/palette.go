package chart

import "slices"

// =============================================================================
// Color Schemes
// =============================================================================

// Named color schemes. Each is a non-empty list of CSS color strings that
// group colors cycle through.
var schemes = map[string][]string{
	"classic": {"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f", "#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac"},
	"pastel":  {"#a1c9f4", "#ffb482", "#8de5a1", "#ff9f9b", "#d0bbff", "#debb9b", "#fab0e4", "#cfcfcf", "#fffea3", "#b9f2f0"},
	"warm":    {"#d1495b", "#edae49", "#f9df74", "#ea8c55", "#c44536", "#772e25", "#e26d5c", "#ffcb69"},
	"cool":    {"#1f6f8b", "#99a8b2", "#2a9d8f", "#457b9d", "#14213d", "#588b8b", "#7dcfb6", "#00b2ca"},
	"mono":    {"#1b1b1b", "#3d3d3d", "#5e5e5e", "#808080", "#a1a1a1", "#c3c3c3"},
}

// DefaultScheme is the color scheme used when none is configured.
const DefaultScheme = "classic"

// Scheme returns the colors of a named scheme, or nil if the name is unknown.
func Scheme(name string) []string {
	return schemes[name]
}

// SchemeNames returns the sorted list of available scheme names.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Group Color Resolution
// =============================================================================

// LegendEntry pairs a group label with its resolved color.
type LegendEntry struct {
	Group string `json:"group" bson:"group"`
	Color string `json:"color" bson:"color"`
}

// GroupColors assigns a deterministic color to each distinct non-empty group
// label, cycling through the scheme in first-seen order. The same ordered
// item list always produces the same mapping, so re-renders never reshuffle
// colors for unchanged data.
func GroupColors(items []Item, scheme []string) []LegendEntry {
	if len(scheme) == 0 {
		scheme = schemes[DefaultScheme]
	}
	var legend []LegendEntry
	seen := make(map[string]struct{})
	for _, it := range items {
		if it.Group == "" {
			continue
		}
		if _, ok := seen[it.Group]; ok {
			continue
		}
		seen[it.Group] = struct{}{}
		legend = append(legend, LegendEntry{
			Group: it.Group,
			Color: scheme[(len(legend))%len(scheme)],
		})
	}
	return legend
}

// ItemColor resolves the fill color for one item. An explicit Color always
// wins; otherwise the group color applies; items with neither fall back to
// the first scheme color.
func ItemColor(it Item, legend []LegendEntry, scheme []string) string {
	if it.Color != "" {
		return it.Color
	}
	if it.Group != "" {
		for _, e := range legend {
			if e.Group == it.Group {
				return e.Color
			}
		}
	}
	if len(scheme) == 0 {
		scheme = schemes[DefaultScheme]
	}
	return scheme[0]
}
