// Package chart defines the serialization model for packviz datasets and
// computed layouts.
//
// A [Dataset] is the external input: a titled list of [Item] values. A
// [Layout] is the computed output: positioned circles plus the legend and
// render options needed to reproduce the visualization. Both types are the
// canonical interchange format used for files, caching, and the HTTP server.
package chart

import (
	"slices"

	"github.com/packviz/packviz/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypePack  = "pack"  // packed-circle chart
	VizTypeGraph = "graph" // group-membership node-link diagram
)

// Visual styles for rendering.
const (
	StyleFlat   = "flat"   // solid fills
	StyleShaded = "shaded" // radial gradient fills
)

// =============================================================================
// Item - External Input
// =============================================================================

// Item is a single data point to be rendered as one bubble.
type Item struct {
	ID    string  `json:"id" toml:"id" bson:"id"`
	Label string  `json:"label,omitempty" toml:"label" bson:"label,omitempty"`
	Value float64 `json:"value" toml:"value" bson:"value"`
	Group string  `json:"group,omitempty" toml:"group" bson:"group,omitempty"`
	Color string  `json:"color,omitempty" toml:"color" bson:"color,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (it *Item) DisplayLabel() string {
	if it.Label != "" {
		return it.Label
	}
	return it.ID
}

// =============================================================================
// Dataset
// =============================================================================

// Dataset is a titled collection of items plus optional presentation hints.
type Dataset struct {
	Title  string `json:"title,omitempty" toml:"title" bson:"title,omitempty"`
	Scheme string `json:"scheme,omitempty" toml:"scheme" bson:"scheme,omitempty"`
	Items  []Item `json:"items" toml:"items" bson:"items"`
}

// Validate checks the dataset invariants the layout core relies on:
// every item has a non-empty ID, IDs are unique, and values are non-negative.
// The core itself performs no validation (it degrades gracefully instead),
// so all input checking happens at this boundary.
func (d *Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Items))
	for i, it := range d.Items {
		if it.ID == "" {
			return errors.New(errors.ErrCodeInvalidItem, "item %d has no id", i)
		}
		if _, dup := seen[it.ID]; dup {
			return errors.New(errors.ErrCodeInvalidDataset, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = struct{}{}
		if it.Value < 0 {
			return errors.New(errors.ErrCodeInvalidItem, "item %q has negative value %v", it.ID, it.Value)
		}
	}
	if d.Scheme != "" && !slices.Contains(SchemeNames(), d.Scheme) {
		return errors.New(errors.ErrCodeInvalidScheme, "unknown color scheme %q", d.Scheme)
	}
	return nil
}
