package chart

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout - Unified Visualization Format
// =============================================================================

// Layout is the unified serialization format for all visualizations.
//
// This is a discriminated union type - check VizType to determine which
// fields are populated:
//
//	Pack ("pack"):
//	  - Bubbles: positioned circles with coordinates and radii
//	  - Padding, Seed, Iterations: layout options for reproducibility
//
//	Graph ("graph"):
//	  - DOT: Graphviz DOT string for rendering
//	  - Engine: Graphviz layout engine (e.g., "neato")
//
// Shared fields (both types):
//   - Width, Height: frame dimensions
//   - Style: visual style ("flat", "shaded")
//   - Title: chart title
//   - Legend: group-to-color mapping in first-seen group order
type Layout struct {
	// Discriminator
	VizType string `json:"viz_type" bson:"viz_type"`

	// Common dimensions and presentation
	Width  float64       `json:"width" bson:"width"`
	Height float64       `json:"height" bson:"height"`
	Style  string        `json:"style,omitempty" bson:"style,omitempty"`
	Title  string        `json:"title,omitempty" bson:"title,omitempty"`
	Legend []LegendEntry `json:"legend,omitempty" bson:"legend,omitempty"`

	// Pack-specific
	Bubbles    []Bubble `json:"bubbles,omitempty" bson:"bubbles,omitempty"`
	Padding    float64  `json:"padding,omitempty" bson:"padding,omitempty"`
	Seed       uint64   `json:"seed,omitempty" bson:"seed,omitempty"`
	Iterations int      `json:"iterations,omitempty" bson:"iterations,omitempty"`

	// Graph-specific
	DOT    string `json:"dot,omitempty" bson:"dot,omitempty"`
	Engine string `json:"engine,omitempty" bson:"engine,omitempty"`
}

// IsPack returns true if this is a packed-circle layout.
func (l *Layout) IsPack() bool { return l.VizType == VizTypePack }

// IsGraph returns true if this is a node-link layout.
func (l *Layout) IsGraph() bool { return l.VizType == VizTypeGraph }

// =============================================================================
// Bubble - Positioned Circle
// =============================================================================

// Bubble is a positioned circle in a pack layout. Coordinates are center
// points in container pixel space; R is the radius in pixels.
type Bubble struct {
	ID    string  `json:"id" bson:"id"`
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
	Group string  `json:"group,omitempty" bson:"group,omitempty"`
	Color string  `json:"color,omitempty" bson:"color,omitempty"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
	R     float64 `json:"r" bson:"r"`
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present for the viz type.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.VizType == "" {
		l.VizType = VizTypePack
	}

	if l.IsGraph() && l.DOT == "" {
		return Layout{}, fmt.Errorf("graph layout must contain DOT string")
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
