package sink

import (
	"github.com/packviz/packviz/pkg/chart"
)

// RenderJSON exports the layout as a pretty-printed JSON document.
// This is the primary data interchange format, enabling:
//
//   - Integration with external visualization tools
//   - Caching computed layouts for fast re-rendering
//   - Round-trip rendering via the visualize command
//
// The JSON includes bubble positions, radii, colors, the legend, and the
// layout options (seed, padding, iterations) needed for reproducibility.
func RenderJSON(l chart.Layout) ([]byte, error) {
	return chart.MarshalLayout(l)
}
