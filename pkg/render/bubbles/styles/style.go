package styles

import "bytes"

// Style defines the visual appearance for bubble rendering.
// Implementations control how circles and labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (gradients, filters).
	RenderDefs(buf *bytes.Buffer, circles []Circle)
	// RenderCircle writes the SVG for a single bubble shape.
	RenderCircle(buf *bytes.Buffer, c Circle)
	// RenderLabel writes the SVG for a bubble's label text.
	RenderLabel(buf *bytes.Buffer, c Circle)
}

// Circle contains all data needed to render a single bubble.
type Circle struct {
	ID      string  // Item identifier
	Label   string  // Display text
	Value   float64 // Item value (shown in tooltips)
	Group   string  // Group name (empty if ungrouped)
	Color   string  // Fill color (hex)
	X, Y, R float64 // Center coordinates and radius
	Tooltip bool    // Whether to emit a <title> tooltip
}
