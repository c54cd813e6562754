// Package groupdot renders group membership as node-link diagrams.
//
// # Overview
//
// This package produces graph visualizations using Graphviz, where each
// group appears as a hub connected to its member items. It's an
// alternative to the packed bubble chart for datasets where the grouping
// structure matters more than relative area.
//
// # Usage
//
// Convert a dataset to DOT format, then render to SVG:
//
//	dot := groupdot.ToDOT(ds, groupdot.Options{Detailed: false})
//	svg, err := groupdot.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := groupdot.RenderPDF(dot)
//	png, err := groupdot.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, item labels include the value and group
//   - Scheme: Color scheme for group hubs and item fills
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Item node sizes scale with the square root of the value, so node area
// tracks the value the same way bubble area does in the packed chart.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package groupdot
