// Package render provides visualization rendering for bubble charts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms packed
// layouts into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Bubble chart rendering (in [bubbles] subpackage)
//   - Group membership diagrams (in [groupdot] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// bubble and group diagram renderers.
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Bubble Charts
//
// The [bubbles] subpackage renders packed layouts as circle charts where
// each item's area is proportional to its value. This is the signature
// visualization style.
//
// Key bubble subpackages:
//   - [bubbles/sink]: Output formats (SVG, PNG, PDF, JSON)
//   - [bubbles/styles]: Visual styles (flat, shaded)
//
// # Group Diagrams
//
// The [groupdot] subpackage renders group membership as node-link
// diagrams using Graphviz. Groups appear as hubs connected to their items.
//
//	dot := groupdot.ToDOT(layout, groupdot.Options{})
//	svg, err := groupdot.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [bubbles]: github.com/packviz/packviz/pkg/render/bubbles
// [bubbles/sink]: github.com/packviz/packviz/pkg/render/bubbles/sink
// [bubbles/styles]: github.com/packviz/packviz/pkg/render/bubbles/styles
// [groupdot]: github.com/packviz/packviz/pkg/render/groupdot
package render
