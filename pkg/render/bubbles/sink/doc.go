// Package sink provides output format renderers for bubble charts.
//
// # Overview
//
// A "sink" transforms a computed [chart.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics with interactivity
//   - JSON: Layout data export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces interactive SVG with:
//
//   - Visual styles (flat solid fills or shaded gradients)
//   - Hover highlighting of bubbles
//   - Optional labels and value tooltips
//   - Optional group color legend panel
//
// Basic usage:
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(styles.Shaded{}),
//	    sink.WithLabels(),
//	    sink.WithTooltips(),
//	    sink.WithLegend(),
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout as PDF/PNG by first
// generating SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(layout, sink.WithPDFSVGOptions(opts...))
//	png, err := sink.RenderPNG(layout, sink.WithScale(2))
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # Adding New Formats
//
// To add a new output format:
//
//  1. Create a renderer function: func RenderFoo(l chart.Layout, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Access l.Bubbles for positioned circles, l.Legend for group colors
//  4. Register in internal/cli/render.go for CLI support
//
// [chart.Layout]: github.com/packviz/packviz/pkg/chart.Layout
// [render.ToPDF]: github.com/packviz/packviz/pkg/render.ToPDF
// [render.ToPNG]: github.com/packviz/packviz/pkg/render.ToPNG
package sink
