package pipeline

import (
	"fmt"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/render/bubbles/sink"
	"github.com/packviz/packviz/pkg/render/bubbles/styles"
	"github.com/packviz/packviz/pkg/render/groupdot"
)

// RenderFromLayout generates output artifacts in the requested formats.
// This is the unified entry point: it dispatches on the layout's viz type,
// so cached or file-loaded layouts render the same way as fresh ones.
func RenderFromLayout(l chart.Layout, opts Options) (map[string][]byte, error) {
	if l.IsGraph() {
		opts.VizType = chart.VizTypeGraph
		return renderGraph(l, opts)
	}
	return renderPack(l, opts)
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(layoutData []byte, opts Options) (map[string][]byte, error) {
	parsed, err := chart.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return RenderFromLayout(parsed, opts)
}

// renderPack generates bubble chart outputs.
func renderPack(l chart.Layout, opts Options) (map[string][]byte, error) {
	opts = applyLayoutMetadata(opts, l)

	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			return nil, fmt.Errorf("unsupported pack format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderGraph generates group diagram outputs from a layout's DOT source.
func renderGraph(l chart.Layout, opts Options) (map[string][]byte, error) {
	if l.DOT == "" {
		return nil, fmt.Errorf("graph layout missing DOT string")
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = groupdot.RenderSVG(l.DOT)
		case FormatPNG:
			data, err = groupdot.RenderPNG(l.DOT, 2.0)
		case FormatPDF:
			data, err = groupdot.RenderPDF(l.DOT)
		case FormatJSON:
			data, err = chart.MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported graph format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// applyLayoutMetadata applies layout metadata to options if not already set.
// This ensures re-rendered layouts preserve their original settings.
func applyLayoutMetadata(opts Options, l chart.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	if opts.Seed == 0 && l.Seed != 0 {
		opts.Seed = l.Seed
	}
	return opts
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption

	switch opts.Style {
	case chart.StyleShaded:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Shaded{}))
	case chart.StyleFlat:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Flat{}))
	}

	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Tooltips {
		svgOpts = append(svgOpts, sink.WithTooltips())
	}
	if opts.Legend {
		svgOpts = append(svgOpts, sink.WithLegend())
	}

	return svgOpts
}
