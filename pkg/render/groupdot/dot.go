package groupdot

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/render"
)

// Options configures group diagram rendering.
type Options struct {
	// Detailed includes the value and group in item labels.
	// When false, only the display label is shown.
	Detailed bool

	// Scheme selects the color scheme for hubs and items.
	// Empty uses the dataset's scheme, falling back to the default.
	Scheme string
}

const (
	minNodeWidth = 0.5
	maxNodeWidth = 2.0
)

// ToDOT converts a dataset to Graphviz DOT format for group visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
//
// Each group becomes a hub node connected to its members. Item node widths
// scale with the square root of the value, keeping node area proportional
// to value. Ungrouped items appear as free-standing nodes.
func ToDOT(ds chart.Dataset, opts Options) string {
	schemeName := opts.Scheme
	if schemeName == "" {
		schemeName = ds.Scheme
	}
	scheme := chart.Scheme(schemeName)
	legend := chart.GroupColors(ds.Items, scheme)

	hubColor := make(map[string]string, len(legend))
	for _, e := range legend {
		hubColor[e.Group] = e.Color
	}

	maxValue := 0.0
	for _, it := range ds.Items {
		if it.Value > maxValue {
			maxValue = it.Value
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#999999\"];\n")
	buf.WriteString("\n")

	for _, e := range legend {
		fmt.Fprintf(&buf, "  %q [shape=doublecircle, width=1.2, fillcolor=%q, label=%q];\n",
			"group:"+e.Group, e.Color, e.Group)
	}
	if len(legend) > 0 {
		buf.WriteString("\n")
	}

	for _, it := range ds.Items {
		label := fmtLabel(it, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [width=%.2f, fillcolor=%q, label=%q];\n",
			it.ID, nodeWidth(it.Value, maxValue), chart.ItemColor(it, legend, scheme), label)
	}

	buf.WriteString("\n")
	for _, it := range ds.Items {
		if it.Group == "" {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", "group:"+it.Group, it.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(it chart.Item, detailed bool) string {
	label := it.DisplayLabel()
	if !detailed {
		return label
	}
	parts := []string{fmt.Sprintf("value: %g", it.Value)}
	if it.Group != "" {
		parts = append(parts, "group: "+it.Group)
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// nodeWidth maps a value to a node width in inches so that node area
// roughly tracks value, mirroring the bubble chart's area scaling.
func nodeWidth(value, maxValue float64) float64 {
	if maxValue <= 0 || value <= 0 {
		return minNodeWidth
	}
	w := math.Sqrt(value/maxValue) * maxNodeWidth
	return max(minNodeWidth, w)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
