package pipeline

import (
	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/pack"
	"github.com/packviz/packviz/pkg/render/groupdot"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout generates a complete layout for any visualization type.
// This is the unified entry point for producing serializable layout data.
//
// Both pack and graph layouts include the frame size, title, and the group
// color legend; pack layouts carry positioned bubbles, graph layouts carry
// the Graphviz DOT source.
func GenerateLayout(ds chart.Dataset, opts Options) (chart.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Layout{}, err
	}
	if opts.IsGraph() {
		return generateGraphLayout(ds, opts)
	}
	return generatePackLayout(ds, opts)
}

// =============================================================================
// Pack
// =============================================================================

// generatePackLayout runs the circle-packing engine and converts the result
// into the serialization format.
func generatePackLayout(ds chart.Dataset, opts Options) (chart.Layout, error) {
	scheme := resolveScheme(ds, opts)

	bubbles := pack.Build(ds.Items, opts.Width, opts.Height,
		pack.WithPadding(opts.Padding),
		pack.WithIterations(opts.Iterations),
		pack.WithSeed(opts.Seed),
		pack.WithScheme(scheme),
	)

	out := make([]chart.Bubble, len(bubbles))
	for i, b := range bubbles {
		out[i] = chart.Bubble{
			ID:    b.ID,
			Label: b.Label,
			Value: b.Value,
			Group: b.Group,
			Color: b.Color,
			X:     b.X,
			Y:     b.Y,
			R:     b.R,
		}
	}

	return chart.Layout{
		VizType:    chart.VizTypePack,
		Width:      opts.Width,
		Height:     opts.Height,
		Style:      opts.Style,
		Title:      ds.Title,
		Legend:     chart.GroupColors(ds.Items, scheme),
		Bubbles:    out,
		Padding:    opts.Padding,
		Seed:       opts.Seed,
		Iterations: opts.Iterations,
	}, nil
}

// =============================================================================
// Graph
// =============================================================================

// generateGraphLayout produces a group membership diagram layout.
// The DOT source is stored so cached layouts can re-render without the
// original dataset.
func generateGraphLayout(ds chart.Dataset, opts Options) (chart.Layout, error) {
	schemeName := opts.Scheme
	if schemeName == "" {
		schemeName = ds.Scheme
	}

	dot := groupdot.ToDOT(ds, groupdot.Options{
		Detailed: opts.Detailed,
		Scheme:   schemeName,
	})

	return chart.Layout{
		VizType: chart.VizTypeGraph,
		Width:   opts.Width,
		Height:  opts.Height,
		Style:   opts.Style,
		Title:   ds.Title,
		Legend:  chart.GroupColors(ds.Items, chart.Scheme(schemeName)),
		DOT:     dot,
		Engine:  "neato",
	}, nil
}

// =============================================================================
// Helpers
// =============================================================================

// resolveScheme picks the color scheme: explicit option, then dataset,
// then the default.
func resolveScheme(ds chart.Dataset, opts Options) []string {
	name := opts.Scheme
	if name == "" {
		name = ds.Scheme
	}
	if colors := chart.Scheme(name); colors != nil {
		return colors
	}
	return chart.Scheme(chart.DefaultScheme)
}
