package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a chart from a computed layout",
		Long: `Render a chart from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to SVG, PNG, or PDF format. The layout contains all positioning
information, so this step is purely about rendering.

Results are cached locally for faster subsequent runs.

Use 'render' as a shortcut to go directly from a dataset to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: flat (default), shaded")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw value labels inside bubbles")
	cmd.Flags().BoolVar(&opts.Tooltips, "tooltips", opts.Tooltips, "embed hover tooltips with item details")
	cmd.Flags().BoolVar(&opts.Legend, "legend", opts.Legend, "draw a group legend below the chart")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "show values and groups in graph node labels")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png (comma-separated)")

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	layout, err := chart.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	// Infer viz type from layout
	vizType := layout.VizType
	if vizType == "" {
		vizType = chart.VizTypePack
	}
	opts.VizType = vizType

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if opts.Style == "" && layout.Style != "" {
		opts.Style = layout.Style
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", vizType))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  cacheHit,
	})
}
