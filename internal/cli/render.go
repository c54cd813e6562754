package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packviz/packviz/pkg/pipeline"
)

// renderCommand creates the render command for the full load/layout/render pipeline.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a dataset to a packed bubble chart",
		Long: `Render a dataset to a packed bubble chart.

The render command runs the full pipeline: it loads a TOML, JSON, or CSV
dataset, computes a circle-packed layout (or a group-membership diagram
with -t graph), and writes the rendered output.

If the dataset argument is omitted, an interactive picker lists the
dataset files in the current directory.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			opts.Input = input
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			if err := pipeline.ValidateVizType(opts.VizType); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "reload the dataset even if cached")

	// Layout flags
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: pack (default), graph")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")
	cmd.Flags().Float64Var(&opts.Padding, "padding", opts.Padding, "gap between bubble edges")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible layouts")
	cmd.Flags().BoolVar(&opts.Fast, "fast", opts.Fast, "fewer relaxation passes for quicker, looser packing")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", opts.Iterations, "relaxation pass count (0 = derived from --fast)")
	cmd.Flags().StringVar(&opts.Scheme, "scheme", opts.Scheme, "color scheme: classic (default), pastel, warm, cool, mono")

	// Render flags
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: flat (default), shaded")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title (overrides the dataset title)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw value labels inside bubbles")
	cmd.Flags().BoolVar(&opts.Tooltips, "tooltips", opts.Tooltips, "embed hover tooltips with item details")
	cmd.Flags().BoolVar(&opts.Legend, "legend", opts.Legend, "draw a group legend below the chart")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "show values and groups in graph node labels")

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", opts.Input, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
		stats: &statsLine{
			items:  result.Stats.ItemCount,
			groups: result.Stats.GroupCount,
		},
	})
}

// resolveInput returns the dataset path from args, falling back to the
// interactive picker when no argument was given.
func resolveInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return pickDataset(".")
}
