package cli

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/pipeline"
)

// layoutCommand creates the layout command for computing chart layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		sortIDs bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "layout [dataset]",
		Short: "Compute a chart layout from a dataset",
		Long: `Compute a chart layout from a dataset.

The layout command loads a TOML, JSON, or CSV dataset and computes bubble
positions without rendering. The output is a layout.json file (same format
as 'render -f json') that can be rendered to SVG/PNG/PDF using the
'visualize' command.

Supports both pack (-t pack) and graph (-t graph) visualization types.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			if err := pipeline.ValidateVizType(opts.VizType); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache, sortIDs)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
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
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title (overrides the dataset title)")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style recorded in the layout: flat (default), shaded")
	cmd.Flags().BoolVar(&sortIDs, "sort-ids", false, "sort bubbles by id in the output (default: largest first)")

	return cmd
}

// runLayout loads the dataset, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache, sortIDs bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	ds, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.VizType))
	spinner.Start()

	layout, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, ds, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if sortIDs {
		slices.SortFunc(layout.Bubbles, func(a, b chart.Bubble) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := chart.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(ds.Items), countGroups(ds), cacheHit)
	printNewline()
	printNextStep("Render", "packviz visualize "+outputPath)

	return nil
}

// countGroups counts the distinct non-empty groups in a dataset.
func countGroups(ds chart.Dataset) int {
	seen := map[string]bool{}
	for _, it := range ds.Items {
		if it.Group != "" {
			seen[it.Group] = true
		}
	}
	return len(seen)
}
