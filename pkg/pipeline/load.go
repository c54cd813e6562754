package pipeline

import (
	"fmt"

	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/dataset"
)

// =============================================================================
// Dataset Loading
// =============================================================================

// Load resolves the dataset for a pipeline run. Inline datasets (server
// requests) take precedence over file input; both are validated before
// returning. The Title option, when set, overrides the dataset title.
func Load(opts Options) (chart.Dataset, error) {
	ds, err := resolveDataset(opts)
	if err != nil {
		return chart.Dataset{}, err
	}

	if opts.Title != "" {
		ds.Title = opts.Title
	}
	return ds, nil
}

func resolveDataset(opts Options) (chart.Dataset, error) {
	if opts.Dataset != nil {
		ds := *opts.Dataset
		if err := ds.Validate(); err != nil {
			return chart.Dataset{}, fmt.Errorf("inline dataset: %w", err)
		}
		return ds, nil
	}
	return dataset.Load(opts.Input)
}
