package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/packviz/packviz/pkg/pipeline"
)

// =============================================================================
// Output Paths
// =============================================================================

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., chart.svg, chart.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// =============================================================================
// Artifact Writing
// =============================================================================

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte // rendered bytes keyed by format
	formats   []string          // requested formats, in user order
	input     string            // input file, used to derive output paths
	output    string            // explicit output file or base path
	cacheHit  bool              // whether the artifacts came from cache
	stats     *statsLine        // optional item/group counts for the summary line
}

// statsLine carries optional dataset counts for the output summary.
type statsLine struct {
	items  int
	groups int
}

// writeArtifacts writes each rendered artifact to its output file and
// prints a summary. With a single format and an explicit output path the
// artifact goes exactly there; otherwise paths are derived as
// <base>.<format>.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := fmt.Sprintf("%s.%s", base, format)
		if p.output != "" && len(p.formats) == 1 {
			path = p.output
		}

		out, err := openOutput(path)
		if err != nil {
			return fmt.Errorf("open output %s: %w", path, err)
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	if p.stats != nil {
		printStats(p.stats.items, p.stats.groups, p.cacheHit)
	} else {
		printStats(0, 0, p.cacheHit)
	}

	return nil
}
