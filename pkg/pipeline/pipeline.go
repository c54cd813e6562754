// Package pipeline provides the core visualization pipeline for packviz.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a dataset from TOML, JSON, or CSV
//  2. Layout: Pack the items into positioned, sized bubbles
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "data.toml",
//	    VizType: "pack",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	ds, err := runner.Load(ctx, loadOpts)
//
//	// Layout with existing dataset
//	layout, err := runner.GenerateLayout(ctx, ds, layoutOpts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, layout, renderOpts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/packviz/packviz/pkg/cache"
	"github.com/packviz/packviz/pkg/chart"
	"github.com/packviz/packviz/pkg/pack"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0

	// DefaultPadding is the default gap targeted between bubble edges.
	DefaultPadding = pack.DefaultPadding

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = pack.DefaultSeed
)

// DefaultVizType is the default visualization type.
const DefaultVizType = chart.VizTypePack

// DefaultStyle is the default visual style.
const DefaultStyle = chart.StyleFlat

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	chart.StyleFlat:   true,
	chart.StyleShaded: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	chart.VizTypePack:  true,
	chart.VizTypeGraph: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Load options
	Input   string         `json:"input,omitempty"`   // path to a TOML/JSON/CSV dataset file
	Dataset *chart.Dataset `json:"dataset,omitempty"` // inline dataset (server requests)
	Title   string         `json:"title,omitempty"`   // overrides the dataset title
	Refresh bool           `json:"refresh,omitempty"` // bypass the dataset cache

	// Layout options
	VizType    string  `json:"viz_type,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Padding    float64 `json:"padding,omitempty"`
	Fast       bool    `json:"fast,omitempty"` // fewer solver passes, quicker but looser packing
	Iterations int     `json:"iterations,omitempty"`
	Seed       uint64  `json:"seed,omitempty"`
	Scheme     string  `json:"scheme,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Tooltips bool     `json:"tooltips,omitempty"`
	Legend   bool     `json:"legend,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // graph viz: include values in node labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded and validated dataset.
	Dataset chart.Dataset

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Layout contains the computed layout (bubbles or DOT).
	Layout chart.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	GroupCount int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the dataset came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: flat, shaded)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return fmt.Errorf("invalid viz_type: %q (must be one of: pack, graph)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for dataset loading.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" && o.Dataset == nil {
		return fmt.Errorf("input path or inline dataset is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Iterations == 0 {
		if o.Fast {
			o.Iterations = pack.IterationsFast
		} else {
			o.Iterations = pack.IterationsForce
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if o.Scheme != "" && chart.Scheme(o.Scheme) == nil {
		return fmt.Errorf("invalid scheme: %q (must be one of: %v)", o.Scheme, chart.SchemeNames())
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// IsPack returns true if this is a packed bubble visualization.
func (o *Options) IsPack() bool {
	return o.VizType == "" || o.VizType == chart.VizTypePack
}

// IsGraph returns true if this is a group diagram visualization.
func (o *Options) IsGraph() bool {
	return o.VizType == chart.VizTypeGraph
}

// DatasetKeyOpts returns cache key options for dataset loading.
func (o *Options) DatasetKeyOpts() cache.DatasetKeyOpts {
	return cache.DatasetKeyOpts{
		Source: o.Input,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		VizType:    o.VizType,
		Width:      o.Width,
		Height:     o.Height,
		Padding:    o.Padding,
		UseForce:   !o.Fast,
		Iterations: o.Iterations,
		Seed:       o.Seed,
		Scheme:     o.Scheme,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Style:    o.Style,
		Labels:   o.Labels,
		Tooltips: o.Tooltips,
		Legend:   o.Legend,
	}
}
