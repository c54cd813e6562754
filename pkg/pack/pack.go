// Package pack implements the native circle-packing layout engine.
//
// Given a list of valued items and a container size, [Build] produces one
// positioned circle per item: radii are derived from values with square-root
// scaling (so rendered area, not radius, is proportional to value), initial
// positions are seeded near the container center, and a force-directed
// relaxation loop resolves overlaps while keeping the cluster centered and
// inside the container bounds.
//
// The engine is a pure in-memory transform: every call allocates a fresh
// bubble slice, runs to completion synchronously, and shares no state with
// previous calls. With a fixed seed the output is bit-for-bit reproducible.
//
// Relaxation is a bounded heuristic, not a proof: with more aggregate bubble
// area than the container can hold, the result simply overlaps more than
// desired rather than failing.
package pack

import (
	"math/rand/v2"

	"github.com/packviz/packviz/pkg/chart"
)

const (
	// MinRadius is the smallest radius ever produced, keeping every bubble
	// visible and clickable regardless of how small its value is.
	MinRadius = 10.0

	// DefaultPadding is the minimum gap enforced between bubble edges.
	DefaultPadding = 3.0

	// DefaultSeed is the default jitter seed for reproducible layouts.
	DefaultSeed = uint64(42)

	// IterationsForce is the relaxation budget for high-quality layouts.
	IterationsForce = 150

	// IterationsFast trades layout quality for speed.
	IterationsFast = 50
)

const (
	maxRadiusShare = 0.35 // radius budget as share of the inscribed-circle radius
	areaFill       = 0.85 // usable share of the inscribed-circle area
	jitterShare    = 0.25 // seed jitter as share of the inscribed-circle radius
)

// Bubble is one positioned circle. X and Y are center coordinates in
// container pixel space; R is the radius in pixels, fixed before relaxation
// and never resized by the solver. Item carries the original input.
type Bubble struct {
	ID    string
	Label string
	Value float64
	Group string
	Color string
	X, Y  float64
	R     float64
	Item  chart.Item
}

// Option configures a [Build] call.
type Option func(*config)

type config struct {
	padding    float64
	iterations int
	seed       uint64
	scheme     []string
}

// WithPadding sets the minimum gap between bubble edges (default 3).
func WithPadding(p float64) Option {
	return func(c *config) { c.padding = p }
}

// WithIterations sets the exact relaxation iteration count. Zero disables
// relaxation entirely, leaving bubbles at their seed positions.
func WithIterations(n int) Option {
	return func(c *config) { c.iterations = n }
}

// WithForce selects the iteration budget: 150 iterations when force is true
// (the default, higher quality), 50 when false (faster, coarser). This is a
// speed/quality knob, not a correctness toggle.
func WithForce(force bool) Option {
	return func(c *config) {
		if force {
			c.iterations = IterationsForce
		} else {
			c.iterations = IterationsFast
		}
	}
}

// WithSeed fixes the jitter seed so layouts are reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithScheme sets the color scheme that group colors cycle through.
func WithScheme(colors []string) Option {
	return func(c *config) { c.scheme = colors }
}

// Build computes a packed-circle layout for items inside a width x height
// container. The result is ordered largest-first; callers needing input
// order must re-sort by ID. An empty item list yields nil.
func Build(items []chart.Item, width, height float64, opts ...Option) []Bubble {
	if len(items) == 0 {
		return nil
	}

	cfg := config{
		padding:    DefaultPadding,
		iterations: IterationsForce,
		seed:       DefaultSeed,
		scheme:     chart.Scheme(chart.DefaultScheme),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0xdeadbeef))
	bubbles := seedBubbles(items, width, height, rng)

	legend := chart.GroupColors(items, cfg.scheme)
	for i := range bubbles {
		bubbles[i].Color = chart.ItemColor(bubbles[i].Item, legend, cfg.scheme)
	}

	Relax(bubbles, width, height, cfg.padding, cfg.iterations)
	return bubbles
}
