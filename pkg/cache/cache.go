// Package cache provides pluggable caching for pipeline stages.
//
// A [Cache] stores opaque byte values under string keys with optional
// expiration. Backends exist for local files (CLI usage), Redis and MongoDB
// (server usage), plus a null cache that disables caching entirely.
//
// A [Keyer] builds deterministic cache keys for the three pipeline stages:
// dataset loading, layout computation, and artifact rendering. Keys hash the
// full option set of each stage so any change in input or configuration
// produces a different key.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Datasets come from local files that can
// change, so they expire quickly; layouts and artifacts are pure functions
// of their inputs and keep longer.
const (
	TTLDataset  = 1 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration; any other
	// ttl expires the entry at now+ttl, so a negative ttl stores an
	// entry that is already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Keyer - Cache Key Generation
// =============================================================================

// DatasetKeyOpts are the options that affect dataset identity.
type DatasetKeyOpts struct {
	Source string // file path or logical source name
}

// LayoutKeyOpts are the options that affect layout computation.
type LayoutKeyOpts struct {
	VizType    string
	Width      float64
	Height     float64
	Padding    float64
	UseForce   bool
	Iterations int
	Seed       uint64
	Scheme     string
}

// ArtifactKeyOpts are the options that affect artifact rendering.
type ArtifactKeyOpts struct {
	Format   string
	Style    string
	Labels   bool
	Tooltips bool
	Legend   bool
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// DatasetKey generates a key for a parsed dataset.
	DatasetKey(contentHash string, opts DatasetKeyOpts) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes stage options into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for a parsed dataset.
func (k *DefaultKeyer) DatasetKey(contentHash string, opts DatasetKeyOpts) string {
	return hashKey("dataset", contentHash, opts)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
