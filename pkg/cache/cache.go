// Package cache stores rendered artifacts between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [NullCache]: stores nothing, for --no-cache
//
// # Keys
//
// Keys are derived by a [Keyer]. [DefaultKeyer] hashes the canonical
// document together with every render option that changes the output, so a
// key only hits when the bytes would be identical. [ScopedKeyer] adds a
// namespace prefix on top of another keyer.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry. Get reports a miss with
// ok=false and a nil error; errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default time-to-live values.
const (
	// TTLArtifact applies to rendered outputs. Artifacts are pure functions
	// of their key, so the TTL only bounds disk usage.
	TTLArtifact = 7 * 24 * time.Hour
)

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Rasterizer string  `json:"rasterizer,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a document by the hash
	// of its canonical form.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}
