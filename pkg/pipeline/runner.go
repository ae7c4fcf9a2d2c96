package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/guidekit/pkg/cache"
	"github.com/matzehuels/guidekit/pkg/document"
	"github.com/matzehuels/guidekit/pkg/observability"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Runner executes the pipeline with caching.
//
// A Runner holds no per-run state, so one Runner can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means DefaultKeyer, a nil cache
// disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute builds doc and renders the requested formats, serving cached
// artifacts where possible.
func (r *Runner) Execute(ctx context.Context, doc *document.Document, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	canonical, err := doc.Canonical()
	if err != nil {
		return nil, fmt.Errorf("canonicalize document: %w", err)
	}
	result := &Result{
		DocHash:   cache.Hash(canonical),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheInfo: CacheInfo{Hits: make(map[string]bool, len(opts.Formats))},
	}

	missing := r.lookup(ctx, result, opts)
	if len(missing) == 0 {
		opts.Logger.Debug("all artifacts cached", "hash", result.DocHash[:12])
		return result, nil
	}

	buildStart := time.Now()
	c, err := r.Build(ctx, doc)
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Canvas = c
	result.Stats.ElementCount = countElements(c)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, missing)
	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, c, renderOpts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, missing, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("rendered outputs",
		"formats", missing,
		"duration", result.Stats.RenderTime)

	for format, data := range rendered {
		result.Artifacts[format] = data
		if opts.NoCache {
			continue
		}
		key := r.Keyer.ArtifactKey(result.DocHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return result, nil
}

// lookup fills result with cached artifacts and returns the formats that
// still need rendering, in request order.
func (r *Runner) lookup(ctx context.Context, result *Result, opts Options) []string {
	var missing []string
	for _, format := range opts.Formats {
		if _, seen := result.CacheInfo.Hits[format]; seen {
			continue
		}
		result.CacheInfo.Hits[format] = false
		if opts.NoCache {
			missing = append(missing, format)
			continue
		}

		key := r.Keyer.ArtifactKey(result.DocHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, format)
			missing = append(missing, format)
			continue
		}
		observability.Cache().OnCacheHit(ctx, format)
		result.CacheInfo.Hits[format] = true
		result.Artifacts[format] = data
	}
	return missing
}

// Build compiles doc into a scene, reporting timing to the logger and the
// pipeline hooks.
func (r *Runner) Build(ctx context.Context, doc *document.Document) (*scene.Canvas, error) {
	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, len(doc.Axes))

	c, err := doc.Build()
	elapsed := time.Since(start)
	elements := 0
	if c != nil {
		elements = countElements(c)
	}
	observability.Pipeline().OnBuildComplete(ctx, elements, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("built scene",
		"axes", len(doc.Axes),
		"guides", len(doc.Guides),
		"elements", elements,
		"duration", elapsed)
	return c, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func countElements(c *scene.Canvas) int {
	n := 0
	c.Walk(func(scene.Node, int) { n++ })
	return n
}
