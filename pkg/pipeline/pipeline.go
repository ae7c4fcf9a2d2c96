// Package pipeline turns chart documents into rendered artifacts.
//
// The CLI and the HTTP server share this package so both produce identical
// bytes for the same document and options.
//
// # Stages
//
//  1. Build: compile the document into a scene (axes and guides)
//  2. Render: serialize the scene into the requested formats (SVG, JSON,
//     PNG, PDF)
//
// Artifacts are cached by the hash of the canonical document plus the
// render options that affect the output. When every requested format is
// cached the build stage is skipped entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/guidekit/pkg/cache"
	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/render"
	"github.com/matzehuels/guidekit/pkg/scene"
)

const (
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// DefaultRasterizer converts SVG to PNG when none is requested.
	DefaultRasterizer = render.RasterizerRSVG
)

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

var contentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// ContentType returns the media type of a format, or
// application/octet-stream for unknown formats.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Options configures a pipeline run. It supports JSON serialization for
// API requests.
type Options struct {
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Rasterizer string   `json:"rasterizer,omitempty"`
	NoCache    bool     `json:"no_cache,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DocHash is the hash of the canonical document.
	DocHash string

	// Canvas is the built scene. It is nil when every artifact came from
	// the cache.
	Canvas *scene.Canvas

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo records which formats were served from the cache.
type CacheInfo struct {
	Hits map[string]bool
}

// AllHit reports whether every artifact came from the cache.
func (ci CacheInfo) AllHit() bool {
	if len(ci.Hits) == 0 {
		return false
	}
	for _, hit := range ci.Hits {
		if !hit {
			return false
		}
	}
	return true
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
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

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be a positive number, got %v", o.Scale)
	}
	if o.Rasterizer == "" {
		o.Rasterizer = DefaultRasterizer
	}
	if _, err := render.NewRasterizer(o.Rasterizer); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for one format. Scale and
// rasterizer only matter for PNG.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		k.Scale = o.Scale
		k.Rasterizer = o.Rasterizer
	}
	return k
}
