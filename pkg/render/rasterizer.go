package render

import (
	"context"
	"strings"

	"github.com/matzehuels/guidekit/pkg/errors"
)

// Rasterizer names.
const (
	RasterizerRSVG   = "rsvg"
	RasterizerChrome = "chrome"
)

// Rasterizer turns an SVG of the given size into a PNG.
type Rasterizer interface {
	Name() string
	PNG(ctx context.Context, svg []byte, width, height, scale float64) ([]byte, error)
}

// NewRasterizer returns the rasterizer registered under name. An empty
// name selects rsvg-convert.
func NewRasterizer(name string) (Rasterizer, error) {
	switch strings.ToLower(name) {
	case "", RasterizerRSVG:
		return RSVG{}, nil
	case RasterizerChrome:
		return &Chrome{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown rasterizer %q (want %s or %s)", name, RasterizerRSVG, RasterizerChrome)
	}
}

// RSVG rasterizes with rsvg-convert. The image size comes from the SVG.
type RSVG struct{}

func (RSVG) Name() string { return RasterizerRSVG }

func (RSVG) PNG(ctx context.Context, svg []byte, _, _, scale float64) ([]byte, error) {
	return ToPNG(ctx, svg, scale)
}
