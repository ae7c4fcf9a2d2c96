package sink

import (
	"context"

	"github.com/matzehuels/guidekit/pkg/render"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts    []SVGOption
	scale      float64
	rasterizer render.Rasterizer
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithRasterizer selects the rasterizer (default rsvg-convert).
func WithRasterizer(rz render.Rasterizer) PNGOption {
	return func(r *pngRenderer) { r.rasterizer = rz }
}

// RenderPNG renders the canvas as PNG via SVG conversion.
func RenderPNG(ctx context.Context, c *scene.Canvas, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, rasterizer: render.RSVG{}}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(c, r.svgOpts...)
	return r.rasterizer.PNG(ctx, svg, c.Width, c.Height, r.scale)
}
