// Package render converts SVG documents into raster and print formats.
//
// # Overview
//
// Scenes are always serialized to SVG first (see the [sink] subpackage).
// This package turns that SVG into PNG or PDF:
//
//   - [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg)
//   - [Chrome] rasterizes with a headless Chrome through chromedp
//
// Both PNG paths implement [Rasterizer], so callers pick one by name with
// [NewRasterizer]:
//
//	r, err := render.NewRasterizer("chrome")
//	png, err := r.PNG(ctx, svg, 240, 240, 2)
//
// PDF output is only available through rsvg-convert.
//
// [sink]: github.com/matzehuels/guidekit/pkg/render/sink
package render
