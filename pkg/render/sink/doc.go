// Package sink serializes scenes into output formats.
//
// # Overview
//
// A "sink" transforms a built [scene.Canvas] into bytes:
//
//   - SVG: [RenderSVG], the primary format
//   - JSON: [RenderJSON], a dump of the scene graph for external tools
//   - PNG: [RenderPNG], SVG rasterized by a [render.Rasterizer]
//   - PDF: [RenderPDF], SVG converted by rsvg-convert
//
// Basic usage:
//
//	svg := sink.RenderSVG(canvas, sink.WithXMLHeader())
//	png, err := sink.RenderPNG(ctx, canvas, sink.WithScale(2))
//
// Rotations are written as transform="matrix(...)" and canvas text
// alignment maps onto text-anchor (center becomes middle).
//
// [render.Rasterizer]: github.com/matzehuels/guidekit/pkg/render.Rasterizer
package sink
