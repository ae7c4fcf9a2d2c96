// Package pkg provides the core libraries for guidekit, a renderer for chart
// axes and guides.
//
// # Overview
//
// guidekit turns a declarative document (TOML or JSON) describing scales,
// axes and guide annotations into a retained scene graph, and serializes that
// scene to SVG, JSON, PNG or PDF. The pkg directory is organized into three
// areas:
//
//  1. Geometry and scene: [geom], [scene], [scale]
//  2. Guides: [axis], [guide], [document]
//  3. Output and infrastructure: [render], [render/sink], [pipeline], [cache],
//     [observability], [errors], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	TOML/JSON document
//	         ↓
//	    [document] package (parse, validate, canonicalize)
//	         ↓
//	    [axis] and [guide] packages (ticks, labels, titles)
//	         ↓
//	    [scene] package (groups, paths, text)
//	         ↓
//	    [render/sink] package (SVG/JSON, PNG/PDF via [render])
//
// # Quick Start
//
// Load a document and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/guidekit/pkg/document"
//	    "github.com/matzehuels/guidekit/pkg/render/sink"
//	)
//
//	doc, _ := document.Load("chart.toml")
//	c, _ := doc.Build()
//	svg := sink.RenderSVG(c, sink.WithXMLHeader())
//
// Build an axis directly:
//
//	line, _ := axis.NewLine(geom.Point{X: 0, Y: 300}, geom.Point{X: 400, Y: 300})
//	ax, _ := axis.New("x", line, ticks)
//	_ = ax.Render(surface)
//
// # Main Packages
//
// [geom] - Points, affine matrices and float tolerance helpers.
//
// [scene] - Canvas with nested groups, paths and text nodes. Every node keeps
// a stable ID and a semantic name so sinks can address it.
//
// [scale] - Linear and categorical scales that map domain values to pixels.
//
// [axis] - Line and circle axes with tick marks, labels and titles. Label
// rotation, alignment and overlap culling follow the axis geometry.
//
// [guide] - Free-standing text guides positioned in data or pixel space.
//
// [document] - The on-disk document format and its translation into axes and
// guides.
//
// [render] - Rasterizers that convert SVG to PNG and PDF (rsvg-convert,
// headless Chrome).
//
// [pipeline] - Build once, render many formats, cache every artifact. Used by
// both the CLI and the HTTP server.
//
// [cache] - Content-addressed artifact caching with file, Redis and null
// backends.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/geom
// [scene]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/scene
// [scale]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/scale
// [axis]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/axis
// [guide]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/guide
// [document]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/document
// [render]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/guidekit/pkg/buildinfo
package pkg
