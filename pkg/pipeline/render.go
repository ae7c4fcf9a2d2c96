package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/guidekit/pkg/render"
	"github.com/matzehuels/guidekit/pkg/render/sink"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Render serializes c into every format of opts.Formats.
func Render(ctx context.Context, c *scene.Canvas, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, c, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, c *scene.Canvas, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(c, sink.WithXMLHeader()), nil
	case FormatJSON:
		return sink.RenderJSON(c, sink.WithJSONIndent())
	case FormatPNG:
		rz, err := render.NewRasterizer(opts.Rasterizer)
		if err != nil {
			return nil, err
		}
		return sink.RenderPNG(ctx, c, sink.WithScale(opts.Scale), sink.WithRasterizer(rz))
	case FormatPDF:
		return sink.RenderPDF(ctx, c)
	default:
		return nil, ValidateFormat(format)
	}
}
