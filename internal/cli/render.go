package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guidekit/pkg/document"
	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output     string
	formats    []string
	scale      float64
	rasterizer string
	noCache    bool
	redisURL   string
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		scale:      pipeline.DefaultScale,
		rasterizer: pipeline.DefaultRasterizer,
	}

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a chart document to SVG, JSON, PNG or PDF",
		Long: `Render compiles a TOML or JSON chart document.

With a single format, -o names the output file. With several formats, -o is
a base path and each format gets its own extension. Without -o the outputs
are written next to the document.`,
		Example: `  guidekit render compass.toml
  guidekit render compass.toml -f svg,png --scale 3
  guidekit render chart.json -f pdf -o out/chart.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().StringVar(&opts.rasterizer, "rasterizer", opts.rasterizer, "PNG rasterizer: rsvg, chrome")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", os.Getenv(envRedisURL), "use a redis artifact cache (env "+envRedisURL+")")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := document.Load(input)
	if err != nil {
		return err
	}

	paths := make(map[string]string, len(opts.formats))
	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats))
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		paths[format] = path
	}

	runner, err := c.newRunner(ctx, opts.noCache, opts.redisURL)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	var spin *Spinner
	if needsConversion(opts.formats) {
		spin = newSpinner(ctx, os.Stderr, "Converting")
		spin.Start()
	}
	result, err := runner.Execute(ctx, doc, pipeline.Options{
		Formats:    opts.formats,
		Scale:      opts.scale,
		Rasterizer: opts.rasterizer,
		NoCache:    opts.noCache,
		Logger:     logger,
	})
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	for _, format := range opts.formats {
		if err := writeOutput(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %s", filepath.Base(input)))

	printSuccess("Rendered %s", filepath.Base(input))
	printStats(result.Stats.ElementCount, result.CacheInfo.AllHit())
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	return nil
}

// outputPath picks the file for one format. A single format writes to
// output as given; otherwise output (or the input) is a base path.
func outputPath(output, input, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath strips a known extension from output, or derives the base
// from input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	if pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

func needsConversion(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
