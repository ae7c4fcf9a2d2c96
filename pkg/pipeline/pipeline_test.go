package pipeline

import (
	"bytes"
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/guidekit/pkg/document"
	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/observability"
)

const testDoc = `
width = 200
height = 200

[[axis]]
id = "dial"
type = "circle"
center = [100, 100]
radius = 60
ticks = [
  { value = 0, name = "A" },
  { value = 0.5, name = "B" },
]
`

func parseDoc(t *testing.T, src string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(src), document.FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

// memCache counts writes so tests can tell cached from fresh renders.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	m.sets++
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Rasterizer != DefaultRasterizer {
		t.Errorf("Rasterizer = %q, want %q", opts.Rasterizer, DefaultRasterizer)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error = %v", err)
	}
}

func TestOptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"NegativeScale", Options{Scale: -1}, errors.ErrCodeInvalidInput},
		{"NaNScale", Options{Scale: math.NaN()}, errors.ErrCodeInvalidInput},
		{"UnknownRasterizer", Options{Rasterizer: "gpu"}, errors.ErrCodeInvalidInput},
		{"UnknownFormat", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Scale: 3, Rasterizer: "chrome"}
	if k := opts.ArtifactKeyOpts(FormatSVG); k.Scale != 0 || k.Rasterizer != "" {
		t.Errorf("svg key opts carry raster settings: %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatPNG); k.Scale != 3 || k.Rasterizer != "chrome" {
		t.Errorf("png key opts = %+v", k)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"svg":  "image/svg+xml",
		"png":  "image/png",
		"pdf":  "application/pdf",
		"json": "application/json",
		"gif":  "application/octet-stream",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestExecuteCaches(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	runner := NewRunner(mc, nil, nil)
	doc := parseDoc(t, testDoc)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.AllHit() {
		t.Error("first run should miss")
	}
	if first.Canvas == nil {
		t.Fatal("first run should build a canvas")
	}
	if first.Stats.ElementCount == 0 {
		t.Error("ElementCount = 0")
	}
	if !bytes.Contains(first.Artifacts[FormatSVG], []byte("<svg")) {
		t.Errorf("svg artifact = %q", first.Artifacts[FormatSVG])
	}
	if len(first.Artifacts[FormatJSON]) == 0 {
		t.Error("json artifact is empty")
	}
	if mc.sets != 2 {
		t.Errorf("cache sets = %d, want 2", mc.sets)
	}

	second, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.AllHit() {
		t.Errorf("second run hits = %v, want all", second.CacheInfo.Hits)
	}
	if second.Canvas != nil {
		t.Error("fully cached run should skip the build")
	}
	if second.DocHash != first.DocHash {
		t.Error("DocHash changed between runs")
	}
	for _, f := range opts.Formats {
		if !bytes.Equal(first.Artifacts[f], second.Artifacts[f]) {
			t.Errorf("%s artifact differs between runs", f)
		}
	}
	if mc.sets != 2 {
		t.Errorf("cache sets = %d after cached run, want 2", mc.sets)
	}
}

func TestExecutePartialHit(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	runner := NewRunner(mc, nil, nil)
	doc := parseDoc(t, testDoc)

	if _, err := runner.Execute(ctx, doc, Options{Formats: []string{FormatSVG}}); err != nil {
		t.Fatal(err)
	}
	res, err := runner.Execute(ctx, doc, Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if !res.CacheInfo.Hits[FormatSVG] || res.CacheInfo.Hits[FormatJSON] {
		t.Errorf("hits = %v, want svg only", res.CacheInfo.Hits)
	}
	if res.CacheInfo.AllHit() {
		t.Error("AllHit() = true for a partial hit")
	}
}

func TestExecuteNoCache(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	runner := NewRunner(mc, nil, nil)
	doc := parseDoc(t, testDoc)

	for range 2 {
		res, err := runner.Execute(ctx, doc, Options{NoCache: true})
		if err != nil {
			t.Fatal(err)
		}
		if res.CacheInfo.AllHit() {
			t.Error("NoCache run reported a hit")
		}
	}
	if mc.sets != 0 {
		t.Errorf("cache sets = %d with NoCache, want 0", mc.sets)
	}
}

func TestExecuteDocumentHash(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)

	a, err := runner.Execute(ctx, parseDoc(t, testDoc), Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := runner.Execute(ctx, parseDoc(t, "background = \"#eeeeee\"\n"+testDoc), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if a.DocHash == b.DocHash {
		t.Error("different documents share a hash")
	}
}

func TestExecuteErrors(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)

	if _, err := runner.Execute(ctx, &document.Document{}, Options{}); err == nil {
		t.Error("empty document should fail to build")
	}
	if _, err := runner.Execute(ctx, parseDoc(t, testDoc), Options{Formats: []string{"gif"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	builds  int
	renders []string
}

func (h *recordingHooks) OnBuildComplete(_ context.Context, _ int, _ time.Duration, _ error) {
	h.builds++
}

func (h *recordingHooks) OnRenderStart(_ context.Context, formats []string) {
	h.renders = append(h.renders, formats...)
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	runner := NewRunner(newMemCache(), nil, nil)
	doc := parseDoc(t, testDoc)
	for range 2 {
		if _, err := runner.Execute(context.Background(), doc, Options{Formats: []string{FormatJSON}}); err != nil {
			t.Fatal(err)
		}
	}
	if hooks.builds != 1 {
		t.Errorf("builds = %d, want 1", hooks.builds)
	}
	if len(hooks.renders) != 1 || hooks.renders[0] != FormatJSON {
		t.Errorf("renders = %v, want [json]", hooks.renders)
	}
}
