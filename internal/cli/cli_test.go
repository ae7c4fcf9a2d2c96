package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const compassDoc = `
width = 200
height = 200

[[axis]]
id = "compass"
type = "circle"
center = [100, 100]
radius = 60
ticks = [
  { value = 0, name = "N" },
  { value = 0.25, name = "E" },
  { value = 0.5, name = "S" },
  { value = 0.75, name = "W" },
]

[axis.label]
offset = 10

[axis.title]
text = "Heading"
`

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	doc := writeDoc(t, "compass.toml", compassDoc)
	base := filepath.Join(filepath.Dir(doc), "out", "dial")

	output, err := runCLI(t, "render", doc, "-f", "svg,json", "-o", base)
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, output)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	for _, want := range []string{"<svg", ">N</text>", ">Heading</text>"} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("svg lacks %q", want)
		}
	}

	raw, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("json not written: %v", err)
	}
	var scene map[string]any
	if err := json.Unmarshal(raw, &scene); err != nil {
		t.Errorf("json output invalid: %v", err)
	}

	if !strings.Contains(output, base+".svg") {
		t.Errorf("output does not list the svg file:\n%s", output)
	}
}

func TestRenderCommandDefaultPath(t *testing.T) {
	doc := writeDoc(t, "compass.toml", compassDoc)
	if _, err := runCLI(t, "render", doc, "--no-cache"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if _, err := os.Stat(strings.TrimSuffix(doc, ".toml") + ".svg"); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	doc := writeDoc(t, "compass.toml", compassDoc)
	tests := []struct {
		name string
		args []string
	}{
		{"MissingFile", []string{"render", filepath.Join(t.TempDir(), "nope.toml")}},
		{"WrongExtension", []string{"render", writeDoc(t, "chart.yaml", "width: 1")}},
		{"BadFormat", []string{"render", doc, "-f", "gif"}},
		{"NoArgs", []string{"render"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestInspectCommand(t *testing.T) {
	doc := writeDoc(t, "compass.toml", compassDoc)
	output, err := runCLI(t, "inspect", doc)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{"compass", "circle", "Tick", "N", "W", `"Heading"`} {
		if !strings.Contains(output, want) {
			t.Errorf("inspect output lacks %q:\n%s", want, output)
		}
	}
}

func TestInspectMarksHiddenLabels(t *testing.T) {
	doc := writeDoc(t, "crowded.toml", `
width = 200
height = 100

[[axis]]
id = "x"
type = "line"
start = [0, 50]
end = [100, 50]
ticks = [
  { value = 0, name = "AAAA" },
  { value = 0.01, name = "BBBB" },
  { value = 0.5, name = "CCCC" },
]

[axis.label]
auto_hide = true
`)
	output, err := runCLI(t, "inspect", doc)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if n := strings.Count(output, "hidden"); n != 1 {
		t.Errorf("hidden rows = %d, want 1:\n%s", n, output)
	}
	if n := strings.Count(output, "yes"); n != 2 {
		t.Errorf("shown rows = %d, want 2:\n%s", n, output)
	}
}

func TestCacheCommands(t *testing.T) {
	output, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(output), appName) {
		t.Errorf("cache path = %q", output)
	}

	output, err = runCLI(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "Cache is empty") {
		t.Errorf("clear on a fresh dir printed %q", output)
	}
}

func TestCacheClearRemovesEntries(t *testing.T) {
	doc := writeDoc(t, "compass.toml", compassDoc)
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	var buf bytes.Buffer
	prev := out
	out = &buf
	defer func() { out = prev }()

	for _, args := range [][]string{{"render", doc}, {"cache", "clear"}} {
		root := New(io.Discard, log.InfoLevel).RootCommand()
		root.SetArgs(args)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}
	if !strings.Contains(buf.String(), "Cleared 1 cached entries") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	dir, err = cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCompletionCommand(t *testing.T) {
	output, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, appName) {
		t.Error("bash completion does not mention the command")
	}
	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should fail")
	}
}
