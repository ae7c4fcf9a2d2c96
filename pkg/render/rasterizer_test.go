package render

import (
	"context"
	"testing"

	"github.com/matzehuels/guidekit/pkg/errors"
)

func TestNewRasterizer(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", RasterizerRSVG},
		{"rsvg", RasterizerRSVG},
		{"Chrome", RasterizerChrome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRasterizer(tt.name)
			if err != nil {
				t.Fatalf("NewRasterizer(%q) error = %v", tt.name, err)
			}
			if r.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.want)
			}
		})
	}

	if _, err := NewRasterizer("cairo"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("NewRasterizer(cairo) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect width="4" height="4"/></svg>`

func TestToPNG(t *testing.T) {
	if !RSVGAvailable() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(context.Background(), []byte(tinySVG), 1)
	if err != nil {
		t.Fatalf("ToPNG() error = %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("ToPNG() did not return a PNG")
	}
}

func TestToPDFMissingTool(t *testing.T) {
	if RSVGAvailable() {
		t.Skip("rsvg-convert installed")
	}
	if _, err := ToPDF(context.Background(), []byte(tinySVG)); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want %s", err, errors.ErrCodeUnsupported)
	}
}
