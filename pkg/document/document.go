// Package document reads chart documents and compiles them into scenes.
//
// A document describes a canvas, a set of axes and optional text guides.
// It can be written in TOML or JSON; both use the same keys:
//
//	width = 240
//	height = 240
//
//	[defaults.label.style]
//	fill = "#333333"
//
//	[[axis]]
//	id = "compass"
//	type = "circle"
//	center = [120, 120]
//	radius = 80
//	ticks = [
//	  { value = 0, name = "N" },
//	  { value = 0.25, name = "E" },
//	]
//
//	[axis.title]
//	text = "Heading"
//
// The defaults table is applied to every axis before the axis' own
// sections. Angles are given in degrees.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/guidekit/pkg/errors"
)

// Format is a document serialization.
type Format string

// Document formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Axis geometry types.
const (
	TypeCircle = "circle"
	TypeLine   = "line"
)

// Document is a complete chart description.
type Document struct {
	Width      float64 `toml:"width" json:"width"`
	Height     float64 `toml:"height" json:"height"`
	Background string  `toml:"background" json:"background,omitempty"`

	Defaults Layer `toml:"defaults" json:"defaults"`

	Coord   *CoordSpec  `toml:"coord" json:"coord,omitempty"`
	XScales []ScaleSpec `toml:"x_scale" json:"x_scale,omitempty"`
	YScales []ScaleSpec `toml:"y_scale" json:"y_scale,omitempty"`

	Axes   []AxisSpec  `toml:"axis" json:"axis"`
	Guides []GuideSpec `toml:"guide" json:"guide,omitempty"`
}

// AxisSpec declares one axis. Circle axes use Center, Radius and the
// angles; line axes use Start and End.
type AxisSpec struct {
	ID   string `toml:"id" json:"id"`
	Type string `toml:"type" json:"type"`

	Center     []float64 `toml:"center" json:"center,omitempty"`
	Radius     float64   `toml:"radius" json:"radius,omitempty"`
	StartAngle *float64  `toml:"start_angle" json:"start_angle,omitempty"`
	EndAngle   *float64  `toml:"end_angle" json:"end_angle,omitempty"`

	Start []float64 `toml:"start" json:"start,omitempty"`
	End   []float64 `toml:"end" json:"end,omitempty"`

	Ticks []TickSpec `toml:"ticks" json:"ticks,omitempty"`
	// Scale names a declared x or y scale to take ticks from.
	Scale string `toml:"scale" json:"scale,omitempty"`

	Layer
}

// TickSpec is a tick at a normalized value.
type TickSpec struct {
	Value float64 `toml:"value" json:"value"`
	Name  string  `toml:"name" json:"name"`
	ID    string  `toml:"id" json:"id,omitempty"`
}

// CoordSpec is the plotting rectangle used by guides. Start maps to
// (0, 0) and End to (1, 1).
type CoordSpec struct {
	Start []float64 `toml:"start" json:"start"`
	End   []float64 `toml:"end" json:"end"`
}

// ScaleSpec declares a linear or category scale.
type ScaleSpec struct {
	Field     string   `toml:"field" json:"field"`
	Type      string   `toml:"type" json:"type"`
	Min       float64  `toml:"min" json:"min,omitempty"`
	Max       float64  `toml:"max" json:"max,omitempty"`
	TickCount int      `toml:"tick_count" json:"tick_count,omitempty"`
	Values    []string `toml:"values" json:"values,omitempty"`
}

// GuideSpec is a text annotation. Position is either two percentages
// ("50%") or one value per axis; Fields places by field name instead.
type GuideSpec struct {
	ID       string         `toml:"id" json:"id"`
	Type     string         `toml:"type" json:"type,omitempty"`
	Content  string         `toml:"content" json:"content"`
	Position []any          `toml:"position" json:"position,omitempty"`
	Fields   map[string]any `toml:"fields" json:"fields,omitempty"`
	Offset   []float64      `toml:"offset" json:"offset,omitempty"`
	Rotate   float64        `toml:"rotate" json:"rotate,omitempty"`
	Style    *StyleSection  `toml:"style" json:"style,omitempty"`
}

// FormatFromPath selects the format by file extension.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateDocumentFilename(filepath.Base(path)); err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON, nil
	}
	return FormatTOML, nil
}

// FormatFromContentType selects the format by HTTP media type. Anything
// that is not JSON is read as TOML.
func FormatFromContentType(ct string) Format {
	if strings.Contains(strings.ToLower(ct), "json") {
		return FormatJSON
	}
	return FormatTOML
}

// Load reads a document from disk.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s not found", path)
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown keys: %v", undecoded)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Canonical returns the JSON encoding of d. Equal documents produce equal
// bytes regardless of the format they were written in.
func (d *Document) Canonical() ([]byte, error) {
	return json.Marshal(d)
}
