// Package guide positions annotations against a coordinate system and the
// scales of a chart.
package guide

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scale"
)

// Keywords accepted in place of data values.
const (
	KeywordStart  = "start"
	KeywordEnd    = "end"
	KeywordMin    = "min"
	KeywordMax    = "max"
	KeywordMedian = "median"
)

// Position is one of Percent, Values, Fields or Func.
type Position interface {
	position()
}

// Percent places a point relative to the coordinate bounds, e.g.
// Percent{"50%", "50%"} is the center. Y is measured from the top.
type Percent struct {
	X, Y string
}

// Values holds one raw value per axis, normalized against the first
// scale of that axis.
type Values struct {
	X, Y any
}

// Fields holds raw values keyed by field name. Every field is looked up
// in both the x and the y scales, in field name order.
type Fields map[string]any

// Func computes the position from the scales.
type Func func(x, y []scale.Scale) Position

func (Percent) position() {}
func (Values) position()  {}
func (Fields) position()  {}
func (Func) position()    {}

// ParsePoint resolves pos to a screen point.
func ParsePoint(coord Coord, xScales, yScales []scale.Scale, pos Position) (geom.Point, error) {
	if f, ok := pos.(Func); ok {
		pos = f(xScales, yScales)
		if _, again := pos.(Func); again {
			return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "position function returned another function")
		}
	}

	switch p := pos.(type) {
	case Percent:
		return parsePercent(coord, p)
	case Values:
		x, err := normalize(p.X, scale.First(xScales), "x")
		if err != nil {
			return geom.Point{}, err
		}
		y, err := normalize(p.Y, scale.First(yScales), "y")
		if err != nil {
			return geom.Point{}, err
		}
		return coord.Convert(x, y), nil
	case Fields:
		return parseFields(coord, xScales, yScales, p)
	case nil:
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "position is required")
	default:
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "unsupported position %T", pos)
	}
}

func parsePercent(coord Coord, p Percent) (geom.Point, error) {
	x, err := percent(p.X)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := percent(p.Y)
	if err != nil {
		return geom.Point{}, err
	}
	w, h := size(coord)
	tl := topLeft(coord)
	return geom.Pt(w*x+tl.X, h*y+tl.Y), nil
}

func percent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")), 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid percentage %q", s)
	}
	return v / 100, nil
}

func parseFields(coord Coord, xScales, yScales []scale.Scale, fields Fields) (geom.Point, error) {
	var x, y *float64
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		value := fields[field]
		xs, ys := scale.Lookup(xScales, field), scale.Lookup(yScales, field)
		if xs == nil && ys == nil {
			return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "no scale for field %q", field)
		}
		if xs != nil {
			v, err := normalize(value, xs, field)
			if err != nil {
				return geom.Point{}, err
			}
			x = &v
		}
		if ys != nil {
			v, err := normalize(value, ys, field)
			if err != nil {
				return geom.Point{}, err
			}
			y = &v
		}
	}
	if x == nil || y == nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "position %v does not resolve both axes", map[string]any(fields))
	}
	return coord.Convert(*x, *y), nil
}

// normalize maps a raw value or keyword to [0, 1] with s.
func normalize(v any, s scale.Scale, axis string) (float64, error) {
	if kw, ok := v.(string); ok {
		switch kw {
		case KeywordStart:
			return 0, nil
		case KeywordEnd:
			return 1, nil
		}
	}
	if s == nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "no %s scale to place %v", axis, v)
	}

	if kw, ok := v.(string); ok {
		switch kw {
		case KeywordMedian:
			return s.Scale((s.Min() + s.Max()) / 2)
		case KeywordMin:
			return s.Scale(s.Min())
		case KeywordMax:
			return s.Scale(s.Max())
		}
	}
	return s.Scale(v)
}
