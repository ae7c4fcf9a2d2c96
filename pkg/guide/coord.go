package guide

import (
	"math"

	"github.com/matzehuels/guidekit/pkg/geom"
)

// Coord converts normalized positions into screen points.
type Coord interface {
	// Start is the point of (0, 0), End the point of (1, 1).
	Start() geom.Point
	End() geom.Point
	Convert(x, y float64) geom.Point
}

// Rect is a cartesian coordinate system spanning Start to End. Charts
// usually put Start at the bottom left so y grows upward.
type Rect struct {
	From geom.Point
	To   geom.Point
}

func (r Rect) Start() geom.Point { return r.From }
func (r Rect) End() geom.Point   { return r.To }

// Width is the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return math.Abs(r.To.X - r.From.X) }

// Height is the vertical extent of the rectangle.
func (r Rect) Height() float64 { return math.Abs(r.To.Y - r.From.Y) }

// Convert interpolates between Start and End on each axis.
func (r Rect) Convert(x, y float64) geom.Point {
	return geom.Pt(
		r.From.X+(r.To.X-r.From.X)*x,
		r.From.Y+(r.To.Y-r.From.Y)*y,
	)
}

func topLeft(c Coord) geom.Point {
	s, e := c.Start(), c.End()
	return geom.Pt(math.Min(s.X, e.X), math.Min(s.Y, e.Y))
}

func size(c Coord) (w, h float64) {
	s, e := c.Start(), c.End()
	return math.Abs(e.X - s.X), math.Abs(e.Y - s.Y)
}
