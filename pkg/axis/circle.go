package axis

import (
	"math"

	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Default angles of a polar axis: a full clockwise turn starting at 12
// o'clock (screen y grows downward).
const (
	DefaultStartAngle = -math.Pi / 2
	DefaultEndAngle   = 3 * math.Pi / 2
)

// Circle is a polar axis geometry: a ring or an arc around Center.
// Angles are in radians.
type Circle struct {
	Center     geom.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// NewCircle creates and validates a circle geometry.
func NewCircle(center geom.Point, radius, startAngle, endAngle float64) (*Circle, error) {
	c := &Circle{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the circle can be laid out.
func (c *Circle) Validate() error {
	if !c.Center.IsFinite() {
		return errors.New(errors.ErrCodeInvalidGeometry, "circle center must be finite, got %v", c.Center)
	}
	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) || c.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "circle radius must be a positive number, got %v", c.Radius)
	}
	for _, a := range []float64{c.StartAngle, c.EndAngle} {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return errors.New(errors.ErrCodeInvalidGeometry, "circle angles must be finite, got %v", a)
		}
	}
	return nil
}

// FullTurn reports whether the axis spans a whole circle.
func (c *Circle) FullTurn() bool {
	return geom.NumberEqual(math.Abs(c.EndAngle-c.StartAngle), 2*math.Pi)
}

// TickPointAt maps v to the point at angle start+(end-start)*v.
func (c *Circle) TickPointAt(v float64) geom.Point {
	angle := c.StartAngle + (c.EndAngle-c.StartAngle)*v
	return c.pointAt(angle)
}

func (c *Circle) pointAt(angle float64) geom.Point {
	return geom.Pt(
		c.Center.X+c.Radius*math.Cos(angle),
		c.Center.Y+c.Radius*math.Sin(angle),
	)
}

// SideVectorAt points radially outward from the center through p, scaled
// to offset. A point on the center yields the zero vector.
func (c *Circle) SideVectorAt(offset float64, p geom.Point) geom.Vector {
	return p.Sub(c.Center).Normalize().Scale(offset)
}

// AxisVectorAt returns the tangent at p.
func (c *Circle) AxisVectorAt(p geom.Point) geom.Vector {
	r := p.Sub(c.Center)
	return geom.Vec(r.Y, -r.X)
}

// LinePath outlines the axis. A full turn is drawn as two half arcs
// through the top and bottom of the circle. Partial arcs are drawn as a
// sector from the center.
func (c *Circle) LinePath() scene.Path {
	r := c.Radius
	if c.FullTurn() {
		top := geom.Pt(c.Center.X, c.Center.Y-r)
		bottom := geom.Pt(c.Center.X, c.Center.Y+r)
		return scene.Path{}.
			MoveTo(top).
			ArcTo(r, r, 0, true, true, bottom).
			ArcTo(r, r, 0, true, true, top).
			Close()
	}

	span := c.EndAngle - c.StartAngle
	large := math.Abs(span) > math.Pi
	sweep := c.StartAngle <= c.EndAngle
	return scene.Path{}.
		MoveTo(c.Center).
		LineTo(c.pointAt(c.StartAngle)).
		ArcTo(r, r, 0, large, sweep, c.pointAt(c.EndAngle)).
		LineTo(c.Center)
}

// TextAnchorFor aligns labels by the horizontal direction of the side
// vector only: labels left of center end at their anchor, labels right of
// center start there.
func (c *Circle) TextAnchorFor(v geom.Vector) string {
	switch {
	case geom.NumberEqual(v.X, 0):
		return scene.AlignCenter
	case v.X > 0:
		return scene.AlignStart
	default:
		return scene.AlignEnd
	}
}
