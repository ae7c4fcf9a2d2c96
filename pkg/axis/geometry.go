package axis

import (
	"math"

	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Geometry supplies the coordinate-system specific primitives of an axis.
type Geometry interface {
	// TickPointAt returns the screen point for a normalized axis value.
	TickPointAt(value float64) geom.Point
	// SideVectorAt returns a displacement of length |offset| pointing away
	// from the axis at p. The sign of offset selects the side; the axis
	// folds its vertical factor into offset before calling.
	SideVectorAt(offset float64, p geom.Point) geom.Vector
	// AxisVectorAt returns the direction along the axis at p.
	AxisVectorAt(p geom.Point) geom.Vector
	// LinePath returns the outline of the axis line.
	LinePath() scene.Path
}

// TextAnchorer is implemented by geometries that replace the default
// label alignment policy.
type TextAnchorer interface {
	TextAnchorFor(v geom.Vector) string
}

// Validator is implemented by geometries that can check their parameters.
type Validator interface {
	Validate() error
}

// DefaultTextAnchor aligns text for a side vector on a cartesian axis.
// Mostly vertical vectors (a horizontal axis) center the text; otherwise
// text starts to the right of the anchor or ends to its left.
func DefaultTextAnchor(v geom.Vector) string {
	if geom.NumberEqual(v.X, 0) || math.Abs(v.Y/v.X) >= 1 {
		return scene.AlignCenter
	}
	if v.X > 0 {
		return scene.AlignStart
	}
	return scene.AlignEnd
}
