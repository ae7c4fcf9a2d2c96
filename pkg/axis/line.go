package axis

import (
	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Line is a straight axis from Start to End.
type Line struct {
	Start geom.Point
	End   geom.Point
}

// NewLine creates and validates a line geometry.
func NewLine(start, end geom.Point) (*Line, error) {
	l := &Line{Start: start, End: end}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate rejects non-finite and zero-length lines.
func (l *Line) Validate() error {
	if !l.Start.IsFinite() || !l.End.IsFinite() {
		return errors.New(errors.ErrCodeInvalidGeometry, "line end points must be finite, got %v and %v", l.Start, l.End)
	}
	if l.Start.Equal(l.End) {
		return errors.New(errors.ErrCodeInvalidGeometry, "line has zero length at %v", l.Start)
	}
	return nil
}

// TickPointAt interpolates linearly from start (0) to end (1).
func (l *Line) TickPointAt(v float64) geom.Point {
	return l.Start.Lerp(l.End, v)
}

// SideVectorAt is perpendicular to the line, a quarter turn
// counter-clockwise from its direction. For a left-to-right line a positive
// offset points up; bottom axes use a vertical factor of -1.
func (l *Line) SideVectorAt(offset float64, _ geom.Point) geom.Vector {
	return l.End.Sub(l.Start).Normalize().Perp().Scale(offset)
}

// AxisVectorAt returns the line direction, end minus start.
func (l *Line) AxisVectorAt(geom.Point) geom.Vector {
	return l.End.Sub(l.Start)
}

// LinePath is the straight segment from start to end.
func (l *Line) LinePath() scene.Path {
	return scene.Path{}.MoveTo(l.Start).LineTo(l.End)
}
