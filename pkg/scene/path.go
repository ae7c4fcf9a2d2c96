package scene

import (
	"fmt"
	"strings"

	"github.com/matzehuels/guidekit/pkg/geom"
)

// Command is an SVG path command letter.
type Command byte

// Path commands. Coordinates are always absolute.
const (
	MoveTo    Command = 'M'
	LineTo    Command = 'L'
	ArcTo     Command = 'A'
	ClosePath Command = 'Z'
)

// MarshalText encodes the command as its letter.
func (c Command) MarshalText() ([]byte, error) {
	switch c {
	case MoveTo, LineTo, ArcTo, ClosePath:
		return []byte{byte(c)}, nil
	}
	return nil, fmt.Errorf("unknown path command %q", byte(c))
}

// UnmarshalText decodes a single command letter.
func (c *Command) UnmarshalText(text []byte) error {
	if len(text) == 1 {
		switch cmd := Command(text[0]); cmd {
		case MoveTo, LineTo, ArcTo, ClosePath:
			*c = cmd
			return nil
		}
	}
	return fmt.Errorf("unknown path command %q", text)
}

// Segment is one command with its arguments.
//
// Arc arguments follow SVG: rx, ry, x-axis-rotation, large-arc flag,
// sweep flag, x, y.
type Segment struct {
	Cmd  Command   `json:"cmd"`
	Args []float64 `json:"args,omitempty"`
}

// Path is an ordered list of segments.
type Path []Segment

// MoveTo starts a new subpath at p.
func (p Path) MoveTo(pt geom.Point) Path {
	return append(p, Segment{Cmd: MoveTo, Args: []float64{pt.X, pt.Y}})
}

// LineTo draws a straight line to pt.
func (p Path) LineTo(pt geom.Point) Path {
	return append(p, Segment{Cmd: LineTo, Args: []float64{pt.X, pt.Y}})
}

// ArcTo draws an elliptical arc to pt.
func (p Path) ArcTo(rx, ry, rotation float64, large, sweep bool, pt geom.Point) Path {
	return append(p, Segment{Cmd: ArcTo, Args: []float64{rx, ry, rotation, flag(large), flag(sweep), pt.X, pt.Y}})
}

// Close closes the current subpath.
func (p Path) Close() Path {
	return append(p, Segment{Cmd: ClosePath})
}

// Points returns the end point of every segment, in order.
// ClosePath contributes the start of the subpath it closes.
func (p Path) Points() []geom.Point {
	var pts []geom.Point
	var start geom.Point
	for _, s := range p {
		switch s.Cmd {
		case ClosePath:
			pts = append(pts, start)
		default:
			if len(s.Args) < 2 {
				continue
			}
			pt := geom.Pt(s.Args[len(s.Args)-2], s.Args[len(s.Args)-1])
			if s.Cmd == MoveTo {
				start = pt
			}
			pts = append(pts, pt)
		}
	}
	return pts
}

// First returns the first point of the path.
func (p Path) First() (geom.Point, bool) {
	pts := p.Points()
	if len(pts) == 0 {
		return geom.Point{}, false
	}
	return pts[0], true
}

// Last returns the final point of the path.
func (p Path) Last() (geom.Point, bool) {
	pts := p.Points()
	if len(pts) == 0 {
		return geom.Point{}, false
	}
	return pts[len(pts)-1], true
}

// Closed reports whether the path ends with ClosePath.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Cmd == ClosePath
}

// String renders the path as SVG path data, e.g. "M100 50 A50 50 0 1 1 100 150 Z".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Cmd))
		for j, a := range s.Args {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(geom.FormatFloat(a))
		}
	}
	return b.String()
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
