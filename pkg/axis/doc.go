// Package axis lays out chart axes and draws them onto a scene surface.
//
// # Overview
//
// An [Axis] turns normalized tick values into screen-space primitives: the
// axis line, tick lines, sub-tick lines, labels and a title. The layout
// algorithm is generic. Everything that depends on the coordinate system is
// delegated to a [Geometry]:
//
//   - TickPointAt: the screen point for a normalized value in [0, 1]
//   - SideVectorAt: the displacement away from the axis at a point
//   - AxisVectorAt: the direction along the axis at a point
//   - LinePath: the outline of the axis itself
//
// [Circle] implements a polar axis (an arc or full ring), [Line] a straight
// cartesian axis. Geometries may also implement [TextAnchorer] to replace
// the default label alignment policy.
//
// # Configuration
//
// [DefaultConfig] holds the base defaults. [New] applies them, then every
// [Option] in order, validates once and freezes the result:
//
//	circle, _ := axis.NewCircle(geom.Pt(100, 100), 50, axis.DefaultStartAngle, axis.DefaultEndAngle)
//	ax, err := axis.New("angle", circle, ticks,
//	    axis.WithSubTickLine(4, 2),
//	    axis.WithTitle("Heading", axis.TitleEnd),
//	)
//
// A nil section (Line, TickLine, SubTickLine, Label, Title) disables that
// element.
//
// # Rendering
//
// [Axis.Render] draws the line, the title, the labels and the tick lines, in
// that order. It keeps no derived state: tick points are recomputed on every
// call and the caller's ticks are never modified.
package axis
