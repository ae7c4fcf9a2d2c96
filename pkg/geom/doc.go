// Package geom provides the 2D primitives shared by the guide renderers.
//
// Screen space follows the SVG convention: x grows to the right and y grows
// downward, so a positive rotation turns clockwise on screen.
//
// [Point] is a location, [Vector] a direction or displacement. Both are plain
// value types; every operation returns a new value.
//
//	p := geom.Pt(100, 50)
//	v := geom.Vec(0, -10)
//	q := p.Add(v) // (100, 40)
//
// [Matrix] is a 2x3 affine transform used to rotate text about its anchor:
//
//	m := geom.RotateAbout(q, math.Pi/4)
package geom
