// Package scene defines the drawing surface the guide renderers write to.
//
// # Overview
//
// Renderers never talk to an output format directly. They add shape
// descriptors to a [Surface]:
//
//   - [KindPath]: an SVG-style path ([Path]) such as an axis line or arc
//   - [KindLine]: a straight segment such as a tick line
//   - [KindText]: a positioned, optionally rotated text label
//
// Groups nest: [Surface.AddGroup] returns another Surface whose shapes are
// children of the group.
//
// # Canvas
//
// [Canvas] is the in-memory implementation. It records the scene graph in
// insertion order and registers every element by id so callers can look
// shapes up after rendering:
//
//	c := scene.NewCanvas(400, 300)
//	ax.Render(c)
//	title, ok := c.Element("radial-title")
//
// The sinks in [github.com/matzehuels/guidekit/pkg/render/sink] serialize a
// Canvas to SVG or JSON.
package scene
