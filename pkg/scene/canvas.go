package scene

import "fmt"

// Node is an element of the scene graph: a *Shape or a *Group.
type Node interface {
	node()
}

func (*Shape) node() {}
func (*Group) node() {}

// Group is a container node. It implements Surface.
type Group struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Children []Node `json:"children"`

	registry *registry
}

// AddShape appends a copy of s to the group.
func (g *Group) AddShape(s Shape) *Shape {
	sh := &s
	g.Children = append(g.Children, sh)
	g.registry.add(sh.ID, sh)
	return sh
}

// AddGroup appends a child group.
func (g *Group) AddGroup(spec GroupSpec) Surface {
	child := &Group{ID: spec.ID, Name: spec.Name, registry: g.registry}
	g.Children = append(g.Children, child)
	g.registry.add(spec.ID, child)
	return child
}

// Shapes returns every shape below g in depth-first insertion order.
func (g *Group) Shapes() []*Shape {
	var out []*Shape
	g.Walk(func(n Node, _ int) {
		if s, ok := n.(*Shape); ok {
			out = append(out, s)
		}
	})
	return out
}

// Walk visits every node below g depth-first. Depth starts at 1 for
// direct children.
func (g *Group) Walk(fn func(n Node, depth int)) {
	g.walk(fn, 1)
}

func (g *Group) walk(fn func(Node, int), depth int) {
	for _, c := range g.Children {
		fn(c, depth)
		if cg, ok := c.(*Group); ok {
			cg.walk(fn, depth+1)
		}
	}
}

// Canvas is the root of an in-memory scene.
type Canvas struct {
	Group
	Width      float64
	Height     float64
	Background string
}

// NewCanvas creates an empty canvas of the given size.
func NewCanvas(width, height float64) *Canvas {
	c := &Canvas{Width: width, Height: height}
	c.registry = &registry{byID: make(map[string]Node)}
	return c
}

// Element returns the node registered under id.
func (c *Canvas) Element(id string) (Node, bool) {
	n, ok := c.registry.byID[id]
	return n, ok
}

// Shape returns the shape registered under id.
func (c *Canvas) Shape(id string) (*Shape, bool) {
	n, ok := c.Element(id)
	if !ok {
		return nil, false
	}
	s, ok := n.(*Shape)
	return s, ok
}

// Duplicates lists ids that were registered more than once.
// Renderers derive ids from tick ids, so duplicate tick names show up here.
func (c *Canvas) Duplicates() []string {
	return c.registry.dups
}

// Validate reports duplicate element ids as an error.
func (c *Canvas) Validate() error {
	if len(c.registry.dups) > 0 {
		return fmt.Errorf("duplicate element ids: %v", c.registry.dups)
	}
	return nil
}

// registry is shared by every group of one canvas.
type registry struct {
	byID map[string]Node
	dups []string
}

func (r *registry) add(id string, n Node) {
	if r == nil || id == "" {
		return
	}
	if _, ok := r.byID[id]; ok {
		r.dups = append(r.dups, id)
	}
	r.byID[id] = n
}
