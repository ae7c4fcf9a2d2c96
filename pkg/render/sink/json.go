package sink

import (
	"encoding/json"

	"github.com/matzehuels/guidekit/pkg/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
	paths  bool
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// WithJSONPathData adds SVG path data next to the path segments.
func WithJSONPathData() JSONOption { return func(r *jsonRenderer) { r.paths = true } }

type jsonOutput struct {
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Background string     `json:"background,omitempty"`
	Children   []jsonNode `json:"children"`
}

type jsonNode struct {
	Type     string       `json:"type"`
	Kind     scene.Kind   `json:"kind,omitempty"`
	ID       string       `json:"id,omitempty"`
	Name     string       `json:"name,omitempty"`
	Attrs    *scene.Attrs `json:"attrs,omitempty"`
	PathData string       `json:"d,omitempty"`
	Children []jsonNode   `json:"children,omitempty"`
}

// RenderJSON dumps the scene graph. Groups carry their children; shapes
// carry their attributes as recorded.
func RenderJSON(c *scene.Canvas, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      c.Width,
		Height:     c.Height,
		Background: c.Background,
		Children:   r.nodes(c.Children),
	}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func (r *jsonRenderer) nodes(children []scene.Node) []jsonNode {
	out := make([]jsonNode, 0, len(children))
	for _, n := range children {
		switch v := n.(type) {
		case *scene.Group:
			out = append(out, jsonNode{
				Type:     "group",
				ID:       v.ID,
				Name:     v.Name,
				Children: r.nodes(v.Children),
			})
		case *scene.Shape:
			attrs := v.Attrs
			node := jsonNode{
				Type:  "shape",
				Kind:  v.Kind,
				ID:    v.ID,
				Name:  v.Name,
				Attrs: &attrs,
			}
			if r.paths && len(attrs.Path) > 0 {
				node.PathData = attrs.Path.String()
			}
			out = append(out, node)
		}
	}
	return out
}
