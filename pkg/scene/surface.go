package scene

import "github.com/matzehuels/guidekit/pkg/geom"

// Kind tags the primitive a Shape describes.
type Kind string

// Shape kinds.
const (
	KindPath Kind = "path"
	KindLine Kind = "line"
	KindText Kind = "text"
)

// Text alignment values, in canvas vocabulary.
const (
	AlignStart  = "start"
	AlignCenter = "center"
	AlignEnd    = "end"
)

// Surface is the drawing target of every renderer.
type Surface interface {
	// AddShape adds a primitive and returns the stored shape.
	AddShape(s Shape) *Shape
	// AddGroup adds a child group and returns it as a Surface.
	AddGroup(g GroupSpec) Surface
}

// GroupSpec describes a group to create.
type GroupSpec struct {
	ID   string
	Name string
}

// Shape is a primitive descriptor.
type Shape struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Attrs Attrs  `json:"attrs"`
}

// Attrs holds geometry and style. Only the fields relevant to the
// shape's Kind are set.
type Attrs struct {
	// path
	Path Path `json:"path,omitempty"`

	// line
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// text
	X            float64 `json:"x,omitempty"`
	Y            float64 `json:"y,omitempty"`
	Text         string  `json:"text,omitempty"`
	TextAlign    string  `json:"textAlign,omitempty"`
	TextBaseline string  `json:"textBaseline,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty"`
	FontFamily   string  `json:"fontFamily,omitempty"`
	FontWeight   string  `json:"fontWeight,omitempty"`

	// shared style
	Stroke    string  `json:"stroke,omitempty"`
	Fill      string  `json:"fill,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`

	Matrix *geom.Matrix `json:"matrix,omitempty"`
}
