package guide

import (
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scale"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// NameText is the element name of text guides.
const NameText = "guide-text"

// Text is a free-standing annotation.
type Text struct {
	ID       string
	Position Position
	Content  string
	OffsetX  float64
	OffsetY  float64
	// Rotate is a rotation in radians about the anchor.
	Rotate float64
	Attrs  scene.Attrs
}

// Render places the text and adds it to s. Attrs supplies the style;
// position and content are always overwritten.
func (t Text) Render(s scene.Surface, coord Coord, xScales, yScales []scale.Scale) error {
	p, err := ParsePoint(coord, xScales, yScales, t.Position)
	if err != nil {
		return err
	}
	p = p.Add(geom.Vec(t.OffsetX, t.OffsetY))

	attrs := t.Attrs
	attrs.X, attrs.Y = p.X, p.Y
	attrs.Text = t.Content
	if attrs.TextAlign == "" {
		attrs.TextAlign = scene.AlignStart
	}
	if t.Rotate != 0 {
		m := geom.RotateAbout(p, t.Rotate)
		attrs.Matrix = &m
	}

	s.AddShape(scene.Shape{
		Kind:  scene.KindText,
		ID:    t.ID,
		Name:  NameText,
		Attrs: attrs,
	})
	return nil
}
