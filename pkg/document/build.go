package document

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/guidekit/pkg/axis"
	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/guide"
	"github.com/matzehuels/guidekit/pkg/scale"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Group names of the compiled scene.
const (
	NameAxisGroup  = "axis"
	NameGuideGroup = "guides"
)

// Validate checks the document structure. Axis and scale parameters are
// checked again by their constructors during Build.
func (d *Document) Validate() error {
	if !positive(d.Width) || !positive(d.Height) {
		return errors.New(errors.ErrCodeInvalidDocument, "canvas size must be positive, got %vx%v", d.Width, d.Height)
	}

	ids := make(map[string]bool)
	for i, a := range d.Axes {
		if a.ID == "" {
			return errors.New(errors.ErrCodeInvalidDocument, "axis %d: id is required", i)
		}
		if ids[a.ID] {
			return errors.New(errors.ErrCodeInvalidDocument, "duplicate axis id %q", a.ID)
		}
		ids[a.ID] = true

		switch a.Type {
		case TypeCircle, TypeLine:
		default:
			return errors.New(errors.ErrCodeInvalidDocument, "axis %q: type must be circle or line, got %q", a.ID, a.Type)
		}
		if len(a.Ticks) > 0 && a.Scale != "" {
			return errors.New(errors.ErrCodeInvalidDocument, "axis %q: ticks and scale are mutually exclusive", a.ID)
		}
	}

	for i, g := range d.Guides {
		if g.Type != "" && g.Type != "text" {
			return errors.New(errors.ErrCodeInvalidDocument, "guide %d: unsupported type %q", i, g.Type)
		}
		if len(g.Position) == 0 && len(g.Fields) == 0 {
			return errors.New(errors.ErrCodeInvalidDocument, "guide %d: position or fields is required", i)
		}
		if len(g.Position) > 0 && len(g.Position) != 2 {
			return errors.New(errors.ErrCodeInvalidDocument, "guide %d: position needs two entries, got %d", i, len(g.Position))
		}
	}
	return nil
}

// Build compiles the document into a new canvas. Every axis renders into
// its own group named after the axis id; guides share one group.
func (d *Document) Build() (*scene.Canvas, error) {
	axes, err := d.BuildAxes()
	if err != nil {
		return nil, err
	}

	c := scene.NewCanvas(d.Width, d.Height)
	c.Background = d.Background

	for _, ax := range axes {
		group := c.AddGroup(scene.GroupSpec{ID: ax.ID(), Name: NameAxisGroup})
		if err := ax.Render(group); err != nil {
			return nil, err
		}
	}

	if len(d.Guides) > 0 {
		coord, err := d.coord()
		if err != nil {
			return nil, err
		}
		xs, ys, err := d.scales()
		if err != nil {
			return nil, err
		}
		group := c.AddGroup(scene.GroupSpec{ID: "guides", Name: NameGuideGroup})
		for i, g := range d.Guides {
			if err := g.text(i).Render(group, coord, xs, ys); err != nil {
				return nil, fmt.Errorf("guide %d: %w", i, err)
			}
		}
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "build scene")
	}
	return c, nil
}

// BuildAxes validates the document and creates its axes in declaration
// order without rendering them.
func (d *Document) BuildAxes() ([]*axis.Axis, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	xs, ys, err := d.scales()
	if err != nil {
		return nil, err
	}
	defaults, err := d.Defaults.Options()
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	axes := make([]*axis.Axis, 0, len(d.Axes))
	for _, spec := range d.Axes {
		ax, err := spec.Axis(defaults, xs, ys)
		if err != nil {
			return nil, err
		}
		axes = append(axes, ax)
	}
	return axes, nil
}

func (d *Document) scales() (xs, ys []scale.Scale, err error) {
	if xs, err = buildScales(d.XScales); err != nil {
		return nil, nil, err
	}
	if ys, err = buildScales(d.YScales); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// Axis creates the axis described by spec. The defaults layer runs before
// the axis' own sections.
func (spec AxisSpec) Axis(defaults []axis.Option, xs, ys []scale.Scale) (*axis.Axis, error) {
	g, err := spec.geometry()
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", spec.ID, err)
	}
	ticks, err := spec.ticks(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", spec.ID, err)
	}
	own, err := spec.Layer.Options()
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", spec.ID, err)
	}

	opts := make([]axis.Option, 0, len(defaults)+len(own)+1)
	opts = append(opts, defaults...)
	opts = append(opts, own...)
	opts = append(opts, dropUntitled())
	return axis.New(spec.ID, g, ticks, opts...)
}

func (spec AxisSpec) geometry() (axis.Geometry, error) {
	switch spec.Type {
	case TypeCircle:
		center, err := point("center", spec.Center)
		if err != nil {
			return nil, err
		}
		start, end := axis.DefaultStartAngle, axis.DefaultEndAngle
		if spec.StartAngle != nil {
			start = geom.Radians(*spec.StartAngle)
		}
		if spec.EndAngle != nil {
			end = geom.Radians(*spec.EndAngle)
		}
		return axis.NewCircle(center, spec.Radius, start, end)
	case TypeLine:
		start, err := point("start", spec.Start)
		if err != nil {
			return nil, err
		}
		end, err := point("end", spec.End)
		if err != nil {
			return nil, err
		}
		return axis.NewLine(start, end)
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown axis type %q", spec.Type)
	}
}

func (spec AxisSpec) ticks(xs, ys []scale.Scale) ([]axis.Tick, error) {
	if spec.Scale == "" {
		ticks := make([]axis.Tick, len(spec.Ticks))
		for i, t := range spec.Ticks {
			ticks[i] = axis.Tick{Value: t.Value, Name: t.Name, ID: t.ID}
		}
		return ticks, nil
	}

	s := scale.Lookup(xs, spec.Scale)
	if s == nil {
		s = scale.Lookup(ys, spec.Scale)
	}
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown scale %q", spec.Scale)
	}
	var ticks []axis.Tick
	for _, t := range s.Ticks() {
		ticks = append(ticks, axis.Tick{Value: t.Value, Name: t.Text})
	}
	return ticks, nil
}

func buildScales(specs []ScaleSpec) ([]scale.Scale, error) {
	scales := make([]scale.Scale, 0, len(specs))
	for _, s := range specs {
		switch strings.ToLower(s.Type) {
		case "linear", "":
			l := &scale.Linear{Name: s.Field, From: s.Min, To: s.Max, TickCount: s.TickCount}
			if err := l.Validate(); err != nil {
				return nil, err
			}
			scales = append(scales, l)
		case "category":
			c, err := scale.NewCategory(s.Field, s.Values...)
			if err != nil {
				return nil, err
			}
			scales = append(scales, c)
		default:
			return nil, errors.New(errors.ErrCodeInvalidDocument, "scale %q: unknown type %q", s.Field, s.Type)
		}
	}
	return scales, nil
}

// coord returns the declared plotting rectangle, or the whole canvas with
// y growing upward.
func (d *Document) coord() (guide.Coord, error) {
	if d.Coord == nil {
		return guide.Rect{From: geom.Pt(0, d.Height), To: geom.Pt(d.Width, 0)}, nil
	}
	start, err := point("coord.start", d.Coord.Start)
	if err != nil {
		return nil, err
	}
	end, err := point("coord.end", d.Coord.End)
	if err != nil {
		return nil, err
	}
	return guide.Rect{From: start, To: end}, nil
}

func (g GuideSpec) text(i int) guide.Text {
	id := g.ID
	if id == "" {
		id = fmt.Sprintf("guide-%d", i)
	}
	t := guide.Text{
		ID:       id,
		Position: g.position(),
		Content:  g.Content,
		Rotate:   geom.Radians(g.Rotate),
		Attrs:    g.Style.Attrs(),
	}
	if len(g.Offset) == 2 {
		t.OffsetX, t.OffsetY = g.Offset[0], g.Offset[1]
	}
	return t
}

func (g GuideSpec) position() guide.Position {
	if len(g.Position) != 2 {
		return guide.Fields(g.Fields)
	}
	if x, ok := g.Position[0].(string); ok && strings.Contains(x, "%") {
		y, _ := g.Position[1].(string)
		return guide.Percent{X: x, Y: y}
	}
	return guide.Values{X: g.Position[0], Y: g.Position[1]}
}

func point(name string, xy []float64) (geom.Point, error) {
	if len(xy) != 2 {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidDocument, "%s must be [x, y], got %v", name, xy)
	}
	return geom.Pt(xy[0], xy[1]), nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
