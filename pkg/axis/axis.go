package axis

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Element names of the drawn primitives.
const (
	NameLine          = "axis-line"
	NameTitle         = "axis-title"
	NameLabel         = "axis-label"
	NameLabelGroup    = "axis-label-group"
	NameTickLine      = "axis-tickline"
	NameTickLineGroup = "axis-tickline-group"
)

// Label box estimation for AutoHide.
const (
	charWidthRatio = 0.55
	lineHeight     = 1.0
)

var horizontal = geom.Vec(1, 0)

// Axis is the layout engine for one axis.
// It is not safe for concurrent use while SetTicks is being called.
type Axis struct {
	id    string
	geom  Geometry
	ticks []Tick
	cfg   Config
}

// New creates an axis. Options are applied in order on top of
// DefaultConfig and the result is validated once.
func New(id string, g Geometry, ticks []Tick, opts ...Option) (*Axis, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "axis %q: geometry is required", id)
	}
	if v, ok := g.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if id == "" {
		id = "axis"
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("axis %q: %w", id, err)
	}

	return &Axis{
		id:    id,
		geom:  g,
		ticks: slices.Clone(ticks),
		cfg:   cfg,
	}, nil
}

// ID returns the prefix of every element id the axis creates.
func (a *Axis) ID() string { return a.id }

// Geometry returns the coordinate-system geometry.
func (a *Axis) Geometry() Geometry { return a.geom }

// Config returns a copy of the frozen configuration.
func (a *Axis) Config() Config { return a.cfg.Clone() }

// Ticks returns a copy of the ticks.
func (a *Axis) Ticks() []Tick { return slices.Clone(a.ticks) }

// SetTicks replaces the ticks used by the next render.
func (a *Axis) SetTicks(ticks []Tick) { a.ticks = slices.Clone(ticks) }

// Render draws the axis line, the title, the labels and the tick lines.
// Ticks are validated before anything is drawn, so an error leaves the
// surface untouched.
func (a *Axis) Render(s scene.Surface) error {
	items, err := a.ProcessTicks()
	if err != nil {
		return err
	}

	if a.cfg.Line != nil {
		a.drawLine(s)
	}
	if a.cfg.Title != nil {
		a.drawTitle(s)
	}
	if a.cfg.Label != nil {
		a.drawLabels(s, items)
	}
	if a.cfg.TickLine != nil {
		a.drawTickLines(s, items)
	}
	return nil
}

// ProcessTicks resolves every tick to its screen point and fills in
// default ids. The caller's ticks are not modified.
func (a *Axis) ProcessTicks() ([]TickItem, error) {
	items := make([]TickItem, len(a.ticks))
	for i, t := range a.ticks {
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return nil, errors.New(errors.ErrCodeInvalidTick, "axis %q: tick %d (%q) has non-finite value %v", a.id, i, t.Name, t.Value)
		}
		if t.ID == "" {
			t.ID = t.Name
		}
		items[i] = TickItem{Tick: t, Point: a.geom.TickPointAt(t.Value)}
	}
	return items, nil
}

// SideVector returns the displacement of length |offset| away from the
// axis at p, on the side selected by the vertical factor.
func (a *Axis) SideVector(offset float64, p geom.Point) geom.Vector {
	return a.geom.SideVectorAt(offset*a.cfg.VerticalFactor, p)
}

// SidePointAt moves p by offset away from the axis.
func (a *Axis) SidePointAt(p geom.Point, offset float64) geom.Point {
	return p.Add(a.SideVector(offset, p))
}

// TextAnchor returns the text alignment for a side vector.
func (a *Axis) TextAnchor(v geom.Vector) string {
	if ta, ok := a.geom.(TextAnchorer); ok {
		return ta.TextAnchorFor(v)
	}
	return DefaultTextAnchor(v)
}

// TickLineItems computes the main tick lines.
//
// Aligned lines start on their tick. Otherwise every line starts half a
// tick interval before its tick, and one trailing line half an interval
// after the last tick closes the final interval. The interval is the
// distance between the first two ticks, or 1 with fewer ticks.
func (a *Axis) TickLineItems(items []TickItem) []TickLineItem {
	tl := a.cfg.TickLine
	if tl == nil {
		return nil
	}

	segment := 1.0
	if len(items) >= 2 {
		segment = items[1].Value - items[0].Value
	}

	lines := make([]TickLineItem, 0, len(items)+1)
	for _, it := range items {
		value, start := it.Value, it.Point
		if !tl.AlignTick {
			value = it.Value - segment/2
			start = a.geom.TickPointAt(value)
		}
		lines = append(lines, TickLineItem{
			Start:     start,
			End:       a.SidePointAt(start, tl.Length),
			TickValue: value,
			ID:        "tickline-" + it.ID,
		})
	}

	if !tl.AlignTick && len(items) > 0 {
		last := items[len(items)-1]
		value := last.Value + segment/2
		start := a.geom.TickPointAt(value)
		lines = append(lines, TickLineItem{
			Start:     start,
			End:       a.SidePointAt(start, tl.Length),
			TickValue: value,
			ID:        "tickline-" + last.ID + "-end",
		})
	}
	return lines
}

// SubTickLineItems interpolates Count lines between every pair of adjacent
// tick lines. Values are interpolated and then resolved through the
// geometry so sub-ticks follow curved axes.
func (a *Axis) SubTickLineItems(lines []TickLineItem) []TickLineItem {
	st := a.cfg.SubTickLine
	if st == nil || len(lines) < 2 {
		return nil
	}

	subs := make([]TickLineItem, 0, (len(lines)-1)*st.Count)
	for i := 0; i < len(lines)-1; i++ {
		pre, next := lines[i], lines[i+1]
		for j := 0; j < st.Count; j++ {
			percent := float64(j+1) / float64(st.Count+1)
			value := (1-percent)*pre.TickValue + percent*next.TickValue
			start := a.geom.TickPointAt(value)
			subs = append(subs, TickLineItem{
				Start:     start,
				End:       a.SidePointAt(start, st.Length),
				TickValue: value,
				ID:        fmt.Sprintf("sub-%s-%d", pre.ID, j),
			})
		}
	}
	return subs
}

// LabelAttrs computes the text attributes of the label for items[index].
func (a *Axis) LabelAttrs(item TickItem, index int) scene.Attrs {
	l := a.cfg.Label
	point := a.SidePointAt(item.Point, l.Offset)
	vector := a.SideVector(l.Offset, point)

	text := item.Name
	if l.Formatter != nil {
		text = l.Formatter(item.Name, item, index)
	}

	attrs := scene.Attrs{
		X:         point.X,
		Y:         point.Y,
		Text:      text,
		TextAlign: a.TextAnchor(vector),
	}
	applyStyle(&attrs, l.Style)

	switch {
	case l.Rotate != nil:
		if *l.Rotate != 0 {
			m := geom.RotateAbout(point, *l.Rotate)
			attrs.Matrix = &m
		}
	case l.AutoRotate:
		if angle := uprightAngle(a.axisAngle(item.Point)); !geom.NumberEqual(angle, 0) {
			m := geom.RotateAbout(point, angle)
			attrs.Matrix = &m
		}
	}
	return attrs
}

// TitleAttrs computes the title text attributes.
func (a *Axis) TitleAttrs() scene.Attrs {
	t := a.cfg.Title
	point := a.geom.TickPointAt(t.Position.Percent())
	titlePoint := a.SidePointAt(point, t.Offset)

	attrs := scene.Attrs{
		X:    titlePoint.X,
		Y:    titlePoint.Y,
		Text: t.Text,
	}
	applyStyle(&attrs, t.Style)

	var angle float64
	switch {
	case t.Rotate != nil:
		angle = *t.Rotate
	case t.AutoRotate:
		angle = a.axisAngle(point)
	}
	if !geom.NumberEqual(geom.NormalizeAngle(angle), 0) {
		m := geom.RotateAbout(titlePoint, angle)
		attrs.Matrix = &m
	}
	return attrs
}

// axisAngle is the clockwise angle from the axis direction at p to the
// horizontal, reduced to [0, 2π).
func (a *Axis) axisAngle(p geom.Point) float64 {
	return geom.NormalizeAngle(a.geom.AxisVectorAt(p).AngleTo(horizontal, true))
}

// uprightAngle flips angles that would render text upside down.
func uprightAngle(angle float64) float64 {
	if angle > math.Pi/2 && angle < 3*math.Pi/2 {
		return geom.NormalizeAngle(angle - math.Pi)
	}
	return angle
}

func (a *Axis) elementID(local string) string {
	return a.id + "-" + local
}

func (a *Axis) drawLine(s scene.Surface) {
	attrs := scene.Attrs{Path: a.geom.LinePath()}
	applyStyle(&attrs, a.cfg.Line.Style)
	s.AddShape(scene.Shape{
		Kind:  scene.KindPath,
		ID:    a.elementID("line"),
		Name:  NameLine,
		Attrs: attrs,
	})
}

func (a *Axis) drawTitle(s scene.Surface) {
	s.AddShape(scene.Shape{
		Kind:  scene.KindText,
		ID:    a.elementID("title"),
		Name:  NameTitle,
		Attrs: a.TitleAttrs(),
	})
}

func (a *Axis) drawLabels(s scene.Surface, items []TickItem) {
	group := s.AddGroup(scene.GroupSpec{
		ID:   a.elementID("label-group"),
		Name: NameLabelGroup,
	})

	shown := a.VisibleLabels(items)
	for i, it := range items {
		if !shown[i] {
			continue
		}
		group.AddShape(scene.Shape{
			Kind:  scene.KindText,
			ID:    a.elementID("label-" + it.ID),
			Name:  NameLabel,
			Attrs: a.LabelAttrs(it, i),
		})
	}
}

// VisibleLabels reports which labels Render draws. Without AutoHide every
// label is drawn; with it a label overlapping an earlier drawn one is
// dropped. All entries are false when labels are disabled.
func (a *Axis) VisibleLabels(items []TickItem) []bool {
	shown := make([]bool, len(items))
	if a.cfg.Label == nil {
		return shown
	}
	var placed []box
	for i, it := range items {
		if a.cfg.Label.AutoHide {
			b := labelBox(a.LabelAttrs(it, i))
			if overlapsAny(b, placed) {
				continue
			}
			placed = append(placed, b)
		}
		shown[i] = true
	}
	return shown
}

func (a *Axis) drawTickLines(s scene.Surface, items []TickItem) {
	group := s.AddGroup(scene.GroupSpec{
		ID:   a.elementID("tickline-group"),
		Name: NameTickLineGroup,
	})

	lines := a.TickLineItems(items)
	for _, it := range lines {
		a.drawTick(group, it, a.cfg.TickLine.Style)
	}
	if a.cfg.SubTickLine != nil {
		for _, it := range a.SubTickLineItems(lines) {
			a.drawTick(group, it, a.cfg.SubTickLine.Style)
		}
	}
}

func (a *Axis) drawTick(s scene.Surface, it TickLineItem, style Style) {
	attrs := scene.Attrs{
		X1: it.Start.X,
		Y1: it.Start.Y,
		X2: it.End.X,
		Y2: it.End.Y,
	}
	applyStyle(&attrs, style)
	s.AddShape(scene.Shape{
		Kind:  scene.KindLine,
		ID:    a.elementID(it.ID),
		Name:  NameTickLine,
		Attrs: attrs,
	})
}

// applyStyle copies every set style field over the computed attributes.
func applyStyle(attrs *scene.Attrs, s Style) {
	if s.Stroke != "" {
		attrs.Stroke = s.Stroke
	}
	if s.Fill != "" {
		attrs.Fill = s.Fill
	}
	if s.LineWidth != 0 {
		attrs.LineWidth = s.LineWidth
	}
	if s.Opacity != 0 {
		attrs.Opacity = s.Opacity
	}
	if s.FontSize != 0 {
		attrs.FontSize = s.FontSize
	}
	if s.FontFamily != "" {
		attrs.FontFamily = s.FontFamily
	}
	if s.FontWeight != "" {
		attrs.FontWeight = s.FontWeight
	}
	if s.TextAlign != "" {
		attrs.TextAlign = s.TextAlign
	}
	if s.TextBaseline != "" {
		attrs.TextBaseline = s.TextBaseline
	}
}

type box struct {
	minX, minY, maxX, maxY float64
}

// labelBox estimates the unrotated extent of a middle-baseline label.
func labelBox(attrs scene.Attrs) box {
	size := attrs.FontSize
	if size == 0 {
		size = 12
	}
	w := float64(len([]rune(attrs.Text))) * size * charWidthRatio
	h := size * lineHeight

	minX := attrs.X - w/2
	switch attrs.TextAlign {
	case scene.AlignStart:
		minX = attrs.X
	case scene.AlignEnd:
		minX = attrs.X - w
	}
	return box{minX: minX, minY: attrs.Y - h/2, maxX: minX + w, maxY: attrs.Y + h/2}
}

func overlapsAny(b box, placed []box) bool {
	for _, p := range placed {
		if b.minX < p.maxX && p.minX < b.maxX && b.minY < p.maxY && p.minY < b.maxY {
			return true
		}
	}
	return false
}
