package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scene"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	header     bool
	fontFamily string
	ids        bool
}

// WithXMLHeader prepends an XML declaration, for standalone .svg files.
func WithXMLHeader() SVGOption { return func(r *svgRenderer) { r.header = true } }

// WithDefaultFont sets the font family of text without one.
func WithDefaultFont(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithoutIDs omits id attributes.
func WithoutIDs() SVGOption { return func(r *svgRenderer) { r.ids = false } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{ids: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG writes the canvas as an SVG 1.1 document.
func RenderSVG(c *scene.Canvas, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	if r.header {
		buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(c.Width), num(c.Height), num(c.Width), num(c.Height))
	if c.Background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(c.Background))
	}

	r.renderChildren(&buf, c.Children, 1)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderChildren(buf *bytes.Buffer, nodes []scene.Node, depth int) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *scene.Group:
			r.renderGroup(buf, v, depth)
		case *scene.Shape:
			r.renderShape(buf, v, depth)
		}
	}
}

func (r *svgRenderer) renderGroup(buf *bytes.Buffer, g *scene.Group, depth int) {
	indent(buf, depth)
	buf.WriteString("<g")
	r.writeIdentity(buf, g.ID, g.Name)
	if len(g.Children) == 0 {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">\n")
	r.renderChildren(buf, g.Children, depth+1)
	indent(buf, depth)
	buf.WriteString("</g>\n")
}

func (r *svgRenderer) renderShape(buf *bytes.Buffer, s *scene.Shape, depth int) {
	a := s.Attrs
	indent(buf, depth)

	switch s.Kind {
	case scene.KindPath:
		buf.WriteString("<path")
		r.writeIdentity(buf, s.ID, s.Name)
		attr(buf, "d", a.Path.String())
		fill := a.Fill
		if fill == "" {
			fill = "none"
		}
		attr(buf, "fill", fill)
		writeStroke(buf, a)
		writeCommon(buf, a)
		buf.WriteString("/>\n")

	case scene.KindLine:
		buf.WriteString("<line")
		r.writeIdentity(buf, s.ID, s.Name)
		attr(buf, "x1", num(a.X1))
		attr(buf, "y1", num(a.Y1))
		attr(buf, "x2", num(a.X2))
		attr(buf, "y2", num(a.Y2))
		writeStroke(buf, a)
		writeCommon(buf, a)
		buf.WriteString("/>\n")

	case scene.KindText:
		buf.WriteString("<text")
		r.writeIdentity(buf, s.ID, s.Name)
		attr(buf, "x", num(a.X))
		attr(buf, "y", num(a.Y))
		attr(buf, "text-anchor", textAnchor(a.TextAlign))
		if b := dominantBaseline(a.TextBaseline); b != "" {
			attr(buf, "dominant-baseline", b)
		}
		if a.FontSize != 0 {
			attr(buf, "font-size", num(a.FontSize))
		}
		family := a.FontFamily
		if family == "" {
			family = r.fontFamily
		}
		if family != "" {
			attr(buf, "font-family", family)
		}
		if a.FontWeight != "" {
			attr(buf, "font-weight", a.FontWeight)
		}
		if a.Fill != "" {
			attr(buf, "fill", a.Fill)
		}
		writeCommon(buf, a)
		buf.WriteString(">")
		buf.WriteString(escapeXML(a.Text))
		buf.WriteString("</text>\n")

	default:
		fmt.Fprintf(buf, "<!-- unsupported shape kind %s -->\n", escapeXML(string(s.Kind)))
	}
}

func (r *svgRenderer) writeIdentity(buf *bytes.Buffer, id, name string) {
	if r.ids && id != "" {
		attr(buf, "id", id)
	}
	if name != "" {
		attr(buf, "class", name)
	}
}

func writeStroke(buf *bytes.Buffer, a scene.Attrs) {
	if a.Stroke != "" {
		attr(buf, "stroke", a.Stroke)
	}
	if a.LineWidth != 0 {
		attr(buf, "stroke-width", num(a.LineWidth))
	}
}

func writeCommon(buf *bytes.Buffer, a scene.Attrs) {
	if a.Opacity != 0 && a.Opacity != 1 {
		attr(buf, "opacity", num(a.Opacity))
	}
	if a.Matrix != nil && !a.Matrix.IsIdentity() {
		attr(buf, "transform", a.Matrix.SVG())
	}
}

// textAnchor maps canvas alignment onto SVG text-anchor.
func textAnchor(align string) string {
	switch align {
	case scene.AlignCenter, "middle":
		return "middle"
	case scene.AlignEnd, "right":
		return "end"
	default:
		return "start"
	}
}

// dominantBaseline maps canvas baselines onto SVG. Alphabetic is the SVG
// default and is left out.
func dominantBaseline(b string) string {
	switch b {
	case "middle":
		return "middle"
	case "top", "hanging":
		return "hanging"
	case "bottom":
		return "text-after-edge"
	default:
		return ""
	}
}

func attr(buf *bytes.Buffer, name, value string) {
	fmt.Fprintf(buf, ` %s="%s"`, name, escapeXML(value))
}

func indent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
}

func num(v float64) string {
	return geom.FormatFloat(v)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
