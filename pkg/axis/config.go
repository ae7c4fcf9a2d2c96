package axis

import (
	"github.com/matzehuels/guidekit/pkg/errors"
)

// Theme colors and fonts of the base defaults.
const (
	LineColor  = "#BFBFBF"
	TextColor  = "#545454"
	FontFamily = `-apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`
)

// TitlePosition places the title along the axis.
type TitlePosition string

// Title positions.
const (
	TitleStart  TitlePosition = "start"
	TitleCenter TitlePosition = "center"
	TitleEnd    TitlePosition = "end"
)

// Percent returns the axis fraction of the position.
// Unknown positions fall back to the center.
func (p TitlePosition) Percent() float64 {
	switch p {
	case TitleStart:
		return 0
	case TitleEnd:
		return 1
	default:
		return 0.5
	}
}

// Formatter turns a tick into label text.
type Formatter func(name string, item TickItem, index int) string

// Style carries drawing attributes. Zero values mean "unset" and are
// skipped when a style is applied or merged.
type Style struct {
	Stroke       string
	Fill         string
	LineWidth    float64
	Opacity      float64
	FontSize     float64
	FontFamily   string
	FontWeight   string
	TextAlign    string
	TextBaseline string
}

// Merge returns s with every set field of o copied over it.
func (s Style) Merge(o Style) Style {
	if o.Stroke != "" {
		s.Stroke = o.Stroke
	}
	if o.Fill != "" {
		s.Fill = o.Fill
	}
	if o.LineWidth != 0 {
		s.LineWidth = o.LineWidth
	}
	if o.Opacity != 0 {
		s.Opacity = o.Opacity
	}
	if o.FontSize != 0 {
		s.FontSize = o.FontSize
	}
	if o.FontFamily != "" {
		s.FontFamily = o.FontFamily
	}
	if o.FontWeight != "" {
		s.FontWeight = o.FontWeight
	}
	if o.TextAlign != "" {
		s.TextAlign = o.TextAlign
	}
	if o.TextBaseline != "" {
		s.TextBaseline = o.TextBaseline
	}
	return s
}

// LineConfig styles the axis line.
type LineConfig struct {
	Style Style
}

// TickLineConfig controls the main tick lines.
type TickLineConfig struct {
	Style Style
	// AlignTick centers tick lines on their ticks. When false the lines
	// straddle the ticks, half a tick interval earlier.
	AlignTick bool
	Length    float64
}

// SubTickLineConfig controls the unlabeled lines between tick lines.
type SubTickLineConfig struct {
	Style  Style
	Count  int
	Length float64
}

// LabelConfig controls tick labels.
type LabelConfig struct {
	Style  Style
	Offset float64
	// Rotate is an explicit rotation in radians about the label anchor.
	Rotate    *float64
	Formatter Formatter
	// AutoRotate turns labels along the axis when Rotate is unset.
	AutoRotate bool
	// AutoHide drops labels that would overlap an earlier label.
	AutoHide bool
}

// TitleConfig controls the axis title.
type TitleConfig struct {
	Style    Style
	Position TitlePosition
	Offset   float64
	// Rotate is an explicit rotation in radians. It wins over AutoRotate.
	Rotate     *float64
	AutoRotate bool
	Text       string
}

// Config is the complete, per-render configuration of an axis.
type Config struct {
	Line        *LineConfig
	TickLine    *TickLineConfig
	SubTickLine *SubTickLineConfig
	Label       *LabelConfig
	Title       *TitleConfig
	// VerticalFactor is 1 or -1 and flips the side labels, ticks and the
	// title are drawn on.
	VerticalFactor float64
}

// DefaultConfig returns the base defaults. Sub-tick lines and the title
// are disabled; enabling them starts from DefaultSubTickLineConfig and
// DefaultTitleConfig.
func DefaultConfig() Config {
	return Config{
		Line: &LineConfig{
			Style: Style{LineWidth: 1, Stroke: LineColor},
		},
		TickLine: &TickLineConfig{
			Style:     Style{LineWidth: 1, Stroke: LineColor},
			AlignTick: true,
			Length:    5,
		},
		Label: &LabelConfig{
			Style: Style{
				FontSize:     12,
				Fill:         TextColor,
				TextBaseline: "middle",
				FontFamily:   FontFamily,
			},
			Offset: 10,
		},
		VerticalFactor: 1,
	}
}

// DefaultSubTickLineConfig splits every tick interval into five parts.
func DefaultSubTickLineConfig() SubTickLineConfig {
	return SubTickLineConfig{
		Style:  Style{LineWidth: 1, Stroke: LineColor},
		Count:  4,
		Length: 2,
	}
}

// DefaultTitleConfig centers the title 48px away from the axis.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		Style: Style{
			FontSize:     12,
			Fill:         TextColor,
			TextBaseline: "middle",
			FontFamily:   FontFamily,
			TextAlign:    "center",
		},
		Position:   TitleCenter,
		Offset:     48,
		AutoRotate: true,
	}
}

// Clone returns a deep copy so sections can be mutated independently.
func (c Config) Clone() Config {
	out := c
	if c.Line != nil {
		v := *c.Line
		out.Line = &v
	}
	if c.TickLine != nil {
		v := *c.TickLine
		out.TickLine = &v
	}
	if c.SubTickLine != nil {
		v := *c.SubTickLine
		out.SubTickLine = &v
	}
	if c.Label != nil {
		v := *c.Label
		if v.Rotate != nil {
			r := *v.Rotate
			v.Rotate = &r
		}
		out.Label = &v
	}
	if c.Title != nil {
		v := *c.Title
		if v.Rotate != nil {
			r := *v.Rotate
			v.Rotate = &r
		}
		out.Title = &v
	}
	return out
}

// Validate checks the invariants of the configuration.
func (c Config) Validate() error {
	if c.VerticalFactor != 1 && c.VerticalFactor != -1 {
		return errors.New(errors.ErrCodeInvalidConfig, "verticalFactor must be 1 or -1, got %v", c.VerticalFactor)
	}
	if tl := c.TickLine; tl != nil {
		if err := finite("tickLine.length", tl.Length); err != nil {
			return err
		}
	}
	if st := c.SubTickLine; st != nil {
		if st.Count < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "subTickLine.count must be >= 0, got %d", st.Count)
		}
		if err := finite("subTickLine.length", st.Length); err != nil {
			return err
		}
	}
	if l := c.Label; l != nil {
		if err := finite("label.offset", l.Offset); err != nil {
			return err
		}
		if l.Rotate != nil {
			if err := finite("label.rotate", *l.Rotate); err != nil {
				return err
			}
		}
	}
	if t := c.Title; t != nil {
		switch t.Position {
		case TitleStart, TitleCenter, TitleEnd:
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "title.position must be start, center or end, got %q", t.Position)
		}
		if err := finite("title.offset", t.Offset); err != nil {
			return err
		}
		if t.Rotate != nil {
			if err := finite("title.rotate", *t.Rotate); err != nil {
				return err
			}
		}
	}
	return nil
}

func finite(name string, v float64) error {
	return errors.ValidateFinite(errors.ErrCodeInvalidConfig, name, v)
}
