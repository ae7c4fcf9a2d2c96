package document

import (
	"fmt"
	"strings"

	"github.com/matzehuels/guidekit/pkg/axis"
	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// Layer is one configuration layer. Every field is optional; a present
// section enables its element unless Hidden is set.
type Layer struct {
	VerticalFactor *float64            `toml:"vertical_factor" json:"vertical_factor,omitempty"`
	Line           *LineSection        `toml:"line" json:"line,omitempty"`
	TickLine       *TickLineSection    `toml:"tick_line" json:"tick_line,omitempty"`
	SubTickLine    *SubTickLineSection `toml:"sub_tick_line" json:"sub_tick_line,omitempty"`
	Label          *LabelSection       `toml:"label" json:"label,omitempty"`
	Title          *TitleSection       `toml:"title" json:"title,omitempty"`
}

// StyleSection mirrors axis.Style.
type StyleSection struct {
	Stroke       string  `toml:"stroke" json:"stroke,omitempty"`
	Fill         string  `toml:"fill" json:"fill,omitempty"`
	LineWidth    float64 `toml:"line_width" json:"line_width,omitempty"`
	Opacity      float64 `toml:"opacity" json:"opacity,omitempty"`
	FontSize     float64 `toml:"font_size" json:"font_size,omitempty"`
	FontFamily   string  `toml:"font_family" json:"font_family,omitempty"`
	FontWeight   string  `toml:"font_weight" json:"font_weight,omitempty"`
	TextAlign    string  `toml:"text_align" json:"text_align,omitempty"`
	TextBaseline string  `toml:"text_baseline" json:"text_baseline,omitempty"`
}

type LineSection struct {
	Hidden bool          `toml:"hidden" json:"hidden,omitempty"`
	Style  *StyleSection `toml:"style" json:"style,omitempty"`
}

type TickLineSection struct {
	Hidden    bool          `toml:"hidden" json:"hidden,omitempty"`
	Length    *float64      `toml:"length" json:"length,omitempty"`
	AlignTick *bool         `toml:"align_tick" json:"align_tick,omitempty"`
	Style     *StyleSection `toml:"style" json:"style,omitempty"`
}

type SubTickLineSection struct {
	Hidden bool          `toml:"hidden" json:"hidden,omitempty"`
	Count  *int          `toml:"count" json:"count,omitempty"`
	Length *float64      `toml:"length" json:"length,omitempty"`
	Style  *StyleSection `toml:"style" json:"style,omitempty"`
}

type LabelSection struct {
	Hidden bool     `toml:"hidden" json:"hidden,omitempty"`
	Offset *float64 `toml:"offset" json:"offset,omitempty"`
	// Rotate is in degrees.
	Rotate *float64 `toml:"rotate" json:"rotate,omitempty"`
	// Format is a printf pattern applied to the tick name, e.g. "%s°".
	Format     string        `toml:"format" json:"format,omitempty"`
	AutoRotate *bool         `toml:"auto_rotate" json:"auto_rotate,omitempty"`
	AutoHide   *bool         `toml:"auto_hide" json:"auto_hide,omitempty"`
	Style      *StyleSection `toml:"style" json:"style,omitempty"`
}

type TitleSection struct {
	Hidden   bool     `toml:"hidden" json:"hidden,omitempty"`
	Text     string   `toml:"text" json:"text,omitempty"`
	Position string   `toml:"position" json:"position,omitempty"`
	Offset   *float64 `toml:"offset" json:"offset,omitempty"`
	// Rotate is in degrees.
	Rotate     *float64      `toml:"rotate" json:"rotate,omitempty"`
	AutoRotate *bool         `toml:"auto_rotate" json:"auto_rotate,omitempty"`
	Style      *StyleSection `toml:"style" json:"style,omitempty"`
}

// Style converts the section to an axis style.
func (s *StyleSection) Style() axis.Style {
	if s == nil {
		return axis.Style{}
	}
	return axis.Style{
		Stroke:       s.Stroke,
		Fill:         s.Fill,
		LineWidth:    s.LineWidth,
		Opacity:      s.Opacity,
		FontSize:     s.FontSize,
		FontFamily:   s.FontFamily,
		FontWeight:   s.FontWeight,
		TextAlign:    s.TextAlign,
		TextBaseline: s.TextBaseline,
	}
}

// Attrs converts the section to scene attributes.
func (s *StyleSection) Attrs() scene.Attrs {
	st := s.Style()
	return scene.Attrs{
		Stroke:       st.Stroke,
		Fill:         st.Fill,
		LineWidth:    st.LineWidth,
		Opacity:      st.Opacity,
		FontSize:     st.FontSize,
		FontFamily:   st.FontFamily,
		FontWeight:   st.FontWeight,
		TextAlign:    st.TextAlign,
		TextBaseline: st.TextBaseline,
	}
}

// Options translates the layer into axis options, in section order.
func (l Layer) Options() ([]axis.Option, error) {
	var opts []axis.Option
	if l.VerticalFactor != nil {
		opts = append(opts, axis.WithVerticalFactor(*l.VerticalFactor))
	}

	if s := l.Line; s != nil {
		if s.Hidden {
			opts = append(opts, axis.WithoutLine())
		} else {
			opts = append(opts, axis.WithLineStyle(s.Style.Style()))
		}
	}

	if s := l.TickLine; s != nil {
		if s.Hidden {
			opts = append(opts, axis.WithoutTickLine())
		} else {
			opts = append(opts, axis.WithTickLineStyle(s.Style.Style()))
			if s.Length != nil {
				opts = append(opts, axis.WithTickLineLength(*s.Length))
			}
			if s.AlignTick != nil {
				opts = append(opts, axis.WithTickLineAlign(*s.AlignTick))
			}
		}
	}

	if s := l.SubTickLine; s != nil {
		if s.Hidden {
			opts = append(opts, axis.WithoutSubTickLine())
		} else {
			opts = append(opts, axis.WithSubTickLineStyle(s.Style.Style()))
			if s.Count != nil {
				opts = append(opts, axis.WithSubTickLineCount(*s.Count))
			}
			if s.Length != nil {
				opts = append(opts, axis.WithSubTickLineLength(*s.Length))
			}
		}
	}

	if s := l.Label; s != nil {
		labelOpts, err := s.options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, labelOpts...)
	}

	if s := l.Title; s != nil {
		titleOpts, err := s.options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, titleOpts...)
	}
	return opts, nil
}

func (s *LabelSection) options() ([]axis.Option, error) {
	if s.Hidden {
		return []axis.Option{axis.WithoutLabel()}, nil
	}

	opts := []axis.Option{axis.WithLabelStyle(s.Style.Style())}
	if s.Offset != nil {
		opts = append(opts, axis.WithLabelOffset(*s.Offset))
	}
	if s.Rotate != nil {
		opts = append(opts, axis.WithLabelRotate(geom.Radians(*s.Rotate)))
	}
	if s.Format != "" {
		f, err := printfFormatter(s.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, axis.WithLabelFormatter(f))
	}
	if s.AutoRotate != nil {
		opts = append(opts, axis.WithLabelAutoRotate(*s.AutoRotate))
	}
	if s.AutoHide != nil {
		opts = append(opts, axis.WithLabelAutoHide(*s.AutoHide))
	}
	return opts, nil
}

func (s *TitleSection) options() ([]axis.Option, error) {
	if s.Hidden {
		return []axis.Option{axis.WithoutTitle()}, nil
	}

	opts := []axis.Option{axis.WithTitleStyle(s.Style.Style())}
	if s.Text != "" {
		opts = append(opts, axis.WithTitleText(s.Text))
	}
	if s.Position != "" {
		opts = append(opts, axis.WithTitlePosition(axis.TitlePosition(s.Position)))
	}
	if s.Offset != nil {
		opts = append(opts, axis.WithTitleOffset(*s.Offset))
	}
	if s.Rotate != nil {
		opts = append(opts, axis.WithTitleRotate(geom.Radians(*s.Rotate)))
	}
	if s.AutoRotate != nil {
		opts = append(opts, axis.WithTitleAutoRotate(*s.AutoRotate))
	}
	return opts, nil
}

// printfFormatter formats tick names with a single %s, %v or %q verb.
// Flags, width and precision are allowed.
func printfFormatter(format string) (axis.Formatter, error) {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0.123456789", format[i]) >= 0 {
			i++
		}
		if i == len(format) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "label format %q ends inside a verb", format)
		}
		if strings.IndexByte("svq", format[i]) < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "label format %q: verb %%%c does not format text, use %%s, %%v or %%q", format, format[i])
		}
		verbs++
	}
	if verbs != 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "label format %q must contain exactly one verb", format)
	}
	return func(name string, _ axis.TickItem, _ int) string {
		return fmt.Sprintf(format, name)
	}, nil
}

// dropUntitled removes a title section that never received text, so a
// shared title style in the defaults does not produce empty titles.
func dropUntitled() axis.Option {
	return axis.WithConfig(func(c *axis.Config) {
		if c.Title != nil && c.Title.Text == "" {
			c.Title = nil
		}
	})
}
