package axis

// Option is one configuration layer. Layers run in order on top of
// DefaultConfig when an Axis is created.
type Option func(*Config)

// WithConfig applies an arbitrary mutation.
func WithConfig(fn func(*Config)) Option {
	return Option(fn)
}

// WithVerticalFactor selects the side of the axis (1 or -1).
func WithVerticalFactor(f float64) Option {
	return func(c *Config) { c.VerticalFactor = f }
}

// WithLineStyle enables the axis line and merges s into its style.
func WithLineStyle(s Style) Option {
	return func(c *Config) {
		if c.Line == nil {
			c.Line = &LineConfig{Style: DefaultConfig().Line.Style}
		}
		c.Line.Style = c.Line.Style.Merge(s)
	}
}

// WithoutLine disables the axis line.
func WithoutLine() Option {
	return func(c *Config) { c.Line = nil }
}

// WithTickLine enables tick lines with the given length and alignment.
func WithTickLine(length float64, alignTick bool) Option {
	return func(c *Config) {
		tl := ensureTickLine(c)
		tl.Length = length
		tl.AlignTick = alignTick
	}
}

// WithTickLineLength sets the tick line length.
func WithTickLineLength(length float64) Option {
	return func(c *Config) { ensureTickLine(c).Length = length }
}

// WithTickLineAlign selects whether tick lines sit on their ticks.
func WithTickLineAlign(alignTick bool) Option {
	return func(c *Config) { ensureTickLine(c).AlignTick = alignTick }
}

// WithTickLineStyle merges s into the tick line style.
func WithTickLineStyle(s Style) Option {
	return func(c *Config) {
		tl := ensureTickLine(c)
		tl.Style = tl.Style.Merge(s)
	}
}

// WithoutTickLine disables tick lines and, with them, sub-tick lines.
func WithoutTickLine() Option {
	return func(c *Config) { c.TickLine = nil }
}

// WithSubTickLine enables count sub-tick lines of the given length per
// tick interval.
func WithSubTickLine(count int, length float64) Option {
	return func(c *Config) {
		st := ensureSubTickLine(c)
		st.Count = count
		st.Length = length
	}
}

// WithSubTickLineCount sets the number of sub-tick lines per interval.
func WithSubTickLineCount(count int) Option {
	return func(c *Config) { ensureSubTickLine(c).Count = count }
}

// WithSubTickLineLength sets the sub-tick line length.
func WithSubTickLineLength(length float64) Option {
	return func(c *Config) { ensureSubTickLine(c).Length = length }
}

// WithSubTickLineStyle merges s into the sub-tick line style.
func WithSubTickLineStyle(s Style) Option {
	return func(c *Config) {
		st := ensureSubTickLine(c)
		st.Style = st.Style.Merge(s)
	}
}

// WithoutSubTickLine disables sub-tick lines.
func WithoutSubTickLine() Option {
	return func(c *Config) { c.SubTickLine = nil }
}

// WithLabelOffset sets the distance between ticks and labels.
func WithLabelOffset(offset float64) Option {
	return func(c *Config) { ensureLabel(c).Offset = offset }
}

// WithLabelStyle merges s into the label style.
func WithLabelStyle(s Style) Option {
	return func(c *Config) {
		l := ensureLabel(c)
		l.Style = l.Style.Merge(s)
	}
}

// WithLabelRotate rotates every label by angle radians.
func WithLabelRotate(angle float64) Option {
	return func(c *Config) { ensureLabel(c).Rotate = &angle }
}

// WithLabelFormatter sets the label text formatter.
func WithLabelFormatter(f Formatter) Option {
	return func(c *Config) { ensureLabel(c).Formatter = f }
}

// WithLabelAutoRotate turns labels along the axis.
func WithLabelAutoRotate(on bool) Option {
	return func(c *Config) { ensureLabel(c).AutoRotate = on }
}

// WithLabelAutoHide drops overlapping labels.
func WithLabelAutoHide(on bool) Option {
	return func(c *Config) { ensureLabel(c).AutoHide = on }
}

// WithoutLabel disables labels.
func WithoutLabel() Option {
	return func(c *Config) { c.Label = nil }
}

// WithTitle enables the title.
func WithTitle(text string, pos TitlePosition) Option {
	return func(c *Config) {
		t := ensureTitle(c)
		t.Text = text
		t.Position = pos
	}
}

// WithTitleText enables the title and sets its text.
func WithTitleText(text string) Option {
	return func(c *Config) { ensureTitle(c).Text = text }
}

// WithTitlePosition enables the title and places it along the axis.
func WithTitlePosition(pos TitlePosition) Option {
	return func(c *Config) { ensureTitle(c).Position = pos }
}

// WithTitleOffset sets the distance between axis and title.
func WithTitleOffset(offset float64) Option {
	return func(c *Config) { ensureTitle(c).Offset = offset }
}

// WithTitleRotate rotates the title by angle radians. It wins over auto-rotation.
func WithTitleRotate(angle float64) Option {
	return func(c *Config) { ensureTitle(c).Rotate = &angle }
}

// WithTitleAutoRotate toggles following the axis direction.
func WithTitleAutoRotate(on bool) Option {
	return func(c *Config) { ensureTitle(c).AutoRotate = on }
}

// WithTitleStyle merges s into the title style.
func WithTitleStyle(s Style) Option {
	return func(c *Config) {
		t := ensureTitle(c)
		t.Style = t.Style.Merge(s)
	}
}

// WithoutTitle disables the title.
func WithoutTitle() Option {
	return func(c *Config) { c.Title = nil }
}

func ensureTickLine(c *Config) *TickLineConfig {
	if c.TickLine == nil {
		tl := *DefaultConfig().TickLine
		c.TickLine = &tl
	}
	return c.TickLine
}

func ensureSubTickLine(c *Config) *SubTickLineConfig {
	if c.SubTickLine == nil {
		st := DefaultSubTickLineConfig()
		c.SubTickLine = &st
	}
	return c.SubTickLine
}

func ensureLabel(c *Config) *LabelConfig {
	if c.Label == nil {
		l := *DefaultConfig().Label
		c.Label = &l
	}
	return c.Label
}

func ensureTitle(c *Config) *TitleConfig {
	if c.Title == nil {
		t := DefaultTitleConfig()
		c.Title = &t
	}
	return c.Title
}
