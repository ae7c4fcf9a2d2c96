package scale

import (
	"math"

	"github.com/matzehuels/guidekit/pkg/errors"
)

// DefaultTickCount is used when a Linear scale has no TickCount.
const DefaultTickCount = 5

// Linear maps [Min, Max] proportionally onto [0, 1].
type Linear struct {
	Name      string
	From      float64
	To        float64
	TickCount int
}

// NewLinear creates a linear scale and checks its domain.
func NewLinear(field string, min, max float64) (*Linear, error) {
	l := &Linear{Name: field, From: min, To: max}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate rejects empty and non-finite domains.
func (l *Linear) Validate() error {
	for _, v := range []float64{l.From, l.To} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "%s: domain must be finite, got [%v, %v]", describe(l), l.From, l.To)
		}
	}
	if l.From == l.To {
		return errors.New(errors.ErrCodeInvalidInput, "%s: empty domain [%v, %v]", describe(l), l.From, l.To)
	}
	if l.TickCount < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s: tick count must be >= 0, got %d", describe(l), l.TickCount)
	}
	return nil
}

func (l *Linear) Field() string    { return l.Name }
func (l *Linear) IsCategory() bool { return false }
func (l *Linear) Min() float64     { return l.From }
func (l *Linear) Max() float64     { return l.To }
func (l *Linear) Values() []string { return nil }

// Scale maps v to (v-min)/(max-min). Values outside the domain map
// outside [0, 1].
func (l *Linear) Scale(v any) (float64, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", describe(l))
	}
	return (f - l.From) / (l.To - l.From), nil
}

// Ticks spreads TickCount ticks evenly over the domain, both ends included.
func (l *Linear) Ticks() []Tick {
	n := l.TickCount
	if n == 0 {
		n = DefaultTickCount
	}
	if n == 1 {
		return []Tick{{Text: formatValue(l.From), Value: 0}}
	}

	ticks := make([]Tick, n)
	step := (l.To - l.From) / float64(n-1)
	for i := range ticks {
		v := l.From + step*float64(i)
		ticks[i] = Tick{Text: formatValue(v), Value: float64(i) / float64(n-1)}
	}
	return ticks
}
