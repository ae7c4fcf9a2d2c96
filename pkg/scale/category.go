package scale

import (
	"math"

	"github.com/matzehuels/guidekit/pkg/errors"
)

// Category maps discrete values by their index: index/(n-1), or 0.5 for
// a single value.
type Category struct {
	Name   string
	Domain []string
}

// NewCategory creates a category scale.
func NewCategory(field string, values ...string) (*Category, error) {
	c := &Category{Name: field, Domain: values}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects empty domains.
func (c *Category) Validate() error {
	if len(c.Domain) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s: no values", describe(c))
	}
	return nil
}

func (c *Category) Field() string    { return c.Name }
func (c *Category) IsCategory() bool { return true }
func (c *Category) Min() float64     { return 0 }
func (c *Category) Max() float64     { return float64(len(c.Domain) - 1) }
func (c *Category) Values() []string { return c.Domain }

// Scale accepts either a domain value or a numeric index. Fractional
// indexes are allowed and interpolate between neighbors.
func (c *Category) Scale(v any) (float64, error) {
	if s, ok := v.(string); ok {
		for i, d := range c.Domain {
			if d == s {
				return c.index(float64(i)), nil
			}
		}
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s: unknown value %q", describe(c), s)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", describe(c))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s: index must be finite, got %v", describe(c), f)
	}
	return c.index(f), nil
}

func (c *Category) index(i float64) float64 {
	if len(c.Domain) <= 1 {
		return 0.5
	}
	return i / float64(len(c.Domain)-1)
}

// Ticks returns one tick per value.
func (c *Category) Ticks() []Tick {
	ticks := make([]Tick, len(c.Domain))
	for i, d := range c.Domain {
		ticks[i] = Tick{Text: d, Value: c.index(float64(i))}
	}
	return ticks
}
