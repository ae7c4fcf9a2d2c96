// Package scale maps data values to the normalized [0, 1] range used by
// axes and guides.
//
// Two kinds are provided. [Linear] maps a numeric domain proportionally and
// [Category] maps discrete values by index. Both generate ticks that can be
// fed to an axis directly.
package scale

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/guidekit/pkg/errors"
)

// Tick is a labeled position produced by a scale.
type Tick struct {
	Text  string
	Value float64
}

// Scale maps raw values of one field to [0, 1].
type Scale interface {
	// Field is the data field the scale belongs to.
	Field() string
	// Scale normalizes a raw value.
	Scale(v any) (float64, error)
	IsCategory() bool
	Min() float64
	Max() float64
	// Values lists the domain of a category scale. Linear scales return nil.
	Values() []string
	Ticks() []Tick
}

// First returns the first non-nil scale.
func First(scales []Scale) Scale {
	for _, s := range scales {
		if s != nil {
			return s
		}
	}
	return nil
}

// Lookup finds the scale of a field.
func Lookup(scales []Scale, field string) Scale {
	for _, s := range scales {
		if s != nil && s.Field() == field {
			return s
		}
	}
	return nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, errors.New(errors.ErrCodeInvalidInput, "%q is not a number", x)
		}
		return f, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidInput, "unsupported value %v (%T)", v, v)
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func describe(s Scale) string {
	return fmt.Sprintf("scale %q", s.Field())
}
