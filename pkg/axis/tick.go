package axis

import (
	"github.com/matzehuels/guidekit/pkg/geom"
)

// Tick is a labeled position along an axis.
type Tick struct {
	// Value is the normalized position in [0, 1]. Adjacent ticks must be
	// non-decreasing for sub-tick interpolation to make sense.
	Value float64
	// Name is the display label.
	Name string
	// ID is the stable identity of the tick. Empty means Name.
	ID string
}

// TickItem is a tick resolved against a geometry.
type TickItem struct {
	Tick
	Point geom.Point
}

// TickLineItem is one tick or sub-tick line.
type TickLineItem struct {
	Start     geom.Point
	End       geom.Point
	TickValue float64
	ID        string
}
