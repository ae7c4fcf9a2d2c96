package geom

import "math"

// Point is a screen-space coordinate.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add displaces the point by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Equal reports whether both coordinates match within Epsilon.
func (p Point) Equal(q Point) bool {
	return NumberEqual(p.X, q.X) && NumberEqual(p.Y, q.Y)
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Vector is a 2D direction or displacement, the [dx, dy] tuple.
type Vector struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
// It is positive when w lies clockwise of v in screen space.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - w.X*v.Y
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Perp returns v turned a quarter turn counter-clockwise on screen: [y, -x].
func (v Vector) Perp() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// IsZero reports whether both components are within Epsilon of zero.
func (v Vector) IsZero() bool {
	return NumberEqual(v.X, 0) && NumberEqual(v.Y, 0)
}

// Angle returns the unsigned angle between v and w in [0, π].
// It is 0 if either vector has zero length.
func (v Vector) Angle(w Vector) float64 {
	mag := v.Length() * w.Length()
	if mag == 0 {
		return 0
	}
	cos := v.Dot(w) / mag
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// AngleTo returns the angle in [0, 2π] swept from v to w.
//
// With clockwise set, the angle is measured clockwise from v to w; otherwise
// counter-clockwise. Parallel vectors with the same direction yield 2π when
// clockwise is set, matching the convention of the chart renderers this
// package serves; callers reduce the result modulo 2π when needed.
func (v Vector) AngleTo(w Vector, clockwise bool) float64 {
	ang := v.Angle(w)
	largeThanPi := v.Cross(w) >= 0
	if clockwise {
		if largeThanPi {
			return 2*math.Pi - ang
		}
		return ang
	}
	if largeThanPi {
		return ang
	}
	return 2*math.Pi - ang
}
