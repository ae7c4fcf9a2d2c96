package geom

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Rotate creates a rotation matrix (angle in radians, clockwise on screen).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// RotateAbout rotates by angle radians around p.
func RotateAbout(p Point, angle float64) Matrix {
	return Translate(p.X, p.Y).Multiply(Rotate(angle)).Multiply(Translate(-p.X, -p.Y))
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return NumberEqual(m.A, 1) && NumberEqual(m.B, 0) && NumberEqual(m.C, 0) &&
		NumberEqual(m.D, 0) && NumberEqual(m.E, 1) && NumberEqual(m.F, 0)
}

// SVG formats the matrix as an SVG transform attribute value.
func (m Matrix) SVG() string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		FormatFloat(m.A), FormatFloat(m.D), FormatFloat(m.B),
		FormatFloat(m.E), FormatFloat(m.C), FormatFloat(m.F))
}

// FormatFloat prints v with at most three decimals and no trailing zeros.
func FormatFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	s = trimDot(s)
	if s == "-0" {
		return "0"
	}
	return s
}

func trimDot(s string) string {
	if s[len(s)-1] == '.' {
		return s[:len(s)-1]
	}
	return s
}
