package geom

import (
	"math"
	"testing"
)

func TestPointVectorArithmetic(t *testing.T) {
	p := Pt(100, 50)
	q := p.Add(Vec(0, -10))
	if !q.Equal(Pt(100, 40)) {
		t.Errorf("Add = %v, want (100, 40)", q)
	}
	if v := q.Sub(p); v != Vec(0, -10) {
		t.Errorf("Sub = %v, want (0, -10)", v)
	}
	if d := Pt(0, 0).Distance(Pt(3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if m := Pt(0, 0).Lerp(Pt(10, 20), 0.25); !m.Equal(Pt(2.5, 5)) {
		t.Errorf("Lerp = %v, want (2.5, 5)", m)
	}
}

func TestVectorNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vector
		want Vector
	}{
		{"axis aligned", Vec(0, 5), Vec(0, 1)},
		{"diagonal", Vec(3, 4), Vec(0.6, 0.8)},
		{"zero", Vec(0, 0), Vec(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !NumberEqual(got.X, tt.want.X) || !NumberEqual(got.Y, tt.want.Y) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVectorPerp(t *testing.T) {
	v := Vec(1, 0)
	if p := v.Perp(); p != Vec(0, -1) {
		t.Errorf("Perp(%v) = %v, want (0, -1)", v, p)
	}
	if d := v.Dot(v.Perp()); d != 0 {
		t.Errorf("Perp should be orthogonal, dot = %v", d)
	}
}

func TestVectorAngleTo(t *testing.T) {
	horizontal := Vec(1, 0)
	tests := []struct {
		name      string
		v         Vector
		clockwise bool
		want      float64
	}{
		{"same direction clockwise", Vec(1, 0), true, 2 * math.Pi},
		{"same direction counter-clockwise", Vec(1, 0), false, 0},
		{"opposite", Vec(-1, 0), true, math.Pi},
		{"pointing down", Vec(0, 1), true, math.Pi / 2},
		{"pointing up", Vec(0, -1), true, 3 * math.Pi / 2},
		{"pointing down ccw", Vec(0, 1), false, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.AngleTo(horizontal, tt.clockwise)
			if !NumberEqual(got, tt.want) {
				t.Errorf("AngleTo(%v, [1,0], %v) = %v, want %v", tt.v, tt.clockwise, got, tt.want)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); !NumberEqual(got, tt.want) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDegreesRadians(t *testing.T) {
	if got := Radians(180); !NumberEqual(got, math.Pi) {
		t.Errorf("Radians(180) = %v", got)
	}
	if got := Degrees(-math.Pi / 2); !NumberEqual(got, -90) {
		t.Errorf("Degrees(-π/2) = %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("(1, 2) is finite")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("NaN point is not finite")
	}
	if Pt(0, math.Inf(-1)).IsFinite() {
		t.Error("-Inf point is not finite")
	}
}
