package scene

import (
	"testing"

	"github.com/matzehuels/guidekit/pkg/geom"
)

func TestPathString(t *testing.T) {
	p := Path{}.
		MoveTo(geom.Pt(100, 50)).
		ArcTo(50, 50, 0, true, true, geom.Pt(100, 150)).
		LineTo(geom.Pt(0.5, 1.25)).
		Close()

	want := "M100 50 A50 50 0 1 1 100 150 L0.5 1.25 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathPoints(t *testing.T) {
	p := Path{}.
		MoveTo(geom.Pt(1, 2)).
		LineTo(geom.Pt(3, 4)).
		ArcTo(5, 5, 0, false, true, geom.Pt(6, 7)).
		Close()

	pts := p.Points()
	want := []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 6, Y: 7}, {X: 1, Y: 2}}
	if len(pts) != len(want) {
		t.Fatalf("Points() len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, pts[i], want[i])
		}
	}

	if !p.Closed() {
		t.Error("Closed() = false, want true")
	}
	first, _ := p.First()
	last, _ := p.Last()
	if first != last {
		t.Errorf("closed path should end where it starts: %v vs %v", first, last)
	}
}

func TestEmptyPath(t *testing.T) {
	var p Path
	if _, ok := p.First(); ok {
		t.Error("First() on empty path should fail")
	}
	if p.Closed() {
		t.Error("empty path is not closed")
	}
	if p.String() != "" {
		t.Errorf("String() = %q, want empty", p.String())
	}
}

func TestCommandText(t *testing.T) {
	text, err := ArcTo.MarshalText()
	if err != nil || string(text) != "A" {
		t.Errorf("ArcTo.MarshalText() = %q, %v", text, err)
	}
	if _, err := Command('Q').MarshalText(); err == nil {
		t.Error("unknown command should not encode")
	}

	var c Command
	if err := c.UnmarshalText([]byte("Z")); err != nil || c != ClosePath {
		t.Errorf("UnmarshalText(Z) = %q, %v", byte(c), err)
	}
	for _, bad := range []string{"", "Q", "ML"} {
		if err := c.UnmarshalText([]byte(bad)); err == nil {
			t.Errorf("UnmarshalText(%q) should fail", bad)
		}
	}
}
