package guide

import (
	"testing"

	"github.com/matzehuels/guidekit/pkg/errors"
	"github.com/matzehuels/guidekit/pkg/geom"
	"github.com/matzehuels/guidekit/pkg/scale"
	"github.com/matzehuels/guidekit/pkg/scene"
)

// plot spans x 50..250 and y 250..50 (y grows upward).
var plot = Rect{From: geom.Pt(50, 250), To: geom.Pt(250, 50)}

func testScales() (x, y []scale.Scale) {
	day := &scale.Category{Name: "day", Domain: []string{"Mon", "Tue", "Wed", "Thu", "Fri"}}
	temp := &scale.Linear{Name: "temp", From: 0, To: 40}
	return []scale.Scale{day}, []scale.Scale{temp}
}

func TestParsePoint(t *testing.T) {
	xs, ys := testScales()

	tests := []struct {
		name string
		pos  Position
		want geom.Point
	}{
		{"PercentCenter", Percent{"50%", "50%"}, geom.Pt(150, 150)},
		{"PercentTopLeft", Percent{"0%", "0%"}, geom.Pt(50, 50)},
		{"PercentSpaces", Percent{" 25 % ", "100%"}, geom.Pt(100, 250)},
		{"Values", Values{"Wed", 20}, geom.Pt(150, 150)},
		{"StartEnd", Values{KeywordStart, KeywordEnd}, geom.Pt(50, 50)},
		{"MinMax", Values{KeywordMax, KeywordMin}, geom.Pt(250, 250)},
		{"Median", Values{KeywordMedian, KeywordMedian}, geom.Pt(150, 150)},
		{"Fields", Fields{"day": "Tue", "temp": 40}, geom.Pt(100, 50)},
		{
			"Func",
			Func(func(x, y []scale.Scale) Position {
				return Values{x[0].Values()[0], y[0].Max()}
			}),
			geom.Pt(50, 50),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(plot, xs, ys, tt.pos)
			if err != nil {
				t.Fatalf("ParsePoint() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePointErrors(t *testing.T) {
	xs, ys := testScales()

	tests := []struct {
		name   string
		xs, ys []scale.Scale
		pos    Position
	}{
		{"Nil", xs, ys, nil},
		{"BadPercent", xs, ys, Percent{"half", "50%"}},
		{"UnknownField", xs, ys, Fields{"wind": 3}},
		{"OneAxisOnly", xs, ys, Fields{"day": "Mon"}},
		{"UnknownCategory", xs, ys, Values{"Sun", 0}},
		{"NoScale", nil, ys, Values{"Mon", 0}},
		{"NestedFunc", xs, ys, Func(func(_, _ []scale.Scale) Position {
			return Func(func(_, _ []scale.Scale) Position { return Values{0, 0} })
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePoint(plot, tt.xs, tt.ys, tt.pos)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ParsePoint() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestKeywordsWithoutScale(t *testing.T) {
	got, err := ParsePoint(plot, nil, nil, Values{KeywordStart, KeywordEnd})
	if err != nil {
		t.Fatalf("ParsePoint() error = %v", err)
	}
	if !got.Equal(geom.Pt(50, 50)) {
		t.Errorf("ParsePoint() = %v, want (50, 50)", got)
	}
}

func TestTextRender(t *testing.T) {
	xs, ys := testScales()
	c := scene.NewCanvas(300, 300)
	txt := Text{
		ID:       "note",
		Position: Values{"Wed", 20},
		Content:  "peak",
		OffsetX:  4,
		OffsetY:  -4,
		Attrs:    scene.Attrs{Fill: "#333", FontSize: 10},
	}
	if err := txt.Render(c, plot, xs, ys); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	s, ok := c.Shape("note")
	if !ok {
		t.Fatal("text guide not rendered")
	}
	if s.Name != NameText || s.Attrs.Text != "peak" || s.Attrs.Fill != "#333" {
		t.Errorf("shape = %+v", s)
	}
	if !geom.Pt(s.Attrs.X, s.Attrs.Y).Equal(geom.Pt(154, 146)) {
		t.Errorf("position = (%v, %v), want (154, 146)", s.Attrs.X, s.Attrs.Y)
	}
	if s.Attrs.TextAlign != scene.AlignStart {
		t.Errorf("TextAlign = %q, want start", s.Attrs.TextAlign)
	}

	bad := Text{ID: "bad", Position: Percent{"x", "y"}}
	if err := bad.Render(c, plot, xs, ys); err == nil {
		t.Error("Render() with a bad position should fail")
	}
	if _, ok := c.Shape("bad"); ok {
		t.Error("failed guide was drawn")
	}
}
