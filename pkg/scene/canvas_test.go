package scene

import "testing"

func TestCanvasRecordsInOrder(t *testing.T) {
	c := NewCanvas(200, 100)
	c.AddShape(Shape{Kind: KindPath, ID: "line", Name: "axis-line"})
	labels := c.AddGroup(GroupSpec{ID: "labels", Name: "axis-label-group"})
	labels.AddShape(Shape{Kind: KindText, ID: "label-a", Name: "axis-label", Attrs: Attrs{Text: "A"}})
	labels.AddShape(Shape{Kind: KindText, ID: "label-b", Name: "axis-label", Attrs: Attrs{Text: "B"}})

	if len(c.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(c.Children))
	}

	shapes := c.Shapes()
	var ids []string
	for _, s := range shapes {
		ids = append(ids, s.ID)
	}
	want := []string{"line", "label-a", "label-b"}
	if len(ids) != len(want) {
		t.Fatalf("Shapes() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Shapes()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestCanvasRegistry(t *testing.T) {
	c := NewCanvas(10, 10)
	g := c.AddGroup(GroupSpec{ID: "g"})
	g.AddShape(Shape{Kind: KindText, ID: "t", Attrs: Attrs{Text: "hello"}})

	s, ok := c.Shape("t")
	if !ok {
		t.Fatal("Shape(t) not registered")
	}
	if s.Attrs.Text != "hello" {
		t.Errorf("Text = %q, want hello", s.Attrs.Text)
	}

	if _, ok := c.Shape("g"); ok {
		t.Error("groups are not shapes")
	}
	if _, ok := c.Element("g"); !ok {
		t.Error("group should be registered as an element")
	}
}

func TestCanvasDuplicates(t *testing.T) {
	c := NewCanvas(10, 10)
	c.AddShape(Shape{ID: "x"})
	c.AddShape(Shape{ID: "y"})
	c.AddShape(Shape{ID: "x"})

	if err := c.Validate(); err == nil {
		t.Error("Validate() should report duplicate id x")
	}
	if d := c.Duplicates(); len(d) != 1 || d[0] != "x" {
		t.Errorf("Duplicates() = %v, want [x]", d)
	}
}

func TestWalkDepth(t *testing.T) {
	c := NewCanvas(10, 10)
	outer := c.AddGroup(GroupSpec{ID: "outer"})
	inner := outer.AddGroup(GroupSpec{ID: "inner"})
	inner.AddShape(Shape{ID: "leaf"})

	depths := map[string]int{}
	c.Walk(func(n Node, depth int) {
		switch v := n.(type) {
		case *Group:
			depths[v.ID] = depth
		case *Shape:
			depths[v.ID] = depth
		}
	})

	want := map[string]int{"outer": 1, "inner": 2, "leaf": 3}
	for id, d := range want {
		if depths[id] != d {
			t.Errorf("depth(%s) = %d, want %d", id, depths[id], d)
		}
	}
}
