package fabric

import (
	"math"
	"testing"
)

// --- Constructors ---

func TestObjectDefaults(t *testing.T) {
	o := NewShape("box", 40, 20)
	if o.Type != ObjectTypeShape {
		t.Errorf("Type = %v, want ObjectTypeShape", o.Type)
	}
	assertNear(t, "ScaleX", o.ScaleX, 1)
	assertNear(t, "ScaleY", o.ScaleY, 1)
	assertNear(t, "Width", o.Width, 40)
	assertNear(t, "Height", o.Height, 20)
	if o.Parent != nil {
		t.Error("new object has a parent")
	}

	g := NewGroup("g")
	if g.Type != ObjectTypeGroup {
		t.Errorf("Type = %v, want ObjectTypeGroup", g.Type)
	}
	c := NewClipShape("clip", 10, 10)
	if c.Type != ObjectTypeClip {
		t.Errorf("Type = %v, want ObjectTypeClip", c.Type)
	}
}

// --- Tree manipulation ---

func TestAdd(t *testing.T) {
	g := NewGroup("g")
	a := NewShape("a", 1, 1)
	b := NewShape("b", 1, 1)
	g.Add(a, b)

	if g.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", g.NumChildren())
	}
	if g.ChildAt(0) != a || g.ChildAt(1) != b {
		t.Error("children out of order")
	}
	if a.Parent != g || b.Parent != g {
		t.Error("Parent not set")
	}
}

func TestAddReparents(t *testing.T) {
	g1 := NewGroup("g1")
	g2 := NewGroup("g2")
	o := NewShape("o", 1, 1)
	g1.Add(o)
	g2.Add(o)

	if g1.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", g1.NumChildren())
	}
	if o.Parent != g2 {
		t.Error("Parent not moved to new group")
	}
}

func TestAddAt(t *testing.T) {
	g := NewGroup("g")
	a := NewShape("a", 1, 1)
	b := NewShape("b", 1, 1)
	c := NewShape("c", 1, 1)
	g.Add(a, b)
	g.AddAt(c, 1)

	if g.ChildAt(0) != a || g.ChildAt(1) != c || g.ChildAt(2) != b {
		t.Error("AddAt inserted at wrong position")
	}
}

func TestAddNilPanics(t *testing.T) {
	g := NewGroup("g")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil object, got none")
		}
	}()
	g.Add(nil)
}

func TestAddCyclePanics(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	grandchild := NewGroup("grandchild")
	parent.Add(child)
	child.Add(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.Add(parent)
}

func TestAddSelfPanics(t *testing.T) {
	g := NewGroup("g")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	g.Add(g)
}

func TestRemove(t *testing.T) {
	g := NewGroup("g")
	o := NewShape("o", 1, 1)
	g.Add(o)
	g.Remove(o)

	if g.NumChildren() != 0 {
		t.Error("child not removed")
	}
	if o.Parent != nil {
		t.Error("Parent not cleared")
	}
}

func TestRemoveWrongParentPanics(t *testing.T) {
	g1 := NewGroup("g1")
	g2 := NewGroup("g2")
	o := NewShape("o", 1, 1)
	g1.Add(o)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	g2.Remove(o)
}

func TestRemoveAt(t *testing.T) {
	g := NewGroup("g")
	a := NewShape("a", 1, 1)
	b := NewShape("b", 1, 1)
	g.Add(a, b)

	got := g.RemoveAt(0)
	if got != a {
		t.Error("RemoveAt returned wrong child")
	}
	if g.NumChildren() != 1 || g.ChildAt(0) != b {
		t.Error("remaining children wrong")
	}
}

func TestRemoveAtOutOfRangePanics(t *testing.T) {
	g := NewGroup("g")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out of range, got none")
		}
	}()
	g.RemoveAt(0)
}

func TestRemoveFromParent(t *testing.T) {
	g := NewGroup("g")
	o := NewShape("o", 1, 1)
	g.Add(o)
	o.RemoveFromParent()
	if o.Parent != nil || g.NumChildren() != 0 {
		t.Error("RemoveFromParent did not detach")
	}

	// Detached object: no-op.
	o.RemoveFromParent()
}

// --- CalcOwnMatrix ---

func TestOwnMatrixIdentity(t *testing.T) {
	o := NewShape("o", 1, 1)
	assertMatrix(t, "identity", o.CalcOwnMatrix(), Identity())
}

func TestOwnMatrixTranslation(t *testing.T) {
	o := NewShape("o", 1, 1)
	o.X = 10
	o.Y = 20
	assertMatrix(t, "translation", o.CalcOwnMatrix(), Translate(10, 20))
}

func TestOwnMatrixScale(t *testing.T) {
	o := NewShape("o", 1, 1)
	o.ScaleX = 2
	o.ScaleY = 3
	assertMatrix(t, "scale", o.CalcOwnMatrix(), Scale(2, 3))
}

func TestOwnMatrixRotation90(t *testing.T) {
	o := NewShape("o", 1, 1)
	o.Angle = math.Pi / 2
	assertMatrix(t, "rot90", o.CalcOwnMatrix(), Matrix{0, 1, -1, 0, 0, 0})
}

func TestOwnMatrixCombined(t *testing.T) {
	o := NewShape("o", 1, 1)
	o.X = 50
	o.Y = 100
	o.ScaleX = 2
	o.ScaleY = 2
	o.Angle = math.Pi / 2
	// Scale(2,2) then Rotate(90°), then Translate(50,100).
	assertMatrix(t, "combined", o.CalcOwnMatrix(), Matrix{0, 2, -2, 0, 50, 100})
}

// --- CalcTransformMatrix ---

func TestTransformMatrixNested(t *testing.T) {
	g := NewGroup("g")
	o := NewShape("o", 1, 1)
	g.Add(o)

	g.X = 100
	o.X = 10

	m := o.CalcTransformMatrix()
	assertNear(t, "tx", m[4], 110)
}

func TestTransformMatrixDeep(t *testing.T) {
	objects := make([]*Object, 10)
	for i := range objects {
		objects[i] = NewGroup("")
		objects[i].X = 10
		if i > 0 {
			objects[i-1].Add(objects[i])
		}
	}
	m := objects[9].CalcTransformMatrix()
	assertNear(t, "deep.tx", m[4], 100)
}

func TestTransformMatrixRecomputes(t *testing.T) {
	// No caching: moving the parent is visible on the very next call.
	g := NewGroup("g")
	o := NewShape("o", 1, 1)
	g.Add(o)

	g.X = 100
	assertNear(t, "before", o.CalcTransformMatrix()[4], 100)
	g.X = 200
	assertNear(t, "after", o.CalcTransformMatrix()[4], 200)
}

// --- TotalAngle ---

func TestTotalAngleUngrouped(t *testing.T) {
	o := NewShape("o", 1, 1)
	o.Angle = 0.5
	assertNear(t, "ungrouped", o.TotalAngle(), 0.5)
}

func TestTotalAngleNested(t *testing.T) {
	g := NewGroup("g")
	o := NewShape("o", 1, 1)
	g.Add(o)
	g.Angle = 0.3
	o.Angle = 0.5
	assertNear(t, "nested", o.TotalAngle(), 0.8)
}

// --- SetFromMatrix ---

func TestSetFromMatrixRoundtrip(t *testing.T) {
	o := NewShape("o", 1, 1)
	want := Translate(40, -7).Mul(Rotate(0.9)).Mul(Scale(2, 0.5))
	o.SetFromMatrix(want)
	assertMatrix(t, "roundtrip", o.CalcOwnMatrix(), want)
	assertNear(t, "angle", o.Angle, 0.9)
	assertNear(t, "x", o.X, 40)
	assertNear(t, "y", o.Y, -7)
}

// --- BoundingRect ---

func TestBoundingRectIdentity(t *testing.T) {
	o := NewShape("o", 40, 20)
	o.X = 10
	o.Y = 5
	r := o.BoundingRect()
	assertNear(t, "x", r.X, 10)
	assertNear(t, "y", r.Y, 5)
	assertNear(t, "w", r.Width, 40)
	assertNear(t, "h", r.Height, 20)
}

func TestBoundingRectRotated(t *testing.T) {
	o := NewShape("o", 40, 20)
	o.Angle = math.Pi / 2
	r := o.BoundingRect()
	// Rotating 90° swaps the extents; the box now spans x ∈ [-20, 0].
	assertNear(t, "x", r.X, -20)
	assertNear(t, "y", r.Y, 0)
	assertNear(t, "w", r.Width, 20)
	assertNear(t, "h", r.Height, 40)
}

func TestBoundingRectGrouped(t *testing.T) {
	g := NewGroup("g")
	o := NewShape("o", 10, 10)
	g.Add(o)
	g.X = 100
	g.ScaleX = 2
	g.ScaleY = 2
	o.X = 5

	r := o.BoundingRect()
	assertNear(t, "x", r.X, 110)
	assertNear(t, "w", r.Width, 20)
	assertNear(t, "h", r.Height, 20)
}

// --- Benchmarks ---

func BenchmarkCalcOwnMatrix(b *testing.B) {
	o := NewShape("bench", 40, 20)
	o.X = 100
	o.Y = 200
	o.ScaleX = 2
	o.ScaleY = 3
	o.Angle = 0.5
	b.ReportAllocs()
	for b.Loop() {
		_ = o.CalcOwnMatrix()
	}
}

func BenchmarkCalcTransformMatrixDeep(b *testing.B) {
	objects := make([]*Object, 10)
	for i := range objects {
		objects[i] = NewGroup("")
		objects[i].X = 10
		objects[i].Angle = 0.1
		if i > 0 {
			objects[i-1].Add(objects[i])
		}
	}
	leaf := objects[9]
	b.ReportAllocs()
	for b.Loop() {
		_ = leaf.CalcTransformMatrix()
	}
}
