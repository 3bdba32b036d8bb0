package fabric

import "fmt"

// ObjectType tags what an object is used for. The transform machinery treats
// all types identically; the tag exists for callers (renderers, hit testing)
// that dispatch on it.
type ObjectType uint8

const (
	ObjectTypeShape ObjectType = iota
	ObjectTypeGroup
	ObjectTypeClip
)

// Object is a scene-tree element. A single flat struct is used for all
// object types; groups are objects with children.
//
// The exported transform fields are the object's local decomposition. They
// are read fresh on every matrix calculation — nothing is cached — so
// callers may set them directly.
type Object struct {
	Name string
	Type ObjectType

	// Hierarchy. Parent is nil for a detached object or the root.
	Parent   *Object
	children []*Object

	// Local transform decomposition.
	X, Y           float64
	ScaleX, ScaleY float64
	Angle          float64 // radians
	SkewX, SkewY   float64 // radians

	// Untransformed dimensions, used for bounding boxes.
	Width, Height float64

	// clipPath is carried outside the tree; see clippath.go.
	clipPath *Object
}

func objectDefaults(o *Object) {
	o.ScaleX = 1
	o.ScaleY = 1
}

// NewShape creates a leaf object with the given untransformed dimensions.
func NewShape(name string, width, height float64) *Object {
	o := &Object{Name: name, Type: ObjectTypeShape, Width: width, Height: height}
	objectDefaults(o)
	return o
}

// NewGroup creates a container object.
func NewGroup(name string) *Object {
	o := &Object{Name: name, Type: ObjectTypeGroup}
	objectDefaults(o)
	return o
}

// NewClipShape creates a shape intended for use as a clip path.
func NewClipShape(name string, width, height float64) *Object {
	o := &Object{Name: name, Type: ObjectTypeClip, Width: width, Height: height}
	objectDefaults(o)
	return o
}

// --- Tree manipulation ---

// Add appends children to this object. A child that already has a parent is
// removed from that parent first. Panics if a child is nil or is an ancestor
// of this object (cycle).
func (o *Object) Add(children ...*Object) {
	for _, child := range children {
		if child == nil {
			panic("fabric: cannot add nil object")
		}
		if isAncestor(child, o) {
			panic("fabric: adding object would create a cycle")
		}
		if child.Parent != nil {
			child.Parent.removeByPtr(child)
		}
		child.Parent = o
		o.children = append(o.children, child)
	}
}

// AddAt inserts child at the given index among this object's children.
// Same reparenting and cycle-check behavior as Add.
func (o *Object) AddAt(child *Object, index int) {
	if child == nil {
		panic("fabric: cannot add nil object")
	}
	if isAncestor(child, o) {
		panic("fabric: adding object would create a cycle")
	}
	if index < 0 || index > len(o.children) {
		panic(fmt.Sprintf("fabric: object index %d out of range", index))
	}
	if child.Parent != nil {
		child.Parent.removeByPtr(child)
	}
	child.Parent = o
	o.children = append(o.children, nil)
	copy(o.children[index+1:], o.children[index:])
	o.children[index] = child
}

// Remove detaches child from this object. Panics if child is not a direct
// child of this object.
func (o *Object) Remove(child *Object) {
	if child == nil || child.Parent != o {
		panic("fabric: object is not a child of this object")
	}
	o.removeByPtr(child)
	child.Parent = nil
}

// RemoveAt removes and returns the child at the given index.
func (o *Object) RemoveAt(index int) *Object {
	if index < 0 || index >= len(o.children) {
		panic(fmt.Sprintf("fabric: object index %d out of range", index))
	}
	child := o.children[index]
	copy(o.children[index:], o.children[index+1:])
	o.children[len(o.children)-1] = nil
	o.children = o.children[:len(o.children)-1]
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this object from its parent.
// No-op for a detached object.
func (o *Object) RemoveFromParent() {
	if o.Parent == nil {
		return
	}
	o.Parent.Remove(o)
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (o *Object) Children() []*Object {
	return o.children
}

// NumChildren returns the number of direct children.
func (o *Object) NumChildren() int {
	return len(o.children)
}

// ChildAt returns the child at the given index.
func (o *Object) ChildAt(index int) *Object {
	return o.children[index]
}

// isAncestor reports whether candidate is object or one of its ancestors.
func isAncestor(candidate, object *Object) bool {
	for p := object; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeByPtr removes child from o.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (o *Object) removeByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}

// --- Transform calculation ---

// CalcOwnMatrix returns the object's local matrix, composed fresh from the
// decomposition fields.
func (o *Object) CalcOwnMatrix() Matrix {
	return Compose(Decomposition{
		Angle:      o.Angle,
		ScaleX:     o.ScaleX,
		ScaleY:     o.ScaleY,
		SkewX:      o.SkewX,
		SkewY:      o.SkewY,
		TranslateX: o.X,
		TranslateY: o.Y,
	})
}

// CalcTransformMatrix returns the object's cumulative matrix from the root:
// the composition of every ancestor's local matrix with its own. This is the
// matrix that defines the object's plane.
func (o *Object) CalcTransformMatrix() Matrix {
	m := o.CalcOwnMatrix()
	for p := o.Parent; p != nil; p = p.Parent {
		m = p.CalcOwnMatrix().Mul(m)
	}
	return m
}

// TotalAngle returns the object's absolute rotation from the root, in
// radians. For a grouped object the angle is decomposed from the cumulative
// matrix, so ancestor flips and skews are accounted for.
func (o *Object) TotalAngle() float64 {
	if o.Parent == nil {
		return o.Angle
	}
	return o.CalcTransformMatrix().Rotation()
}

// SetFromMatrix replaces the object's local decomposition with the one
// described by m.
func (o *Object) SetFromMatrix(m Matrix) {
	d := m.Decompose()
	o.X = d.TranslateX
	o.Y = d.TranslateY
	o.ScaleX = d.ScaleX
	o.ScaleY = d.ScaleY
	o.Angle = d.Angle
	o.SkewX = d.SkewX
	o.SkewY = d.SkewY
}

// BoundingRect returns the axis-aligned bounds of the object's
// Width × Height box under its cumulative transform, in root/canvas
// coordinates.
func (o *Object) BoundingRect() Rect {
	return transformedAABB(o.CalcTransformMatrix(), o.Width, o.Height)
}

// transformedAABB computes the axis-aligned bounding box of a (w, h)
// rectangle with its top-left at the origin, transformed by m.
func transformedAABB(m Matrix, w, h float64) Rect {
	x0, y0 := m[4], m[5]
	x1, y1 := m[0]*w+m[4], m[1]*w+m[5]
	x2, y2 := m[0]*w+m[2]*h+m[4], m[1]*w+m[3]*h+m[5]
	x3, y3 := m[2]*h+m[4], m[3]*h+m[5]

	minX := min(min(x0, x1), min(x2, x3))
	minY := min(min(y0, y1), min(y2, y3))
	maxX := max(max(x0, x1), max(x2, x3))
	maxY := max(max(y0, y1), max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
