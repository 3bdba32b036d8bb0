package fabric

import "fmt"

// Relation states which plane a point is expressed in, relative to a canvas:
// its own child plane (one level below the viewport transform) or the
// sibling plane the canvas content is placed into. There is no deeper
// relation; see [TransformPointRelativeToCanvas].
type Relation uint8

const (
	// RelationChild means the point is expressed below the viewport
	// transform, in canvas-content coordinates.
	RelationChild Relation = iota
	// RelationSibling means the point is expressed in the same plane as the
	// canvas content's container, above the viewport transform.
	RelationSibling
)

// String returns "child" or "sibling" for the two valid values.
func (r Relation) String() string {
	switch r {
	case RelationChild:
		return "child"
	case RelationSibling:
		return "sibling"
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}

func checkRelation(arg string, r Relation) {
	if r != RelationChild && r != RelationSibling {
		panic(fmt.Sprintf("fabric: invalid %s relation %s", arg, r))
	}
}

// CalcPlaneChangeMatrix computes the change-of-basis matrix between two
// coordinate planes: applying the result to a coordinate expressed in the
// from plane yields the equivalent coordinate in the to plane, with no
// visual change in the fully-composed output. A nil plane means the
// root/canvas plane (identity).
//
// For any plane X, CalcPlaneChangeMatrix(X, X) is the identity.
func CalcPlaneChangeMatrix(from, to *Matrix) Matrix {
	f := Identity()
	t := Identity()
	if from != nil {
		f = *from
	}
	if to != nil {
		t = *to
	}
	return t.Invert().Mul(f)
}

// SendPointToPlane re-expresses p from one coordinate plane in another,
// preserving its absolute position. A nil plane means the root/canvas plane.
func SendPointToPlane(p Point, from, to *Matrix) Point {
	return CalcPlaneChangeMatrix(from, to).Apply(p)
}

// TransformPointRelativeToCanvas moves p between the two planes adjacent to
// the canvas viewport transform. It is the two-level special case of
// [SendPointToPlane] for the common "above or below the viewport" question.
//
// If before equals after the point is returned unchanged. Transitioning
// sibling → child applies the inverse of the viewport transform; child →
// sibling applies the viewport transform directly. Panics if either
// relation is not [RelationChild] or [RelationSibling].
func TransformPointRelativeToCanvas(p Point, canvas *Canvas, before, after Relation) Point {
	checkRelation("before", before)
	checkRelation("after", after)
	if before == after {
		return p
	}
	vt := canvas.ViewportTransform()
	if before == RelationSibling {
		return vt.Invert().Apply(p)
	}
	return vt.Apply(p)
}

// PlaneChange is the compensation applied by an object transposition:
// the matrix the object's local transform was multiplied with, and the
// rotation angle the object ended up with. Callers use it to apply the
// identical repositioning to related objects, such as a clip shape sharing
// the move.
type PlaneChange struct {
	Transform Matrix
	Angle     float64
}

// SendObjectToPlane moves obj from its current parent's plane to the plane
// of the to object, rewriting its local decomposition in place so that its
// rendered position is unchanged once the caller reparents it under to.
// A nil to means the root/canvas plane, as does a nil current parent.
//
// Only obj is mutated; it is not reparented and to is not touched. The
// returned [PlaneChange] carries the applied matrix and angle.
func SendObjectToPlane(obj *Object, to *Object) PlaneChange {
	return sendToPlane(obj, obj.Parent, to)
}

// SendObjectToPlaneBetween is the form of [SendObjectToPlane] for clip-path
// relationships, where obj hangs off another object rather than the tree
// and so has no ancestor chain of its own: the source plane is supplied by
// the caller instead of being read from obj.Parent. Both planes may be nil,
// meaning the root/canvas plane.
func SendObjectToPlaneBetween(obj, from, to *Object) PlaneChange {
	return sendToPlane(obj, from, to)
}

func sendToPlane(obj, from, to *Object) PlaneChange {
	var fromM, toM *Matrix
	var fromAngle, toAngle float64
	if from != nil {
		m := from.CalcTransformMatrix()
		fromM = &m
		fromAngle = from.TotalAngle()
	}
	if to != nil {
		m := to.CalcTransformMatrix()
		toM = &m
		toAngle = to.TotalAngle()
	}

	t := CalcPlaneChangeMatrix(fromM, toM)

	// The move preserves the object's absolute rotation, so the new local
	// angle is the old absolute angle re-based onto the destination plane.
	angle := obj.Angle + fromAngle - toAngle

	obj.SetFromMatrix(t.Mul(obj.CalcOwnMatrix()))
	obj.Angle = angle

	return PlaneChange{Transform: t, Angle: angle}
}
