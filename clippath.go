package fabric

// SetClipPath attaches a clip shape to this object. The clip object is NOT
// part of the scene tree — its transform is expressed relative to the object
// it clips. When the clipped object changes plane, use
// [SendObjectToPlaneBetween] to carry the clip shape along.
func (o *Object) SetClipPath(clip *Object) {
	o.clipPath = clip
}

// ClipPath returns the attached clip shape, or nil if none is set.
func (o *Object) ClipPath() *Object {
	return o.clipPath
}

// ClearClipPath removes the clip shape from this object.
func (o *Object) ClearClipPath() {
	o.clipPath = nil
}
