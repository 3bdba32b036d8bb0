// Package fabric is the transform core of a retained-mode 2D object model.
//
// Fabric maintains a tree of drawable objects (shapes, groups, clip shapes)
// rooted at a [Canvas]. Every object carries its own local affine transform,
// decomposed into position, rotation, scale, and skew, and the package
// provides the machinery to move points and whole objects between any two
// coordinate planes in that tree without visually displacing them.
//
// # Planes
//
// A plane is the coordinate space defined by some object's cumulative
// transform from the root (or by the root itself, for the canvas plane).
// [CalcPlaneChangeMatrix] computes the change-of-basis matrix between two
// planes; [SendPointToPlane] and [SendObjectToPlane] apply it:
//
//	group := fabric.NewGroup("toolbar")
//	shape := fabric.NewShape("button", 40, 20)
//	group.Add(shape)
//
//	// Detach the shape from its group, keeping its on-screen position.
//	fabric.SendObjectToPlane(shape, nil)
//	group.Remove(shape)
//	canvas.Add(shape)
//
// A nil plane reference always means the root/canvas plane. Moving an object
// never reparents it; tree surgery stays with the caller, so the same
// compensation can be applied to related objects (a clip shape sharing the
// move, for instance) before anything is reattached.
//
// # Viewport
//
// [Canvas] owns the viewport transform, the single "root transform" used by
// [TransformPointRelativeToCanvas] and by the zoom and pan operations
// ([Canvas.ZoomToPoint], [Canvas.AbsolutePan], [Canvas.PanTo]). Animated
// panning and the object property tweens in [Animation] are driven by
// [gween].
//
// # Rendering
//
// Fabric does not render. A renderer built on [Ebitengine] consumes
// cumulative transforms through [Matrix.GeoM]; everything else it needs
// (pixels, events, serialization) lives outside this package.
//
// All operations are synchronous and allocation-fresh: matrices are
// recomputed from current object state on every call, and nothing is cached.
// Mutating the same object from multiple goroutines must be serialized by
// the caller.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package fabric
