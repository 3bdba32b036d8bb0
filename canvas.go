package fabric

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panAnim holds active pan tweens for the viewport translation.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Canvas is the root context of an object tree. It owns the root group and
// the viewport transform — the single matrix sitting between screen
// coordinates and the scene, queried by [TransformPointRelativeToCanvas]
// and every zoom or pan operation.
type Canvas struct {
	root              *Object
	viewportTransform Matrix

	panTween *panAnim
}

// NewCanvas creates a canvas with an identity viewport transform and a
// pre-created root group.
func NewCanvas() *Canvas {
	return &Canvas{
		root:              NewGroup("root"),
		viewportTransform: Identity(),
	}
}

// Root returns the canvas's root group.
func (c *Canvas) Root() *Object {
	return c.root
}

// Add appends objects to the root group.
func (c *Canvas) Add(objects ...*Object) {
	c.root.Add(objects...)
}

// ViewportTransform returns the current viewport transform.
func (c *Canvas) ViewportTransform() Matrix {
	return c.viewportTransform
}

// SetViewportTransform replaces the viewport transform wholesale and cancels
// any in-flight pan animation.
func (c *Canvas) SetViewportTransform(m Matrix) {
	c.viewportTransform = m
	c.panTween = nil
}

// Zoom returns the current zoom factor, decomposed from the viewport
// transform.
func (c *Canvas) Zoom() float64 {
	return c.viewportTransform.Decompose().ScaleX
}

// SetZoom sets the zoom factor, keeping the scene origin fixed on screen.
func (c *Canvas) SetZoom(zoom float64) {
	c.ZoomToPoint(Point{}, zoom)
}

// ZoomToPoint sets the zoom factor while keeping the given screen point
// fixed: the scene coordinate under p before the zoom is still under p
// after it.
func (c *Canvas) ZoomToPoint(p Point, zoom float64) {
	vt := c.viewportTransform
	scenePoint := vt.Invert().Apply(p)
	vt[0] = zoom
	vt[3] = zoom
	after := vt.Apply(scenePoint)
	vt[4] += p.X - after.X
	vt[5] += p.Y - after.Y
	c.viewportTransform = vt
	c.panTween = nil
}

// AbsolutePan pans the viewport so that scene point p sits at the screen
// origin.
func (c *Canvas) AbsolutePan(p Point) {
	c.viewportTransform[4] = -p.X
	c.viewportTransform[5] = -p.Y
	c.panTween = nil
}

// RelativePan shifts the viewport by the given screen-space delta.
func (c *Canvas) RelativePan(delta Point) {
	c.viewportTransform[4] += delta.X
	c.viewportTransform[5] += delta.Y
	c.panTween = nil
}

// PanTo animates the viewport translation to an [AbsolutePan] on scene point
// p over duration seconds. Call [Canvas.Update] each frame to advance it.
func (c *Canvas) PanTo(p Point, duration float32, easeFn ease.TweenFunc) {
	c.panTween = &panAnim{
		tweenX: gween.New(float32(c.viewportTransform[4]), float32(-p.X), duration, easeFn),
		tweenY: gween.New(float32(c.viewportTransform[5]), float32(-p.Y), duration, easeFn),
	}
}

// Update advances the pan animation by dt seconds. No-op when nothing is
// animating.
func (c *Canvas) Update(dt float32) {
	if c.panTween == nil {
		return
	}
	if !c.panTween.doneX {
		val, done := c.panTween.tweenX.Update(dt)
		c.viewportTransform[4] = float64(val)
		c.panTween.doneX = done
	}
	if !c.panTween.doneY {
		val, done := c.panTween.tweenY.Update(dt)
		c.viewportTransform[5] = float64(val)
		c.panTween.doneY = done
	}
	if c.panTween.doneX && c.panTween.doneY {
		c.panTween = nil
	}
}

// SceneToScreen converts a scene point to screen coordinates through the
// viewport transform.
func (c *Canvas) SceneToScreen(p Point) Point {
	return c.viewportTransform.Apply(p)
}

// ScreenToScene converts a screen point to scene coordinates through the
// inverse viewport transform.
func (c *Canvas) ScreenToScene(p Point) Point {
	return c.viewportTransform.Invert().Apply(p)
}
