package fabric

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation tweens up to 4 float64 fields on an [Object] simultaneously.
// Create one via the convenience constructors (AnimatePosition,
// AnimateScale, AnimateAngle, AnimateSkew) and call Update(dt) each frame.
//
// There is no global animation manager — callers drive Update themselves,
// usually alongside [Canvas.Update].
type Animation struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	done   bool

	// OnComplete, if set, is called once when every tween has finished.
	OnComplete func()
}

// Update advances all tweens by dt seconds and writes the current values to
// the target fields. Returns true once the animation has finished.
func (a *Animation) Update(dt float32) bool {
	if a.done {
		return true
	}

	allDone := true
	for i := 0; i < a.count; i++ {
		val, finished := a.tweens[i].Update(dt)
		*a.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		a.done = true
		if a.OnComplete != nil {
			a.OnComplete()
		}
	}
	return a.done
}

// Stop halts the animation where it is. The target fields keep their
// current values and OnComplete is not called.
func (a *Animation) Stop() {
	a.done = true
}

// Done reports whether the animation has finished or was stopped.
func (a *Animation) Done() bool {
	return a.done
}

func newAnimation(duration float32, fn ease.TweenFunc, pairs ...fieldTween) *Animation {
	a := &Animation{count: len(pairs)}
	for i, p := range pairs {
		a.tweens[i] = gween.New(float32(*p.field), float32(p.to), duration, fn)
		a.fields[i] = p.field
	}
	return a
}

type fieldTween struct {
	field *float64
	to    float64
}

// AnimatePosition animates obj.X and obj.Y to the given coordinates over
// duration seconds using the easing function.
func AnimatePosition(obj *Object, toX, toY float64, duration float32, fn ease.TweenFunc) *Animation {
	return newAnimation(duration, fn,
		fieldTween{&obj.X, toX},
		fieldTween{&obj.Y, toY},
	)
}

// AnimateScale animates obj.ScaleX and obj.ScaleY to the given values over
// duration seconds using the easing function.
func AnimateScale(obj *Object, toSX, toSY float64, duration float32, fn ease.TweenFunc) *Animation {
	return newAnimation(duration, fn,
		fieldTween{&obj.ScaleX, toSX},
		fieldTween{&obj.ScaleY, toSY},
	)
}

// AnimateAngle animates obj.Angle to the given value (radians) over
// duration seconds using the easing function.
func AnimateAngle(obj *Object, to float64, duration float32, fn ease.TweenFunc) *Animation {
	return newAnimation(duration, fn, fieldTween{&obj.Angle, to})
}

// AnimateSkew animates obj.SkewX and obj.SkewY to the given values
// (radians) over duration seconds using the easing function.
func AnimateSkew(obj *Object, toSX, toSY float64, duration float32, fn ease.TweenFunc) *Animation {
	return newAnimation(duration, fn,
		fieldTween{&obj.SkewX, toSX},
		fieldTween{&obj.SkewY, toSY},
	)
}
