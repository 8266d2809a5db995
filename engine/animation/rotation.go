package animation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/scene"
)

// Rotation turns the target by delta (Euler radians) at a constant rate.
type Rotation struct {
	base
	perSecond mgl32.Vec3
}

func NewRotation(target *scene.Object, duration float32, delta mgl32.Vec3) (*Rotation, error) {
	b, err := newBase(target, duration)
	if err != nil {
		return nil, err
	}
	return &Rotation{base: b, perSecond: delta.Mul(1 / duration)}, nil
}

func (r *Rotation) Kind() Kind {
	return KindRotation
}

func (r *Rotation) Tick(dt float32) {
	if step, ok := r.advance(dt); ok {
		r.target.Rotate(r.perSecond.Mul(step))
	}
}
