package animation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/scene"
)

// Translation moves the target by delta at a constant rate.
type Translation struct {
	base
	perSecond mgl32.Vec3
}

func NewTranslation(target *scene.Object, duration float32, delta mgl32.Vec3) (*Translation, error) {
	b, err := newBase(target, duration)
	if err != nil {
		return nil, err
	}
	return &Translation{base: b, perSecond: delta.Mul(1 / duration)}, nil
}

func (t *Translation) Kind() Kind {
	return KindTranslation
}

func (t *Translation) Tick(dt float32) {
	if step, ok := t.advance(dt); ok {
		t.target.Move(t.perSecond.Mul(step))
	}
}
