package animation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/math"
	"github.com/spaghettifunk/catapult/engine/scene"
)

// BezierTranslation places the target on a quadratic curve from start to end,
// bending towards control. The position is set from the normalized time on
// every tick rather than accumulated, so it cannot drift.
type BezierTranslation struct {
	base
	start   mgl32.Vec3
	control mgl32.Vec3
	end     mgl32.Vec3
}

func NewBezierTranslation(target *scene.Object, duration float32, start, control, end mgl32.Vec3) (*BezierTranslation, error) {
	b, err := newBase(target, duration)
	if err != nil {
		return nil, err
	}
	return &BezierTranslation{base: b, start: start, control: control, end: end}, nil
}

func (b *BezierTranslation) Kind() Kind {
	return KindBezierTranslation
}

// ControlPoints returns P0, P1 and P2.
func (b *BezierTranslation) ControlPoints() (mgl32.Vec3, mgl32.Vec3, mgl32.Vec3) {
	return b.start, b.control, b.end
}

// At evaluates the curve at normalized time t, clamped to [0, 1].
func (b *BezierTranslation) At(t float32) mgl32.Vec3 {
	return math.QuadraticBezier(b.start, b.control, b.end, math.Clamp(t, 0, 1))
}

func (b *BezierTranslation) Tick(dt float32) {
	if _, ok := b.advance(dt); ok {
		b.target.SetPosition(b.At(b.elapsed / b.duration))
	}
}
