package animation

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTarget() *scene.Object {
	o := scene.NewObject(nil)
	o.SetName("target")
	return o
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestConstructorsValidate(t *testing.T) {
	target := newTarget()
	ctors := map[string]func(*scene.Object, float32) (Animation, error){
		"pause": func(o *scene.Object, d float32) (Animation, error) { return NewPause(o, d) },
		"rotation": func(o *scene.Object, d float32) (Animation, error) {
			return NewRotation(o, d, mgl32.Vec3{1, 0, 0})
		},
		"translation": func(o *scene.Object, d float32) (Animation, error) {
			return NewTranslation(o, d, mgl32.Vec3{1, 0, 0})
		},
		"bezier": func(o *scene.Object, d float32) (Animation, error) {
			return NewBezierTranslation(o, d, mgl32.Vec3{}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{2, 0, 0})
		},
	}

	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			_, err := ctor(target, 0)
			assert.ErrorIs(t, err, core.ErrInvalidDuration)
			_, err = ctor(target, -1)
			assert.ErrorIs(t, err, core.ErrInvalidDuration)
			_, err = ctor(target, float32(m.NaN()))
			assert.ErrorIs(t, err, core.ErrInvalidDuration)
			_, err = ctor(nil, 1)
			assert.ErrorIs(t, err, core.ErrNilTarget)

			a, err := ctor(target, 2)
			require.NoError(t, err)
			assert.Equal(t, name, a.Kind().String())
			assert.Same(t, target, a.Target())
			assert.False(t, a.IsComplete())
		})
	}
}

func TestPauseLeavesTargetAlone(t *testing.T) {
	target := newTarget()
	target.SetPosition(mgl32.Vec3{1, 2, 3})
	before := target.ModelMatrix()

	p, err := NewPause(target, 2)
	require.NoError(t, err)
	p.Tick(1.5)
	assert.False(t, p.IsComplete())
	p.Tick(1.5)
	assert.True(t, p.IsComplete())
	assert.Equal(t, float32(2), p.Elapsed())
	assert.Equal(t, before, target.ModelMatrix())
}

func TestRotationRate(t *testing.T) {
	target := newTarget()
	r, err := NewRotation(target, 1, mgl32.Vec3{0, m.Pi, 0})
	require.NoError(t, err)

	r.Tick(0.25)
	assertVec3(t, mgl32.Vec3{0, m.Pi / 4, 0}, target.Orientation())
	for i := 0; i < 3; i++ {
		r.Tick(0.25)
	}
	assert.True(t, r.IsComplete())
	assertVec3(t, mgl32.Vec3{0, m.Pi, 0}, target.Orientation())

	// complete animations ignore further ticks
	r.Tick(1)
	assertVec3(t, mgl32.Vec3{0, m.Pi, 0}, target.Orientation())
}

func TestRotationOvershootIsClamped(t *testing.T) {
	target := newTarget()
	r, err := NewRotation(target, 0.5, mgl32.Vec3{0, 0, 1})
	require.NoError(t, err)

	r.Tick(0.4)
	r.Tick(0.4)

	assert.Equal(t, float32(0.5), r.Elapsed())
	assertVec3(t, mgl32.Vec3{0, 0, 1}, target.Orientation())
}

func TestTranslationRate(t *testing.T) {
	target := newTarget()
	target.SetPosition(mgl32.Vec3{1, 1, 1})
	tr, err := NewTranslation(target, 2, mgl32.Vec3{4, 0, -2})
	require.NoError(t, err)

	tr.Tick(0.5)
	assertVec3(t, mgl32.Vec3{2, 1, 0.5}, target.Position())
	tr.Tick(1.5)
	assert.True(t, tr.IsComplete())
	assertVec3(t, mgl32.Vec3{5, 1, -1}, target.Position())
}

func TestBezierTranslation(t *testing.T) {
	p0 := mgl32.Vec3{-30, 0.4, -1}
	p1 := mgl32.Vec3{-38, 8, -3}
	p2 := mgl32.Vec3{-46.5, 3.8, -3}

	target := newTarget()
	target.SetPosition(p0)
	b, err := NewBezierTranslation(target, 2, p0, p1, p2)
	require.NoError(t, err)

	assert.Equal(t, p0, b.At(0))
	assert.Equal(t, p2, b.At(1))
	assert.Equal(t, p2, b.At(1.5), "t is clamped")
	assert.Equal(t, p0, b.At(-1))

	b.Tick(1)
	want := p0.Mul(0.25).Add(p1.Mul(0.5)).Add(p2.Mul(0.25))
	assertVec3(t, want, target.Position())

	// position is absolute: an outside nudge does not accumulate
	target.Move(mgl32.Vec3{100, 0, 0})
	b.Tick(1)
	assert.True(t, b.IsComplete())
	assert.Equal(t, p2, target.Position())
}

func TestReset(t *testing.T) {
	target := newTarget()
	tr, err := NewTranslation(target, 1, mgl32.Vec3{1, 0, 0})
	require.NoError(t, err)
	tr.Tick(5)
	require.True(t, tr.IsComplete())

	tr.Reset()
	assert.False(t, tr.IsComplete())
	assert.Equal(t, float32(0), tr.Elapsed())
}

func TestNegativeDtDoesNotRewind(t *testing.T) {
	target := newTarget()
	p, err := NewPause(target, 1)
	require.NoError(t, err)
	p.Tick(0.5)
	p.Tick(-3)
	assert.Equal(t, float32(0.5), p.Elapsed())
}
