package animation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pauses(t *testing.T, durations ...float32) (*Animator, []Animation) {
	t.Helper()
	target := newTarget()
	a := NewAnimator("test")
	anims := make([]Animation, 0, len(durations))
	for _, d := range durations {
		p, err := NewPause(target, d)
		require.NoError(t, err)
		a.AddAnimation(p)
		anims = append(anims, p)
	}
	return a, anims
}

func TestAnimatorSequencing(t *testing.T) {
	a, anims := pauses(t, 1.0, 2.0, 0.5)
	a.Start()
	require.Same(t, anims[0], a.Current())

	a.Tick(1.0)
	assert.True(t, anims[0].IsComplete())
	assert.Same(t, anims[1], a.Current())
	assert.Equal(t, float32(0), anims[1].Elapsed(), "next animation must not receive leftover dt")

	a.Tick(1.0)
	a.Tick(1.0)
	assert.Same(t, anims[2], a.Current())
	a.Tick(0.5)

	assert.True(t, a.IsIdle())
	assert.Nil(t, a.Current())
	for _, anim := range anims {
		assert.True(t, anim.IsComplete())
	}
}

func TestAnimatorDropsLeftoverDt(t *testing.T) {
	a, anims := pauses(t, 1.0, 1.0)
	a.Start()

	a.Tick(1.75)
	assert.Equal(t, 1, a.CurrentIndex())
	assert.Equal(t, float32(0), anims[1].Elapsed())

	a.Tick(0.25)
	assert.Equal(t, float32(0.25), anims[1].Elapsed())
}

func TestAnimatorIdleStates(t *testing.T) {
	t.Run("not_started", func(t *testing.T) {
		a, anims := pauses(t, 1.0)
		assert.True(t, a.IsIdle())
		a.Tick(0.5)
		assert.Equal(t, float32(0), anims[0].Elapsed())
	})

	t.Run("empty", func(t *testing.T) {
		a := NewAnimator("empty")
		a.Start()
		assert.True(t, a.IsIdle())
		a.Tick(1)
		assert.Equal(t, 0, a.CurrentIndex())
	})
}

func TestAnimatorResumesWhenExtended(t *testing.T) {
	a, anims := pauses(t, 1.0)
	a.Start()
	a.Tick(1.0)
	require.True(t, a.IsIdle())

	target := anims[0].Target()
	move, err := NewTranslation(target, 1, mgl32.Vec3{0, 2, 0})
	require.NoError(t, err)
	a.AddAnimation(move)

	assert.False(t, a.IsIdle())
	assert.Same(t, move, a.Current())
	a.Tick(0.5)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, target.Position())
	// the finished animation was not ticked again
	assert.Equal(t, float32(1), anims[0].Elapsed())
}

func TestAnimatorAddBeforeStart(t *testing.T) {
	a := NewAnimator("late")
	target := newTarget()
	r, err := NewRotation(target, 1, mgl32.Vec3{1, 0, 0})
	require.NoError(t, err)
	a.AddAnimation(r)
	a.Start()
	a.Tick(1)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, target.Orientation())
	assert.True(t, a.IsIdle())
}

func TestAnimatorStartRewinds(t *testing.T) {
	a, anims := pauses(t, 1.0, 1.0)
	a.Start()
	a.Tick(1)
	a.Tick(1)
	require.True(t, a.IsIdle())

	a.Start()
	assert.False(t, a.IsIdle())
	assert.Equal(t, 0, a.CurrentIndex())
	for _, anim := range anims {
		assert.False(t, anim.IsComplete())
	}
}

func TestAnimatorLoadSequence(t *testing.T) {
	// pause, turn around, hop onto the sling, turn back
	bird := newTarget()
	start := mgl32.Vec3{-30, 0.4, -1}
	bird.SetPosition(start)
	sling := mgl32.Vec3{-46.5, 3.8, -3}

	a := NewAnimator("load")
	p, err := NewPause(bird, 2)
	require.NoError(t, err)
	turn, err := NewRotation(bird, 1, mgl32.Vec3{0, 3, 0})
	require.NoError(t, err)
	hop, err := NewBezierTranslation(bird, 1.5, start, mgl32.Vec3{-38, 8, -3}, sling)
	require.NoError(t, err)
	back, err := NewRotation(bird, 1, mgl32.Vec3{0, 3, 0})
	require.NoError(t, err)
	for _, anim := range []Animation{p, turn, hop, back} {
		a.AddAnimation(anim)
	}
	a.Start()

	for i := 0; i < 600 && !a.IsIdle(); i++ {
		a.Tick(1.0 / 60)
	}

	require.True(t, a.IsIdle())
	assert.Equal(t, sling, bird.Position())
	assertVec3(t, mgl32.Vec3{0, 6, 0}, bird.Orientation())
}
