package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTicker notes the position of its target when ticked.
type recordingTicker struct {
	target *Object
	seen   []mgl32.Vec3
	idle   bool
}

func (r *recordingTicker) Tick(dt float32) {
	r.seen = append(r.seen, r.target.Position())
}

func (r *recordingTicker) IsIdle() bool {
	return r.idle
}

func TestSceneAddOwnership(t *testing.T) {
	s := New()
	o := newNamed("o")
	require.NoError(t, s.Add(o))
	assert.ErrorIs(t, s.Add(o), core.ErrAlreadyOwned)

	parent := newNamed("parent")
	child := newNamed("child")
	require.NoError(t, parent.AddChild(child))
	assert.ErrorIs(t, s.Add(child), core.ErrAlreadyOwned)
	assert.Len(t, s.Objects(), 1)
}

func TestSceneRemove(t *testing.T) {
	s := New()
	root, child := newNamed("root"), newNamed("child")
	require.NoError(t, root.AddChild(child))
	require.NoError(t, s.Add(root))
	s.SetActive(child)

	assert.True(t, s.Remove(root))
	assert.False(t, s.Remove(root))
	assert.Empty(t, s.Objects())
	assert.Nil(t, s.Active())

	// released objects can be owned again
	assert.NoError(t, newNamed("other").AddChild(root))
}

func TestSceneFind(t *testing.T) {
	s := New()
	root, child := newNamed("boat"), newNamed("tiger")
	require.NoError(t, root.AddChild(child))
	require.NoError(t, s.Add(root))

	assert.Same(t, child, s.Find("tiger"))
	assert.Same(t, root, s.Find("boat"))
	assert.Nil(t, s.Find("pig"))
}

func TestSceneTickOrder(t *testing.T) {
	s := New()
	bird := newNamed("bird")
	require.NoError(t, s.Add(bird))
	bird.SetVelocity(mgl32.Vec3{1, 0, 0})
	s.SetActive(bird)

	rec := &recordingTicker{target: bird}
	s.AddAnimator(rec)

	s.Tick(1)

	// physics runs before the animators see the object
	require.Len(t, rec.seen, 1)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, rec.seen[0])
}

func TestSceneTickWithoutActive(t *testing.T) {
	s := New()
	o := newNamed("o")
	require.NoError(t, s.Add(o))
	o.SetVelocity(mgl32.Vec3{1, 0, 0})

	s.Tick(1)

	assert.Equal(t, mgl32.Vec3{}, o.Position())
}

func TestScenePruneIdle(t *testing.T) {
	s := New()
	o := newNamed("o")
	busy := &recordingTicker{target: o}
	done := &recordingTicker{target: o, idle: true}
	s.AddAnimator(done)
	s.AddAnimator(busy)

	assert.Equal(t, 1, s.PruneIdle())
	require.Len(t, s.Animators(), 1)
	assert.Same(t, busy, s.Animators()[0])
}

func TestSceneRender(t *testing.T) {
	s := New()
	a, b := newNamed("a"), newNamed("b")
	b.SetPosition(mgl32.Vec3{3, 0, 0})
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	packet := NewRenderPacket(1.0 / 60)
	require.NoError(t, s.Render(packet))
	require.Len(t, packet.Commands, 2)
	assert.Equal(t, mgl32.Ident4(), packet.Commands[0].Model)
	assert.Equal(t, b.ModelMatrix(), packet.Commands[1].Model)
}
