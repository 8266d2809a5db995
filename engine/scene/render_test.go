package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderComposesHierarchy(t *testing.T) {
	parent := newNamed("parent")
	parent.SetPosition(mgl32.Vec3{1, 2, 3})
	child := newNamed("child")
	grandchild := newNamed("grandchild")
	grandchild.SetPosition(mgl32.Vec3{0, 0, 1})

	require.NoError(t, child.AddChild(grandchild))
	require.NoError(t, parent.AddChild(child))

	packet := NewRenderPacket(0)
	require.NoError(t, parent.Render(packet))
	require.Len(t, packet.Commands, 3)

	// pre-order: parent, child, grandchild
	assert.Equal(t, "parent_mesh", packet.Commands[0].Mesh.Name)
	assert.Equal(t, "child_mesh", packet.Commands[1].Mesh.Name)
	assert.Equal(t, "grandchild_mesh", packet.Commands[2].Mesh.Name)

	assertVec3(t, mgl32.Vec3{1, 2, 3}, math.Translation(packet.Commands[1].Model))
	assertVec3(t, mgl32.Vec3{1, 2, 4}, math.Translation(packet.Commands[2].Model))
	assert.Equal(t, grandchild.WorldMatrix(), packet.Commands[2].Model)
}

func TestRenderFollowsParentEveryFrame(t *testing.T) {
	boat := newNamed("boat")
	tiger := newNamed("tiger")
	tiger.SetPosition(mgl32.Vec3{1, 0, 0})
	require.NoError(t, boat.AddChild(tiger))

	packet := NewRenderPacket(0)
	require.NoError(t, boat.Render(packet))
	assertVec3(t, mgl32.Vec3{1, 0, 0}, math.Translation(packet.Commands[1].Model))

	boat.Move(mgl32.Vec3{0, 5, 0})
	packet.Reset(0)
	require.NoError(t, boat.Render(packet))
	require.Len(t, packet.Commands, 2)
	assertVec3(t, mgl32.Vec3{1, 5, 0}, math.Translation(packet.Commands[1].Model))
}

type failingRenderer struct {
	draws int
}

func (f *failingRenderer) SetModel(mgl32.Mat4) {}

func (f *failingRenderer) DrawMesh(*Mesh) error {
	f.draws++
	return errors.New("device lost")
}

func TestRenderStopsOnError(t *testing.T) {
	root := newNamed("root")
	require.NoError(t, root.AddChild(newNamed("child")))

	r := &failingRenderer{}
	err := root.Render(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root_mesh")
	assert.Equal(t, 1, r.draws)
}
