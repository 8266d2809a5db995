package scene

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a renderable part of an object. The core never looks inside it;
// the renderer decides what the name and primitive count refer to.
type Mesh struct {
	Name       string
	Primitives int
	Textures   []string
}

func (m *Mesh) AddTexture(texture string) {
	m.Textures = append(m.Textures, texture)
}

// Renderer receives the world matrix of an object before each of its meshes is drawn.
type Renderer interface {
	SetModel(model mgl32.Mat4)
	DrawMesh(mesh *Mesh) error
}

// DrawCommand is a single mesh draw with the model matrix that was bound for it.
type DrawCommand struct {
	Model mgl32.Mat4
	Mesh  *Mesh
}

// RenderPacket records the draws of one frame so a backend can submit them later.
type RenderPacket struct {
	DeltaTime float64
	// View is the camera matrix the commands are seen through.
	View     mgl32.Mat4
	Commands []DrawCommand

	model mgl32.Mat4
}

func NewRenderPacket(deltaTime float64) *RenderPacket {
	return &RenderPacket{
		DeltaTime: deltaTime,
		View:      mgl32.Ident4(),
		model:     mgl32.Ident4(),
	}
}

func (p *RenderPacket) SetModel(model mgl32.Mat4) {
	p.model = model
}

func (p *RenderPacket) DrawMesh(mesh *Mesh) error {
	p.Commands = append(p.Commands, DrawCommand{Model: p.model, Mesh: mesh})
	return nil
}

// Reset clears the recorded commands, keeping the allocated capacity.
func (p *RenderPacket) Reset(deltaTime float64) {
	p.DeltaTime = deltaTime
	p.View = mgl32.Ident4()
	p.Commands = p.Commands[:0]
	p.model = mgl32.Ident4()
}
