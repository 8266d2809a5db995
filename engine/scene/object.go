package scene

import (
	"fmt"
	m "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/math"
)

// Object is a node of the scene graph: a transform, the meshes drawn with it,
// the children it owns and the motion state used by Tick.
type Object struct {
	id   uuid.UUID
	name string

	transform *math.Transform
	meshes    []*Mesh

	parent   *Object
	children []*Object
	// set while the object is a top-level entry of a Scene
	inScene bool

	mass                   float32
	velocity               mgl32.Vec3
	rotationalVelocity     mgl32.Vec3
	rotationalAcceleration mgl32.Vec3
	pendingForces          []mgl32.Vec3
}

func NewObject(meshes []*Mesh) *Object {
	return NewObjectWithBase(meshes, mgl32.Ident4())
}

// NewObjectWithBase creates an object whose base transform is applied to its
// geometry before anything else, e.g. an import-time axis correction.
func NewObjectWithBase(meshes []*Mesh, base mgl32.Mat4) *Object {
	return &Object{
		id:        uuid.New(),
		transform: math.TransformFromBase(base),
		meshes:    meshes,
		mass:      1,
	}
}

func (o *Object) ID() uuid.UUID {
	return o.id
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) SetName(name string) {
	o.name = name
}

func (o *Object) String() string {
	if o.name != "" {
		return o.name
	}
	return o.id.String()
}

func (o *Object) Meshes() []*Mesh {
	return o.meshes
}

// AddTexture binds the texture to every mesh of the object.
func (o *Object) AddTexture(texture string) {
	for _, mesh := range o.meshes {
		mesh.AddTexture(texture)
	}
}

func (o *Object) Position() mgl32.Vec3 {
	return o.transform.Position()
}

func (o *Object) Orientation() mgl32.Vec3 {
	return o.transform.Orientation()
}

func (o *Object) Scale() mgl32.Vec3 {
	return o.transform.Scale()
}

func (o *Object) Center() mgl32.Vec3 {
	return o.transform.Center()
}

func (o *Object) BaseTransform() mgl32.Mat4 {
	return o.transform.Base()
}

// ModelMatrix maps local geometry into the parent's space.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	return o.transform.Model()
}

func (o *Object) SetPosition(position mgl32.Vec3) {
	o.transform.SetPosition(position)
}

func (o *Object) SetOrientation(orientation mgl32.Vec3) {
	o.transform.SetOrientation(orientation)
}

func (o *Object) SetScale(scale mgl32.Vec3) {
	o.transform.SetScale(scale)
}

func (o *Object) SetCenter(center mgl32.Vec3) {
	o.transform.SetCenter(center)
}

func (o *Object) Move(offset mgl32.Vec3) {
	o.transform.Move(offset)
}

func (o *Object) Rotate(delta mgl32.Vec3) {
	o.transform.Rotate(delta)
}

func (o *Object) Grow(factor mgl32.Vec3) {
	o.transform.Grow(factor)
}

func (o *Object) Mass() float32 {
	return o.mass
}

// SetMass rejects zero, negative and NaN masses so Tick never divides by them.
func (o *Object) SetMass(mass float32) error {
	if !(mass > 0) || m.IsInf(float64(mass), 0) {
		return fmt.Errorf("object %s: %w (got %v)", o, core.ErrInvalidMass, mass)
	}
	o.mass = mass
	return nil
}

func (o *Object) Velocity() mgl32.Vec3 {
	return o.velocity
}

func (o *Object) SetVelocity(velocity mgl32.Vec3) {
	o.velocity = velocity
}

func (o *Object) RotationalVelocity() mgl32.Vec3 {
	return o.rotationalVelocity
}

func (o *Object) SetRotationalVelocity(velocity mgl32.Vec3) {
	o.rotationalVelocity = velocity
}

func (o *Object) RotationalAcceleration() mgl32.Vec3 {
	return o.rotationalAcceleration
}

func (o *Object) SetRotationalAcceleration(acceleration mgl32.Vec3) {
	o.rotationalAcceleration = acceleration
}

// AddForceToList queues a force for the next Tick.
func (o *Object) AddForceToList(force mgl32.Vec3) {
	o.pendingForces = append(o.pendingForces, force)
}

func (o *Object) PendingForces() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), o.pendingForces...)
}

// Tick integrates the motion state with semi-implicit Euler: velocities are
// updated first and the new values move the position and orientation.
// Pending forces are consumed even when dt is zero.
func (o *Object) Tick(dt float32) {
	if dt < 0 {
		dt = 0
	}

	var sum mgl32.Vec3
	for _, f := range o.pendingForces {
		sum = sum.Add(f)
	}
	acceleration := sum.Mul(1 / o.mass)

	o.velocity = o.velocity.Add(acceleration.Mul(dt))
	position := o.transform.Position().Add(o.velocity.Mul(dt))

	o.rotationalVelocity = o.rotationalVelocity.Add(o.rotationalAcceleration.Mul(dt))
	orientation := o.transform.Orientation().Add(o.rotationalVelocity.Mul(dt))

	o.transform.SetPositionOrientation(position, orientation)

	o.pendingForces = o.pendingForces[:0]
}

func (o *Object) Parent() *Object {
	return o.parent
}

func (o *Object) NumberOfChildren() int {
	return len(o.children)
}

func (o *Object) Child(index int) (*Object, error) {
	if index < 0 || index >= len(o.children) {
		return nil, fmt.Errorf("object %s has %d children, asked for %d: %w", o, len(o.children), index, core.ErrIndexOutOfRange)
	}
	return o.children[index], nil
}

// AddChild moves child under o. The child must not already belong to another
// object or to a scene; afterwards it is only reachable through o.
func (o *Object) AddChild(child *Object) error {
	if child.parent != nil || child.inScene {
		return fmt.Errorf("adding %s to %s: %w", child, o, core.ErrAlreadyOwned)
	}
	for a := o; a != nil; a = a.parent {
		if a == child {
			return fmt.Errorf("adding %s to %s: %w", child, o, core.ErrOwnershipCycle)
		}
	}
	child.parent = o
	o.children = append(o.children, child)
	return nil
}

// Walk visits o and its descendants depth-first, pre-order, until fn returns false.
func (o *Object) Walk(fn func(obj *Object) bool) bool {
	if !fn(o) {
		return false
	}
	for _, c := range o.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// WorldMatrix composes the model matrices of every ancestor with o's.
// It is computed on demand and never cached.
func (o *Object) WorldMatrix() mgl32.Mat4 {
	if o.parent == nil {
		return o.ModelMatrix()
	}
	return o.parent.WorldMatrix().Mul4(o.ModelMatrix())
}

// Render draws the object and its subtree, starting from the identity matrix.
func (o *Object) Render(r Renderer) error {
	return o.renderRecursive(r, mgl32.Ident4())
}

func (o *Object) renderRecursive(r Renderer, parentMatrix mgl32.Mat4) error {
	world := parentMatrix.Mul4(o.ModelMatrix())
	r.SetModel(world)
	for _, mesh := range o.meshes {
		if err := r.DrawMesh(mesh); err != nil {
			return fmt.Errorf("drawing mesh %q of %s: %w", mesh.Name, o, err)
		}
	}
	for _, c := range o.children {
		if err := c.renderRecursive(r, world); err != nil {
			return err
		}
	}
	return nil
}
