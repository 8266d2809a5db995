package math

import "github.com/go-gl/mathgl/mgl32"

// Transform is the local spatial state of an object. The model matrix is
// rebuilt by every mutator, so Model never returns a stale value.
type Transform struct {
	position    mgl32.Vec3
	orientation mgl32.Vec3
	scale       mgl32.Vec3
	center      mgl32.Vec3
	base        mgl32.Mat4
	model       mgl32.Mat4
}

func TransformCreate() *Transform {
	return TransformFromBase(mgl32.Ident4())
}

// TransformFromBase creates a transform whose base matrix is applied before
// every other component, e.g. an axis correction coming from the importer.
func TransformFromBase(base mgl32.Mat4) *Transform {
	t := &Transform{
		scale: NewVec3One(),
		base:  base,
	}
	t.rebuild()
	return t
}

func (t *Transform) Position() mgl32.Vec3 {
	return t.position
}

// Orientation returns the Euler angles in radians, applied in Z, X, Y order.
func (t *Transform) Orientation() mgl32.Vec3 {
	return t.orientation
}

func (t *Transform) Scale() mgl32.Vec3 {
	return t.scale
}

// Center is the local pivot for rotation and scaling.
func (t *Transform) Center() mgl32.Vec3 {
	return t.center
}

func (t *Transform) Base() mgl32.Mat4 {
	return t.base
}

func (t *Transform) Model() mgl32.Mat4 {
	return t.model
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.position = position
	t.rebuild()
}

func (t *Transform) SetOrientation(orientation mgl32.Vec3) {
	t.orientation = orientation
	t.rebuild()
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.scale = scale
	t.rebuild()
}

func (t *Transform) SetCenter(center mgl32.Vec3) {
	t.center = center
	t.rebuild()
}

func (t *Transform) SetPositionOrientation(position, orientation mgl32.Vec3) {
	t.position = position
	t.orientation = orientation
	t.rebuild()
}

// Move translates the position by offset.
func (t *Transform) Move(offset mgl32.Vec3) {
	t.position = t.position.Add(offset)
	t.rebuild()
}

// Rotate adds delta to the Euler angles.
func (t *Transform) Rotate(delta mgl32.Vec3) {
	t.orientation = t.orientation.Add(delta)
	t.rebuild()
}

// Grow multiplies the scale component-wise.
func (t *Transform) Grow(factor mgl32.Vec3) {
	t.scale = MulElem(t.scale, factor)
	t.rebuild()
}

func (t *Transform) rebuild() {
	t.model = ModelMatrix(t.position, t.orientation, t.scale, t.center, t.base)
}

// ModelMatrix composes
// T(position) * T(center*scale) * Rz * Rx * Ry * S(scale) * T(-center) * base.
func ModelMatrix(position, orientation, scale, center mgl32.Vec3, base mgl32.Mat4) mgl32.Mat4 {
	pivot := MulElem(center, scale)
	m := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	m = m.Mul4(mgl32.Translate3D(pivot.X(), pivot.Y(), pivot.Z()))
	m = m.Mul4(mgl32.HomogRotate3DZ(orientation.Z()))
	m = m.Mul4(mgl32.HomogRotate3DX(orientation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(orientation.Y()))
	m = m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	m = m.Mul4(mgl32.Translate3D(-center.X(), -center.Y(), -center.Z()))
	return m.Mul4(base)
}
