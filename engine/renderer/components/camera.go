package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/math"
)

/**
 * @brief Represents a camera looking along Front from Position.
 * It either pans freely or follows a target at a fixed offset.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position mgl32.Vec3
	/** @brief Unit vector the camera looks along. */
	Front mgl32.Vec3
	Up    mgl32.Vec3
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix mgl32.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.Front = mgl32.Vec3{0, 0, -1}
	c.Up = mgl32.Vec3{0, 1, 0}
	c.IsDirty = true
	c.ViewMatrix = mgl32.Ident4()
}

func (c *Camera) GetPosition() mgl32.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position mgl32.Vec3) {
	c.Position = position
	c.IsDirty = true
}

// SetFront points the camera along direction. A zero direction is ignored.
func (c *Camera) SetFront(direction mgl32.Vec3) {
	if direction.Len() == 0 {
		return
	}
	c.Front = direction.Normalize()
	c.IsDirty = true
}

func (c *Camera) GetView() mgl32.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

func (c *Camera) Left() mgl32.Vec3 {
	return c.Right().Mul(-1)
}

func (c *Camera) MoveLeft(amount float32) {
	c.Position = c.Position.Add(c.Left().Mul(amount))
	c.IsDirty = true
}

func (c *Camera) MoveRight(amount float32) {
	c.Position = c.Position.Add(c.Right().Mul(amount))
	c.IsDirty = true
}

// Follow places the camera at target+offset, looking at target.
func (c *Camera) Follow(target mgl32.Vec3, offset mgl32.Vec3) {
	c.Position = target.Add(offset)
	c.SetFront(target.Sub(c.Position))
	c.IsDirty = true
}
