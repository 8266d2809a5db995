package level

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/scene"
)

// Zone is an axis aligned box the actor can touch. A contact zone bounces the
// actor back along Axis; a goal zone only reports the hit.
type Zone struct {
	Name        string    `toml:"name" yaml:"name"`
	Min         []float32 `toml:"min" yaml:"min"`
	Max         []float32 `toml:"max" yaml:"max"`
	Axis        string    `toml:"axis" yaml:"axis"`
	Restitution float32   `toml:"restitution" yaml:"restitution"`
	Snap        float32   `toml:"snap" yaml:"snap"`
	Goal        bool      `toml:"goal" yaml:"goal"`
}

func (z *Zone) validate(index int) error {
	if len(z.Min) != 3 || len(z.Max) != 3 {
		return invalid("zones[%d] %q: min and max need 3 components", index, z.Name)
	}
	if err := checkVec("zones.min", z.Min); err != nil {
		return err
	}
	if err := checkVec("zones.max", z.Max); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if z.Min[i] > z.Max[i] {
			return invalid("zones[%d] %q: min is above max on axis %d", index, z.Name, i)
		}
	}
	if z.Goal {
		return nil
	}
	if z.axisIndex() < 0 {
		return invalid("zones[%d] %q: axis must be one of x, y, z, got %q", index, z.Name, z.Axis)
	}
	if z.Restitution < 0 || !finite(z.Restitution) {
		return invalid("zones[%d] %q: restitution must be non negative", index, z.Name)
	}
	return nil
}

func (z *Zone) axisIndex() int {
	switch z.Axis {
	case "x":
		return 0
	case "y":
		return 1
	case "z":
		return 2
	}
	return -1
}

// Contains reports whether p lies inside the zone, bounds included.
func (z *Zone) Contains(p mgl32.Vec3) bool {
	if len(z.Min) != 3 || len(z.Max) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if p[i] < z.Min[i] || p[i] > z.Max[i] {
			return false
		}
	}
	return true
}

// Apply resolves a contact with obj and reports whether obj was inside the zone.
// For contact zones the velocity component along the axis is reversed and
// scaled by the restitution and the position on that axis is snapped.
// Goal zones leave obj untouched.
func (z *Zone) Apply(obj *scene.Object) bool {
	pos := obj.Position()
	if !z.Contains(pos) {
		return false
	}
	if z.Goal {
		core.LogDebug("%s reached goal %s", obj, z.Name)
		return true
	}

	axis := z.axisIndex()
	if axis < 0 {
		return true
	}
	velocity := obj.Velocity()
	velocity[axis] = -velocity[axis] * z.Restitution
	obj.SetVelocity(velocity)

	pos[axis] = z.Snap
	obj.SetPosition(pos)
	core.LogDebug("%s contact with %s", obj, z.Name)
	return true
}
