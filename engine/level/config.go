package level

import "github.com/go-gl/mathgl/mgl32"

// Level describes a playable catapult scene. It is decoded from TOML or YAML
// and validated by Load before Build turns it into a scene.
type Level struct {
	Name         string            `toml:"name" yaml:"name"`
	Gravity      []float32         `toml:"gravity" yaml:"gravity"`
	Launch       Launch            `toml:"launch" yaml:"launch"`
	Objects      []Object          `toml:"objects" yaml:"objects"`
	Actors       []string          `toml:"actors" yaml:"actors"`
	LoadSequence string            `toml:"load_sequence" yaml:"load_sequence"`
	Sequences    map[string][]Step `toml:"sequences" yaml:"sequences"`
	Zones        []Zone            `toml:"zones" yaml:"zones"`
	Camera       Camera            `toml:"camera" yaml:"camera"`
}

// Camera places the view. While an actor flies the camera trails it at FollowOffset.
type Camera struct {
	Position     []float32 `toml:"position" yaml:"position"`
	FollowOffset []float32 `toml:"follow_offset" yaml:"follow_offset"`
	// PanSpeed is how fast the free camera moves sideways, in units per second.
	PanSpeed float32 `toml:"pan_speed" yaml:"pan_speed"`
}

type Launch struct {
	Velocity []float32 `toml:"velocity" yaml:"velocity"`
	// Friction is the coefficient of the -μ·v·m drag applied while the actor moves.
	Friction float32 `toml:"friction" yaml:"friction"`
	// RestThreshold is the speed below which a launched actor counts as stopped.
	RestThreshold float32 `toml:"rest_threshold" yaml:"rest_threshold"`
}

type Object struct {
	Name     string    `toml:"name" yaml:"name"`
	Model    string    `toml:"model" yaml:"model"`
	Position []float32 `toml:"position" yaml:"position"`
	Rotation []float32 `toml:"rotation" yaml:"rotation"`
	Scale    []float32 `toml:"scale" yaml:"scale"`
	Center   []float32 `toml:"center" yaml:"center"`
	Mass     float32   `toml:"mass" yaml:"mass"`
	Textures []string  `toml:"textures" yaml:"textures"`
	Children []Object  `toml:"children" yaml:"children"`
}

type StepKind string

const (
	StepPause     StepKind = "pause"
	StepRotate    StepKind = "rotate"
	StepTranslate StepKind = "translate"
	StepBezier    StepKind = "bezier"
)

// Step is one animation directive of a sequence. Delta is used by rotate and
// translate, Control and End by bezier.
type Step struct {
	Kind     StepKind  `toml:"kind" yaml:"kind"`
	Duration float32   `toml:"duration" yaml:"duration"`
	Delta    []float32 `toml:"delta" yaml:"delta"`
	Control  []float32 `toml:"control" yaml:"control"`
	End      []float32 `toml:"end" yaml:"end"`
}

const (
	DefaultRestThreshold float32 = 0.09
	DefaultPanSpeed      float32 = 3
)

// GravityVector returns the configured gravity, or the earth default when unset.
func (l *Level) GravityVector() mgl32.Vec3 {
	if len(l.Gravity) == 0 {
		return mgl32.Vec3{0, -9.8, 0}
	}
	return vec3(l.Gravity, 0)
}

// VelocityVector returns the launch velocity.
func (l *Launch) VelocityVector() mgl32.Vec3 {
	return vec3(l.Velocity, 0)
}

// Threshold returns RestThreshold, or DefaultRestThreshold when unset.
func (l *Launch) Threshold() float32 {
	if l.RestThreshold <= 0 {
		return DefaultRestThreshold
	}
	return l.RestThreshold
}

// vec3 converts a validated three element list. An empty list yields fill on every axis.
func vec3(v []float32, fill float32) mgl32.Vec3 {
	if len(v) != 3 {
		return mgl32.Vec3{fill, fill, fill}
	}
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func (c *Camera) PositionVector() mgl32.Vec3 {
	if len(c.Position) == 0 {
		return mgl32.Vec3{-30, 10, 30}
	}
	return vec3(c.Position, 0)
}

func (c *Camera) Offset() mgl32.Vec3 {
	if len(c.FollowOffset) == 0 {
		return mgl32.Vec3{5, 5, 20}
	}
	return vec3(c.FollowOffset, 0)
}

func (c *Camera) Speed() float32 {
	if c.PanSpeed <= 0 {
		return DefaultPanSpeed
	}
	return c.PanSpeed
}
