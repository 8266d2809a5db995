// Package animation sequences timed mutations of scene objects.
//
// The variant set is closed: Pause, Rotation, Translation and
// BezierTranslation. Each one advances its own clock and writes to a target
// object that must outlive it.
package animation

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/scene"
)

type Kind uint8

const (
	KindPause Kind = iota
	KindRotation
	KindTranslation
	KindBezierTranslation
)

func (k Kind) String() string {
	switch k {
	case KindPause:
		return "pause"
	case KindRotation:
		return "rotation"
	case KindTranslation:
		return "translation"
	case KindBezierTranslation:
		return "bezier"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Animation is a time-bounded mutation of a single object.
type Animation interface {
	// Tick advances the clock by dt, clamped at the duration, and applies the
	// mutation for the time actually consumed. It is a no-op once complete.
	Tick(dt float32)
	IsComplete() bool
	Duration() float32
	Elapsed() float32
	Target() *scene.Object
	Kind() Kind
	// Reset rewinds the clock. The target is not restored.
	Reset()

	sealed()
}

type base struct {
	target   *scene.Object
	duration float32
	elapsed  float32
}

func newBase(target *scene.Object, duration float32) (base, error) {
	if target == nil {
		return base{}, core.ErrNilTarget
	}
	if !(duration > 0) || m.IsInf(float64(duration), 0) {
		return base{}, fmt.Errorf("%w (got %v)", core.ErrInvalidDuration, duration)
	}
	return base{target: target, duration: duration}, nil
}

func (b *base) IsComplete() bool {
	return b.elapsed >= b.duration
}

func (b *base) Duration() float32 {
	return b.duration
}

func (b *base) Elapsed() float32 {
	return b.elapsed
}

func (b *base) Target() *scene.Object {
	return b.target
}

func (b *base) Reset() {
	b.elapsed = 0
}

func (b *base) sealed() {}

// advance moves the clock and returns the part of dt that was consumed.
// ok is false when the animation was already complete.
func (b *base) advance(dt float32) (step float32, ok bool) {
	if b.IsComplete() {
		return 0, false
	}
	if dt < 0 {
		dt = 0
	}
	remaining := b.duration - b.elapsed
	if dt >= remaining {
		b.elapsed = b.duration
		return remaining, true
	}
	b.elapsed += dt
	return dt, true
}
