package animation

import "github.com/spaghettifunk/catapult/engine/core"

// Animator plays a queue of animations one after the other.
//
// Only the current animation receives ticks. When it completes, the Animator
// moves to the next entry but does not hand it the rest of the frame's dt:
// the next animation starts on the following tick.
type Animator struct {
	name         string
	queue        []Animation
	currentIndex int
	running      bool
}

func NewAnimator(name string) *Animator {
	return &Animator{name: name}
}

func (a *Animator) Name() string {
	return a.name
}

// AddAnimation enqueues anim. On a running Animator that already finished its
// queue this resumes playback with anim.
func (a *Animator) AddAnimation(anim Animation) {
	a.queue = append(a.queue, anim)
}

// Start rewinds every queued animation and makes the first one current.
func (a *Animator) Start() {
	for _, anim := range a.queue {
		anim.Reset()
	}
	a.currentIndex = 0
	a.running = true
	core.LogDebug("animator %q started with %d animations", a.name, len(a.queue))
}

func (a *Animator) IsRunning() bool {
	return a.running
}

// IsIdle is true when ticking would do nothing.
func (a *Animator) IsIdle() bool {
	return !a.running || a.currentIndex >= len(a.queue)
}

func (a *Animator) Len() int {
	return len(a.queue)
}

func (a *Animator) CurrentIndex() int {
	return a.currentIndex
}

// Current returns the animation receiving ticks, or nil when idle.
func (a *Animator) Current() Animation {
	if a.IsIdle() {
		return nil
	}
	return a.queue[a.currentIndex]
}

func (a *Animator) Tick(dt float32) {
	if a.IsIdle() {
		return
	}
	current := a.queue[a.currentIndex]
	current.Tick(dt)
	if current.IsComplete() {
		a.currentIndex++
		if a.currentIndex < len(a.queue) {
			core.LogDebug("animator %q: %s on %s done, next is %s", a.name, current.Kind(), current.Target(), a.queue[a.currentIndex].Kind())
		} else {
			core.LogDebug("animator %q: queue finished", a.name)
		}
	}
}
