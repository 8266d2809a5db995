package scene

import (
	"fmt"

	"github.com/spaghettifunk/catapult/engine/core"
)

// Ticker is advanced once per frame after physics. animation.Animator implements it.
type Ticker interface {
	Tick(dt float32)
	IsIdle() bool
}

// Scene owns the top-level objects and the tickers that animate them.
// A frame is Tick followed by Render; the host applies its own rules in between.
type Scene struct {
	objects []*Object
	tickers []Ticker
	active  *Object
}

func New() *Scene {
	return &Scene{}
}

// Add takes ownership of a top-level object.
func (s *Scene) Add(obj *Object) error {
	if obj.parent != nil || obj.inScene {
		return fmt.Errorf("adding %s to scene: %w", obj, core.ErrAlreadyOwned)
	}
	obj.inScene = true
	s.objects = append(s.objects, obj)
	return nil
}

// Remove releases a top-level object and its subtree. It reports whether obj was found.
func (s *Scene) Remove(obj *Object) bool {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			obj.inScene = false
			if s.active != nil && !obj.Walk(func(c *Object) bool { return c != s.active }) {
				s.active = nil
			}
			return true
		}
	}
	return false
}

func (s *Scene) Objects() []*Object {
	return s.objects
}

// Find returns the first object with the given name, searching every subtree pre-order.
func (s *Scene) Find(name string) *Object {
	var found *Object
	for _, o := range s.objects {
		o.Walk(func(c *Object) bool {
			if c.name == name {
				found = c
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// AddAnimator registers a ticker. Starting it is up to the caller.
func (s *Scene) AddAnimator(t Ticker) {
	s.tickers = append(s.tickers, t)
}

func (s *Scene) Animators() []Ticker {
	return s.tickers
}

// PruneIdle drops the tickers that have nothing left to do and returns how many were removed.
func (s *Scene) PruneIdle() int {
	kept := s.tickers[:0]
	for _, t := range s.tickers {
		if !t.IsIdle() {
			kept = append(kept, t)
		}
	}
	removed := len(s.tickers) - len(kept)
	for i := len(kept); i < len(s.tickers); i++ {
		s.tickers[i] = nil
	}
	s.tickers = kept
	return removed
}

// SetActive selects the object integrated by Tick. nil disables physics.
func (s *Scene) SetActive(obj *Object) {
	s.active = obj
}

func (s *Scene) Active() *Object {
	return s.active
}

// Tick integrates the active object, then advances every ticker in registration order.
func (s *Scene) Tick(dt float32) {
	if s.active != nil {
		s.active.Tick(dt)
	}
	for _, t := range s.tickers {
		t.Tick(dt)
	}
}

// Render draws every top-level object and its subtree.
func (s *Scene) Render(r Renderer) error {
	for _, o := range s.objects {
		if err := o.Render(r); err != nil {
			return err
		}
	}
	return nil
}
