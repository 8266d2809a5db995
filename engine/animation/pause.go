package animation

import "github.com/spaghettifunk/catapult/engine/scene"

// Pause holds a slot in a sequence without touching its target.
type Pause struct {
	base
}

func NewPause(target *scene.Object, duration float32) (*Pause, error) {
	b, err := newBase(target, duration)
	if err != nil {
		return nil, err
	}
	return &Pause{base: b}, nil
}

func (p *Pause) Kind() Kind {
	return KindPause
}

func (p *Pause) Tick(dt float32) {
	p.advance(dt)
}
