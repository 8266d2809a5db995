package level

import (
	"fmt"

	"github.com/spaghettifunk/catapult/engine/animation"
	"github.com/spaghettifunk/catapult/engine/assets"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/scene"
)

// Build imports every object of the level into a new scene and returns the
// actors in launch order. Animators are not created here, see Sequence.
func Build(lvl *Level, importer assets.Importer) (*scene.Scene, []*scene.Object, error) {
	s := scene.New()
	for i := range lvl.Objects {
		obj, err := buildObject(&lvl.Objects[i], importer)
		if err != nil {
			return nil, nil, err
		}
		if err := s.Add(obj); err != nil {
			return nil, nil, err
		}
	}

	actors := make([]*scene.Object, 0, len(lvl.Actors))
	for _, name := range lvl.Actors {
		actor := s.Find(name)
		if actor == nil {
			return nil, nil, fmt.Errorf("building level %s: actor %q not found", lvl.Name, name)
		}
		actors = append(actors, actor)
	}

	core.LogInfo("level %s built: %d objects, %d actors", lvl.Name, len(lvl.Objects), len(actors))
	return s, actors, nil
}

func buildObject(cfg *Object, importer assets.Importer) (*scene.Object, error) {
	obj, err := importer.Import(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("building object %s: %w", cfg.Name, err)
	}
	obj.SetName(cfg.Name)
	obj.SetCenter(vec3(cfg.Center, 0))
	obj.SetScale(vec3(cfg.Scale, 1))
	obj.SetOrientation(vec3(cfg.Rotation, 0))
	obj.SetPosition(vec3(cfg.Position, 0))
	if cfg.Mass > 0 {
		if err := obj.SetMass(cfg.Mass); err != nil {
			return nil, fmt.Errorf("building object %s: %w", cfg.Name, err)
		}
	}
	for _, texture := range cfg.Textures {
		obj.AddTexture(texture)
	}

	for i := range cfg.Children {
		child, err := buildObject(&cfg.Children[i], importer)
		if err != nil {
			return nil, err
		}
		if err := obj.AddChild(child); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// Sequence builds an Animator for target from steps. Bezier steps start at the
// position target has when Sequence is called. The Animator is not started.
func Sequence(steps []Step, target *scene.Object) (*animation.Animator, error) {
	name := "sequence"
	if target != nil {
		name = "sequence:" + target.Name()
	}
	animator := animation.NewAnimator(name)

	for i, step := range steps {
		var (
			anim animation.Animation
			err  error
		)
		switch step.Kind {
		case StepPause:
			anim, err = animation.NewPause(target, step.Duration)
		case StepRotate:
			anim, err = animation.NewRotation(target, step.Duration, vec3(step.Delta, 0))
		case StepTranslate:
			anim, err = animation.NewTranslation(target, step.Duration, vec3(step.Delta, 0))
		case StepBezier:
			if target == nil {
				err = core.ErrNilTarget
				break
			}
			anim, err = animation.NewBezierTranslation(target, step.Duration, target.Position(), vec3(step.Control, 0), vec3(step.End, 0))
		default:
			err = fmt.Errorf("unknown step kind %q", step.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("step %d of %s: %w", i, name, err)
		}
		animator.AddAnimation(anim)
	}
	return animator, nil
}
