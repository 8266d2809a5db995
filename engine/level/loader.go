package level

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown level format")
	ErrInvalidLevel  = errors.New("invalid level")
)

// Load reads and validates the level at path. The format is chosen by the
// file extension: .toml, .yaml or .yml.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading level %s", path)
	}
	lvl, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading level %s", path)
	}
	return lvl, nil
}

// Decode parses data in the format named by ext and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Decode(data []byte, ext string) (*Level, error) {
	lvl := &Level{}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(lvl); err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(lvl); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "extension %q", ext)
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Validate checks the cross references and numeric ranges of the level.
func (l *Level) Validate() error {
	if err := checkVec("gravity", l.Gravity); err != nil {
		return err
	}
	if err := checkVec("launch.velocity", l.Launch.Velocity); err != nil {
		return err
	}
	if l.Launch.Friction < 0 || !finite(l.Launch.Friction) {
		return invalid("launch.friction must be a non negative number, got %v", l.Launch.Friction)
	}
	if l.Launch.RestThreshold < 0 || !finite(l.Launch.RestThreshold) {
		return invalid("launch.rest_threshold must be a non negative number, got %v", l.Launch.RestThreshold)
	}

	if err := checkVec("camera.position", l.Camera.Position); err != nil {
		return err
	}
	if err := checkVec("camera.follow_offset", l.Camera.FollowOffset); err != nil {
		return err
	}
	if l.Camera.PanSpeed < 0 || !finite(l.Camera.PanSpeed) {
		return invalid("camera.pan_speed must be non negative, got %v", l.Camera.PanSpeed)
	}

	names := map[string]bool{}
	for i := range l.Objects {
		if err := validateObject(&l.Objects[i], "objects", names); err != nil {
			return err
		}
	}

	for i, actor := range l.Actors {
		if !names[actor] {
			return invalid("actors[%d]: unknown object %q", i, actor)
		}
	}

	for name, steps := range l.Sequences {
		for i := range steps {
			if err := validateStep(&steps[i], name, i); err != nil {
				return err
			}
		}
	}
	if l.LoadSequence != "" {
		if _, ok := l.Sequences[l.LoadSequence]; !ok {
			return invalid("load_sequence: unknown sequence %q", l.LoadSequence)
		}
	}

	for i := range l.Zones {
		if err := l.Zones[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}

func validateObject(o *Object, path string, names map[string]bool) error {
	if o.Name == "" {
		return invalid("%s: object without a name", path)
	}
	path = path + "." + o.Name
	if names[o.Name] {
		return invalid("%s: duplicate object name", path)
	}
	names[o.Name] = true

	if o.Model == "" {
		return invalid("%s.model is required", path)
	}
	if o.Mass < 0 || !finite(o.Mass) {
		return invalid("%s.mass must be positive, got %v", path, o.Mass)
	}
	for field, v := range map[string][]float32{
		"position": o.Position,
		"rotation": o.Rotation,
		"scale":    o.Scale,
		"center":   o.Center,
	} {
		if err := checkVec(path+"."+field, v); err != nil {
			return err
		}
	}
	for i := range o.Children {
		if err := validateObject(&o.Children[i], path+".children", names); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(s *Step, sequence string, index int) error {
	path := "sequences." + sequence
	if s.Duration <= 0 || !finite(s.Duration) {
		return invalid("%s[%d].duration must be positive, got %v", path, index, s.Duration)
	}
	switch s.Kind {
	case StepPause:
	case StepRotate, StepTranslate:
		if len(s.Delta) != 3 {
			return invalid("%s[%d].delta needs 3 components for %s", path, index, s.Kind)
		}
	case StepBezier:
		if len(s.Control) != 3 || len(s.End) != 3 {
			return invalid("%s[%d]: bezier needs control and end points", path, index)
		}
	default:
		return invalid("%s[%d].kind: unknown step %q", path, index, s.Kind)
	}
	return nil
}

func checkVec(field string, v []float32) error {
	if len(v) != 0 && len(v) != 3 {
		return invalid("%s needs 3 components, got %d", field, len(v))
	}
	for _, c := range v {
		if !finite(c) {
			return invalid("%s has a non finite component", field)
		}
	}
	return nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidLevel, format, args...)
}
