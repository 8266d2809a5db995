package assets

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/scene"
)

var ErrUnsupportedModel = errors.New("unsupported model")

// BuiltinPrefix selects a generated primitive instead of a file, e.g. "builtin:square".
const BuiltinPrefix = "builtin:"

// Importer turns a model reference into a ready scene object.
type Importer interface {
	Import(path string) (*scene.Object, error)
}

// ModelImporter loads glTF files relative to Root and the builtin primitives.
type ModelImporter struct {
	Root string
}

func NewModelImporter(root string) *ModelImporter {
	return &ModelImporter{Root: root}
}

func (mi *ModelImporter) Import(path string) (*scene.Object, error) {
	if strings.HasPrefix(path, BuiltinPrefix) {
		return importBuiltin(strings.TrimPrefix(path, BuiltinPrefix))
	}

	full := path
	if mi.Root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(mi.Root, path)
	}
	switch strings.ToLower(filepath.Ext(full)) {
	case ".gltf", ".glb":
		return importGLTF(full)
	default:
		return nil, errors.Wrapf(ErrUnsupportedModel, "importing %s", path)
	}
}

func importBuiltin(shape string) (*scene.Object, error) {
	var primitives int
	switch shape {
	case "square":
		primitives = 2
	case "cube":
		primitives = 12
	default:
		return nil, errors.Wrapf(ErrUnsupportedModel, "unknown builtin shape %q", shape)
	}
	return scene.NewObject([]*scene.Mesh{{Name: shape, Primitives: primitives}}), nil
}

func importGLTF(path string) (*scene.Object, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if len(doc.Meshes) == 0 {
		return nil, errors.Wrapf(ErrUnsupportedModel, "%s has no meshes", path)
	}

	meshes := make([]*scene.Mesh, 0, len(doc.Meshes))
	for i, m := range doc.Meshes {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", filepath.Base(path), i)
		}
		meshes = append(meshes, &scene.Mesh{Name: name, Primitives: len(m.Primitives)})
	}

	base := mgl32.Ident4()
	for _, n := range doc.Nodes {
		if n.Mesh != nil {
			base = nodeMatrix(n)
			break
		}
	}

	core.LogDebug("imported %s: %d meshes", path, len(meshes))
	return scene.NewObjectWithBase(meshes, base), nil
}

// nodeMatrix returns the node's local matrix, from the explicit matrix when
// present or from its translation/rotation/scale otherwise.
func nodeMatrix(n *gltf.Node) mgl32.Mat4 {
	var explicit mgl32.Mat4
	for i, v := range n.Matrix {
		explicit[i] = float32(v)
	}
	if explicit != (mgl32.Mat4{}) && explicit != mgl32.Ident4() {
		return explicit
	}

	t := mgl32.Vec3{float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2])}
	r := mgl32.Quat{
		W: float32(n.Rotation[3]),
		V: mgl32.Vec3{float32(n.Rotation[0]), float32(n.Rotation[1]), float32(n.Rotation[2])},
	}
	if r.Len() == 0 {
		r = mgl32.QuatIdent()
	}
	s := mgl32.Vec3{float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2])}
	if s == (mgl32.Vec3{}) {
		s = mgl32.Vec3{1, 1, 1}
	}

	m := mgl32.Translate3D(t.X(), t.Y(), t.Z())
	m = m.Mul4(r.Normalize().Mat4())
	return m.Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}
