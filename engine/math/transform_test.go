package math

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestTransformCreateIsIdentity(t *testing.T) {
	tr := TransformCreate()
	assert.Equal(t, mgl32.Ident4(), tr.Model())
	assert.Equal(t, NewVec3One(), tr.Scale())
	assert.Equal(t, NewVec3Zero(), tr.Position())
}

func TestTransformRebuildIsPure(t *testing.T) {
	pos := mgl32.Vec3{1.5, -2, 3.25}
	rot := mgl32.Vec3{0.3, 1.1, -0.7}
	scale := mgl32.Vec3{2, 0.5, 3}
	center := mgl32.Vec3{0.1, 0.2, 0.3}

	a := TransformCreate()
	a.SetPosition(pos)
	a.SetOrientation(rot)
	a.SetScale(scale)
	a.SetCenter(center)

	b := TransformCreate()
	b.SetCenter(center)
	b.SetScale(scale)
	b.SetOrientation(rot)
	b.SetPosition(pos)

	// bit-identical, regardless of mutation order
	assert.Equal(t, a.Model(), b.Model())
	assert.Equal(t, ModelMatrix(pos, rot, scale, center, mgl32.Ident4()), a.Model())
}

func TestTransformRelativeMutators(t *testing.T) {
	t.Run("move_is_additive", func(t *testing.T) {
		a := TransformCreate()
		a.Move(mgl32.Vec3{1, 2, 3})
		a.Move(mgl32.Vec3{-4, 0.5, 1})

		b := TransformCreate()
		b.Move(mgl32.Vec3{1, 2, 3}.Add(mgl32.Vec3{-4, 0.5, 1}))

		assert.Equal(t, b.Position(), a.Position())
		assert.Equal(t, b.Model(), a.Model())
	})

	t.Run("rotate_is_additive", func(t *testing.T) {
		a := TransformCreate()
		a.Rotate(mgl32.Vec3{0.25, 0, 0.5})
		a.Rotate(mgl32.Vec3{0.25, 1, 0})

		b := TransformCreate()
		b.Rotate(mgl32.Vec3{0.5, 1, 0.5})

		assert.Equal(t, b.Orientation(), a.Orientation())
	})

	t.Run("grow_is_multiplicative", func(t *testing.T) {
		a := TransformCreate()
		a.Grow(mgl32.Vec3{2, 3, 0.5})
		a.Grow(mgl32.Vec3{4, 0.5, 2})

		b := TransformCreate()
		b.Grow(mgl32.Vec3{8, 1.5, 1})

		assert.Equal(t, b.Scale(), a.Scale())
		assert.Equal(t, b.Model(), a.Model())
	})
}

func TestTransformComposition(t *testing.T) {
	cases := []struct {
		name  string
		setup func(tr *Transform)
		point mgl32.Vec3
		want  mgl32.Vec3
	}{
		{
			name:  "translation",
			setup: func(tr *Transform) { tr.SetPosition(mgl32.Vec3{1, 2, 3}) },
			point: mgl32.Vec3{0, 0, 0},
			want:  mgl32.Vec3{1, 2, 3},
		},
		{
			name:  "scale_then_translate",
			setup: func(tr *Transform) { tr.SetScale(mgl32.Vec3{2, 2, 2}); tr.Move(mgl32.Vec3{0, 1, 0}) },
			point: mgl32.Vec3{1, 1, 1},
			want:  mgl32.Vec3{2, 3, 2},
		},
		{
			name:  "rotate_about_z",
			setup: func(tr *Transform) { tr.SetOrientation(mgl32.Vec3{0, 0, m.Pi / 2}) },
			point: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{0, 1, 0},
		},
		{
			name: "rotate_about_center",
			setup: func(tr *Transform) {
				tr.SetCenter(mgl32.Vec3{1, 0, 0})
				tr.SetOrientation(mgl32.Vec3{0, 0, m.Pi})
			},
			// the pivot itself does not move
			point: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{1, 0, 0},
		},
		{
			name: "z_applied_after_y",
			setup: func(tr *Transform) {
				tr.SetOrientation(mgl32.Vec3{0, m.Pi / 2, m.Pi / 2})
			},
			// Ry takes x to -z, Rz leaves z untouched
			point: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{0, 0, -1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := TransformCreate()
			c.setup(tr)
			got := mgl32.TransformCoordinate(c.point, tr.Model())
			assertVec3(t, c.want, got)
		})
	}
}

func TestTransformBaseIsAppliedFirst(t *testing.T) {
	base := mgl32.Scale3D(0.5, 0.5, 0.5)
	tr := TransformFromBase(base)
	require.Equal(t, base, tr.Model())

	tr.SetPosition(mgl32.Vec3{0, 10, 0})
	got := mgl32.TransformCoordinate(mgl32.Vec3{2, 0, 0}, tr.Model())
	assertVec3(t, mgl32.Vec3{1, 10, 0}, got)
	assert.Equal(t, base, tr.Base())
}

func TestTransformZeroScaleIsDegenerate(t *testing.T) {
	tr := TransformCreate()
	tr.SetPosition(mgl32.Vec3{4, 5, 6})
	tr.SetScale(NewVec3Zero())

	got := mgl32.TransformCoordinate(mgl32.Vec3{7, 8, 9}, tr.Model())
	assertVec3(t, mgl32.Vec3{4, 5, 6}, got)
}

func TestQuadraticBezier(t *testing.T) {
	p0 := mgl32.Vec3{-30, 0.4, -1}
	p1 := mgl32.Vec3{-38, 8, -3}
	p2 := mgl32.Vec3{-46.5, 3.8, -3}

	assert.Equal(t, p0, QuadraticBezier(p0, p1, p2, 0))
	assert.Equal(t, p2, QuadraticBezier(p0, p1, p2, 1))

	want := p0.Mul(0.25).Add(p1.Mul(0.5)).Add(p2.Mul(0.25))
	assertVec3(t, want, QuadraticBezier(p0, p1, p2, 0.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(30, 0, 10))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
}

func TestTranslation(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, Translation(mgl32.Translate3D(1, 2, 3)))
}
