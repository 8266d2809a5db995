package math

import "github.com/go-gl/mathgl/mgl32"

// QuadraticBezier evaluates B(t) = (1-t)[(1-t)p0 + t*p1] + t[(1-t)p1 + t*p2].
// The nested form returns p0 exactly at t=0 and p2 exactly at t=1.
func QuadraticBezier(p0, p1, p2 mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	a := p0.Mul(u).Add(p1.Mul(t))
	b := p1.Mul(u).Add(p2.Mul(t))
	return a.Mul(u).Add(b.Mul(t))
}
