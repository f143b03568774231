package camera

import (
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Ray is a half line with unit direction
type Ray struct {
	Origin math32.Vector3
	Dir    math32.Vector3
}

// At returns the point at parameter t
func (r Ray) At(t float32) math32.Vector3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// IntersectSphere returns the nearest non-negative ray parameter hitting the sphere
// A ray starting inside the sphere hits at its exit point
func (r Ray) IntersectSphere(center math32.Vector3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	s := math32.Sqrt(disc)
	t := -b - s
	if t < 0 {
		t = -b + s
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlaneY returns where the ray crosses the horizontal plane at height y
func (r Ray) IntersectPlaneY(y float32) (math32.Vector3, bool) {
	if math32.Abs(r.Dir.Y) < vmath.Epsilon {
		return math32.Vector3{}, false
	}
	t := (y - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return math32.Vector3{}, false
	}
	return r.At(t), true
}
