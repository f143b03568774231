package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *Camera {
	return New(Pose{Position: math32.Vec3(0, 0, 50)}, 60, 0.5, 1000, 0.5, 80, 40)
}

func TestProjectCenter(t *testing.T) {
	c := testCamera()
	x, y, depth, ok := c.Project(math32.Vector3{})
	require.True(t, ok)
	assert.InDelta(t, 39.5, x, 1e-3)
	assert.InDelta(t, 19.5, y, 1e-3)
	assert.InDelta(t, 50, depth, 1e-4)
}

func TestProjectBehindCamera(t *testing.T) {
	c := testCamera()
	_, _, _, ok := c.Project(math32.Vec3(0, 0, 80))
	assert.False(t, ok)
}

func TestRayRoundTripsProjection(t *testing.T) {
	c := testCamera()
	p := math32.Vec3(6, -3, 4)
	x, y, _, ok := c.Project(p)
	require.True(t, ok)

	nx, ny := c.ScreenToNDC(x, y)
	r := c.RayFromNDC(nx, ny)
	// The ray through p's projection passes through p
	toP := p.Sub(r.Origin)
	along := toP.Dot(r.Dir)
	closest := r.At(along)
	assert.InDelta(t, 0, closest.DistanceTo(p), 1e-3)
}

func TestBasisDegenerate(t *testing.T) {
	c := testCamera()
	c.Target = c.Position
	fwd, right, up := c.Basis()
	assert.InDelta(t, 1, fwd.Length(), 1e-5)
	assert.InDelta(t, 1, right.Length(), 1e-5)
	assert.InDelta(t, 1, up.Length(), 1e-5)

	// Looking straight down
	c.Target = math32.Vec3(0, -10, 50)
	_, right, _ = c.Basis()
	assert.InDelta(t, 1, right.Length(), 1e-5)
}

func TestIntersectSphere(t *testing.T) {
	r := Ray{Origin: math32.Vec3(0, 0, 10), Dir: math32.Vec3(0, 0, -1)}
	tHit, ok := r.IntersectSphere(math32.Vector3{}, 2)
	require.True(t, ok)
	assert.InDelta(t, 8, tHit, 1e-5)

	_, ok = r.IntersectSphere(math32.Vec3(5, 0, 0), 2)
	assert.False(t, ok)

	_, ok = r.IntersectSphere(math32.Vec3(0, 0, 20), 2)
	assert.False(t, ok, "sphere behind the ray origin")

	inside := Ray{Origin: math32.Vector3{}, Dir: math32.Vec3(1, 0, 0)}
	tHit, ok = inside.IntersectSphere(math32.Vector3{}, 3)
	require.True(t, ok)
	assert.InDelta(t, 3, tHit, 1e-5)
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: math32.Vec3(0, 10, 0), Dir: math32.Vec3(0, -1, 0)}
	p, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, 0, p.Y, 1e-6)

	flat := Ray{Origin: math32.Vec3(0, 10, 0), Dir: math32.Vec3(1, 0, 0)}
	_, ok = flat.IntersectPlaneY(0)
	assert.False(t, ok)

	away := Ray{Origin: math32.Vec3(0, 10, 0), Dir: math32.Vec3(0, 1, 0)}
	_, ok = away.IntersectPlaneY(0)
	assert.False(t, ok)
}

func testOrbitSpec() OrbitSpec {
	return OrbitSpec{Damping: 0.1, RotateSpeed: 0.01, MinDistance: 10, MaxDistance: 200, MinPolar: 0.1, MaxPolar: 3, DollyStep: 0.9}
}

func TestOrbitKeepsDistanceAndDamps(t *testing.T) {
	c := testCamera()
	o := NewOrbit(testOrbitSpec())
	o.Drag(20, 0)
	for i := 0; i < 200; i++ {
		o.Update(c, 1.0/60)
	}
	assert.InDelta(t, 50, c.Position.DistanceTo(c.Target), 1e-2)
	assert.NotEqual(t, float32(0), c.Position.X)
	assert.False(t, o.Moving())
}

func TestOrbitDisabledIgnoresInput(t *testing.T) {
	c := testCamera()
	before := c.Position
	o := NewOrbit(testOrbitSpec())
	o.Enabled = false
	o.Drag(40, 40)
	o.Wheel(3)
	o.Update(c, 1.0/60)
	assert.Equal(t, before, c.Position)
}

func TestOrbitDollyClamps(t *testing.T) {
	c := testCamera()
	o := NewOrbit(testOrbitSpec())
	o.Wheel(100)
	o.Update(c, 1.0/60)
	assert.InDelta(t, 10, c.Position.DistanceTo(c.Target), 1e-3)
}
