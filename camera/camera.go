// Package camera is the perspective camera, pointer rays, and damped orbit controls
// Screen space is terminal cells; CellAspect keeps projected geometry round
package camera

import (
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Pose is a camera position and the point it looks at
type Pose struct {
	Position math32.Vector3 `toml:"position"`
	Target   math32.Vector3 `toml:"target"`
}

// Camera is a look-at perspective camera over a cell viewport
type Camera struct {
	Position   math32.Vector3
	Target     math32.Vector3
	Up         math32.Vector3
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	Width      int // viewport cells
	Height     int
	CellAspect float32 // cell width / cell height
}

// New creates a camera at pose for a w×h cell viewport
func New(pose Pose, fov, near, far, cellAspect float32, w, h int) *Camera {
	return &Camera{
		Position:   pose.Position,
		Target:     pose.Target,
		Up:         vmath.Up,
		FOV:        fov,
		Near:       near,
		Far:        far,
		Width:      w,
		Height:     h,
		CellAspect: cellAspect,
	}
}

// Resize updates the viewport
func (c *Camera) Resize(w, h int) {
	c.Width, c.Height = w, h
}

// Aspect is the viewport's physical width over height
func (c *Camera) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) * c.CellAspect / float32(c.Height)
}

// Basis returns the forward, right, and up unit vectors
// A camera sitting on its target looks down -Z; a forward parallel to Up borrows +Z as up
func (c *Camera) Basis() (fwd, right, up math32.Vector3) {
	fwd = vmath.SafeNormal(c.Target.Sub(c.Position), math32.Vec3(0, 0, -1))
	right = fwd.Cross(c.Up)
	if right.Length() < vmath.Epsilon {
		right = fwd.Cross(math32.Vec3(0, 0, 1))
	}
	right = right.Normal()
	up = right.Cross(fwd)
	return fwd, right, up
}

// tanHalf returns tan(fov/2)
func (c *Camera) tanHalf() float32 {
	return math32.Tan(math32.DegToRad(c.FOV) / 2)
}

// Project maps a world point to cell coordinates and view depth
// ok is false for points behind the near plane
func (c *Camera) Project(p math32.Vector3) (x, y, depth float32, ok bool) {
	fwd, right, up := c.Basis()
	rel := p.Sub(c.Position)
	depth = rel.Dot(fwd)
	if depth < c.Near {
		return 0, 0, depth, false
	}
	th := c.tanHalf()
	ndcX := rel.Dot(right) / (depth * th * c.Aspect())
	ndcY := rel.Dot(up) / (depth * th)
	x, y = c.NDCToScreen(ndcX, ndcY)
	return x, y, depth, true
}

// ProjectedRadius converts a world radius at depth into cell rows
func (c *Camera) ProjectedRadius(r, depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return r / (depth * c.tanHalf()) * float32(c.Height) / 2
}

// ScreenToNDC converts cell coordinates (cell centers) to normalized device coordinates
func (c *Camera) ScreenToNDC(x, y float32) (float32, float32) {
	if c.Width == 0 || c.Height == 0 {
		return 0, 0
	}
	return (x+0.5)/float32(c.Width)*2 - 1, -((y+0.5)/float32(c.Height)*2 - 1)
}

// NDCToScreen converts normalized device coordinates to cell coordinates
func (c *Camera) NDCToScreen(nx, ny float32) (float32, float32) {
	return (nx+1)/2*float32(c.Width) - 0.5, (1-ny)/2*float32(c.Height) - 0.5
}

// RayFromNDC casts a ray from the camera through the NDC point
func (c *Camera) RayFromNDC(nx, ny float32) Ray {
	fwd, right, up := c.Basis()
	th := c.tanHalf()
	dir := fwd.Add(right.MulScalar(nx * th * c.Aspect())).Add(up.MulScalar(ny * th))
	return Ray{Origin: c.Position, Dir: dir.Normal()}
}
