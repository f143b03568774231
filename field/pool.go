// Package field generates the procedural particle clouds: a swirling foreground disk and a
// static deep background shell
// Base positions and per-particle coefficients are fixed at construction; only Live changes
package field

import (
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/gfx"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Range is a closed-open uniform sampling interval
type Range struct {
	Min float32 `toml:"min"`
	Max float32 `toml:"max"`
}

// Sample draws uniformly from [Min, Max)
func (r Range) Sample(rng randx.Rand) float32 {
	return vmath.RandRange(rng.Float32(), r.Min, r.Max)
}

// Params are the per-particle animation coefficients
type Params struct {
	Phase     float32 // [0, 2π)
	Speed     float32
	Amplitude float32
	Twist     float32
	Pulse     float32
}

// Pool is a fixed-size particle population
// Live aliases Geometry.Positions so the renderer reads the last frame without copying
type Pool struct {
	Base   []math32.Vector3
	Live   []math32.Vector3
	Params []Params // nil for pools without per-particle animation

	// Rotation is the bulk Y rotation applied at render time
	Rotation     float32
	RotationRate float32

	Geometry *gfx.Geometry
}

// Len returns the particle count, fixed for the pool's lifetime
func (p *Pool) Len() int {
	return len(p.Base)
}

// World returns particle i's live position with bulk rotation applied
func (p *Pool) World(i int) math32.Vector3 {
	return vmath.RotateY(p.Live[i], p.Rotation)
}

// Rotate advances bulk rotation to elapsed seconds
func (p *Pool) Rotate(elapsed float32) {
	p.Rotation = vmath.Wrap(elapsed * p.RotationRate)
}

// Reset copies base positions back into the live buffer
func (p *Pool) Reset() {
	copy(p.Live, p.Base)
}

func newPool(arena *gfx.Arena, name string, n int, rate float32) *Pool {
	g := arena.Geometry(gfx.NewGeometry(name, n))
	return &Pool{
		Base:         make([]math32.Vector3, n),
		Live:         g.Positions,
		RotationRate: rate,
		Geometry:     g,
	}
}
