// Package constellation derives the decorative arcs between nearby nodes
// Each node links to its nearest higher-index neighbours, so low indices can collect more
// than Neighbors links and the last nodes fewer
package constellation

import (
	"sort"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/gfx"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Spec tunes neighbour selection and curve shape
type Spec struct {
	Neighbors int     `toml:"neighbors"`
	Segments  int     `toml:"segments"`
	Arch      float32 `toml:"arch"`       // control offset per unit of edge length
	MinOffset float32 `toml:"min_offset"` // control offset floor
}

// Edge links node From to node To, From < To
type Edge struct {
	From, To int
}

// Curve is one sampled arc
type Curve struct {
	Edge
	Control  math32.Vector3
	Geometry *gfx.Geometry // Segments+1 points, endpoints included
}

// Constellation is the immutable arc set plus its group rotation
type Constellation struct {
	Curves   []Curve
	Rotation float32
}

// Neighbors selects, for each i, the k nearest j > i by squared distance
// Equal distances keep the lower j first
func Neighbors(positions []math32.Vector3, k int) []Edge {
	var edges []Edge
	type cand struct {
		j  int
		d2 float32
	}
	for i := range positions {
		cands := make([]cand, 0, len(positions)-i-1)
		for j := i + 1; j < len(positions); j++ {
			d := positions[j].Sub(positions[i])
			cands = append(cands, cand{j, d.Dot(d)})
		}
		sort.SliceStable(cands, func(a, b int) bool { return cands[a].d2 < cands[b].d2 })
		for _, c := range cands[:min(k, len(cands))] {
			edges = append(edges, Edge{From: i, To: c.j})
		}
	}
	return edges
}

// ControlPoint is the midpoint of a→b pushed away from the origin
// A midpoint at the origin is pushed along world up
func ControlPoint(a, b math32.Vector3, arch, minOffset float32) math32.Vector3 {
	mid := a.Add(b).MulScalar(0.5)
	out := vmath.SafeNormal(mid, vmath.Up)
	return mid.Add(out.MulScalar(a.DistanceTo(b)*arch + minOffset))
}

// Build samples one curve per neighbour edge, tracking geometries in arena
func Build(arena *gfx.Arena, positions []math32.Vector3, spec Spec) *Constellation {
	edges := Neighbors(positions, spec.Neighbors)
	c := &Constellation{Curves: make([]Curve, 0, len(edges))}
	for _, e := range edges {
		a, b := positions[e.From], positions[e.To]
		ctrl := ControlPoint(a, b, spec.Arch, spec.MinOffset)
		g := gfx.NewGeometry("curve", 0)
		g.Positions = vmath.SampleQuadBezier(a, ctrl, b, spec.Segments)
		c.Curves = append(c.Curves, Curve{Edge: e, Control: ctrl, Geometry: arena.Geometry(g)})
	}
	return c
}

// Edges returns the edge list in build order
func (c *Constellation) Edges() []Edge {
	out := make([]Edge, len(c.Curves))
	for i, cv := range c.Curves {
		out[i] = cv.Edge
	}
	return out
}

// Spin advances group rotation by rate*dt
func (c *Constellation) Spin(rate, dt float32) {
	c.Rotation = vmath.Wrap(c.Rotation + rate*dt)
}

// World returns point p of curve i with group rotation applied
func (c *Constellation) World(i, p int) math32.Vector3 {
	return vmath.RotateY(c.Curves[i].Geometry.Positions[p], c.Rotation)
}
