package constellation

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-galaxy/gfx"
)

func ring(n int) []math32.Vector3 {
	out := make([]math32.Vector3, n)
	for i := range out {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		out[i] = math32.Vec3(30*c, float32(i%3)*5-5, 30*s)
	}
	return out
}

func TestNeighborEdgeCounts(t *testing.T) {
	positions := ring(7)
	edges := Neighbors(positions, 2)

	out := make(map[int]int)
	for _, e := range edges {
		assert.NotEqual(t, e.From, e.To, "self edge")
		assert.Greater(t, e.To, e.From, "edges go to strictly higher index")
		out[e.From]++
	}
	for i := range positions {
		want := min(2, len(positions)-1-i)
		assert.Equal(t, want, out[i], "node %d", i)
	}
	assert.Len(t, edges, 2*5+1)
}

func TestNeighborsDeterministic(t *testing.T) {
	positions := ring(12)
	first := Neighbors(positions, 2)
	for range 5 {
		assert.Equal(t, first, Neighbors(positions, 2))
	}
}

func TestNeighborTiesPreferLowerIndex(t *testing.T) {
	// Nodes 1, 2, 3 are equidistant from node 0
	positions := []math32.Vector3{
		{},
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}
	edges := Neighbors(positions, 2)
	require.GreaterOrEqual(t, len(edges), 2)
	assert.Equal(t, Edge{0, 1}, edges[0])
	assert.Equal(t, Edge{0, 2}, edges[1])
}

func TestNeighborsDegenerate(t *testing.T) {
	assert.Empty(t, Neighbors(nil, 2))
	assert.Empty(t, Neighbors([]math32.Vector3{{}}, 2))
}

func TestControlPointArchesAwayFromOrigin(t *testing.T) {
	a := math32.Vec3(10, 0, 0)
	b := math32.Vec3(0, 0, 10)
	ctrl := ControlPoint(a, b, 0.18, 2)
	mid := a.Add(b).MulScalar(0.5)
	assert.Greater(t, ctrl.Length(), mid.Length())
	assert.InDelta(t, a.DistanceTo(b)*0.18+2, ctrl.DistanceTo(mid), 1e-4)
}

func TestControlPointAtOriginUsesUp(t *testing.T) {
	a := math32.Vec3(-5, 0, 0)
	b := math32.Vec3(5, 0, 0)
	ctrl := ControlPoint(a, b, 0.1, 2)
	assert.InDelta(t, 0, ctrl.X, 1e-6)
	assert.InDelta(t, 10*0.1+2, ctrl.Y, 1e-5)
	assert.False(t, math32.IsNaN(ctrl.Y))
}

func TestBuildSamplesCurves(t *testing.T) {
	arena := gfx.NewArena()
	positions := ring(5)
	c := Build(arena, positions, Spec{Neighbors: 2, Segments: 24, Arch: 0.18, MinOffset: 2})
	require.Len(t, c.Curves, len(Neighbors(positions, 2)))
	assert.Equal(t, len(c.Curves), arena.Len())

	for _, cv := range c.Curves {
		pts := cv.Geometry.Positions
		require.Len(t, pts, 25)
		assert.InDelta(t, 0, pts[0].DistanceTo(positions[cv.From]), 1e-5)
		assert.InDelta(t, 0, pts[24].DistanceTo(positions[cv.To]), 1e-5)
	}
	assert.Equal(t, Neighbors(positions, 2), c.Edges())
}
