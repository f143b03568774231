package layout

import (
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-galaxy/gfx"
	"github.com/lixenwraith/vi-galaxy/site"
)

// Outline resolution for sphere and ring geometries
const (
	sphereRings    = 6
	sphereSegments = 12
	ringSegments   = 32
)

// Mesh is the node sphere
type Mesh struct {
	Geometry  *gfx.Geometry // unit sphere outline, scaled by Radius at render
	Material  *gfx.Material
	Radius    float32
	HitRadius float32
}

// Ring is the flat grounding ring in the node's XZ plane
type Ring struct {
	Geometry *gfx.Geometry // unit circle
	Material *gfx.Material
	Inner    float32
	Outer    float32
	Angle    float32
}

// Label is the billboard text sprite
type Label struct {
	Texture  *gfx.Texture
	Material *gfx.Material
	Width    float32 // world units at unit scale
	Height   float32
	Offset   float32 // above node center

	// Per-frame fade by camera distance
	Scale   float32
	Opacity float32
}

// Visual is the composite for one site
// Phase and Speed are fixed at construction
type Visual struct {
	Site   *site.Node
	Index  int
	Origin math32.Vector3

	Mesh  Mesh
	Ring  Ring
	Label Label

	Phase       float32
	Speed       float32
	FloatOffset float32

	// Scale is the hover emphasis, 1 at rest
	Scale float32
}

// Local returns the animated position before group rotation
func (v *Visual) Local() math32.Vector3 {
	return math32.Vec3(v.Origin.X, v.Origin.Y+v.FloatOffset, v.Origin.Z)
}

// HitRadius is the picking radius including hover emphasis
func (v *Visual) HitRadius() float32 {
	return v.Mesh.HitRadius * v.Scale
}

func newVisual(arena *gfx.Arena, n *site.Node, index int, pos math32.Vector3, spec NodeSpec, rng randx.Rand) *Visual {
	col := n.Color.Colorful()
	cols := labelCols(n.Name)
	tex := arena.Texture(gfx.NewTextTexture("label:"+n.ID, n.Name, cols))

	v := &Visual{
		Site:   n,
		Index:  index,
		Origin: pos,
		Mesh: Mesh{
			Geometry:  arena.Geometry(sphereOutline("sphere:" + n.ID)),
			Material:  arena.Material(gfx.NewMaterial("sphere:"+n.ID, col, false)),
			Radius:    spec.Radius,
			HitRadius: spec.HitRadius,
		},
		Ring: Ring{
			Geometry: arena.Geometry(circle("ring:"+n.ID, ringSegments)),
			Material: ringMaterial(arena, n.ID, col),
			Inner:    spec.RingInner,
			Outer:    spec.RingOuter,
		},
		Label: Label{
			Texture:  tex,
			Material: arena.Material(gfx.NewMaterial("label:"+n.ID, colorful.Color{R: 1, G: 1, B: 1}, false)),
			Height:   spec.LabelHeight,
			Width:    spec.LabelHeight * tex.Aspect(spec.GlyphAspect),
			Offset:   spec.LabelOffset,
			Scale:    1,
			Opacity:  1,
		},
		Phase: rng.Float32() * 2 * math32.Pi,
		Speed: spec.FloatSpeedMin + rng.Float32()*(spec.FloatSpeedMax-spec.FloatSpeedMin),
		Scale: 1,
	}
	return v
}

func ringMaterial(arena *gfx.Arena, id string, col colorful.Color) *gfx.Material {
	m := gfx.NewMaterial("ring:"+id, col, true)
	m.Opacity = 0.6
	return arena.Material(m)
}

// sphereOutline samples latitude rings of a unit sphere plus both poles
func sphereOutline(name string) *gfx.Geometry {
	g := gfx.NewGeometry(name, 0)
	g.Positions = append(g.Positions, math32.Vec3(0, 1, 0))
	for i := 1; i < sphereRings; i++ {
		polar := math32.Pi * float32(i) / sphereRings
		sp, cp := math32.Sincos(polar)
		for j := 0; j < sphereSegments; j++ {
			az := 2 * math32.Pi * float32(j) / sphereSegments
			sa, ca := math32.Sincos(az)
			g.Positions = append(g.Positions, math32.Vec3(sp*ca, cp, sp*sa))
		}
	}
	g.Positions = append(g.Positions, math32.Vec3(0, -1, 0))
	return g
}

// circle samples a unit circle in the XZ plane
func circle(name string, segments int) *gfx.Geometry {
	g := gfx.NewGeometry(name, segments)
	for i := range g.Positions {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		s, c := math32.Sincos(a)
		g.Positions[i] = math32.Vec3(c, 0, s)
	}
	return g
}
