// Package layout places site nodes in space and builds one visual composite per node:
// a pickable sphere, a flat ring, and a billboard label under one transform
package layout

import (
	"fmt"
	"log"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/math32"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-galaxy/gfx"
	"github.com/lixenwraith/vi-galaxy/site"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// NodeSpec tunes placement and visuals
type NodeSpec struct {
	InnerRadius float32    `toml:"inner_radius"`
	OuterRadius float32    `toml:"outer_radius"`
	Bands       [3]float32 `toml:"bands"`

	Radius      float32 `toml:"radius"`
	HitRadius   float32 `toml:"hit_radius"`
	RingInner   float32 `toml:"ring_inner"`
	RingOuter   float32 `toml:"ring_outer"`
	LabelHeight float32 `toml:"label_height"`
	LabelOffset float32 `toml:"label_offset"`
	GlyphAspect float32 `toml:"glyph_aspect"`

	FloatAmplitude float32 `toml:"float_amplitude"`
	FloatSpeedMin  float32 `toml:"float_speed_min"`
	FloatSpeedMax  float32 `toml:"float_speed_max"`
	RingSpinRate   float32 `toml:"ring_spin_rate"`
	RotationRate   float32 `toml:"rotation_rate"`
}

// Layout is the node group: visuals keyed by site id in insertion order
type Layout struct {
	Spec    NodeSpec
	Visuals *keylist.List[string, *Visual]

	// Rotation is the group's accumulated Y rotation
	Rotation float32
}

// OrbitPosition is the deterministic slot for index i of total:
// radius alternates by parity, height cycles through three bands, angle spreads evenly
func OrbitPosition(spec NodeSpec, i, total int) math32.Vector3 {
	r := spec.InnerRadius
	if i%2 == 1 {
		r = spec.OuterRadius
	}
	y := spec.Bands[i%3]
	angle := float32(0)
	if total > 0 {
		angle = 2 * math32.Pi * float32(i) / float32(total)
	}
	s, c := math32.Sincos(angle)
	return math32.Vec3(r*c, y, r*s)
}

// Build creates one Visual per node, tracking every allocated resource in arena
// Duplicate ids break the one-visual-per-id lookup and are rejected
func Build(arena *gfx.Arena, nodes []*site.Node, spec NodeSpec, rng randx.Rand) (*Layout, error) {
	l := &Layout{Spec: spec, Visuals: keylist.New[string, *Visual]()}
	for i, n := range nodes {
		pos := n.Position
		if !n.HasPosition {
			pos = OrbitPosition(spec, i, len(nodes))
		}
		v := newVisual(arena, n, i, pos, spec, rng)
		if err := l.Visuals.Add(n.ID, v); err != nil {
			return nil, fmt.Errorf("layout node %d %q: %w", i, n.Name, err)
		}
	}
	log.Printf("layout: %d nodes", l.Len())
	return l, nil
}

// Len returns the number of visuals
func (l *Layout) Len() int {
	return l.Visuals.Len()
}

// At looks up a visual by site id
func (l *Layout) At(id string) (*Visual, bool) {
	return l.Visuals.AtTry(id)
}

// Each visits visuals in insertion order
func (l *Layout) Each(fn func(v *Visual)) {
	for _, v := range l.Visuals.Values {
		fn(v)
	}
}

// Positions returns the fixed node origins in insertion order
func (l *Layout) Positions() []math32.Vector3 {
	out := make([]math32.Vector3, 0, l.Len())
	for _, v := range l.Visuals.Values {
		out = append(out, v.Origin)
	}
	return out
}

// World returns v's animated position with group rotation applied
func (l *Layout) World(v *Visual) math32.Vector3 {
	return vmath.RotateY(v.Local(), l.Rotation)
}

// LabelWorld returns the label anchor above v
func (l *Layout) LabelWorld(v *Visual) math32.Vector3 {
	p := l.World(v)
	p.Y += v.Label.Offset * v.Scale
	return p
}

// Spin advances group rotation by dt
func (l *Layout) Spin(dt float32) {
	l.Rotation = vmath.Wrap(l.Rotation + l.Spec.RotationRate*dt)
}

// Animate recomputes float offsets and ring angles for elapsed seconds
func (l *Layout) Animate(elapsed float32) {
	for _, v := range l.Visuals.Values {
		v.FloatOffset = math32.Sin(elapsed*v.Speed+v.Phase) * l.Spec.FloatAmplitude
		v.Ring.Angle = vmath.Wrap(elapsed * l.Spec.RingSpinRate)
	}
}

// labelCols is the rendered glyph width of the label text
func labelCols(text string) int {
	return max(1, runewidth.StringWidth(text))
}
