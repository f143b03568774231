// Package gfx defines the scene's allocated graphics resources and the arena that owns them
// Every geometry, material, and texture created at mount is tracked by one Arena and
// released in bulk at teardown
package gfx

import (
	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Resource is anything holding buffers that must be released with the scene
type Resource interface {
	Release()
	Released() bool
}

// Geometry is a vertex buffer: particle positions, curve polylines, sphere or ring outlines
type Geometry struct {
	Name      string
	Positions []math32.Vector3
	released  bool
}

// NewGeometry allocates a geometry with n zeroed vertices
func NewGeometry(name string, n int) *Geometry {
	return &Geometry{Name: name, Positions: make([]math32.Vector3, n)}
}

// Release drops the vertex buffer
func (g *Geometry) Release() {
	g.Positions = nil
	g.released = true
}

// Released reports whether the geometry has been released
func (g *Geometry) Released() bool { return g.released }

// Material is surface appearance: base color, opacity, additive blending
type Material struct {
	Name     string
	Color    colorful.Color
	Opacity  float32
	Additive bool
	released bool
}

// NewMaterial creates an opaque material
func NewMaterial(name string, c colorful.Color, additive bool) *Material {
	return &Material{Name: name, Color: c, Opacity: 1, Additive: additive}
}

func (m *Material) Release()       { m.released = true }
func (m *Material) Released() bool { return m.released }

// Texture is a rasterized glyph grid for a billboard label
type Texture struct {
	Name     string
	Cells    []rune
	Cols     int
	Rows     int
	released bool
}

// NewTextTexture rasterizes a single-line label, cols is the rendered glyph width in cells
func NewTextTexture(name, text string, cols int) *Texture {
	return &Texture{Name: name, Cells: []rune(text), Cols: cols, Rows: 1}
}

// Aspect is rendered width over height given the glyph cell aspect (width/height of one cell)
func (t *Texture) Aspect(glyphAspect float32) float32 {
	if t.Rows == 0 {
		return 0
	}
	return float32(t.Cols) * glyphAspect / float32(t.Rows)
}

func (t *Texture) Release() {
	t.Cells = nil
	t.released = true
}

func (t *Texture) Released() bool { return t.released }
