// Package render draws a mounted scene into a terminal through a depth-tested cell canvas
package render

import (
	"sort"

	"cogentcore.org/core/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/layout"
	"github.com/lixenwraith/vi-galaxy/scene"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// densityRamp maps accumulated particle density to glyphs
var densityRamp = []rune("·∙•✦✶")

// Overlay draws host chrome over a rendered frame
type Overlay interface {
	Draw(cv *Canvas, c *scene.Context)
}

// OverlayFunc adapts a function to Overlay
type OverlayFunc func(cv *Canvas, c *scene.Context)

// Draw implements Overlay
func (f OverlayFunc) Draw(cv *Canvas, c *scene.Context) { f(cv, c) }

// Theme holds the scene palette
type Theme struct {
	Core  colorful.Color // galaxy center
	Rim   colorful.Color // galaxy edge
	Deep  colorful.Color
	Focus colorful.Color // ring of the focused node
}

// DefaultTheme is a warm core fading to a blue rim over a cold backdrop
func DefaultTheme() Theme {
	return Theme{
		Core:  colorful.Color{R: 1, G: 0.86, B: 0.62},
		Rim:   colorful.Color{R: 0.36, G: 0.45, B: 1},
		Deep:  colorful.Color{R: 0.55, G: 0.6, B: 0.8},
		Focus: colorful.Color{R: 1, G: 1, B: 1},
	}
}

// Terminal renders scenes to a tcell screen
type Terminal struct {
	screen   tcell.Screen
	canvas   *Canvas
	theme    Theme
	disk     Gradient
	overlays []Overlay
	maxChars int

	// per-frame galaxy accumulation
	density []float32
	accum   []colorful.Color
}

// NewTerminal creates a renderer; maxChars is the label glyph budget at unit scale
func NewTerminal(screen tcell.Screen, theme Theme, maxChars int) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen:   screen,
		canvas:   NewCanvas(w, h),
		theme:    theme,
		disk:     NewGradient(theme.Core, theme.Rim, 32),
		maxChars: maxChars,
	}
}

// AddOverlay registers o to draw after the scene, in registration order
func (t *Terminal) AddOverlay(o Overlay) {
	t.overlays = append(t.overlays, o)
}

// Canvas exposes the compositor for tests and overlays
func (t *Terminal) Canvas() *Canvas { return t.canvas }

// Render implements scene.Renderer
func (t *Terminal) Render(c *scene.Context) {
	w, h := t.screen.Size()
	if cw, ch := t.canvas.Size(); cw != w || ch != h {
		t.canvas.Resize(w, h)
	} else {
		t.canvas.Clear()
	}

	t.drawDeep(c)
	t.drawGalaxy(c)
	t.drawCurves(c)
	t.drawNodes(c)
	t.drawLabels(c)
	for _, o := range t.overlays {
		o.Draw(t.canvas, c)
	}
	t.canvas.Flush(t.screen)
}

func round(v float32) int {
	return int(math32.Floor(v + 0.5))
}

func (t *Terminal) drawDeep(c *scene.Context) {
	cam := c.Camera
	base := FromColorful(t.theme.Deep)
	pool := c.Deep
	for i := range pool.Live {
		x, y, depth, ok := cam.Project(pool.World(i))
		if !ok || depth > cam.Far {
			continue
		}
		fade := 0.35 * float64(1-depth/cam.Far)
		t.canvas.Set(round(x), round(y), '.', Scale(base, fade), RGB{}, BlendMaxFg, 1)
	}
}

func (t *Terminal) drawGalaxy(c *scene.Context) {
	cam := c.Camera
	cw, ch := t.canvas.Size()
	n := cw * ch
	if cap(t.density) < n {
		t.density = make([]float32, n)
		t.accum = make([]colorful.Color, n)
	}
	t.density = t.density[:n]
	t.accum = t.accum[:n]
	clear(t.density)
	clear(t.accum)

	pool := c.Galaxy
	radius := c.Config.Disk.Radius
	for i := range pool.Live {
		x, y, depth, ok := cam.Project(pool.World(i))
		if !ok {
			continue
		}
		xi, yi := round(x), round(y)
		if xi < 0 || xi >= cw || yi < 0 || yi >= ch {
			continue
		}
		b := pool.Base[i]
		rt := float32(0)
		if radius > 0 {
			rt = vmath.Clamp(math32.Sqrt(b.X*b.X+b.Z*b.Z)/radius, 0, 1)
		}
		weight := 60 / max(depth, 1)
		col := t.disk.At(rt).Colorful()
		idx := yi*cw + xi
		t.density[idx] += weight
		a := &t.accum[idx]
		a.R += col.R * float64(weight)
		a.G += col.G * float64(weight)
		a.B += col.B * float64(weight)
	}

	for idx, d := range t.density {
		if d <= 0 {
			continue
		}
		a := t.accum[idx]
		avg := colorful.Color{R: a.R / float64(d), G: a.G / float64(d), B: a.B / float64(d)}
		level := min(int(d*0.8), len(densityRamp)-1)
		bright := 0.45 + 0.55*float64(vmath.Clamp(d/4, 0, 1))
		t.canvas.Set(idx%cw, idx/cw, densityRamp[level], Scale(FromColorful(avg), bright), RGB{}, BlendFgOnly, 1)
	}
}

func (t *Terminal) drawCurves(c *scene.Context) {
	cam := c.Camera
	visuals := c.Nodes.Visuals.Values
	for i, cv := range c.Constellation.Curves {
		from := FromColorful(visuals[cv.From].Site.Color.Colorful())
		to := FromColorful(visuals[cv.To].Site.Color.Colorful())
		pts := len(cv.Geometry.Positions)
		for p := 0; p+1 < pts; p++ {
			x0, y0, d0, ok0 := cam.Project(c.Constellation.World(i, p))
			x1, y1, d1, ok1 := cam.Project(c.Constellation.World(i, p+1))
			if !ok0 || !ok1 {
				continue
			}
			steps := max(1, round(max(math32.Abs(x1-x0), math32.Abs(y1-y0))))
			for s := 0; s <= steps; s++ {
				f := float32(s) / float32(steps)
				tc := (float32(p) + f) / float32(pts-1)
				col := Scale(Blend(from, to, float64(tc)), 0.5)
				t.canvas.Plot(round(vmath.Lerp(x0, x1, f)), round(vmath.Lerp(y0, y1, f)), vmath.Lerp(d0, d1, f), '·', col, tcell.AttrNone)
			}
		}
	}
}

type projected struct {
	v           *layout.Visual
	x, y, depth float32
	rows, cols  float32
	color       RGB
}

func (t *Terminal) drawNodes(c *scene.Context) {
	cam := c.Camera
	var projs []projected
	c.Nodes.Each(func(v *layout.Visual) {
		center := c.Nodes.World(v)
		x, y, depth, ok := cam.Project(center)
		if !ok {
			return
		}
		p := projected{
			v: v, x: x, y: y, depth: depth,
			color: FromColorful(v.Mesh.Material.Color),
		}
		p.cols, p.rows = silhouette(cam, v, center, x, y, depth)
		projs = append(projs, p)
	})
	// Far to near so glows layer correctly
	sort.Slice(projs, func(i, j int) bool { return projs[i].depth > projs[j].depth })

	for _, p := range projs {
		t.drawRing(c, p)
		t.drawSphere(p)
	}
}

// silhouette measures the projected half extents of the sphere outline around its center
// Falls back to the analytic radius when an outline vertex crosses the near plane
func silhouette(cam *camera.Camera, v *layout.Visual, center math32.Vector3, x, y, depth float32) (cols, rows float32) {
	r := v.Mesh.Radius * v.Scale
	for _, u := range v.Mesh.Geometry.Positions {
		px, py, _, ok := cam.Project(center.Add(u.MulScalar(r)))
		if !ok {
			rows = cam.ProjectedRadius(r, depth)
			return rows / cam.CellAspect, rows
		}
		cols = max(cols, math32.Abs(px-x))
		rows = max(rows, math32.Abs(py-y))
	}
	return cols, rows
}

func (t *Terminal) drawSphere(p projected) {
	cv := t.canvas
	if p.rows < 0.6 {
		cv.Plot(round(p.x), round(p.y), p.depth, '●', p.color, tcell.AttrBold)
		return
	}

	glow := float32(1.6)
	minX, maxX := round(p.x-p.cols*glow)-1, round(p.x+p.cols*glow)+1
	minY, maxY := round(p.y-p.rows*glow)-1, round(p.y+p.rows*glow)+1
	worldR := p.v.Mesh.Radius * p.v.Scale

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float32(sx) - p.x) / p.cols
			ny := (float32(sy) - p.y) / p.rows
			distSq := nx*nx + ny*ny
			if distSq > 2.5 {
				continue
			}
			if distSq <= 1 {
				nz := math32.Sqrt(1 - distSq)
				rim := (1 - nz) * (1 - nz) * 0.8
				core := float64(0)
				if d := math32.Sqrt(distSq) / 0.7; d < 1 {
					core = float64(1-d) * 0.5
				}
				col := Scale(p.color, float64(0.45+rim*0.6))
				col = Add(col, Scale(RGBWhite, core), 1)
				cv.Fill(sx, sy, p.depth-nz*worldR, col, 1)
				continue
			}
			falloff := float64(math32.Exp(-(math32.Sqrt(distSq)-1)*3)) * 0.5
			cv.Glow(sx, sy, p.depth, Scale(p.color, falloff), 0.7)
		}
	}
}

func (t *Terminal) drawRing(c *scene.Context, p projected) {
	cam := c.Camera
	v := p.v
	col := FromColorful(v.Ring.Material.Color)
	alpha := float64(v.Ring.Material.Opacity)
	switch {
	case c.Focus.Target() != nil && c.Focus.Target().ID == v.Site.ID:
		col, alpha = FromColorful(t.theme.Focus), 1
	case c.Picker.Hovered() == v:
		alpha = 1
	}
	additive := v.Ring.Material.Additive
	if !additive {
		col = Scale(col, alpha)
	}

	r := (v.Ring.Inner + v.Ring.Outer) / 2 * v.Scale
	center := c.Nodes.World(v)
	for _, u := range v.Ring.Geometry.Positions {
		local := vmath.RotateY(u.MulScalar(r), v.Ring.Angle+c.Nodes.Rotation)
		x, y, depth, ok := cam.Project(center.Add(local))
		if !ok {
			continue
		}
		if additive {
			t.canvas.Blit(round(x), round(y), depth, '∘', col, BlendAddFg, alpha)
		} else {
			t.canvas.Plot(round(x), round(y), depth, '∘', col, tcell.AttrNone)
		}
	}
}

// drawLabels writes each label texture centered above its node
// The glyph budget is the larger of the scaled character budget and the projected billboard width
func (t *Terminal) drawLabels(c *scene.Context) {
	cam := c.Camera
	hovered := c.Picker.Hovered()
	c.Nodes.Each(func(v *layout.Visual) {
		tex := v.Label.Texture
		x, y, depth, ok := cam.Project(c.Nodes.LabelWorld(v))
		if !ok || len(tex.Cells) == 0 {
			return
		}
		span := 2 * cam.ProjectedRadius(v.Label.Width*v.Label.Scale/2, depth) / cam.CellAspect
		budget := max(3, int(float32(t.maxChars)*v.Label.Scale), int(span))
		text := string(tex.Cells)
		if budget < tex.Cols {
			text = runewidth.Truncate(text, budget, "…")
		}
		width := runewidth.StringWidth(text)

		mat := v.Label.Material
		base := Blend(FromColorful(mat.Color), FromColorful(v.Mesh.Material.Color), 0.35)
		col := Scale(base, float64(v.Label.Opacity*mat.Opacity))
		attrs := tcell.AttrNone
		if v == hovered {
			col, attrs = RGBWhite, tcell.AttrBold
		}
		t.canvas.Label(round(x)-width/2, round(y), depth-v.Mesh.Radius, text, col, attrs)
	})
}
