package render

import (
	"cogentcore.org/core/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
	wide  bool // continuation of a double-width rune
}

// Canvas is a cell compositor with a depth buffer for solid geometry
type Canvas struct {
	cells   []Cell
	depth   []float32
	touched []bool
	width   int
	height  int
}

// NewCanvas creates a canvas with the specified dimensions
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Size returns the canvas dimensions
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (c *Canvas) Resize(width, height int) {
	size := max(0, width*height)
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
		c.depth = make([]float32, size)
		c.touched = make([]bool, size)
	} else {
		c.cells = c.cells[:size]
		c.depth = c.depth[:size]
		c.touched = c.touched[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets all cells using exponential copy
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = Cell{Fg: RGBWhite, Bg: RgbBackground}
	c.depth[0] = math32.Inf(1)
	c.touched[0] = false
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
		copy(c.depth[filled:], c.depth[:filled])
		copy(c.touched[filled:], c.touched[:filled])
	}
}

// inBounds returns true if in canvas bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at x, y
func (c *Canvas) Get(x, y int) (Cell, bool) {
	if !c.inBounds(x, y) {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

// Set composites a cell with the given blend mode, ignoring depth
func (c *Canvas) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	dst := &c.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
		dst.Attrs = tcell.AttrNone
		dst.wide = false
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
		c.touched[idx] = true
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
}

// Plot writes a glyph if depth is not behind what the cell already holds
func (c *Canvas) Plot(x, y int, depth float32, r rune, fg RGB, attrs tcell.AttrMask) bool {
	if !c.inBounds(x, y) {
		return false
	}
	idx := y*c.width + x
	if depth > c.depth[idx] {
		return false
	}
	c.depth[idx] = depth
	dst := &c.cells[idx]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
	dst.wide = false
	return true
}

// Fill sets a depth-tested background, keeping the glyph
func (c *Canvas) Fill(x, y int, depth float32, bg RGB, alpha float64) bool {
	if !c.inBounds(x, y) {
		return false
	}
	idx := y*c.width + x
	if depth > c.depth[idx] {
		return false
	}
	c.depth[idx] = depth
	c.cells[idx].Bg = Blend(c.cells[idx].Bg, bg, alpha)
	c.cells[idx].Rune = ' '
	c.touched[idx] = true
	return true
}

// Glow screen-blends a background light if depth is not behind the cell, without claiming depth
func (c *Canvas) Glow(x, y int, depth float32, bg RGB, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	if depth > c.depth[idx] {
		return
	}
	c.cells[idx].Bg = Screen(c.cells[idx].Bg, bg, alpha)
	c.touched[idx] = true
}

// Blit composites a glyph if depth is not behind the cell, without claiming depth
func (c *Canvas) Blit(x, y int, depth float32, r rune, fg RGB, mode BlendMode, alpha float64) bool {
	if !c.inBounds(x, y) {
		return false
	}
	if depth > c.depth[y*c.width+x] {
		return false
	}
	c.Set(x, y, r, fg, RGB{}, mode, alpha)
	return true
}

// Label writes s from x with a depth test per glyph, returning the end column
func (c *Canvas) Label(x, y int, depth float32, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c.Plot(x, y, depth, r, fg, attrs) && w == 2 && c.inBounds(x+1, y) {
			idx := y*c.width + x + 1
			c.cells[idx].wide = true
			c.depth[idx] = depth
		}
		x += w
	}
	return x
}

// Text writes s left to right from x, honoring double-width glyphs, and returns the end column
func (c *Canvas) Text(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c.inBounds(x, y) {
			idx := y*c.width + x
			c.cells[idx] = Cell{Rune: r, Fg: fg, Bg: c.cells[idx].Bg, Attrs: attrs}
			c.depth[idx] = 0
			if w == 2 && c.inBounds(x+1, y) {
				c.cells[idx+1].wide = true
				c.depth[idx+1] = 0
			}
		}
		x += w
	}
	return x
}

// Box fills a rectangle background, clearing glyphs
func (c *Canvas) Box(x, y, w, h int, bg RGB) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.Set(xx, yy, ' ', RGB{}, bg, BlendReplace, 1)
		}
	}
}

// Flush writes the canvas to screen and shows it
func (c *Canvas) Flush(screen tcell.Screen) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			idx := y*c.width + x
			cell := c.cells[idx]
			if cell.wide {
				continue
			}
			bg := cell.Bg
			if !c.touched[idx] {
				bg = RgbBackground
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(cell.Fg.Tcell()).Background(bg.Tcell()).Attributes(cell.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
