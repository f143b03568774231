package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/scene"
	"github.com/lixenwraith/vi-galaxy/site"
)

// Overlay palette
var (
	panelBg  = render.RGB{R: 14, G: 16, B: 32}
	panelFg  = render.RGB{R: 200, G: 206, B: 230}
	panelDim = render.RGB{R: 110, G: 118, B: 150}
	statusBg = render.RGB{R: 22, G: 24, B: 44}
	pausedFg = render.RGB{R: 255, G: 196, B: 64}
)

const (
	previewW   = 38
	tooltipPad = 1
)

// tooltip follows the pointer while a node is hovered
type tooltip struct{}

func (tooltip) Draw(cv *render.Canvas, c *scene.Context) {
	hv := c.Hover()
	if hv.Site == nil {
		return
	}
	w, h := cv.Size()
	lines := []string{hv.Site.Name}
	if hv.Site.URL != "" {
		lines = append(lines, runewidth.Truncate(hv.Site.URL, 40, "…"))
	}

	bw := 0
	for _, l := range lines {
		bw = max(bw, runewidth.StringWidth(l))
	}
	bw += 2 * tooltipPad
	bh := len(lines)

	x := int(hv.X) + 2
	y := int(hv.Y) + 1
	if x+bw > w {
		x = int(hv.X) - bw - 1
	}
	if y+bh > h-1 {
		y = int(hv.Y) - bh
	}
	x = max(0, x)
	y = max(0, y)

	cv.Box(x, y, bw, bh, panelBg)
	accent := render.FromColorful(hv.Site.Color.Colorful())
	cv.Text(x+tooltipPad, y, lines[0], accent, tcell.AttrBold)
	for i, l := range lines[1:] {
		cv.Text(x+tooltipPad, y+1+i, l, panelDim, tcell.AttrNone)
	}
}

// preview describes the focused node once the camera has arrived
type preview struct{}

func (preview) Draw(cv *render.Canvas, c *scene.Context) {
	n := c.Focus.Target()
	if n == nil || c.Focus.Transitioning() {
		return
	}
	w, h := cv.Size()
	if w < previewW+10 {
		return
	}

	lines := previewLines(n, previewW-4)
	x, y := w-previewW-2, 1
	bh := min(len(lines)+2, h-3)
	cv.Box(x, y, previewW, bh, panelBg)

	accent := render.FromColorful(n.Color.Colorful())
	for i, l := range lines {
		if i+2 > bh {
			break
		}
		fg, attrs := panelFg, tcell.AttrNone
		switch i {
		case 0:
			fg, attrs = accent, tcell.AttrBold
		case 1:
			fg = panelDim
		}
		cv.Text(x+2, y+1+i, l, fg, attrs)
	}
}

// previewLines lays out the name, category and URL, then the description wrapped to width
func previewLines(n *site.Node, width int) []string {
	lines := []string{runewidth.Truncate(n.Name, width, "…")}
	meta := n.Category
	if n.URL != "" {
		if meta != "" {
			meta += " · "
		}
		meta += n.URL
	}
	lines = append(lines, runewidth.Truncate(meta, width, "…"), "")
	return append(lines, wrap(n.Description, width)...)
}

// wrap breaks s into lines of at most width display columns on word boundaries
func wrap(s string, width int) []string {
	var lines []string
	var line strings.Builder
	cols := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		if cols > 0 && cols+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			cols = 0
		}
		if cols > 0 {
			line.WriteByte(' ')
			cols++
		}
		line.WriteString(word)
		cols += ww
	}
	if cols > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// statusBar shows mount size, focus state, pause and key hints on the last row
type statusBar struct {
	app *app
}

func (s statusBar) Draw(cv *render.Canvas, c *scene.Context) {
	w, h := cv.Size()
	if h < 2 {
		return
	}
	y := h - 1
	cv.Box(0, y, w, 1, statusBg)

	state := c.Focus.State().String()
	if n := c.Focus.Target(); n != nil {
		state += " " + n.Name
	}
	left := fmt.Sprintf(" ✦ %d sites  %s", c.Nodes.Len(), state)
	x := cv.Text(0, y, left, panelFg, tcell.AttrNone)

	if s.app.clock.IsPaused() {
		cv.Text(x+2, y, "PAUSED", pausedFg, tcell.AttrBold)
	}
	if s.app.cues.Muted() {
		cv.Text(x+10, y, "muted", panelDim, tcell.AttrNone)
	}

	hints := "drag orbit · wheel zoom · tab next · esc back · p pause · m mute · q quit "
	if hw := runewidth.StringWidth(hints); hw < w-x-18 {
		cv.Text(w-hw, y, hints, panelDim, tcell.AttrNone)
	}
}
