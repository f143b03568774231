package scene

import (
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/layout"
	"github.com/lixenwraith/vi-galaxy/tween"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Picker tracks the pointer, hit tests nodes, and tells clicks from drags
type Picker struct {
	c    *Context
	spec PointerSpec

	// NDC position, or OffCanvas on both axes when the pointer is outside
	ndcX, ndcY float32
	// Last known cell position
	screenX, screenY float32

	down         bool
	downX, downY float32
	lastX, lastY float32
	drag         float32

	ray    camera.Ray
	hasRay bool

	hovered *layout.Visual
	cursor  Cursor
}

func newPicker(c *Context, spec PointerSpec) *Picker {
	return &Picker{c: c, spec: spec, ndcX: spec.OffCanvas, ndcY: spec.OffCanvas}
}

// Active reports whether the pointer is over the viewport
func (p *Picker) Active() bool {
	return p.ndcX != p.spec.OffCanvas || p.ndcY != p.spec.OffCanvas
}

// Drag returns the largest distance travelled from the pointer-down origin
func (p *Picker) Drag() float32 { return p.drag }

// Down reports whether the pointer button is held
func (p *Picker) Down() bool { return p.down }

// Hovered returns the hovered visual, or nil
func (p *Picker) Hovered() *layout.Visual { return p.hovered }

// Cursor returns the pointer affordance
func (p *Picker) Cursor() Cursor { return p.cursor }

// Screen returns the last known pointer cell position
func (p *Picker) Screen() (x, y float32) { return p.screenX, p.screenY }

// Hover returns the external hover state
func (p *Picker) Hover() Hover {
	h := Hover{X: p.screenX, Y: p.screenY}
	if p.hovered != nil {
		h.Site = p.hovered.Site
	}
	return h
}

// OnPointerMove updates coordinates, drag distance, orbit drag, and the disturbance ray
func (p *Picker) OnPointerMove(x, y float32) {
	cam := p.c.Camera
	p.screenX, p.screenY = x, y
	p.ndcX, p.ndcY = cam.ScreenToNDC(x, y)

	if p.down {
		dx, dy := x-p.downX, y-p.downY
		p.drag = max(p.drag, math32.Sqrt(dx*dx+dy*dy))
		p.c.Orbit.Drag(x-p.lastX, y-p.lastY)
	}
	p.lastX, p.lastY = x, y

	p.ray = cam.RayFromNDC(p.ndcX, p.ndcY)
	p.hasRay = true

	if p.hovered != nil {
		p.c.emitHover(p.Hover())
	}
}

// OnPointerDown starts a potential drag
func (p *Picker) OnPointerDown(x, y float32) {
	p.down = true
	p.drag = 0
	p.downX, p.downY = x, y
	p.lastX, p.lastY = x, y
}

// OnPointerUp ends a drag
func (p *Picker) OnPointerUp() {
	p.down = false
}

// OnPointerLeave parks the pointer off canvas; hover clears on the next hit test
func (p *Picker) OnPointerLeave() {
	p.ndcX, p.ndcY = p.spec.OffCanvas, p.spec.OffCanvas
	p.down = false
	p.hasRay = false
}

// OnClick selects the hovered node unless the click ended a drag, the camera is locked,
// or nothing is hovered
func (p *Picker) OnClick() {
	if p.drag > p.spec.DragThreshold || p.c.Focus.Locked() || p.hovered == nil {
		return
	}
	p.drag = 0
	p.c.emitSelect(p.hovered.Site)
}

// DisturbanceTarget is where the pointer ray meets the disk plane, or a point along the ray
// when the plane is behind the camera or too far away
func (p *Picker) DisturbanceTarget(rayDistance float32) (math32.Vector3, bool) {
	if !p.hasRay || !p.Active() {
		return math32.Vector3{}, false
	}
	if hit, ok := p.ray.IntersectPlaneY(0); ok && hit.DistanceTo(p.ray.Origin) <= rayDistance*2 {
		return hit, true
	}
	return p.ray.At(rayDistance), true
}

// HitTest casts the pointer ray against every node hit sphere and hovers the nearest
func (p *Picker) HitTest() {
	if !p.Active() {
		p.setHover(nil)
		return
	}
	ray := p.c.Camera.RayFromNDC(p.ndcX, p.ndcY)

	var best *layout.Visual
	bestT := math32.Inf(1)
	nodes := p.c.Nodes
	nodes.Each(func(v *layout.Visual) {
		if t, ok := ray.IntersectSphere(nodes.World(v), v.HitRadius()); ok && t < bestT {
			best, bestT = v, t
		}
	})
	p.setHover(best)
}

// ClearHover drops the hovered node
func (p *Picker) ClearHover() {
	p.setHover(nil)
}

func (p *Picker) setHover(v *layout.Visual) {
	if v == p.hovered {
		return
	}
	prev := p.hovered
	p.hovered = v
	if prev != nil {
		p.emphasize(prev, 1)
	}
	if v != nil {
		p.emphasize(v, p.spec.HoverScale)
		p.cursor = CursorPointer
	} else {
		p.cursor = CursorDefault
	}
	p.c.emitHover(p.Hover())
}

func (p *Picker) emphasize(v *layout.Visual, scale float32) {
	key := tween.Key("node:" + v.Site.ID + ":scale")
	p.c.Tweens.Start(key, tween.Scalar(v.Scale, scale, p.spec.HoverDuration, vmath.EaseOutBack, func(s float32) {
		v.Scale = s
	}))
}
