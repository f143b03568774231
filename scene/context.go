// Package scene is the galaxy runtime: one owned Context per mount holding the particle
// fields, node visuals, constellation, camera, picker, focus controller, and tweens
// Everything runs on one logical thread; the host delivers input between frames
package scene

import (
	"fmt"
	"log"
	"sync"
	"time"

	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/constellation"
	"github.com/lixenwraith/vi-galaxy/field"
	"github.com/lixenwraith/vi-galaxy/gfx"
	"github.com/lixenwraith/vi-galaxy/layout"
	"github.com/lixenwraith/vi-galaxy/site"
	"github.com/lixenwraith/vi-galaxy/tween"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Context is one mounted scene
type Context struct {
	Config Config

	Camera *camera.Camera
	Orbit  *camera.Orbit
	Tweens *tween.Manager
	Arena  *gfx.Arena

	Galaxy        *field.Pool
	Deep          *field.Pool
	Nodes         *layout.Layout
	Constellation *constellation.Constellation

	Picker *Picker
	Focus  *Focus

	callbacks Callbacks
	renderer  Renderer
	detach    []func()

	disturbance field.Disturbance

	started bool
	last    time.Time
	elapsed float32
	delta   float32

	inFrame  bool
	deferred []func()

	closeOnce sync.Once
	closed    bool
}

// New mounts a scene for sites into host
// The site list is read-only for the mount's lifetime; changing it means Close and New
func New(host Host, sites []*site.Node, cfg Config, cb Callbacks, r Renderer) (*Context, error) {
	arena := gfx.NewArena()
	rng := randx.NewSysRand(cfg.Seed)

	w, h := host.Size()
	c := &Context{
		Config:      cfg,
		Camera:      camera.New(cfg.Camera.Base, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, cfg.Camera.CellAspect, w, h),
		Orbit:       camera.NewOrbit(cfg.Orbit),
		Tweens:      tween.NewManager(),
		Arena:       arena,
		callbacks:   cb,
		renderer:    r,
		disturbance: cfg.Disturbance.Disturbance,
	}

	nodes, err := layout.Build(arena, sites, cfg.Node, rng)
	if err != nil {
		arena.Release()
		return nil, fmt.Errorf("mount scene: %w", err)
	}
	c.Nodes = nodes
	c.Constellation = constellation.Build(arena, nodes.Positions(), cfg.Constellation)
	c.Galaxy = field.NewDisk(arena, cfg.Disk, rng)
	c.Deep = field.NewShell(arena, cfg.Shell, rng)

	c.Picker = newPicker(c, cfg.Pointer)
	c.Focus = newFocus(c, cfg.Camera)

	c.detach = append(c.detach, host.Subscribe(c.Handle))
	log.Printf("scene: mounted %d nodes, %d edges, %d+%d particles, %d resources",
		nodes.Len(), len(c.Constellation.Curves), c.Galaxy.Len(), c.Deep.Len(), arena.Len())
	return c, nil
}

// Elapsed returns accumulated scene seconds
func (c *Context) Elapsed() float32 { return c.elapsed }

// Delta returns the last frame's clamped delta in seconds
func (c *Context) Delta() float32 { return c.delta }

// DisturbanceWeight returns the current pointer disturbance blend
func (c *Context) DisturbanceWeight() float32 { return c.disturbance.Weight }

// Hover returns the external hover state
func (c *Context) Hover() Hover { return c.Picker.Hover() }

// Closed reports whether Close has run
func (c *Context) Closed() bool { return c.closed }

// Handle dispatches one host event
func (c *Context) Handle(ev Event) {
	c.run(func() {
		p := c.Picker
		switch ev.Kind {
		case PointerMove:
			p.OnPointerMove(ev.X, ev.Y)
		case PointerDown:
			p.OnPointerDown(ev.X, ev.Y)
		case PointerUp:
			p.OnPointerUp()
		case PointerLeave:
			p.OnPointerLeave()
		case Click:
			p.OnClick()
		case Wheel:
			c.Orbit.Wheel(ev.Notches)
		case Resize:
			c.Camera.Resize(ev.Width, ev.Height)
		}
	})
}

// SetFocus drives the focus controller; nil returns to overview
func (c *Context) SetFocus(n *site.Node) {
	c.run(func() { c.Focus.Request(n) })
}

// run executes fn now, or after the current frame when called from inside one
func (c *Context) run(fn func()) {
	if c.closed {
		return
	}
	if c.inFrame {
		c.deferred = append(c.deferred, fn)
		return
	}
	fn()
}

// Step advances the scene to now and renders one frame
func (c *Context) Step(now time.Time) {
	if c.closed {
		return
	}
	c.inFrame = true
	c.step(now)
	c.inFrame = false

	for len(c.deferred) > 0 && !c.closed {
		fn := c.deferred[0]
		c.deferred = c.deferred[1:]
		fn()
	}
	c.deferred = nil
}

func (c *Context) step(now time.Time) {
	if !c.started {
		c.started = true
		c.last = now
	}
	d := now.Sub(c.last)
	c.last = now
	d = max(0, min(d, c.Config.MaxFrameDelta))
	dt := float32(d.Seconds())
	c.delta = dt
	c.elapsed += dt

	c.Tweens.Update(dt)

	locked := c.Focus.Locked()

	// Disturbance weight and target approach their goals exponentially
	goalWeight := float32(0)
	if c.Picker.Active() && !locked {
		goalWeight = 1
	}
	dist := &c.disturbance
	if goal, ok := c.Picker.DisturbanceTarget(c.Config.Disturbance.RayDistance); ok {
		if dist.Weight <= dist.Threshold {
			dist.Target = goal
		} else {
			dist.Target = dist.Target.Lerp(goal, vmath.DampFactor(c.Config.Disturbance.BlendRate, dt))
		}
	}
	dist.Weight = vmath.Damp(dist.Weight, goalWeight, c.Config.Disturbance.BlendRate, dt)

	c.Galaxy.Step(c.elapsed, c.Config.Swirl, dist)
	c.Galaxy.Rotate(c.elapsed)
	c.Deep.Rotate(c.elapsed)

	if !locked {
		c.Nodes.Spin(dt)
		c.Constellation.Spin(c.Config.Node.RotationRate, dt)
		c.Nodes.Animate(c.elapsed)
		c.Picker.HitTest()
	} else if c.Picker.Hovered() != nil {
		c.Picker.ClearHover()
	}

	c.Nodes.Fade(c.Config.Label, func(v *layout.Visual) float32 {
		return c.Camera.Position.DistanceTo(c.Nodes.LabelWorld(v))
	})

	c.Orbit.Update(c.Camera, dt)

	if c.renderer != nil {
		c.renderer.Render(c)
	}
}

// Close tears the scene down: tweens are cancelled and listeners detached before any
// resource is released. Safe to call more than once
func (c *Context) Close() {
	c.closeOnce.Do(func() {
		c.closed = true
		tweens := c.Tweens.CancelAll()
		for _, d := range c.detach {
			d()
		}
		listeners := len(c.detach)
		c.detach = nil
		c.deferred = nil
		released := c.Arena.Release()
		log.Printf("scene: closed, cancelled %d tweens, detached %d listeners, released %d resources",
			tweens, listeners, released)
	})
}

func (c *Context) emitHover(h Hover) {
	if c.callbacks.OnHoverChange != nil {
		c.callbacks.OnHoverChange(h)
	}
}

func (c *Context) emitSelect(n *site.Node) {
	if c.callbacks.OnNodeSelect != nil {
		c.callbacks.OnNodeSelect(n)
	}
}

func (c *Context) emitFocusComplete(n *site.Node) {
	if c.callbacks.OnFocusComplete != nil {
		c.callbacks.OnFocusComplete(n)
	}
}

// ScreenOf projects a world point to cell coordinates
func (c *Context) ScreenOf(p math32.Vector3) (x, y float32, ok bool) {
	x, y, _, ok = c.Camera.Project(p)
	return x, y, ok
}
