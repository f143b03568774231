package scene

import (
	"log"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/site"
	"github.com/lixenwraith/vi-galaxy/tween"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Tween keys for the two camera writers
const (
	keyCameraPosition tween.Key = "camera.position"
	keyCameraTarget   tween.Key = "camera.target"
)

// FocusState is the camera state machine's state
type FocusState int

const (
	Overview FocusState = iota
	Focused
)

func (s FocusState) String() string {
	if s == Focused {
		return "focused"
	}
	return "overview"
}

// Focus moves the camera between the overview pose and one node
// A request always supersedes the transition in flight; requests never queue
type Focus struct {
	c    *Context
	spec CameraSpec

	state  FocusState
	target *site.Node
	seq    uint64
}

func newFocus(c *Context, spec CameraSpec) *Focus {
	return &Focus{c: c, spec: spec}
}

// State returns the current state
func (f *Focus) State() FocusState { return f.state }

// Target returns the focused site, or nil in overview
func (f *Focus) Target() *site.Node { return f.target }

// Locked reports whether orbiting and hover are suspended
func (f *Focus) Locked() bool { return f.state == Focused }

// Transitioning reports whether a camera tween is in flight
func (f *Focus) Transitioning() bool {
	return f.c.Tweens.Active(keyCameraPosition) || f.c.Tweens.Active(keyCameraTarget)
}

// Request focuses n, or returns to overview when n is nil
// Re-requesting the current state is a no-op
func (f *Focus) Request(n *site.Node) {
	switch {
	case n == nil && f.state == Overview:
		return
	case n != nil && f.state == Focused && f.target.ID == n.ID:
		return
	}

	f.c.Picker.ClearHover()
	f.seq++
	f.c.Tweens.Cancel(keyCameraPosition)
	f.c.Tweens.Cancel(keyCameraTarget)

	if n == nil {
		f.overview()
		return
	}
	f.focus(n)
}

func (f *Focus) focus(n *site.Node) {
	f.state = Focused
	f.target = n
	f.c.Orbit.Enabled = false
	f.c.Orbit.Stop()

	world := n.Position
	if v, ok := f.c.Nodes.At(n.ID); ok {
		world = f.c.Nodes.World(v)
	}
	cam := f.c.Camera
	approach := vmath.SafeNormal(cam.Position.Sub(world), vmath.SafeNormal(f.spec.Approach, math32.Vec3(0, 0, 1)))
	dest := world.Add(approach.MulScalar(f.spec.FocusDistance))

	seq := f.seq
	pos := tween.Vector(cam.Position, dest, f.spec.FocusDuration, vmath.EaseOutQuart, func(v math32.Vector3) {
		cam.Position = v
	})
	pos.OnComplete = func() {
		if f.seq == seq {
			f.c.emitFocusComplete(n)
		}
	}
	f.c.Tweens.Start(keyCameraPosition, pos)
	f.c.Tweens.Start(keyCameraTarget, tween.Vector(cam.Target, world, f.spec.FocusDuration, vmath.EaseOutQuart, func(v math32.Vector3) {
		cam.Target = v
	}))
	log.Printf("scene: focus %s", n.ID)
}

func (f *Focus) overview() {
	f.state = Overview
	f.target = nil
	f.c.Orbit.Enabled = true

	cam := f.c.Camera
	f.c.Tweens.Start(keyCameraPosition, tween.Vector(cam.Position, f.spec.Base.Position, f.spec.ReturnDuration, vmath.EaseInOutCubic, func(v math32.Vector3) {
		cam.Position = v
	}))
	f.c.Tweens.Start(keyCameraTarget, tween.Vector(cam.Target, f.spec.Base.Target, f.spec.ReturnDuration, vmath.EaseInOutCubic, func(v math32.Vector3) {
		cam.Target = v
	}))
	log.Printf("scene: overview")
}
