package scene

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/engine"
	"github.com/lixenwraith/vi-galaxy/gfx"
	"github.com/lixenwraith/vi-galaxy/layout"
	"github.com/lixenwraith/vi-galaxy/site"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

const frame = 16 * time.Millisecond

type fakeHost struct {
	w, h     int
	handlers map[int]Handler
	next     int
}

func newFakeHost() *fakeHost {
	return &fakeHost{w: 160, h: 50, handlers: make(map[int]Handler)}
}

func (h *fakeHost) Size() (int, int) { return h.w, h.h }

func (h *fakeHost) Subscribe(fn Handler) func() {
	id := h.next
	h.next++
	h.handlers[id] = fn
	return func() { delete(h.handlers, id) }
}

func (h *fakeHost) send(ev Event) {
	for _, fn := range h.handlers {
		fn(ev)
	}
}

type recorder struct {
	selects   []*site.Node
	hovers    []Hover
	completes []*site.Node
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnNodeSelect:    func(n *site.Node) { r.selects = append(r.selects, n) },
		OnHoverChange:   func(h Hover) { r.hovers = append(r.hovers, h) },
		OnFocusComplete: func(n *site.Node) { r.completes = append(r.completes, n) },
	}
}

type countRenderer struct {
	frames int
	hook   func(c *Context)
}

func (r *countRenderer) Render(c *Context) {
	r.frames++
	if r.hook != nil {
		r.hook(c)
	}
}

func testSites() []*site.Node {
	pos := []math32.Vector3{
		math32.Vec3(-30, 0, 0),
		math32.Vec3(30, 0, 0),
		math32.Vec3(0, 0, -30),
		math32.Vec3(0, 0, 30),
		math32.Vec3(0, 10, 0),
	}
	sites := make([]*site.Node, len(pos))
	for i, p := range pos {
		sites[i] = &site.Node{
			ID:          string(rune('a' + i)),
			Name:        "Site " + string(rune('A'+i)),
			Color:       0x4fc3f7,
			Position:    p,
			HasPosition: true,
		}
	}
	return sites
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Disk.Count = 400
	cfg.Shell.Count = 50
	return cfg
}

type harness struct {
	t     *testing.T
	host  *fakeHost
	rec   *recorder
	rend  *countRenderer
	sites []*site.Node
	c     *Context
	now   time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		host:  newFakeHost(),
		rec:   &recorder{},
		rend:  &countRenderer{},
		sites: testSites(),
		now:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	c, err := New(h.host, h.sites, testConfig(), h.rec.callbacks(), h.rend)
	require.NoError(t, err)
	h.c = c
	h.step()
	return h
}

func (h *harness) step() {
	h.c.Step(h.now)
	h.now = h.now.Add(frame)
}

func (h *harness) run(d time.Duration) {
	for end := h.now.Add(d); h.now.Before(end); {
		h.step()
	}
}

func (h *harness) visual(id string) *layout.Visual {
	v, ok := h.c.Nodes.At(id)
	require.True(h.t, ok)
	return v
}

// screenOf returns the cell position of a node's current world center
func (h *harness) screenOf(id string) (float32, float32) {
	x, y, ok := h.c.ScreenOf(h.c.Nodes.World(h.visual(id)))
	require.True(h.t, ok)
	return x, y
}

// hover moves the pointer onto node id and runs a frame
func (h *harness) hover(id string) {
	x, y := h.screenOf(id)
	h.host.send(Event{Kind: PointerMove, X: x, Y: y})
	h.step()
	require.NotNil(h.t, h.c.Picker.Hovered())
	require.Equal(h.t, id, h.c.Picker.Hovered().Site.ID)
}

func TestMountOneVisualPerSite(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, len(h.sites), h.c.Nodes.Len())
	seen := make(map[string]bool)
	for i, id := range h.c.Nodes.Visuals.Keys {
		assert.Equal(t, h.sites[i].ID, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Equal(t, 400, h.c.Galaxy.Len())
	assert.Equal(t, 50, h.c.Deep.Len())
	assert.Len(t, h.host.handlers, 1)
}

func TestMountRejectsDuplicateIDs(t *testing.T) {
	sites := testSites()
	sites[3].ID = sites[1].ID
	host := newFakeHost()
	_, err := New(host, sites, testConfig(), Callbacks{}, nil)
	assert.Error(t, err)
	assert.Empty(t, host.handlers)
}

func TestParticleCountFixed(t *testing.T) {
	h := newHarness(t)
	h.host.send(Event{Kind: PointerMove, X: 80, Y: 25})
	h.run(time.Second)
	assert.Equal(t, 400, h.c.Galaxy.Len())
	assert.Len(t, h.c.Galaxy.Live, 400)
}

func TestHoverEmitsAndEmphasizes(t *testing.T) {
	h := newHarness(t)
	h.hover("a")

	require.NotEmpty(t, h.rec.hovers)
	last := h.rec.hovers[len(h.rec.hovers)-1]
	assert.Equal(t, "a", last.Site.ID)
	assert.Equal(t, CursorPointer, h.c.Picker.Cursor())

	h.run(500 * time.Millisecond)
	assert.InDelta(t, h.c.Config.Pointer.HoverScale, h.visual("a").Scale, 1e-3)

	// Motion while hovering reports the new coordinates
	n := len(h.rec.hovers)
	x, y := h.screenOf("a")
	h.host.send(Event{Kind: PointerMove, X: x + 0.2, Y: y})
	require.Len(t, h.rec.hovers, n+1)
	assert.InDelta(t, x+0.2, h.rec.hovers[n].X, 1e-5)

	// Leaving clears hover and restores scale
	h.host.send(Event{Kind: PointerLeave})
	h.step()
	assert.Nil(t, h.c.Picker.Hovered())
	assert.Nil(t, h.rec.hovers[len(h.rec.hovers)-1].Site)
	assert.Equal(t, CursorDefault, h.c.Picker.Cursor())
	h.run(500 * time.Millisecond)
	assert.InDelta(t, 1, h.visual("a").Scale, 1e-3)
}

func TestHitTestPicksNearest(t *testing.T) {
	h := newHarness(t)
	// Node a is first in order but sits behind node b on the ray through b's center
	va, vb := h.visual("a"), h.visual("b")
	va.Phase, va.Speed = vb.Phase, vb.Speed
	eye := vmath.RotateY(h.c.Camera.Position, -h.c.Nodes.Rotation)
	va.Origin = eye.Lerp(vb.Origin, 1.5)
	h.step()

	ray := camera.Ray{Origin: h.c.Camera.Position, Dir: h.c.Nodes.World(vb).Sub(h.c.Camera.Position).Normal()}
	ta, hitA := ray.IntersectSphere(h.c.Nodes.World(va), va.HitRadius())
	tb, hitB := ray.IntersectSphere(h.c.Nodes.World(vb), vb.HitRadius())
	require.True(t, hitA)
	require.True(t, hitB)
	require.Less(t, tb, ta)

	h.hover("b")
}

func TestClickSelectsHovered(t *testing.T) {
	h := newHarness(t)
	h.hover("a")
	x, y := h.screenOf("a")

	h.host.send(Event{Kind: PointerDown, X: x, Y: y})
	h.host.send(Event{Kind: PointerUp, X: x, Y: y})
	h.host.send(Event{Kind: Click, X: x, Y: y})

	require.Len(t, h.rec.selects, 1)
	assert.Equal(t, "a", h.rec.selects[0].ID)
	assert.Zero(t, h.c.Picker.Drag())
}

func TestClickAfterDragIgnored(t *testing.T) {
	h := newHarness(t)
	h.hover("a")
	x, y := h.screenOf("a")

	h.host.send(Event{Kind: PointerDown, X: x, Y: y})
	h.host.send(Event{Kind: PointerMove, X: x + 10, Y: y})
	h.host.send(Event{Kind: PointerMove, X: x, Y: y})
	h.host.send(Event{Kind: PointerUp, X: x, Y: y})

	require.NotNil(t, h.c.Picker.Hovered())
	assert.Greater(t, h.c.Picker.Drag(), h.c.Config.Pointer.DragThreshold)
	h.host.send(Event{Kind: Click, X: x, Y: y})
	assert.Empty(t, h.rec.selects)
}

func TestClickWithoutHoverIgnored(t *testing.T) {
	h := newHarness(t)
	h.host.send(Event{Kind: PointerMove, X: 0, Y: 0})
	h.step()
	require.Nil(t, h.c.Picker.Hovered())
	h.host.send(Event{Kind: Click})
	assert.Empty(t, h.rec.selects)
}

func TestClickIgnoredWhileLocked(t *testing.T) {
	h := newHarness(t)
	h.c.SetFocus(h.sites[1])
	require.True(t, h.c.Focus.Locked())

	// Force a hover past the suppression to isolate the lock check
	h.c.Picker.setHover(h.visual("a"))
	h.host.send(Event{Kind: Click})
	assert.Empty(t, h.rec.selects)
}

func TestHoverSuppressedWhileLocked(t *testing.T) {
	h := newHarness(t)
	h.hover("a")
	h.c.SetFocus(h.sites[0])
	assert.Nil(t, h.c.Picker.Hovered())
	assert.Nil(t, h.c.Hover().Site)

	x, y := h.screenOf("a")
	h.host.send(Event{Kind: PointerMove, X: x, Y: y})
	h.run(200 * time.Millisecond)
	assert.Nil(t, h.c.Picker.Hovered())
}

func TestFocusSupersededEmitsOnlyLatest(t *testing.T) {
	h := newHarness(t)
	a, b := h.sites[0], h.sites[1]

	h.c.SetFocus(a)
	h.run(300 * time.Millisecond)
	require.True(t, h.c.Focus.Transitioning())
	h.c.SetFocus(b)
	h.run(3 * time.Second)

	require.Len(t, h.rec.completes, 1)
	assert.Equal(t, "b", h.rec.completes[0].ID)
	assert.Equal(t, Focused, h.c.Focus.State())
	assert.Same(t, b, h.c.Focus.Target())
	assert.False(t, h.c.Orbit.Enabled)

	world := h.c.Nodes.World(h.visual("b"))
	assert.InDelta(t, 0, h.c.Camera.Target.DistanceTo(world), 1e-3)
	assert.InDelta(t, h.c.Config.Camera.FocusDistance, h.c.Camera.Position.DistanceTo(world), 1e-3)
}

func TestFocusRepeatedRequestIsNoop(t *testing.T) {
	h := newHarness(t)
	h.c.SetFocus(h.sites[2])
	h.run(500 * time.Millisecond)
	h.c.SetFocus(h.sites[2])
	h.run(3 * time.Second)
	require.Len(t, h.rec.completes, 1)

	h.c.SetFocus(h.sites[2])
	h.run(time.Second)
	assert.Len(t, h.rec.completes, 1)
}

func TestFocusNullReturnsToBase(t *testing.T) {
	h := newHarness(t)
	h.c.SetFocus(h.sites[3])
	h.run(3 * time.Second)
	require.Len(t, h.rec.completes, 1)

	h.c.SetFocus(nil)
	assert.Equal(t, Overview, h.c.Focus.State())
	assert.True(t, h.c.Orbit.Enabled)
	h.run(3 * time.Second)

	base := h.c.Config.Camera.Base
	assert.InDelta(t, 0, h.c.Camera.Position.DistanceTo(base.Position), 1e-3)
	assert.InDelta(t, 0, h.c.Camera.Target.Length(), 1e-3)
	assert.False(t, h.c.Focus.Transitioning())
	assert.Len(t, h.rec.completes, 1, "returning to overview emits no completion")
}

func TestFocusDegenerateApproach(t *testing.T) {
	h := newHarness(t)
	world := h.c.Nodes.World(h.visual("e"))
	h.c.Camera.Position = world
	h.c.SetFocus(h.sites[4])
	h.run(3 * time.Second)

	p := h.c.Camera.Position
	assert.False(t, math32.IsNaN(p.X) || math32.IsNaN(p.Y) || math32.IsNaN(p.Z))
	assert.InDelta(t, h.c.Config.Camera.FocusDistance, p.DistanceTo(world), 1e-3)
}

func TestFocusFreezesGroupRotation(t *testing.T) {
	h := newHarness(t)
	h.run(time.Second)
	require.NotZero(t, h.c.Nodes.Rotation)

	h.c.SetFocus(h.sites[0])
	rot, crot := h.c.Nodes.Rotation, h.c.Constellation.Rotation
	offset := h.visual("b").FloatOffset
	h.run(2 * time.Second)
	assert.Equal(t, rot, h.c.Nodes.Rotation)
	assert.Equal(t, crot, h.c.Constellation.Rotation)
	assert.Equal(t, offset, h.visual("b").FloatOffset)

	h.c.SetFocus(nil)
	h.run(time.Second)
	assert.NotEqual(t, rot, h.c.Nodes.Rotation)
}

func TestDisturbanceDecaysAfterLeave(t *testing.T) {
	h := newHarness(t)
	h.host.send(Event{Kind: PointerMove, X: 80, Y: 30})
	h.run(time.Second)
	require.Greater(t, h.c.DisturbanceWeight(), float32(0.9))

	h.host.send(Event{Kind: PointerLeave})
	prev := h.c.DisturbanceWeight()
	for range 120 {
		h.step()
		w := h.c.DisturbanceWeight()
		assert.LessOrEqual(t, w, prev)
		prev = w
	}
	require.Less(t, prev, h.c.Config.Disturbance.Threshold)

	// With the pass skipped, live positions are the undisturbed swirl
	t0 := h.c.Elapsed()
	sw := h.c.Config.Swirl
	for i, b := range h.c.Galaxy.Base {
		want := sw.SwirlAt(b, h.c.Galaxy.Params[i], t0)
		assert.InDelta(t, 0, h.c.Galaxy.Live[i].DistanceTo(want), 1e-4)
	}
}

func TestDisturbanceOffWhileLocked(t *testing.T) {
	h := newHarness(t)
	h.host.send(Event{Kind: PointerMove, X: 80, Y: 30})
	h.c.SetFocus(h.sites[0])
	h.run(2 * time.Second)
	assert.Less(t, h.c.DisturbanceWeight(), h.c.Config.Disturbance.Threshold)
}

func TestLabelsFadeWithinBounds(t *testing.T) {
	h := newHarness(t)
	fade := h.c.Config.Label
	h.c.Nodes.Each(func(v *layout.Visual) {
		assert.GreaterOrEqual(t, v.Label.Scale, fade.MinScale)
		assert.LessOrEqual(t, v.Label.Scale, fade.MaxScale)
		assert.GreaterOrEqual(t, v.Label.Opacity, fade.MinOpacity)
		assert.LessOrEqual(t, v.Label.Opacity, fade.MaxOpacity)
	})

	// The near node label outgrows a far one after focusing
	h.c.SetFocus(h.sites[3])
	h.run(3 * time.Second)
	near, far := h.visual("d"), h.visual("c")
	assert.GreaterOrEqual(t, near.Label.Scale, far.Label.Scale)
	assert.GreaterOrEqual(t, near.Label.Opacity, far.Label.Opacity)
}

func TestPauseFreezesElapsed(t *testing.T) {
	h := newHarness(t)
	h.run(time.Second)
	h.c.Step(h.now)
	e := h.c.Elapsed()
	for range 10 {
		h.c.Step(h.now) // frozen clock
	}
	assert.Equal(t, e, h.c.Elapsed())
	assert.Zero(t, h.c.Delta())
}

func TestPausableClockDrivesScene(t *testing.T) {
	h := newHarness(t)
	mock := engine.NewMockTimeProvider(h.now)
	clock := engine.NewPausableClock(mock)

	for range 30 {
		mock.Advance(frame)
		h.c.Step(clock.Now())
	}
	running := h.c.Elapsed()
	assert.Greater(t, running, float32(0))

	clock.Pause()
	for range 30 {
		mock.Advance(frame)
		h.c.Step(clock.Now())
	}
	assert.Equal(t, running, h.c.Elapsed())
	assert.Zero(t, h.c.Delta())
	assert.Greater(t, h.rend.frames, 60, "paused frames still render")

	// The paused interval never reaches the scene
	clock.Resume()
	mock.Advance(frame)
	h.c.Step(clock.Now())
	assert.InDelta(t, running+float32(frame.Seconds()), h.c.Elapsed(), 1e-4)
}

func TestFrameDeltaClamped(t *testing.T) {
	h := newHarness(t)
	h.now = h.now.Add(10 * time.Second)
	h.step()
	assert.InDelta(t, h.c.Config.MaxFrameDelta.Seconds(), h.c.Delta(), 1e-6)
}

func TestWheelAndResize(t *testing.T) {
	h := newHarness(t)
	d := h.c.Camera.Position.DistanceTo(h.c.Camera.Target)
	h.host.send(Event{Kind: Wheel, Notches: 2})
	h.step()
	assert.Less(t, h.c.Camera.Position.DistanceTo(h.c.Camera.Target), d)

	h.host.send(Event{Kind: Resize, Width: 100, Height: 30})
	assert.Equal(t, 100, h.c.Camera.Width)
	assert.Equal(t, 30, h.c.Camera.Height)
}

func TestEventsDuringFrameDeferred(t *testing.T) {
	h := newHarness(t)
	var during FocusState = -1
	h.rend.hook = func(c *Context) {
		if during == -1 {
			c.SetFocus(h.sites[0])
			during = c.Focus.State()
		}
	}
	h.step()
	assert.Equal(t, Overview, during)
	assert.Equal(t, Focused, h.c.Focus.State())
}

func TestCloseIsIdempotentAndLeakFree(t *testing.T) {
	h := newHarness(t)
	h.hover("a")
	h.c.SetFocus(h.sites[1])
	require.Positive(t, h.c.Tweens.Len())

	var resources []gfx.Resource
	resources = append(resources, h.c.Galaxy.Geometry, h.c.Deep.Geometry)
	h.c.Nodes.Each(func(v *layout.Visual) {
		resources = append(resources, v.Mesh.Geometry, v.Mesh.Material, v.Ring.Geometry,
			v.Ring.Material, v.Label.Texture, v.Label.Material)
	})
	for _, cv := range h.c.Constellation.Curves {
		resources = append(resources, cv.Geometry)
	}
	require.Equal(t, len(resources), h.c.Arena.Len())

	frames := h.rend.frames
	h.c.Close()
	assert.Zero(t, h.c.Tweens.Len())
	assert.Empty(t, h.host.handlers)
	for _, r := range resources {
		assert.True(t, r.Released())
	}
	assert.Zero(t, h.c.Arena.Len())
	assert.True(t, h.c.Closed())

	h.c.Close()
	assert.Zero(t, h.c.Arena.Release(), "second teardown releases nothing")

	h.run(3 * time.Second)
	assert.Equal(t, frames, h.rend.frames)
	assert.Empty(t, h.rec.completes)
	h.c.Handle(Event{Kind: Click})
	h.c.SetFocus(nil)
	assert.Empty(t, h.rec.selects)
}
