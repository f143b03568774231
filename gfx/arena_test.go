package gfx

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// countingResource records how many times Release was invoked
type countingResource struct {
	calls int
}

func (c *countingResource) Release()       { c.calls++ }
func (c *countingResource) Released() bool { return c.calls > 0 }

func TestArenaReleasesEachResourceOnce(t *testing.T) {
	a := NewArena()
	tracked := make([]*countingResource, 5)
	for i := range tracked {
		tracked[i] = &countingResource{}
		a.Track(tracked[i])
	}

	if n := a.Release(); n != 5 {
		t.Errorf("first Release() = %d, want 5", n)
	}
	if n := a.Release(); n != 0 {
		t.Errorf("second Release() = %d, want 0", n)
	}
	for i, r := range tracked {
		if r.calls != 1 {
			t.Errorf("resource %d released %d times, want 1", i, r.calls)
		}
	}
}

func TestArenaTrackAfterRelease(t *testing.T) {
	a := NewArena()
	a.Release()

	g := a.Geometry(NewGeometry("late", 4))
	if !g.Released() {
		t.Error("geometry tracked into released arena should be released immediately")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestResourceRelease(t *testing.T) {
	g := NewGeometry("g", 3)
	m := NewMaterial("m", colorful.Color{R: 1}, true)
	tx := NewTextTexture("t", "Vega", 4)

	a := NewArena()
	a.Geometry(g)
	a.Material(m)
	a.Texture(tx)
	a.Release()

	if g.Positions != nil || !g.Released() {
		t.Error("geometry buffer not dropped")
	}
	if !m.Released() {
		t.Error("material not released")
	}
	if tx.Cells != nil || !tx.Released() {
		t.Error("texture cells not dropped")
	}
}

func TestTextureAspect(t *testing.T) {
	tx := NewTextTexture("t", "Andromeda", 9)
	if got := tx.Aspect(0.5); got != 4.5 {
		t.Errorf("Aspect(0.5) = %v, want 4.5", got)
	}
}
