package gfx

import "sync"

// Arena is the single ownership list for resources allocated during a scene mount
type Arena struct {
	mu        sync.Mutex
	resources []Resource
	released  bool
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// Track adds r to the ownership list and returns it for inline use
// Tracking into a released arena releases r immediately
func (a *Arena) Track(r Resource) Resource {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		r.Release()
		return r
	}
	a.resources = append(a.resources, r)
	return r
}

// Geometry tracks and returns g
func (a *Arena) Geometry(g *Geometry) *Geometry {
	a.Track(g)
	return g
}

// Material tracks and returns m
func (a *Arena) Material(m *Material) *Material {
	a.Track(m)
	return m
}

// Texture tracks and returns t
func (a *Arena) Texture(t *Texture) *Texture {
	a.Track(t)
	return t
}

// Len returns the number of tracked resources
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.resources)
}

// Release frees every tracked resource in reverse allocation order
// Returns the number released; subsequent calls release nothing
func (a *Arena) Release() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return 0
	}
	a.released = true

	n := 0
	for i := len(a.resources) - 1; i >= 0; i-- {
		r := a.resources[i]
		if !r.Released() {
			r.Release()
			n++
		}
	}
	a.resources = nil
	return n
}
