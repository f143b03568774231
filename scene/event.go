package scene

import "github.com/lixenwraith/vi-galaxy/site"

// EventKind identifies a host input event
type EventKind int

const (
	PointerMove EventKind = iota
	PointerDown
	PointerUp
	PointerLeave
	Click
	Wheel
	Resize
)

// Event is one input delivered by the host between frames
// X, Y are cell coordinates; Notches > 0 dollies in; Width, Height accompany Resize
type Event struct {
	Kind    EventKind
	X, Y    float32
	Notches int
	Width   int
	Height  int
}

// Handler receives host events
type Handler func(ev Event)

// Host is the environment the scene mounts into
type Host interface {
	// Size returns the viewport in cells
	Size() (w, h int)
	// Subscribe registers h for input and returns its detach function
	Subscribe(h Handler) (detach func())
}

// Hover is the externally visible hover state
// Site is nil when nothing is hovered; X, Y are the last known pointer cell coordinates
type Hover struct {
	Site *site.Node
	X, Y float32
}

// Callbacks are the scene's outputs, all invoked on the loop goroutine
type Callbacks struct {
	OnNodeSelect    func(n *site.Node)
	OnHoverChange   func(h Hover)
	OnFocusComplete func(n *site.Node)
}

// Cursor is the pointer affordance the host should show
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// Renderer draws one frame of a scene
type Renderer interface {
	Render(c *Context)
}
