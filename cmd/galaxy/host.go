package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-galaxy/scene"
)

type subscription struct {
	id int
	fn scene.Handler
}

// host adapts a tcell screen to scene.Host
// translate and dispatch run on the loop goroutine only
type host struct {
	screen tcell.Screen
	subs   []subscription
	next   int

	buttons    tcell.ButtonMask
	lastX      int
	lastY      int
	hasPointer bool
}

func newHost(screen tcell.Screen) *host {
	return &host{screen: screen}
}

// Size implements scene.Host
func (h *host) Size() (int, int) {
	return h.screen.Size()
}

// Subscribe implements scene.Host
func (h *host) Subscribe(fn scene.Handler) func() {
	id := h.next
	h.next++
	h.subs = append(h.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// dispatch delivers ev to every subscriber in subscription order
func (h *host) dispatch(ev scene.Event) {
	for _, s := range append([]subscription(nil), h.subs...) {
		s.fn(ev)
	}
}

// translate converts a tcell event into scene events
// A primary-button release yields PointerUp then Click; the scene rejects clicks that were drags
func (h *host) translate(ev tcell.Event) []scene.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return h.mouse(ev)
	case *tcell.EventResize:
		w, hh := ev.Size()
		return []scene.Event{{Kind: scene.Resize, Width: w, Height: hh}}
	case *tcell.EventFocus:
		if !ev.Focused && h.hasPointer {
			h.hasPointer = false
			h.buttons = tcell.ButtonNone
			return []scene.Event{{Kind: scene.PointerLeave}}
		}
	}
	return nil
}

func (h *host) mouse(ev *tcell.EventMouse) []scene.Event {
	x, y := ev.Position()
	fx, fy := float32(x), float32(y)
	btn := ev.Buttons()

	var out []scene.Event
	if !h.hasPointer || x != h.lastX || y != h.lastY {
		out = append(out, scene.Event{Kind: scene.PointerMove, X: fx, Y: fy})
		h.lastX, h.lastY, h.hasPointer = x, y, true
	}

	pressed := btn&tcell.Button1 != 0
	was := h.buttons&tcell.Button1 != 0
	switch {
	case pressed && !was:
		out = append(out, scene.Event{Kind: scene.PointerDown, X: fx, Y: fy})
	case !pressed && was:
		out = append(out,
			scene.Event{Kind: scene.PointerUp, X: fx, Y: fy},
			scene.Event{Kind: scene.Click, X: fx, Y: fy},
		)
	}

	if btn&tcell.WheelUp != 0 {
		out = append(out, scene.Event{Kind: scene.Wheel, X: fx, Y: fy, Notches: 1})
	}
	if btn&tcell.WheelDown != 0 {
		out = append(out, scene.Event{Kind: scene.Wheel, X: fx, Y: fy, Notches: -1})
	}

	h.buttons = btn &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	return out
}
