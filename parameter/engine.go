package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the per-frame delta so a stalled terminal does not fling tweens and swirl forward
	MaxFrameDelta = 100 * time.Millisecond

	// InboxSize is the capacity of the loop inbox for events delivered between frames
	InboxSize = 256
)

// Seeding
const (
	// DefaultSeed keeps procedural fields and float phases identical across runs unless overridden
	DefaultSeed = 20240611
)
