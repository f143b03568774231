package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinCueGap suppresses hover ticks fired faster than the ear separates them
	MinCueGap = 40 * time.Millisecond
)

// Hover Tick
const (
	HoverCueDuration = 45 * time.Millisecond
	HoverCueAttack   = 3 * time.Millisecond
	HoverCueRelease  = 30 * time.Millisecond
	HoverCueFreq     = 1318.51 // E6
)

// Select Bell
const (
	SelectCueDuration         = 500 * time.Millisecond
	SelectCueAttack           = 5 * time.Millisecond
	SelectCueFundamentalFreq  = 880.0
	SelectCueFundamentalDecay = 450 * time.Millisecond
	SelectCueOvertoneDecay    = 200 * time.Millisecond
)

// Focus Whoosh
const (
	FocusCueDuration = 350 * time.Millisecond
	FocusCueAttack   = 120 * time.Millisecond
	FocusCueRelease  = 200 * time.Millisecond
)

// Volumes
const (
	DefaultMasterVolume = 0.6
	HoverCueVolume      = 0.25
	SelectCueVolume     = 0.6
	FocusCueVolume      = 0.35
)
