package parameter

import "time"

// Orbit Layout
const (
	OrbitInnerRadius = 30.0
	OrbitOuterRadius = 44.0
)

// OrbitBands are the vertical offsets cycled by index modulo 3
var OrbitBands = [3]float32{-5, 0, 5}

// Node Visual
const (
	// NodeRadius is the visible sphere radius
	NodeRadius = 2.0

	// NodeHitRadius is the picking sphere, larger than the visual so small terminal targets stay clickable
	NodeHitRadius = 3.2

	RingInnerRadius = 2.8
	RingOuterRadius = 3.3

	// Label billboard
	LabelHeight = 1.6
	LabelOffset = 4.2

	// GlyphAspect is the rendered glyph cell width over height used to size label billboards
	GlyphAspect = 0.5
)

// Node Animation
const (
	FloatAmplitude = 0.8
	FloatSpeedMin  = 0.5
	FloatSpeedMax  = 1.1
	RingSpinRate   = 0.9 // rad/s

	// GroupRotationRate spins constellation and node group while not focus locked
	GroupRotationRate = 0.02

	HoverScale    = 1.35
	HoverDuration = 250 * time.Millisecond
)

// Constellation
const (
	ConstellationNeighbors = 2
	CurveSegments          = 24
	CurveArch              = 0.18
	CurveMinOffset         = 2.0
)
