package parameter

import "time"

// Camera Projection
const (
	CameraFOV  = 55.0 // vertical field of view, degrees
	CameraNear = 0.5
	CameraFar  = 1200.0

	// CellAspect is terminal cell width over height, used to keep projected circles round
	CellAspect = 0.5
)

// Overview Pose
const (
	BaseCameraX = 0.0
	BaseCameraY = 42.0
	BaseCameraZ = 118.0
)

// Focus Transitions
const (
	// FocusDistance is the camera standoff from the focused node along the approach direction
	FocusDistance = 14.0

	FocusDuration  = 1600 * time.Millisecond
	ReturnDuration = 1400 * time.Millisecond

	// Default approach direction when camera and node coincide
	ApproachX = 0.0
	ApproachY = 0.3
	ApproachZ = 1.0
)

// Orbit Controls
const (
	// OrbitDamping is the fraction of angular velocity bled off per 1/60 s
	OrbitDamping = 0.08

	// OrbitRotateSpeed converts pointer cells to radians
	OrbitRotateSpeed = 0.012

	OrbitMinDistance = 30.0
	OrbitMaxDistance = 260.0
	OrbitMinPolar    = 0.15
	OrbitMaxPolar    = 2.6

	// OrbitDollyStep is the distance factor per wheel notch
	OrbitDollyStep = 0.92
)
