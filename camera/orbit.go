package camera

import (
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/vmath"
)

// OrbitSpec tunes the orbit controls
type OrbitSpec struct {
	Damping     float32 `toml:"damping"`      // velocity fraction bled per 1/60 s
	RotateSpeed float32 `toml:"rotate_speed"` // radians per cell of drag
	MinDistance float32 `toml:"min_distance"`
	MaxDistance float32 `toml:"max_distance"`
	MinPolar    float32 `toml:"min_polar"`
	MaxPolar    float32 `toml:"max_polar"`
	DollyStep   float32 `toml:"dolly_step"`
}

// Orbit rotates the camera around its target with damped angular velocity
type Orbit struct {
	Spec    OrbitSpec
	Enabled bool

	azimuthVel float32
	polarVel   float32
	dolly      float32 // pending distance factor, 1 = none
}

// NewOrbit creates enabled controls
func NewOrbit(spec OrbitSpec) *Orbit {
	return &Orbit{Spec: spec, Enabled: true, dolly: 1}
}

// Drag feeds pointer motion in cells; ignored while disabled
func (o *Orbit) Drag(dx, dy float32) {
	if !o.Enabled {
		return
	}
	o.azimuthVel -= dx * o.Spec.RotateSpeed
	o.polarVel -= dy * o.Spec.RotateSpeed
}

// Wheel dollies in (notches > 0) or out
func (o *Orbit) Wheel(notches int) {
	if !o.Enabled {
		return
	}
	for ; notches > 0; notches-- {
		o.dolly *= o.Spec.DollyStep
	}
	for ; notches < 0; notches++ {
		o.dolly /= o.Spec.DollyStep
	}
}

// Stop zeroes pending motion
func (o *Orbit) Stop() {
	o.azimuthVel, o.polarVel, o.dolly = 0, 0, 1
}

// Moving reports whether residual velocity remains
func (o *Orbit) Moving() bool {
	return math32.Abs(o.azimuthVel) > vmath.Epsilon || math32.Abs(o.polarVel) > vmath.Epsilon || o.dolly != 1
}

// Update applies damped motion to cam; a disabled control leaves the camera untouched
func (o *Orbit) Update(cam *Camera, dt float32) {
	if !o.Enabled {
		o.Stop()
		return
	}
	if !o.Moving() {
		return
	}

	offset := cam.Position.Sub(cam.Target)
	radius := offset.Length()
	if radius < vmath.Epsilon {
		o.Stop()
		return
	}
	azimuth := math32.Atan2(offset.X, offset.Z)
	polar := math32.Acos(vmath.Clamp(offset.Y/radius, -1, 1))

	// Velocities are per 60 Hz frame; a zero dt (paused clock) holds the camera still
	frames := dt * 60
	azimuth += o.azimuthVel * frames
	polar = vmath.Clamp(polar+o.polarVel*frames, o.Spec.MinPolar, o.Spec.MaxPolar)
	radius = vmath.Clamp(radius*o.dolly, o.Spec.MinDistance, o.Spec.MaxDistance)

	sinP, cosP := math32.Sincos(polar)
	sinA, cosA := math32.Sincos(azimuth)
	cam.Position = cam.Target.Add(math32.Vec3(radius*sinP*sinA, radius*cosP, radius*sinP*cosA))

	keep := math32.Pow(1-o.Spec.Damping, frames)
	o.azimuthVel *= keep
	o.polarVel *= keep
	if math32.Abs(o.azimuthVel) < 1e-5 {
		o.azimuthVel = 0
	}
	if math32.Abs(o.polarVel) < 1e-5 {
		o.polarVel = 0
	}
	o.dolly = 1
}
