package field

import (
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Swirl tunes the time-dependent disk motion
type Swirl struct {
	BaseRate   float32 `toml:"base_rate"`   // rad/s shared by all particles
	Falloff    float32 `toml:"falloff"`     // twist slows with radius
	PulseScale float32 `toml:"pulse_scale"` // amplitude → fractional radial breathing
	Bob        float32 `toml:"bob"`         // amplitude → vertical bobbing
}

// Disturbance is the pointer-driven perturbation for one frame
type Disturbance struct {
	Target    math32.Vector3 `toml:"-"` // world space, smoothed
	Weight    float32        `toml:"-"` // [0, 1] global blend
	Threshold float32        `toml:"threshold"`

	Radius        float32 `toml:"radius"`
	Intensity     float32 `toml:"intensity"`
	WaveAmplitude float32 `toml:"wave_amplitude"`
	WaveFrequency float32 `toml:"wave_frequency"`
	WaveSpeed     float32 `toml:"wave_speed"`
}

// Active reports whether the disturbance pass should run
func (d *Disturbance) Active() bool {
	return d != nil && d.Weight > d.Threshold && d.Radius > 0
}

// SwirlAt returns particle base position b displaced by swirl, pulse, and bob at time t
// Every term is a difference against its t=0 value so SwirlAt(b, p, 0) == b
func (sw Swirl) SwirlAt(b math32.Vector3, p Params, t float32) math32.Vector3 {
	r := math32.Sqrt(b.X*b.X + b.Z*b.Z)

	angle := t * p.Speed * (sw.BaseRate + p.Twist/(1+r*sw.Falloff))
	v := vmath.RotateY(b, angle)

	pulse := 1 + sw.PulseScale*p.Amplitude*(math32.Sin(p.Phase+t*p.Pulse)-math32.Sin(p.Phase))
	v.X *= pulse
	v.Z *= pulse
	v.Y += p.Amplitude * sw.Bob * (math32.Sin(p.Phase+t*p.Speed) - math32.Sin(p.Phase))
	return v
}

// Step recomputes every live position for elapsed time t
// d is given in world space and mapped into the pool's rotated frame; nil disables it
func (p *Pool) Step(t float32, sw Swirl, d *Disturbance) {
	if p.Params == nil {
		return
	}

	active := d.Active()
	var target math32.Vector3
	if active {
		target = vmath.RotateY(d.Target, -p.Rotation)
	}

	for i, b := range p.Base {
		v := sw.SwirlAt(b, p.Params[i], t)
		if active {
			v = d.push(v, target, t)
		}
		p.Live[i] = v
	}
}

// push applies the tangential shove and vertical wave to v near target
func (d *Disturbance) push(v, target math32.Vector3, t float32) math32.Vector3 {
	rel := v.Sub(target)
	dist := rel.Length()
	if dist >= d.Radius {
		return v
	}
	f := 1 - dist/d.Radius
	f *= f
	s := f * d.Weight

	tangent := vmath.SafeNormal(vmath.Up.Cross(rel), math32.Vector3{})
	v = v.Add(tangent.MulScalar(s * d.Intensity))
	v.Y += math32.Sin(dist*d.WaveFrequency-t*d.WaveSpeed) * d.WaveAmplitude * s
	return v
}
