package field

import (
	"log"

	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/gfx"
)

// DiskSpec shapes the foreground galaxy
type DiskSpec struct {
	Count        int     `toml:"count"`
	Radius       float32 `toml:"radius"`
	Thickness    float32 `toml:"thickness"`
	RimThickness float32 `toml:"rim_thickness"` // floor of vertical spread at the rim, fraction of Thickness
	RotationRate float32 `toml:"rotation_rate"`

	Speed     Range `toml:"speed"`
	Amplitude Range `toml:"amplitude"`
	Twist     Range `toml:"twist"`
	Pulse     Range `toml:"pulse"`
}

// ShellSpec shapes the deep background
type ShellSpec struct {
	Count        int     `toml:"count"`
	MinRadius    float32 `toml:"min_radius"`
	RadiusSpan   float32 `toml:"radius_span"`
	RotationRate float32 `toml:"rotation_rate"`
}

// NewDisk builds the foreground disk: radius uniform in [0, Radius], vertical spread shrinking
// linearly toward the rim down to RimThickness
func NewDisk(arena *gfx.Arena, spec DiskSpec, rng randx.Rand) *Pool {
	p := newPool(arena, "galaxy", spec.Count, spec.RotationRate)
	p.Params = make([]Params, spec.Count)

	for i := range p.Base {
		r := rng.Float32() * spec.Radius
		theta := rng.Float32() * 2 * math32.Pi

		spread := float32(1)
		if spec.Radius > 0 {
			spread = max(1-r/spec.Radius, spec.RimThickness)
		}
		y := (rng.Float32() - 0.5) * spec.Thickness * spread

		sin, cos := math32.Sincos(theta)
		p.Base[i] = math32.Vec3(r*cos, y, r*sin)

		p.Params[i] = Params{
			Phase:     rng.Float32() * 2 * math32.Pi,
			Speed:     spec.Speed.Sample(rng),
			Amplitude: spec.Amplitude.Sample(rng),
			Twist:     spec.Twist.Sample(rng),
			Pulse:     spec.Pulse.Sample(rng),
		}
	}
	p.Reset()
	log.Printf("field: disk %d particles, radius %.1f", spec.Count, spec.Radius)
	return p
}

// NewShell builds the deep field: radius uniform in [MinRadius, MinRadius+RadiusSpan] and
// direction uniform over the sphere
func NewShell(arena *gfx.Arena, spec ShellSpec, rng randx.Rand) *Pool {
	p := newPool(arena, "deep", spec.Count, spec.RotationRate)

	for i := range p.Base {
		r := spec.MinRadius + rng.Float32()*spec.RadiusSpan
		// Uniform solid angle: cos(polar) uniform in [-1, 1]
		cosPolar := 2*rng.Float32() - 1
		sinPolar := math32.Sqrt(max(0, 1-cosPolar*cosPolar))
		az := rng.Float32() * 2 * math32.Pi
		sinAz, cosAz := math32.Sincos(az)
		p.Base[i] = math32.Vec3(r*sinPolar*cosAz, r*cosPolar, r*sinPolar*sinAz)
	}
	p.Reset()
	log.Printf("field: shell %d particles, radius %.1f-%.1f", spec.Count, spec.MinRadius, spec.MinRadius+spec.RadiusSpan)
	return p
}
