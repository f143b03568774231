package parameter

// Galaxy Disk Field
const (
	// GalaxyParticleCount is the foreground disk population
	GalaxyParticleCount = 4200

	// GalaxyRadius is the disk radius in world units, particle radius is uniform in [0, GalaxyRadius]
	GalaxyRadius = 70.0

	// GalaxyThickness is the full vertical spread at the core, shrinking linearly toward the rim
	GalaxyThickness = 9.0

	// GalaxyRimThickness is the floor of vertical spread at the rim as a fraction of GalaxyThickness
	GalaxyRimThickness = 0.08
)

// Per-particle animation ranges, sampled uniformly at construction
const (
	ParticleSpeedMin     = 0.15
	ParticleSpeedMax     = 0.55
	ParticleAmplitudeMin = 0.3
	ParticleAmplitudeMax = 1.4
	ParticleTwistMin     = 0.04
	ParticleTwistMax     = 0.22
	ParticlePulseMin     = 0.4
	ParticlePulseMax     = 1.6
)

// Swirl shaping
const (
	// SwirlBaseRate is the angular rate (rad/s) every particle shares before twist
	SwirlBaseRate = 0.06

	// SwirlFalloff slows twist with radius so the core winds faster than the rim
	SwirlFalloff = 0.045

	// PulseScale converts amplitude into fractional radial breathing
	PulseScale = 0.012

	// BobScale converts amplitude into vertical bobbing (world units)
	BobScale = 0.35
)

// Deep Background Field
const (
	DeepParticleCount = 900
	DeepMinRadius     = 190.0
	DeepRadiusSpan    = 140.0
)

// Bulk rotation rates (rad/s), opposite directions
const (
	GalaxyRotationRate = 0.012
	DeepRotationRate   = -0.004
)

// Disturbance Field
const (
	// DisturbanceRadius is the world-space reach of the pointer push
	DisturbanceRadius = 16.0

	// DisturbanceIntensity scales the tangential push (world units at zero distance, full weight)
	DisturbanceIntensity = 3.2

	// DisturbanceBlendRate is the exponential approach rate (1/s) of the disturbance weight and target
	DisturbanceBlendRate = 8.0

	// DisturbanceThreshold is the weight below which the disturbance pass is skipped
	DisturbanceThreshold = 0.001

	// Vertical wave riding on the push
	DisturbanceWaveAmplitude = 0.9
	DisturbanceWaveFrequency = 0.45
	DisturbanceWaveSpeed     = 3.0

	// DisturbanceRayDistance places the target along the pointer ray when it misses the disk plane
	DisturbanceRayDistance = 90.0
)
