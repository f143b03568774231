package scene

import (
	"time"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/constellation"
	"github.com/lixenwraith/vi-galaxy/field"
	"github.com/lixenwraith/vi-galaxy/layout"
	"github.com/lixenwraith/vi-galaxy/parameter"
)

// CameraSpec tunes projection, the overview pose, and focus transitions
type CameraSpec struct {
	FOV        float32     `toml:"fov"`
	Near       float32     `toml:"near"`
	Far        float32     `toml:"far"`
	CellAspect float32     `toml:"cell_aspect"`
	Base       camera.Pose `toml:"base"`

	FocusDistance  float32        `toml:"focus_distance"`
	FocusDuration  time.Duration  `toml:"focus_duration"`
	ReturnDuration time.Duration  `toml:"return_duration"`
	Approach       math32.Vector3 `toml:"approach"` // used when camera and node coincide
}

// PointerSpec tunes picking
type PointerSpec struct {
	DragThreshold float32       `toml:"drag_threshold"` // cells
	OffCanvas     float32       `toml:"off_canvas"`
	HoverScale    float32       `toml:"hover_scale"`
	HoverDuration time.Duration `toml:"hover_duration"`
}

// DisturbanceSpec tunes the pointer-driven field perturbation
type DisturbanceSpec struct {
	field.Disturbance
	BlendRate   float32 `toml:"blend_rate"`
	RayDistance float32 `toml:"ray_distance"`
}

// Config is everything a mount needs besides the site list
type Config struct {
	Seed          int64              `toml:"seed"`
	MaxFrameDelta time.Duration      `toml:"max_frame_delta"`
	Disk          field.DiskSpec     `toml:"disk"`
	Shell         field.ShellSpec    `toml:"shell"`
	Swirl         field.Swirl        `toml:"swirl"`
	Disturbance   DisturbanceSpec    `toml:"disturbance"`
	Node          layout.NodeSpec    `toml:"node"`
	Label         layout.LabelFade   `toml:"label"`
	Constellation constellation.Spec `toml:"constellation"`
	Camera        CameraSpec         `toml:"camera"`
	Orbit         camera.OrbitSpec   `toml:"orbit"`
	Pointer       PointerSpec        `toml:"pointer"`
}

// DefaultConfig returns the tuned constants from parameter
func DefaultConfig() Config {
	return Config{
		Seed:          parameter.DefaultSeed,
		MaxFrameDelta: parameter.MaxFrameDelta,
		Disk: field.DiskSpec{
			Count:        parameter.GalaxyParticleCount,
			Radius:       parameter.GalaxyRadius,
			Thickness:    parameter.GalaxyThickness,
			RimThickness: parameter.GalaxyRimThickness,
			RotationRate: parameter.GalaxyRotationRate,
			Speed:        field.Range{Min: parameter.ParticleSpeedMin, Max: parameter.ParticleSpeedMax},
			Amplitude:    field.Range{Min: parameter.ParticleAmplitudeMin, Max: parameter.ParticleAmplitudeMax},
			Twist:        field.Range{Min: parameter.ParticleTwistMin, Max: parameter.ParticleTwistMax},
			Pulse:        field.Range{Min: parameter.ParticlePulseMin, Max: parameter.ParticlePulseMax},
		},
		Shell: field.ShellSpec{
			Count:        parameter.DeepParticleCount,
			MinRadius:    parameter.DeepMinRadius,
			RadiusSpan:   parameter.DeepRadiusSpan,
			RotationRate: parameter.DeepRotationRate,
		},
		Swirl: field.Swirl{
			BaseRate:   parameter.SwirlBaseRate,
			Falloff:    parameter.SwirlFalloff,
			PulseScale: parameter.PulseScale,
			Bob:        parameter.BobScale,
		},
		Disturbance: DisturbanceSpec{
			Disturbance: field.Disturbance{
				Threshold:     parameter.DisturbanceThreshold,
				Radius:        parameter.DisturbanceRadius,
				Intensity:     parameter.DisturbanceIntensity,
				WaveAmplitude: parameter.DisturbanceWaveAmplitude,
				WaveFrequency: parameter.DisturbanceWaveFrequency,
				WaveSpeed:     parameter.DisturbanceWaveSpeed,
			},
			BlendRate:   parameter.DisturbanceBlendRate,
			RayDistance: parameter.DisturbanceRayDistance,
		},
		Node: layout.NodeSpec{
			InnerRadius:    parameter.OrbitInnerRadius,
			OuterRadius:    parameter.OrbitOuterRadius,
			Bands:          parameter.OrbitBands,
			Radius:         parameter.NodeRadius,
			HitRadius:      parameter.NodeHitRadius,
			RingInner:      parameter.RingInnerRadius,
			RingOuter:      parameter.RingOuterRadius,
			LabelHeight:    parameter.LabelHeight,
			LabelOffset:    parameter.LabelOffset,
			GlyphAspect:    parameter.GlyphAspect,
			FloatAmplitude: parameter.FloatAmplitude,
			FloatSpeedMin:  parameter.FloatSpeedMin,
			FloatSpeedMax:  parameter.FloatSpeedMax,
			RingSpinRate:   parameter.RingSpinRate,
			RotationRate:   parameter.GroupRotationRate,
		},
		Label: layout.LabelFade{
			ReferenceDistance: parameter.LabelReferenceDistance,
			MinScale:          parameter.LabelMinScale,
			MaxScale:          parameter.LabelMaxScale,
			NearDistance:      parameter.LabelNearDistance,
			FarDistance:       parameter.LabelFarDistance,
			MinOpacity:        parameter.LabelMinOpacity,
			MaxOpacity:        parameter.LabelMaxOpacity,
		},
		Constellation: constellation.Spec{
			Neighbors: parameter.ConstellationNeighbors,
			Segments:  parameter.CurveSegments,
			Arch:      parameter.CurveArch,
			MinOffset: parameter.CurveMinOffset,
		},
		Camera: CameraSpec{
			FOV:        parameter.CameraFOV,
			Near:       parameter.CameraNear,
			Far:        parameter.CameraFar,
			CellAspect: parameter.CellAspect,
			Base: camera.Pose{
				Position: math32.Vec3(parameter.BaseCameraX, parameter.BaseCameraY, parameter.BaseCameraZ),
			},
			FocusDistance:  parameter.FocusDistance,
			FocusDuration:  parameter.FocusDuration,
			ReturnDuration: parameter.ReturnDuration,
			Approach:       math32.Vec3(parameter.ApproachX, parameter.ApproachY, parameter.ApproachZ),
		},
		Orbit: camera.OrbitSpec{
			Damping:     parameter.OrbitDamping,
			RotateSpeed: parameter.OrbitRotateSpeed,
			MinDistance: parameter.OrbitMinDistance,
			MaxDistance: parameter.OrbitMaxDistance,
			MinPolar:    parameter.OrbitMinPolar,
			MaxPolar:    parameter.OrbitMaxPolar,
			DollyStep:   parameter.OrbitDollyStep,
		},
		Pointer: PointerSpec{
			DragThreshold: parameter.DragThreshold,
			OffCanvas:     parameter.OffCanvas,
			HoverScale:    parameter.HoverScale,
			HoverDuration: parameter.HoverDuration,
		},
	}
}
