package layout

import "github.com/lixenwraith/vi-galaxy/vmath"

// LabelFade maps camera distance to label scale and opacity
// Both are non-increasing in distance and clamped to their bounds
type LabelFade struct {
	ReferenceDistance float32 `toml:"reference_distance"`
	MinScale          float32 `toml:"min_scale"`
	MaxScale          float32 `toml:"max_scale"`
	NearDistance      float32 `toml:"near_distance"`
	FarDistance       float32 `toml:"far_distance"`
	MinOpacity        float32 `toml:"min_opacity"`
	MaxOpacity        float32 `toml:"max_opacity"`
}

// At returns scale and opacity for a label dist away from the camera
func (f LabelFade) At(dist float32) (scale, opacity float32) {
	scale = f.MaxScale
	if dist > 0 {
		scale = vmath.Clamp(f.ReferenceDistance/dist, f.MinScale, f.MaxScale)
	}

	span := f.FarDistance - f.NearDistance
	t := float32(1)
	if span > 0 {
		t = vmath.Clamp((dist-f.NearDistance)/span, 0, 1)
	} else if dist < f.NearDistance {
		t = 0
	}
	// float32 lerp can land an ulp past the far endpoint
	opacity = vmath.Clamp(vmath.Lerp(f.MaxOpacity, f.MinOpacity, t),
		min(f.MinOpacity, f.MaxOpacity), max(f.MinOpacity, f.MaxOpacity))
	return scale, opacity
}

// Fade updates every label from the camera distance function
func (l *Layout) Fade(f LabelFade, dist func(v *Visual) float32) {
	for _, v := range l.Visuals.Values {
		v.Label.Scale, v.Label.Opacity = f.At(dist(v))
	}
}
