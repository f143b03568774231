package vmath

// Ease maps normalized progress [0, 1] to eased progress
type Ease func(t float32) float32

// Linear is the identity curve
func Linear(t float32) float32 { return t }

// EaseOutQuart decelerates hard into the destination
func EaseOutQuart(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u*u
}

// EaseInOutCubic accelerates out of the start and settles symmetrically
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutBack overshoots slightly before settling, used for hover emphasis
func EaseOutBack(t float32) float32 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}
