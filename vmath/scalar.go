// Package vmath holds the float32 helpers shared by the scene runtime: smoothing, easing,
// curve sampling, and degenerate-safe vector operations on top of math32
package vmath

import (
	"cogentcore.org/core/math32"
	cm "github.com/chewxy/math32"
)

// Epsilon is the length below which a direction is treated as degenerate
const Epsilon = 1e-6

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Clamp(v, lo, hi)
}

// Lerp linearly interpolates a toward b by t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Damp moves current toward target with an exponential approach at rate (1/s)
// Frame-rate independent: two half steps equal one full step
func Damp(current, target, rate, dt float32) float32 {
	if dt <= 0 {
		return current
	}
	return Lerp(current, target, 1-cm.Exp(-rate*dt))
}

// DampFactor returns the blend fraction Damp applies for the given rate and delta
func DampFactor(rate, dt float32) float32 {
	if dt <= 0 {
		return 0
	}
	return 1 - cm.Exp(-rate*dt)
}

// RandRange maps a unit sample u in [0, 1) into [lo, hi)
func RandRange(u, lo, hi float32) float32 {
	return lo + (hi-lo)*u
}

// Wrap keeps an angle inside [0, 2π)
func Wrap(angle float32) float32 {
	a := cm.Mod(angle, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}
