// Package tween runs time-based interpolations against mutable scene fields
// Each target field is addressed by a Key and at most one task runs per key:
// starting a task on a busy key cancels the previous one first
package tween

import (
	"time"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Key names one mutated target (camera position, orbit target, a node's scale)
type Key string

// Task is one interpolation advanced by the Manager
type Task interface {
	// Step advances by dt seconds and reports whether the task reached its end
	Step(dt float32) bool
	// Finish runs completion side effects, called once and only for tasks that were not cancelled
	Finish()
}

// Tween interpolates From→To over Duration, writing each sample through Set
type Tween[T any] struct {
	From       T
	To         T
	Duration   float32 // seconds
	Ease       vmath.Ease
	Lerp       func(a, b T, t float32) T
	Set        func(T)
	OnComplete func()

	elapsed float32
}

// Step implements Task
func (tw *Tween[T]) Step(dt float32) bool {
	tw.elapsed += dt
	p := float32(1)
	if tw.Duration > 0 {
		p = vmath.Clamp(tw.elapsed/tw.Duration, 0, 1)
	}
	e := tw.Ease
	if e == nil {
		e = vmath.Linear
	}
	tw.Set(tw.Lerp(tw.From, tw.To, e(p)))
	return p >= 1
}

// Finish implements Task
func (tw *Tween[T]) Finish() {
	if tw.OnComplete != nil {
		tw.OnComplete()
	}
}

// Progress returns normalized linear progress
func (tw *Tween[T]) Progress() float32 {
	if tw.Duration <= 0 {
		return 1
	}
	return vmath.Clamp(tw.elapsed/tw.Duration, 0, 1)
}

// Vector builds a Vector3 tween
func Vector(from, to math32.Vector3, d time.Duration, ease vmath.Ease, set func(math32.Vector3)) *Tween[math32.Vector3] {
	return &Tween[math32.Vector3]{
		From:     from,
		To:       to,
		Duration: float32(d.Seconds()),
		Ease:     ease,
		Lerp:     func(a, b math32.Vector3, t float32) math32.Vector3 { return a.Lerp(b, t) },
		Set:      set,
	}
}

// Scalar builds a float32 tween
func Scalar(from, to float32, d time.Duration, ease vmath.Ease, set func(float32)) *Tween[float32] {
	return &Tween[float32]{
		From:     from,
		To:       to,
		Duration: float32(d.Seconds()),
		Ease:     ease,
		Lerp:     vmath.Lerp,
		Set:      set,
	}
}
