package vmath

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestDampIsFrameRateIndependent(t *testing.T) {
	one := Damp(0, 1, 5, 0.032)
	two := Damp(Damp(0, 1, 5, 0.016), 1, 5, 0.016)
	assert.InDelta(t, one, two, 1e-5)
}

func TestDampZeroDelta(t *testing.T) {
	if got := Damp(0.3, 1, 5, 0); got != 0.3 {
		t.Errorf("Damp with dt=0 = %v, want 0.3", got)
	}
}

func TestEaseEndpoints(t *testing.T) {
	eases := map[string]Ease{
		"linear":    Linear,
		"outQuart":  EaseOutQuart,
		"inOutCube": EaseInOutCubic,
		"outBack":   EaseOutBack,
	}
	for name, e := range eases {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, e(0), 1e-6)
			assert.InDelta(t, 1, e(1), 1e-6)
		})
	}
}

func TestEaseOutQuartIsFrontLoaded(t *testing.T) {
	if EaseOutQuart(0.25) <= 0.5 {
		t.Errorf("EaseOutQuart(0.25) = %v, expected more than half the travel", EaseOutQuart(0.25))
	}
}

func TestSafeNormalFallback(t *testing.T) {
	got := SafeNormal(math32.Vector3{}, Up)
	assert.Equal(t, Up, got)

	got = SafeNormal(math32.Vec3(0, 0, 5), Up)
	assert.InDelta(t, 1, got.Z, 1e-6)
}

func TestRotateYQuarterTurn(t *testing.T) {
	got := RotateY(math32.Vec3(1, 2, 0), math32.Pi/2)
	assert.InDelta(t, 0, got.X, 1e-5)
	assert.InDelta(t, 2, got.Y, 1e-6)
	assert.InDelta(t, -1, got.Z, 1e-5)
}

func TestSampleQuadBezierEndpoints(t *testing.T) {
	a := math32.Vec3(-1, 0, 0)
	b := math32.Vec3(1, 0, 0)
	c := math32.Vec3(0, 4, 0)
	pts := SampleQuadBezier(a, c, b, 8)
	if len(pts) != 9 {
		t.Fatalf("got %d points, want 9", len(pts))
	}
	assert.Equal(t, a, pts[0])
	assert.Equal(t, b, pts[8])
	// Apex of a symmetric quadratic sits at half the control height
	assert.InDelta(t, 2, pts[4].Y, 1e-5)
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, math32.Pi/2, Wrap(-3*math32.Pi/2), 1e-5)
	assert.InDelta(t, 0.5, Wrap(2*math32.Pi+0.5), 1e-5)
}
