package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopStepsAndStops(t *testing.T) {
	var steps atomic.Int32
	l := NewLoop(NewTimeProvider(), time.Millisecond, 8, func(time.Time) { steps.Add(1) })
	l.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for steps.Load() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	l.Stop()
	l.Stop() // idempotent

	if steps.Load() < 5 {
		t.Fatalf("expected at least 5 frames, got %d", steps.Load())
	}
	after := steps.Load()
	time.Sleep(10 * time.Millisecond)
	if steps.Load() != after {
		t.Error("loop stepped after Stop")
	}
	if l.Post(func() {}) {
		t.Error("Post accepted after Stop")
	}
}

func TestLoopRunsPostedBeforeStep(t *testing.T) {
	var order []string
	done := make(chan struct{})
	var once atomic.Bool

	l := NewLoop(NewTimeProvider(), 5*time.Millisecond, 8, func(time.Time) {
		if len(order) > 0 && once.CompareAndSwap(false, true) {
			order = append(order, "step")
			close(done)
		}
	})
	// Posted before Start; drained ahead of the first step that sees it
	l.Post(func() { order = append(order, "event") })
	l.Start(context.Background())
	defer l.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for step")
	}
	if len(order) != 2 || order[0] != "event" || order[1] != "step" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var steps atomic.Int32
	l := NewLoop(NewTimeProvider(), time.Millisecond, 1, func(time.Time) { steps.Add(1) })
	l.Start(ctx)
	cancel()
	l.Stop()
	n := steps.Load()
	time.Sleep(5 * time.Millisecond)
	if steps.Load() != n {
		t.Error("loop stepped after context cancel")
	}
}

func TestLoopPostFull(t *testing.T) {
	l := NewLoop(NewTimeProvider(), time.Hour, 1, func(time.Time) {})
	if !l.Post(func() {}) {
		t.Fatal("first post rejected")
	}
	if l.Post(func() {}) {
		t.Error("post beyond inbox capacity accepted")
	}
}

func TestLoopStepsOnClockTime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	mock.Advance(42 * time.Second)

	got := make(chan time.Time, 1)
	l := NewLoop(mock, time.Millisecond, 1, func(now time.Time) {
		select {
		case got <- now:
		default:
		}
	})
	l.Start(context.Background())
	defer l.Stop()

	select {
	case now := <-got:
		if !now.Equal(start.Add(42 * time.Second)) {
			t.Errorf("step got %v, want the mock clock time", now)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for step")
	}
}
