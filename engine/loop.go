package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// StepFunc is the per-frame callback, given the loop clock's current time
type StepFunc func(now time.Time)

// Loop calls a step once per frame interval until stopped
// Closures posted to the inbox run on the loop goroutine between frames, so the step and
// every posted closure share one logical thread
type Loop struct {
	clock    Clock
	interval time.Duration
	step     StepFunc

	inbox    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frames atomic.Uint64
}

// NewLoop creates a stopped loop
func NewLoop(clock Clock, interval time.Duration, inboxSize int, step StepFunc) *Loop {
	return &Loop{
		clock:    clock,
		interval: interval,
		step:     step,
		inbox:    make(chan func(), inboxSize),
		stopChan: make(chan struct{}),
	}
}

// Start runs the loop on a crash-guarded goroutine until ctx ends or Stop is called
func (l *Loop) Start(ctx context.Context) {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		Go(func() {
			defer l.wg.Done()
			l.run(ctx)
		})
	}
}

// Stop halts the loop and waits for the current frame to finish
// Safe to call repeatedly and from any goroutine except the loop's own
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		l.wg.Wait()
		l.running.Store(false)
	})
}

// Done is closed once Stop has been requested
func (l *Loop) Done() <-chan struct{} {
	return l.stopChan
}

// Post queues fn to run between frames
// Returns false when the inbox is full or the loop is stopping; the event is dropped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}
	select {
	case l.inbox <- fn:
		return true
	default:
		return false
	}
}

// Frames returns the number of completed steps
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

func (l *Loop) run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ctx.Done():
			return
		case fn := <-l.inbox:
			fn()
		case <-ticker.C:
			l.drain()
			l.step(l.clock.Now())
			l.frames.Add(1)
		}
	}
}

// drain runs every queued closure so the frame sees all input delivered before it
func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.inbox:
			fn()
		default:
			return
		}
	}
}
