package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-galaxy/parameter"
)

// Cues plays interface sounds through a shared mixer
// Safe for concurrent use; every method is a no-op until Init succeeds
type Cues struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	last        map[Cue]time.Time
	now         func() time.Time
	open        func(beep.SampleRate, int) error
	played      int
}

// NewCues creates a cue player with the given config
func NewCues(cfg Config) *Cues {
	return &Cues{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		last:  make(map[Cue]time.Time),
		now:   time.Now,
		open:  speaker.Init,
	}
}

// Init opens the speaker; a disabled config or a missing device leaves the player silent
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(c.cfg.SampleRate)
	if err := c.open(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		log.Printf("audio: speaker unavailable, cues disabled: %v", err)
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// ToggleMute flips output and returns the new state
// Unmuting opens the speaker on first use; if that fails the player stays muted
func (c *Cues) ToggleMute() (muted bool, err error) {
	if !c.Muted() {
		c.SetMuted(true)
		return true, nil
	}
	c.SetMuted(false)
	if err := c.Init(); err != nil {
		c.SetMuted(true)
		return true, err
	}
	return false, nil
}

// Enabled reports whether cues reach the speaker
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Played returns the number of cues handed to the mixer
func (c *Cues) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Muted reports whether cues are switched off
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.cfg.Enabled
}

// SetMuted toggles output without tearing down the speaker
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Enabled = !muted
	if muted {
		c.clear()
	}
}

// Play queues cue unless the same cue fired within the minimum gap
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.cfg.Enabled {
		return
	}

	now := c.now()
	if prev, ok := c.last[cue]; ok && now.Sub(prev) < parameter.MinCueGap {
		return
	}
	c.last[cue] = now

	s := Sound(cue, c.cfg)
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
	c.played++
}

// Hover plays the hover tick
func (c *Cues) Hover() { c.Play(CueHover) }

// Select plays the selection bell
func (c *Cues) Select() { c.Play(CueSelect) }

// Focus plays the fly-in whoosh
func (c *Cues) Focus() { c.Play(CueFocus) }

// Close stops all sounds; the speaker stays open since beep cannot reopen it
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.clear()
	c.initialized = false
}

func (c *Cues) clear() {
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
}
