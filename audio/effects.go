package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-galaxy/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	sweep    float64 // frequency change per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates an oscillator that sweeps linearly from freq to endFreq over duration
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	o := &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(samples))),
	}
	if samples > 0 {
		o.sweep = (endFreq - freq) / float64(samples)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.sweep
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and a release that is linear or exponential
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
	exponential  bool
}

// NewEnvelope applies attack and release over a total duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(s, duration, attack, release, rate, false)
}

// NewDecay applies a short attack followed by an exponential decay with the given time constant
func NewDecay(s beep.Streamer, duration, attack, decay time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(s, duration, attack, decay, rate, true)
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate, exponential bool) *envelope {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := rate.N(release)
	start := max(att, total-rel)
	if exponential {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: start,
		release:      rel,
		total:        total,
		exponential:  exponential,
	}
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	switch {
	case e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.position >= e.releaseStart && e.release > 0:
		elapsed := float64(e.position - e.releaseStart)
		if e.exponential {
			return math.Exp(-elapsed / float64(e.release))
		}
		return max(0, 1-elapsed/float64(e.release))
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, silencing zero since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// HoverSound is a short bright tick played when the pointer enters a node
func HoverSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(parameter.HoverCueFreq, parameter.HoverCueFreq, parameter.HoverCueDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, parameter.HoverCueDuration, parameter.HoverCueAttack, parameter.HoverCueRelease, rate)
	return newVolume(shaped, cfg.Volume(CueHover))
}

// SelectSound is a bell with an octave overtone played on node selection
func SelectSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	f := parameter.SelectCueFundamentalFreq

	fund := NewOscillator(f, f, parameter.SelectCueDuration, WaveSine, rate)
	fundShaped := NewDecay(fund, parameter.SelectCueDuration, parameter.SelectCueAttack, parameter.SelectCueFundamentalDecay, rate)

	over := NewOscillator(2*f, 2*f, parameter.SelectCueDuration, WaveSine, rate)
	overShaped := NewDecay(over, parameter.SelectCueDuration, parameter.SelectCueAttack, parameter.SelectCueOvertoneDecay, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume(CueSelect))
}

// FocusSound is a rising filtered whoosh played while the camera flies in
func FocusSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, 0, parameter.FocusCueDuration, WaveNoise, rate)
	tone := NewOscillator(220, 660, parameter.FocusCueDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.35), newVolume(tone, 0.5))

	shaped := NewEnvelope(mixed, parameter.FocusCueDuration, parameter.FocusCueAttack, parameter.FocusCueRelease, rate)
	return newVolume(shaped, cfg.Volume(CueFocus))
}

// Sound builds the streamer for a cue
func Sound(cue Cue, cfg Config) beep.Streamer {
	switch cue {
	case CueHover:
		return HoverSound(cfg)
	case CueSelect:
		return SelectSound(cfg)
	case CueFocus:
		return FocusSound(cfg)
	default:
		return beep.Silence(0)
	}
}
