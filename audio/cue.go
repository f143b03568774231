// Package audio plays short synthesized interface cues for scene interaction
// All playback is optional: without a device or when disabled every call is a no-op
package audio

// Cue identifies an interface sound
type Cue int

const (
	CueHover Cue = iota
	CueSelect
	CueFocus
)

// String returns the cue name used in config keys
func (c Cue) String() string {
	switch c {
	case CueHover:
		return "hover"
	case CueSelect:
		return "select"
	case CueFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// ParseCue maps a config key back to its cue
func ParseCue(s string) (Cue, bool) {
	for c := CueHover; c <= CueFocus; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
