package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-galaxy/parameter"
)

// Config holds audio settings
type Config struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// DefaultConfig returns audio enabled at the default mix
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		Volumes: map[string]float64{
			CueHover.String():  parameter.HoverCueVolume,
			CueSelect.String(): parameter.SelectCueVolume,
			CueFocus.String():  parameter.FocusCueVolume,
		},
	}
}

// Volume returns the effective gain of a cue, master volume applied
func (c Config) Volume(cue Cue) float64 {
	v, ok := c.Volumes[cue.String()]
	if !ok {
		v = 1
	}
	return clampUnit(v) * clampUnit(c.MasterVolume)
}

// ApplyEnv overrides cfg from GALAXY_* environment variables, ignoring malformed values
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv("GALAXY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 mapped to 0.0-1.0
	if volume := os.Getenv("GALAXY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if cueVols := os.Getenv("GALAXY_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			if cfg.Volumes == nil {
				cfg.Volumes = make(map[string]float64)
			}
			for k, v := range volumes {
				if _, ok := ParseCue(k); ok {
					cfg.Volumes[k] = v
				}
			}
		}
	}

	if rate := os.Getenv("GALAXY_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampUnit(v float64) float64 {
	return max(0, min(1, v))
}
