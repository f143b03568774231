// Package config composes the tunable component specs into one TOML document
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-galaxy/audio"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/scene"
)

// Render tunes the terminal renderer
type Render struct {
	LabelMaxChars int    `toml:"label_max_chars"`
	Core          string `toml:"core_color"` // galaxy center, "#rrggbb"
	Rim           string `toml:"rim_color"`
	Deep          string `toml:"deep_color"`
	Focus         string `toml:"focus_color"`
}

// Config is the full runtime configuration
type Config struct {
	Catalog       string        `toml:"catalog"` // empty selects the embedded catalog
	FrameInterval time.Duration `toml:"frame_interval"`
	Scene         scene.Config  `toml:"scene"`
	Render        Render        `toml:"render"`
	Audio         audio.Config  `toml:"audio"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FrameInterval: parameter.FrameUpdateInterval,
		Scene:         scene.DefaultConfig(),
		Render: Render{
			LabelMaxChars: parameter.LabelMaxChars,
			Core:          "#ffdb9e",
			Rim:           "#5c73ff",
			Deep:          "#8c99cc",
			Focus:         "#ffffff",
		},
		Audio: audio.DefaultConfig(),
	}
}

// Load decodes path onto Default and applies environment overrides
// A missing file is not an error; undecoded keys are logged
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("config: %s not found, using defaults", path)
		case err != nil:
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		default:
			for _, key := range md.Undecoded() {
				log.Printf("config: unknown key %q", key.String())
			}
		}
	}
	ApplyEnv(&cfg)
	return cfg, cfg.Validate()
}

// ApplyEnv overrides cfg from GALAXY_* environment variables
func ApplyEnv(cfg *Config) {
	if seed := os.Getenv("GALAXY_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Scene.Seed = val
		}
	}
	if catalog := os.Getenv("GALAXY_CATALOG"); catalog != "" {
		cfg.Catalog = catalog
	}
	audio.ApplyEnv(&cfg.Audio)
}

// Validate rejects values the runtime cannot operate with
func (c Config) Validate() error {
	switch {
	case c.FrameInterval <= 0:
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	case c.Scene.Disk.Count < 0 || c.Scene.Shell.Count < 0:
		return fmt.Errorf("particle counts must not be negative")
	case c.Scene.Camera.FOV <= 0 || c.Scene.Camera.FOV >= 180:
		return fmt.Errorf("camera fov must be in (0, 180), got %g", c.Scene.Camera.FOV)
	case c.Scene.Camera.Near <= 0 || c.Scene.Camera.Far <= c.Scene.Camera.Near:
		return fmt.Errorf("camera near/far must satisfy 0 < near < far")
	case c.Scene.Constellation.Neighbors < 0:
		return fmt.Errorf("constellation neighbors must not be negative")
	case c.Render.LabelMaxChars <= 0:
		return fmt.Errorf("label_max_chars must be positive")
	}
	return nil
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
