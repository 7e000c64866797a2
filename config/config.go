// Package config loads host settings from a TOML file with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/stress-bomb/audio"
	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "STRESS_BOMB_AUDIO_ENABLED"
	EnvMasterVolume = "STRESS_BOMB_MASTER_VOLUME" // 0-100
	EnvSeed         = "STRESS_BOMB_SEED"
	EnvDebug        = "STRESS_BOMB_DEBUG"
	EnvWeapon       = "STRESS_BOMB_WEAPON"
)

// Color modes accepted by [display] color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

type EngineConfig struct {
	TickRateHz int    `toml:"tick_rate_hz"`
	Seed       int64  `toml:"seed"`   // 0 picks a time-based seed
	Weapon     string `toml:"weapon"` // starting weapon: bomb or dart
}

type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"` // keyed by cue name
}

type DisplayConfig struct {
	Color string `toml:"color"`
	Fog   bool   `toml:"fog"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns settings matching the built-in tuning
func Default() *Config {
	ac := audio.DefaultConfig()
	vols := make(map[string]float64, len(ac.Volumes))
	for s, v := range ac.Volumes {
		vols[s.String()] = v
	}
	return &Config{
		Engine: EngineConfig{TickRateHz: 60, Weapon: component.WeaponImpact.String()},
		Audio: AudioConfig{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
			Volumes:      vols,
		},
		Display: DisplayConfig{Color: ColorAuto, Fog: true},
	}
}

// Load reads path over the defaults, applies environment overrides, and validates
// An empty path or a missing file yields defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := Decode(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg; keys absent from data keep their values
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return nil
}

// applyEnv applies overrides from lookup; malformed values are rejected
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvAudioEnabled, v)
		}
		c.Audio.Enabled = b
	}

	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvMasterVolume, v)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Engine.Seed = n
	}

	if v, ok := lookup(EnvWeapon); ok && v != "" {
		c.Engine.Weapon = v
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvDebug, v)
		}
		c.Log.Debug = b
	}
	return nil
}

// Validate rejects out-of-range values
func (c *Config) Validate() error {
	if c.Engine.TickRateHz < 1 || c.Engine.TickRateHz > 240 {
		return fmt.Errorf("%w: engine.tick_rate_hz %d not in [1,240]", ErrInvalidConfig, c.Engine.TickRateHz)
	}
	if _, ok := component.ParseWeaponKind(c.Engine.Weapon); !ok {
		return fmt.Errorf("%w: engine.weapon %q", ErrInvalidConfig, c.Engine.Weapon)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume %g not in [0,1]", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return fmt.Errorf("%w: audio.sample_rate %d not in [8000,192000]", ErrInvalidConfig, c.Audio.SampleRate)
	}
	for name, v := range c.Audio.Volumes {
		if _, ok := core.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: audio.volumes has unknown cue %q", ErrInvalidConfig, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: audio.volumes.%s %g not in [0,1]", ErrInvalidConfig, name, v)
		}
	}
	switch c.Display.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: display.color %q", ErrInvalidConfig, c.Display.Color)
	}
	return nil
}

// TickInterval is the wall-clock frame period
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Engine.TickRateHz)
}

// StartWeapon is the validated [engine] weapon; an unknown name falls back to the bomb
func (c *Config) StartWeapon() component.WeaponKind {
	kind, _ := component.ParseWeaponKind(c.Engine.Weapon)
	return kind
}

// AudioSettings converts the [audio] table for the player
func (c *Config) AudioSettings() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		if s, ok := core.ParseSoundType(name); ok {
			ac.Volumes[s] = v
		}
	}
	return ac
}
