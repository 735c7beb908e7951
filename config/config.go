// Package config loads run settings from RAIN_* environment variables and
// command-line flags. Flags override the environment.
package config

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/rain/constants"
	"github.com/lixenwraith/rain/terminal"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds the command configuration
type Config struct {
	FPS          int           `env:"RAIN_FPS" envDefault:"30"`
	Color        string        `env:"RAIN_COLOR" envDefault:"green"`
	ColorMode    string        `env:"RAIN_COLOR_MODE" envDefault:"auto"`
	Seed         uint64        `env:"RAIN_SEED"`
	Bench        bool          `env:"RAIN_BENCH"`
	Frames       uint64        `env:"RAIN_FRAMES"`
	PollInterval time.Duration `env:"RAIN_POLL_INTERVAL" envDefault:"5ms"`
	Sound        bool          `env:"RAIN_SOUND"`
	Debug        bool          `env:"RAIN_DEBUG"`

	rgb  terminal.RGB
	mode terminal.ColorMode
}

// Load parses environment defaults, then flags from args, then validates
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frames per second")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "rain color: theme name or #rrggbb")
	fs.StringVar(&cfg.ColorMode, "colors", cfg.ColorMode, "color mode: auto, 256 or truecolor")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one")
	fs.BoolVar(&cfg.Bench, "bench", cfg.Bench, "run unpaced and report throughput on exit")
	fs.BoolVar(&cfg.Bench, "b", cfg.Bench, "shorthand for -bench")
	fs.Uint64Var(&cfg.Frames, "frames", cfg.Frames, "stop after this many frames, 0 runs until q")
	fs.DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "longest sleep between input polls")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play the rain soundscape")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write a debug log to logs/rain.log")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and resolves the color settings
func (c *Config) Validate() error {
	var errs []error

	if c.FPS < 1 || c.FPS > constants.MaxFrameRate {
		errs = append(errs, fmt.Errorf("fps %d outside 1..%d", c.FPS, constants.MaxFrameRate))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll interval %v must be positive", c.PollInterval))
	}

	rgb, err := terminal.ParseRGB(c.Color)
	if err != nil {
		errs = append(errs, err)
	}
	mode, err := terminal.ParseColorMode(c.ColorMode)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	c.rgb, c.mode = rgb, mode
	return nil
}

// FrameBudget returns the per-tick budget, zero in bench mode
func (c *Config) FrameBudget() time.Duration {
	if c.Bench {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// RGB returns the resolved rain color
func (c *Config) RGB() terminal.RGB {
	return c.rgb
}

// Mode returns the resolved terminal color mode
func (c *Config) Mode() terminal.ColorMode {
	return c.mode
}

// ResolveSeed returns the configured seed, or a fresh one from crypto/rand when unset
func (c *Config) ResolveSeed() (uint64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	return NewSeed()
}

// NewSeed generates a non-zero random seed
func NewSeed() (uint64, error) {
	var b [8]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("generate seed: %w", err)
		}
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed, nil
		}
	}
}
