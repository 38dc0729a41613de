// Package config holds the command-line settings shared by both frontends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config represents the command-line parameters for the application.
type Config struct {
	Width, Height int
	TPS           int
	Seed          int64   // 0 picks a time-based seed
	Layer         float64 // Opacity of the particle layer over the backdrop
	Backdrop      bool
	Shimmer       bool
	Radar         bool
	Debug         bool
	LogFile       string
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Width:    800,
		Height:   600,
		TPS:      60,
		Layer:    0.5,
		Backdrop: true,
		Shimmer:  true,
		LogFile:  "logs/particle-field.log",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "particle seed (0 = time based)")
	fs.Float64Var(&c.Layer, "layer", c.Layer, "particle layer opacity in [0,1]")
	fs.BoolVar(&c.Backdrop, "backdrop", c.Backdrop, "paint the dark gradient background")
	fs.BoolVar(&c.Shimmer, "shimmer", c.Shimmer, "animate the background with noise")
	fs.BoolVar(&c.Radar, "radar", c.Radar, "overlay the skill radar chart")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "debug log path")
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Layer < 0 || c.Layer > 1:
		return fmt.Errorf("%w: layer opacity %v", ErrInvalid, c.Layer)
	case c.Debug && c.LogFile == "":
		return fmt.Errorf("%w: debug needs a log path", ErrInvalid)
	}
	return nil
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// FrameInterval is the time between frames at TPS.
func (c *Config) FrameInterval() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}
