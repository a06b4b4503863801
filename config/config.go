// Package config holds the scene configuration and its layered loading:
// reference defaults, an optional TOML scene file, an optional .env file,
// SNOWTREE_* environment variables, and finally command-line flags applied
// by the caller.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/snowtree/asset"
	"github.com/lixenwraith/snowtree/constant"
)

// EnvPrefix namespaces every environment variable read by ApplyEnv
const EnvPrefix = "SNOWTREE_"

// Config describes one scene and how it is presented
type Config struct {
	Height          int           `toml:"height" env:"HEIGHT"`
	Width           int           `toml:"width" env:"WIDTH"`
	FrameDelay      time.Duration `toml:"frame_delay" env:"FRAME_DELAY"`
	SnowflakeChance int           `toml:"snowflake_chance" env:"SNOWFLAKE_CHANCE"`

	// Seed of 0 seeds the snow from OS entropy
	Seed uint64 `toml:"seed" env:"SEED"`

	// MaxFrames of 0 runs until interrupted
	MaxFrames int `toml:"max_frames" env:"MAX_FRAMES"`

	Display string `toml:"display" env:"DISPLAY_MODE"`
	Clear   string `toml:"clear" env:"CLEAR"`
	Color   bool   `toml:"color" env:"COLOR"`

	Audio  bool    `toml:"audio" env:"AUDIO"`
	Volume float64 `toml:"volume" env:"VOLUME"`

	// Art takes precedence over ArtFile; both empty selects the built-in tree
	Art     string `toml:"art"`
	ArtFile string `toml:"art_file" env:"ART_FILE"`

	Debug bool `toml:"debug" env:"DEBUG"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Height:          constant.SceneHeight,
		Width:           constant.SceneWidth,
		FrameDelay:      constant.FrameDelay,
		SnowflakeChance: constant.SnowflakeChance,
		MaxFrames:       constant.MaxFrames,
		Display:         constant.DisplayStream,
		Clear:           constant.ClearAuto,
		Color:           true,
		Volume:          constant.AudioVolume,
	}
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("frame_delay must not be negative, got %s", c.FrameDelay))
	}
	if c.SnowflakeChance < constant.SnowDrawMin || c.SnowflakeChance > constant.SnowDrawMax+1 {
		errs = append(errs, fmt.Errorf("snowflake_chance must be in [%d, %d], got %d",
			constant.SnowDrawMin, constant.SnowDrawMax+1, c.SnowflakeChance))
	}
	if c.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("max_frames must not be negative, got %d", c.MaxFrames))
	}
	switch c.Display {
	case constant.DisplayStream, constant.DisplayScreen:
	default:
		errs = append(errs, fmt.Errorf("display must be %q or %q, got %q",
			constant.DisplayStream, constant.DisplayScreen, c.Display))
	}
	switch c.Clear {
	case constant.ClearAuto, constant.ClearAlways, constant.ClearNever:
	default:
		errs = append(errs, fmt.Errorf("clear must be auto, always or never, got %q", c.Clear))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be in [0, 1], got %g", c.Volume))
	}
	return errors.Join(errs...)
}

// ArtLines resolves the tree picture: inline art, then art file, then built-in
func (c *Config) ArtLines() ([]string, error) {
	switch {
	case c.Art != "":
		return asset.ParseArt(c.Art), nil
	case c.ArtFile != "":
		return asset.LoadArtFile(c.ArtFile)
	default:
		return asset.TreeLines(), nil
	}
}
