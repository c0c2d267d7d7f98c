package stripes

import (
	"github.com/matzehuels/datastripes/pkg/errors"
)

// Default values for Config.
const (
	DefaultTargetWidth = 1100
	DefaultBarHeight   = 200
	DefaultFilesNum    = 4
	DefaultRedMax      = 255.0
	DefaultBlueConst   = 127.0
)

// Config holds the pixel constants of the pipeline.
type Config struct {
	TargetWidth int     `toml:"width" json:"width"`
	BarHeight   int     `toml:"height" json:"height"`
	FilesNum    int     `toml:"files" json:"files"`
	RedMax      float64 `toml:"red_max" json:"red_max"`
	BlueConst   float64 `toml:"blue" json:"blue"`
}

// DefaultConfig returns the canonical 1100x200 configuration for four bars.
func DefaultConfig() Config {
	return Config{
		TargetWidth: DefaultTargetWidth,
		BarHeight:   DefaultBarHeight,
		FilesNum:    DefaultFilesNum,
		RedMax:      DefaultRedMax,
		BlueConst:   DefaultBlueConst,
	}
}

// Validate checks that every constant is usable.
func (c Config) Validate() error {
	if err := errors.ValidatePositive("width", c.TargetWidth); err != nil {
		return err
	}
	if err := errors.ValidatePositive("height", c.BarHeight); err != nil {
		return err
	}
	if err := errors.ValidatePositive("files", c.FilesNum); err != nil {
		return err
	}
	if err := errors.ValidateChannel("red_max", c.RedMax); err != nil {
		return err
	}
	return errors.ValidateChannel("blue", c.BlueConst)
}

// CompositeHeight is the height of a composite holding FilesNum bars.
func (c Config) CompositeHeight() int {
	return c.BarHeight * c.FilesNum
}
