package preprocess

import "fmt"

// Defaults used for Atari 2600 screens
const (
	DefaultFrameSize   = 84
	DefaultKeepPercent = 92
	DefaultLeftColumns = 8
)

// Config describes how raw screens are cropped and resampled
type Config struct {
	// FrameSize is the edge length of the produced square Frames
	FrameSize int

	// KeepPercent is the percentage of the screen height that is kept.
	// The removed rows are split evenly between the top and bottom of
	// the screen.
	KeepPercent int

	// LeftColumns is the number of columns discarded at the left edge
	// of the screen
	LeftColumns int
}

// DefaultConfig returns the Config used for Atari 2600 screens: 84x84
// frames, 4% of the height cropped from the top and bottom, and the
// 8 pixel wide left border removed.
func DefaultConfig() Config {
	return Config{
		FrameSize:   DefaultFrameSize,
		KeepPercent: DefaultKeepPercent,
		LeftColumns: DefaultLeftColumns,
	}
}

// Validate returns an error describing whether the Config is invalid
func (c Config) Validate() error {
	if c.FrameSize < 1 {
		return fmt.Errorf("validate: frame size must be > 0\n\thave(%v)",
			c.FrameSize)
	}
	if c.KeepPercent < 1 || c.KeepPercent > 100 {
		return fmt.Errorf("validate: keep percent must be in [1, 100]"+
			"\n\thave(%v)", c.KeepPercent)
	}
	if c.LeftColumns < 0 {
		return fmt.Errorf("validate: left columns must be >= 0\n\thave(%v)",
			c.LeftColumns)
	}
	return nil
}

// Create returns the Preprocessor described by the Config
func (c Config) Create() (*Preprocessor, error) {
	return New(c)
}
