package catch

import "fmt"

// Config describes the geometry and rewards of a Catch game
type Config struct {
	Width, Height int

	// Columns on the left and rows at the top and bottom of the screen
	// that are never played on
	LeftBorder   int
	TopMargin    int
	BottomMargin int

	BallSize     int
	BallSpeed    int
	PaddleWidth  int
	PaddleHeight int
	PaddleSpeed  int

	// Balls is the number of balls dropped per episode
	Balls int

	// EpisodeSteps cuts episodes off after this many steps, 0 for no
	// cutoff
	EpisodeSteps int

	CatchReward float64
	MissReward  float64
}

// DefaultConfig returns a Config producing 160x210 screens with game
// score sized rewards
func DefaultConfig() Config {
	return Config{
		Width:        160,
		Height:       210,
		LeftBorder:   8,
		TopMargin:    12,
		BottomMargin: 12,
		BallSize:     4,
		BallSpeed:    6,
		PaddleWidth:  20,
		PaddleHeight: 4,
		PaddleSpeed:  6,
		Balls:        10,
		EpisodeSteps: 0,
		CatchReward:  10,
		MissReward:   -10,
	}
}

// Validate returns an error describing whether the Config is invalid
func (c Config) Validate() error {
	if c.Width < 1 || c.Height <= c.Width {
		return fmt.Errorf("validate: screen must be taller than it is wide"+
			"\n\thave(%vx%v)", c.Width, c.Height)
	}
	if c.LeftBorder < 0 || c.TopMargin < 0 || c.BottomMargin < 0 {
		return fmt.Errorf("validate: borders must be >= 0")
	}
	if c.BallSize < 1 || c.BallSpeed < 1 {
		return fmt.Errorf("validate: ball size and speed must be > 0")
	}
	if c.PaddleWidth < 1 || c.PaddleHeight < 1 || c.PaddleSpeed < 1 {
		return fmt.Errorf("validate: paddle size and speed must be > 0")
	}
	if c.LeftBorder+max(c.BallSize, c.PaddleWidth) > c.Width {
		return fmt.Errorf("validate: playing field too narrow")
	}
	if c.TopMargin+c.BallSize+c.PaddleHeight+c.BottomMargin > c.Height {
		return fmt.Errorf("validate: playing field too short")
	}
	if c.Balls < 1 {
		return fmt.Errorf("validate: balls must be > 0\n\thave(%v)", c.Balls)
	}
	if c.EpisodeSteps < 0 {
		return fmt.Errorf("validate: episode steps must be >= 0\n\thave(%v)",
			c.EpisodeSteps)
	}
	return nil
}
