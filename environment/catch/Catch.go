// Package catch implements a small paddle game which renders raw
// palette-coded screens in the layout of an Atari 2600 frame. Balls
// fall from the top of the screen and the agent moves a paddle along
// the bottom to catch them.
package catch

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/environment"
	ts "github.com/samuelfneumann/nextframe/timestep"
)

// Palette codes used when rendering
const (
	Background uint8 = 0x00
	Border     uint8 = 0x0e
	Ball       uint8 = 0x1e
	Paddle     uint8 = 0x42
)

// Catch implements the environment.Environment interface
type Catch struct {
	Config
	rng   *rand.Rand
	ender environment.Ender

	ballX, ballY int
	paddleX      int
	balls        int
	score        int

	step    int
	started bool
	done    bool
}

// New returns a new Catch environment. The environment must be Reset
// before it is stepped.
func New(c Config, seed uint64) (*Catch, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	return &Catch{
		Config: c,
		rng:    rand.New(rand.NewSource(seed)),
		ender:  environment.NewStepLimit(c.EpisodeSteps),
	}, nil
}

// Actions returns the actions legal in Catch
func Actions() []ale.Action {
	return []ale.Action{ale.Noop, ale.Right, ale.Left}
}

// LegalActions implements the environment.Environment interface
func (c *Catch) LegalActions() []ale.Action {
	return Actions()
}

// Reset implements the environment.Environment interface
func (c *Catch) Reset() (ts.TimeStep, error) {
	c.step = 0
	c.balls = 0
	c.score = 0
	c.started = true
	c.done = false
	c.paddleX = c.LeftBorder + (c.playWidth()-c.PaddleWidth)/2
	c.spawn()

	return ts.New(ts.First, 0, c.render(), c.step), nil
}

// Step implements the environment.Environment interface
func (c *Catch) Step(a ale.Action) (ts.TimeStep, bool, error) {
	if !c.started || c.done {
		return ts.TimeStep{}, true, fmt.Errorf("step: episode over, " +
			"environment must be reset")
	}

	switch a {
	case ale.Noop:
	case ale.Left:
		c.paddleX -= c.PaddleSpeed
	case ale.Right:
		c.paddleX += c.PaddleSpeed
	default:
		return ts.TimeStep{}, false, fmt.Errorf("step: illegal action %v", a)
	}
	c.paddleX = max(c.LeftBorder, min(c.paddleX, c.Width-c.PaddleWidth))

	c.ballY += c.BallSpeed
	c.step++

	var reward float64
	if c.ballY+c.BallSize >= c.paddleTop() {
		if c.caught() {
			reward = c.CatchReward
			c.score++
		} else {
			reward = c.MissReward
		}
		c.balls++
		c.spawn()
	}

	t := ts.New(ts.Mid, reward, c.render(), c.step)
	if c.balls >= c.Balls {
		t.SetLast()
		c.done = true
	} else if c.ender.End(&t) {
		c.done = true
	}
	return t, c.done, nil
}

// Score returns the number of balls caught this episode
func (c *Catch) Score() int {
	return c.score
}

func (c *Catch) playWidth() int {
	return c.Width - c.LeftBorder
}

func (c *Catch) paddleTop() int {
	return c.Height - c.BottomMargin - c.PaddleHeight
}

// caught returns whether the ball overlaps the paddle horizontally
func (c *Catch) caught() bool {
	return c.ballX+c.BallSize > c.paddleX &&
		c.ballX < c.paddleX+c.PaddleWidth
}

// spawn places a new ball at a random column just below the top margin
func (c *Catch) spawn() {
	c.ballX = c.LeftBorder + c.rng.Intn(c.playWidth()-c.BallSize+1)
	c.ballY = c.TopMargin
}

// render draws the current state of the game
func (c *Catch) render() ale.Screen {
	screen := ale.NewScreen(c.Width, c.Height, Background)

	fill := func(x, y, w, h int, code uint8) {
		for j := max(y, 0); j < min(y+h, c.Height); j++ {
			for i := max(x, 0); i < min(x+w, c.Width); i++ {
				screen.Set(i, j, code)
			}
		}
	}

	fill(0, 0, c.LeftBorder, c.Height, Border)
	fill(c.ballX, c.ballY, c.BallSize, c.BallSize, Ball)
	fill(c.paddleX, c.paddleTop(), c.PaddleWidth, c.PaddleHeight, Paddle)
	return screen
}
