package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/samuelfneumann/nextframe/experiment"
	"github.com/samuelfneumann/nextframe/experiment/checkpointer"
	"github.com/samuelfneumann/nextframe/experiment/tracker"
	"github.com/samuelfneumann/nextframe/frame"
	"github.com/samuelfneumann/nextframe/report"
	"github.com/samuelfneumann/nextframe/utils/floatutils"
	"github.com/samuelfneumann/nextframe/utils/progressbar"
)

func main() {
	configPath := flag.String("config", "", "JSON experiment config, "+
		"defaults if empty")
	steps := flag.Int("steps", 0, "Override the number of environment steps")
	weights := flag.String("weights", "", "Load model weights before running")
	state := flag.String("state", "", "Restore model state before running")
	out := flag.String("out", "./out", "Output directory")
	verbose := flag.Bool("v", false, "Log at debug level")
	dump := flag.Bool("dump", false, "Print the last and predicted frames")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()

	if err := run(*configPath, *steps, *weights, *state, *out, *dump,
		!*verbose, logger); err != nil {
		logger.Fatal().Err(err).Msg("Experiment failed")
	}
}

func run(configPath string, steps int, weights, state, out string,
	dump, progress bool, logger zerolog.Logger) error {
	c := experiment.DefaultConfig()
	if configPath != "" {
		var err error
		if c, err = experiment.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if steps > 0 {
		c.MaxSteps = steps
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("run: %v", err)
	}
	if err := c.Save(filepath.Join(out, "config.json")); err != nil {
		return fmt.Errorf("run: %v", err)
	}

	setup, err := c.Setup(logger)
	if err != nil {
		return err
	}
	if weights != "" {
		if err := setup.Model.LoadWeights(weights); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	if state != "" {
		if err := setup.Model.RestoreState(state); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}

	returns := tracker.NewReturn(filepath.Join(out, "returns.bin"))
	lengths := tracker.NewEpisodeLength(filepath.Join(out, "lengths.bin"))
	exp, err := experiment.NewOnline(setup.Env, setup.Agent,
		setup.Preprocessor, c.Agent.Depth, c.MaxSteps, logger, returns,
		lengths)
	if err != nil {
		return err
	}

	if c.CheckpointEvery > 0 {
		ckpt, err := checkpointer.NewNStep(c.CheckpointEvery, setup.Model,
			checkpointer.RunEnumerator(out, "state", ".bin"), logger)
		if err != nil {
			return err
		}
		exp.AddCheckpointer(ckpt)
	}

	if progress {
		exp.SetProgress(progressbar.New(os.Stdout, 50, c.MaxSteps))
	}

	logger.Info().
		Int("steps", c.MaxSteps).
		Int("frame_size", c.Agent.FrameSize).
		Int("depth", c.Agent.Depth).
		Int("batch_size", c.Agent.BatchSize).
		Int("capacity", c.Agent.ExpReplay.Capacity).
		Msg("Starting experiment")

	if err := exp.Run(); err != nil {
		return err
	}
	if err := exp.Save(); err != nil {
		return err
	}
	if err := setup.Model.SaveWeights(filepath.Join(out,
		"weights.bin")); err != nil {
		return fmt.Errorf("run: %v", err)
	}

	mean, std := tracker.Summary(returns.Returns())
	logger.Info().
		Int("episodes", exp.Episodes()).
		Int("updates", setup.Agent.Updates()).
		Float64("mean_return", mean).
		Float64("std_return", std).
		Float64("loss", setup.Model.Loss()).
		Msg("Experiment complete")

	err = tracker.PlotFile(filepath.Join(out, "returns.html"),
		"Episodic return",
		tracker.Series{Name: "return", Data: returns.Returns()},
		tracker.Series{Name: "length", Data: lengths.Lengths()})
	if err != nil {
		return err
	}

	values, err := report.Highlight(setup.Agent.RewardByAction(),
		setup.Agent.Actions())
	if err != nil {
		return err
	}
	fmt.Print(values)

	return predictLast(exp.History(), setup, out, dump)
}

// predictLast predicts the frame following the final frame history of
// the run, saving both frames as images
func predictLast(h *frame.History, setup *experiment.Setup, out string,
	dump bool) error {
	if !h.Warm() {
		return nil
	}
	stack := h.Stack()

	values, err := setup.Agent.Predict(stack)
	if err != nil {
		return err
	}
	pixels := make([]uint8, len(values))
	for i, v := range values {
		pixels[i] = uint8(math.Round(floatutils.Clip(v, 0, 255)))
	}
	predicted, err := frame.New(stack.FrameSize(), pixels)
	if err != nil {
		return err
	}

	if err := stack.Last().SavePNG(filepath.Join(out, "last.png")); err != nil {
		return err
	}
	if err := predicted.SavePNG(filepath.Join(out,
		"predicted.png")); err != nil {
		return err
	}

	if dump {
		fmt.Println("Last frame:")
		fmt.Print(stack.Last().Dump())
		fmt.Println("Predicted frame:")
		fmt.Print(predicted.Dump())
	}
	return nil
}
