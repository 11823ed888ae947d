package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
	"github.com/sheikhrachel/go-lifesim/pattern"
	"github.com/sheikhrachel/go-lifesim/utils"
)

var errInvalidGenerations = errors.New("invalid generation count")

// loadConfig reads the config file when one is given, otherwise returns the defaults
func loadConfig(path string) (utils.Config, error) {
	if path == "" {
		return utils.DefaultConfig(), nil
	}
	return utils.LoadConfig(path)
}

// parseGenerations accepts any non-negative number and truncates it to a step count
func parseGenerations(arg string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, errors.Wrapf(errInvalidGenerations, "[parseGenerations] %q is not a number", arg)
	}
	if math.IsNaN(f) || f < 0 || f >= math.MaxInt32 {
		return 0, errors.Wrapf(errInvalidGenerations, "[parseGenerations] %q is out of range", arg)
	}
	return int(f), nil
}

// engineOptions maps the config onto the simulation engine
func engineOptions(config utils.Config) model.EngineOptions {
	opts := model.EngineOptions{
		Mode:          model.StepParallel,
		StopWhenStill: config.StopWhenStill,
	}
	switch {
	case config.UseBoundedGrid:
		opts.Mode = model.StepBounded
	case !config.UseParallel:
		opts.Mode = model.StepSerial
	}
	if config.UseMemoryPool {
		opts.Pool = model.NewGridPool()
	}
	return opts
}

// newRenderer builds the text renderer, looking up the clear sequence once when asked to
func newRenderer(config utils.Config, out, errOut io.Writer) *model.TextRenderer {
	var clearSeq string
	if config.ClearScreen {
		seq, err := model.ClearSequence()
		if err != nil {
			fmt.Fprintf(errOut, "warning: terminal cannot be cleared: %v\n", err)
		}
		clearSeq = seq
	}
	return model.NewTextRenderer(out, clearSeq)
}

// runSimulation decodes the pattern file, steps it and prints the final generation to out
func runSimulation(config utils.Config, path string, generations int, out, errOut io.Writer, showStats bool) error {
	initial, err := pattern.ParseFile(path, config.Width, config.Height)
	if err != nil {
		if category := pattern.Category(err); category != "" {
			return errors.WithMessage(err, category)
		}
		return err
	}

	stats := utils.NewStats()
	stats.InitialPopulation = initial.CountLivingCells()

	engine := model.NewEngine(initial, engineOptions(config))
	defer engine.Release()

	if err = engine.Run(generations); err != nil {
		return err
	}
	final := engine.Current()

	renderer := newRenderer(config, out, errOut)
	if err = renderer.Clear(); err != nil {
		return err
	}
	if err = renderer.Display(final); err != nil {
		return err
	}

	if showStats {
		stats.Finish(engine.Generation(), engine.Computed(), final.CountLivingCells(),
			final.GetBoundingBoxSize(), final.GetGridHash())
		stats.Print(errOut)
	}
	return nil
}
