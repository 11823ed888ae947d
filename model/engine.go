package model

import "github.com/pkg/errors"

// StepMode selects how a generation is computed. Every mode yields the same grid.
type StepMode int

const (
	// StepParallel recomputes every cell, rows split across goroutines
	StepParallel StepMode = iota
	// StepBounded recomputes only the live bounding box plus a one cell margin
	StepBounded
	// StepSerial recomputes every cell on the calling goroutine
	StepSerial
)

// EngineOptions configures an Engine
type EngineOptions struct {
	Mode StepMode
	// Pool, when set, supplies the two working buffers and takes them back on Release
	Pool *GridPool
	// StopWhenStill skips remaining steps once a generation equals its predecessor
	StopWhenStill bool
}

// Engine runs the simulation on a private pair of ping-pong buffers.
// buffers[flips] is the current generation, buffers[1-flips] receives the next one.
type Engine struct {
	opts       EngineOptions
	buffers    [2]*Grid
	flips      int
	generation int
	computed   int
	still      bool
}

// NewEngine copies initial into a fresh buffer pair; initial itself is never modified
func NewEngine(initial *Grid, opts EngineOptions) *Engine {
	e := &Engine{opts: opts}
	for i := range e.buffers {
		if opts.Pool != nil {
			e.buffers[i] = opts.Pool.Get(initial.width, initial.height)
		} else {
			e.buffers[i] = NewGrid(initial.width, initial.height)
		}
	}
	e.buffers[0].CopyFrom(initial)
	return e
}

// Step advances the simulation by one generation
func (e *Engine) Step() error {
	if e.buffers[0] == nil {
		return errors.New("[Engine.Step] engine has been released")
	}

	var (
		cur  = e.buffers[e.flips]
		next = e.buffers[1-e.flips]
	)

	switch e.opts.Mode {
	case StepBounded:
		cur.NextGenerationBounded(next)
	case StepSerial:
		cur.NextGenerationSerial(next)
	default:
		if err := cur.NextGenerationParallel(next); err != nil {
			return errors.Wrapf(err, "[Engine.Step] generation %d", e.generation)
		}
	}

	if e.opts.StopWhenStill && next.Equal(cur) {
		e.still = true
	}

	e.flips = 1 - e.flips
	e.generation++
	e.computed++
	return nil
}

// Run advances the simulation by n generations. Once the grid is still, the remaining
// generations are counted without being computed.
func (e *Engine) Run(n int) error {
	if n < 0 {
		return errors.Errorf("[Engine.Run] negative generation count: %d", n)
	}
	for i := 0; i < n; i++ {
		if e.still {
			e.generation += n - i
			return nil
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Current returns the active buffer. It stays owned by the engine and is only valid until
// the next Step or Release.
func (e *Engine) Current() *Grid {
	return e.buffers[e.flips]
}

// Generation returns how many generations the current grid is past the initial one
func (e *Engine) Generation() int {
	return e.generation
}

// Computed returns how many steps were actually calculated
func (e *Engine) Computed() int {
	return e.computed
}

// Still reports whether the grid reached a fixed point
func (e *Engine) Still() bool {
	return e.still
}

// Release hands the buffers back to the pool, if any. The engine is unusable afterwards.
func (e *Engine) Release() {
	for i, g := range e.buffers {
		GridToPool(g, e.opts.Pool)
		e.buffers[i] = nil
	}
}

// Simulate runs initial for the given number of generations and returns an independent copy of the result
func Simulate(initial *Grid, generations int, opts EngineOptions) (*Grid, error) {
	e := NewEngine(initial, opts)
	defer e.Release()

	if err := e.Run(generations); err != nil {
		return nil, err
	}
	return e.Current().Clone(), nil
}
