package search

import (
	"context"
	"time"
)

// HillClimbing is the greedy preset: it only ever moves to a strictly
// improving trial. Because no regression is ever accepted, the current and
// best solutions coincide for the whole run.
type HillClimbing[S any] struct {
	engine *engine[S]
}

// NewHillClimbing builds a hill-climbing optimizer.
//
//   - patience: stop after this many consecutive non-improving iterations
//   - nTrials: trial solutions generated and evaluated per iteration
//   - seed: RNG seed for the run's random streams
func NewHillClimbing[S any](patience, nTrials int, seed int64) (*HillClimbing[S], error) {
	eng, err := newEngine[S](
		config{Patience: patience, NTrials: nTrials, Seed: seed},
		func() Criterion { return Greedy{} },
	)
	if err != nil {
		return nil, err
	}
	return &HillClimbing[S]{engine: eng}, nil
}

func (h *HillClimbing[S]) Optimize(
	ctx context.Context,
	model Model[S],
	initial S,
	initialScore Score,
	nIter int,
	timeLimit time.Duration,
	callback Callback[S],
) (S, Score) {
	return h.engine.optimize(ctx, model, initial, initialScore, nIter, timeLimit, callback)
}
