package search

import (
	"context"
	"fmt"
	"time"
)

// EpsilonGreedyOptimizer moves to improving trials unconditionally and to
// non-improving trials with fixed probability epsilon. With epsilon = 0 its
// acceptance decisions match HillClimbing. Because noise acceptance lets
// the current solution drift, the tracked best snapshot is returned, not
// the current solution.
type EpsilonGreedyOptimizer[S any] struct {
	engine *engine[S]
}

// NewEpsilonGreedy builds an epsilon-greedy optimizer.
//
//   - patience: stop after this many consecutive non-improving iterations
//   - nTrials: trial solutions generated and evaluated per iteration
//   - epsilon: probability in [0, 1] of accepting a non-improving trial
//   - seed: RNG seed for the run's random streams
func NewEpsilonGreedy[S any](patience, nTrials int, epsilon float64, seed int64) (*EpsilonGreedyOptimizer[S], error) {
	if epsilon < 0 || epsilon > 1 {
		return nil, fmt.Errorf("epsilon must be in [0, 1], got %v", epsilon)
	}
	eng, err := newEngine[S](
		config{Patience: patience, NTrials: nTrials, Seed: seed},
		func() Criterion { return EpsilonGreedy{Epsilon: epsilon} },
	)
	if err != nil {
		return nil, err
	}
	return &EpsilonGreedyOptimizer[S]{engine: eng}, nil
}

func (o *EpsilonGreedyOptimizer[S]) Optimize(
	ctx context.Context,
	model Model[S],
	initial S,
	initialScore Score,
	nIter int,
	timeLimit time.Duration,
	callback Callback[S],
) (S, Score) {
	return o.engine.optimize(ctx, model, initial, initialScore, nIter, timeLimit, callback)
}
