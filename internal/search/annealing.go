package search

import (
	"context"
	"fmt"
	"time"
)

// SimulatedAnnealing accepts degrading moves with Metropolis probability
// exp(-delta / T), cooling T geometrically from maxTemp to minTemp over
// the iteration budget. Return-to-best pulls the current solution back to
// the best snapshot after returnIter stagnant iterations.
type SimulatedAnnealing[S any] struct {
	engine *engine[S]
}

// NewSimulatedAnnealing builds a simulated-annealing optimizer.
//
//   - patience: stop after this many consecutive non-improving iterations
//   - nTrials: trial solutions generated and evaluated per iteration
//   - returnIter: reset current to best after this many stagnant
//     iterations; must be below patience
//   - maxTemp, minTemp: cooling schedule endpoints, 0 < minTemp < maxTemp
//   - seed: RNG seed for the run's random streams
func NewSimulatedAnnealing[S any](patience, nTrials, returnIter int, maxTemp, minTemp float64, seed int64) (*SimulatedAnnealing[S], error) {
	if minTemp <= 0 || maxTemp <= minTemp {
		return nil, fmt.Errorf("temperatures must satisfy 0 < minTemp < maxTemp, got min=%v max=%v", minTemp, maxTemp)
	}
	eng, err := newEngine[S](
		config{Patience: patience, NTrials: nTrials, ReturnIter: returnIter, Seed: seed},
		func() Criterion { return &TemperatureDelta{MaxTemp: maxTemp, MinTemp: minTemp} },
	)
	if err != nil {
		return nil, err
	}
	return &SimulatedAnnealing[S]{engine: eng}, nil
}

func (o *SimulatedAnnealing[S]) Optimize(
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

// RelativeAnnealing accepts trials with probability exp(-w * d) where d is
// the relative score degradation (trial - current) / current. Unlike
// simulated annealing the acceptance probability depends only on the
// relative difference, not on a cooling schedule.
type RelativeAnnealing[S any] struct {
	engine *engine[S]
}

// NewRelativeAnnealing builds a relative-annealing optimizer.
//
//   - patience: stop after this many consecutive non-improving iterations
//   - nTrials: trial solutions generated and evaluated per iteration
//   - returnIter: reset current to best after this many stagnant
//     iterations; must be below patience
//   - weight: positive coefficient multiplied with the relative degradation
//   - seed: RNG seed for the run's random streams
func NewRelativeAnnealing[S any](patience, nTrials, returnIter int, weight float64, seed int64) (*RelativeAnnealing[S], error) {
	if weight <= 0 {
		return nil, fmt.Errorf("weight must be positive, got %v", weight)
	}
	eng, err := newEngine[S](
		config{Patience: patience, NTrials: nTrials, ReturnIter: returnIter, Seed: seed},
		func() Criterion { return RelativeDelta{Weight: weight} },
	)
	if err != nil {
		return nil, err
	}
	return &RelativeAnnealing[S]{engine: eng}, nil
}

func (o *RelativeAnnealing[S]) Optimize(
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

// LogisticAnnealing accepts trials with probability 2 / (1 + exp(w * d))
// over the relative score degradation d, a logistic variant of
// RelativeAnnealing with damped tails.
type LogisticAnnealing[S any] struct {
	engine *engine[S]
}

// NewLogisticAnnealing builds a logistic-annealing optimizer. Parameters
// match NewRelativeAnnealing.
func NewLogisticAnnealing[S any](patience, nTrials, returnIter int, weight float64, seed int64) (*LogisticAnnealing[S], error) {
	if weight <= 0 {
		return nil, fmt.Errorf("weight must be positive, got %v", weight)
	}
	eng, err := newEngine[S](
		config{Patience: patience, NTrials: nTrials, ReturnIter: returnIter, Seed: seed},
		func() Criterion { return LogisticDelta{Weight: weight} },
	)
	if err != nil {
		return nil, err
	}
	return &LogisticAnnealing[S]{engine: eng}, nil
}

func (o *LogisticAnnealing[S]) Optimize(
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
