package search

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// config holds the loop parameters shared by every preset. All values are
// required; presets validate before the engine is built.
type config struct {
	// Patience is the number of consecutive non-improving iterations
	// tolerated before the search stops.
	Patience int

	// NTrials is the number of trial solutions generated and evaluated in
	// parallel at each iteration.
	NTrials int

	// ReturnIter, when positive, resets the current solution to the best
	// snapshot once the non-improvement counter reaches it. Must stay below
	// Patience to be observable.
	ReturnIter int

	// Seed drives the run's RNG streams.
	Seed int64
}

func (c config) validate() error {
	if c.Patience < 1 {
		return fmt.Errorf("patience must be >= 1, got %d", c.Patience)
	}
	if c.NTrials < 1 {
		return fmt.Errorf("n_trials must be >= 1, got %d", c.NTrials)
	}
	if c.ReturnIter < 0 {
		return fmt.Errorf("return_iter must be >= 0, got %d", c.ReturnIter)
	}
	if c.ReturnIter > 0 && c.ReturnIter >= c.Patience {
		return fmt.Errorf("return_iter (%d) must be below patience (%d)", c.ReturnIter, c.Patience)
	}
	return nil
}

// engine is the generic local-search loop behind every preset. It is
// stateless across runs: each optimize call builds its own RNG streams and
// a fresh criterion, so one engine may back concurrent runs as long as the
// Model's methods are reentrant.
type engine[S any] struct {
	cfg config

	// newCriterion builds a per-run criterion instance. Stateful criteria
	// (cooling schedules) must not leak state between runs.
	newCriterion func() Criterion
}

func newEngine[S any](cfg config, newCriterion func() Criterion) (*engine[S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &engine[S]{cfg: cfg, newCriterion: newCriterion}, nil
}

// optimize runs the search loop from the given initial solution and returns
// the best solution observed with its score. Iterations are strictly
// sequential; only trial generation inside an iteration runs in parallel.
// The context and the time limit are checked at iteration boundaries only,
// never mid-batch.
func (e *engine[S]) optimize(
	ctx context.Context,
	model Model[S],
	initial S,
	initialScore Score,
	nIter int,
	timeLimit time.Duration,
	callback Callback[S],
) (S, Score) {
	start := time.Now()

	root := rand.New(rand.NewSource(e.cfg.Seed))
	streams := make([]*rand.Rand, e.cfg.NTrials)
	for i := range streams {
		streams[i] = rand.New(rand.NewSource(root.Int63()))
	}

	criterion := e.newCriterion()
	schedule, hasSchedule := criterion.(scheduled)

	current := initial
	currentScore := initialScore
	best := model.CloneSolution(current)
	bestScore := currentScore

	counter := 0
	accepted := 0
	stop := "iteration budget exhausted"

	it := 0
	for ; it < nIter; it++ {
		if err := ctx.Err(); err != nil {
			stop = "context canceled"
			break
		}
		if timeLimit > 0 && time.Since(start) >= timeLimit {
			stop = "time limit reached"
			break
		}

		if hasSchedule {
			schedule.Advance(it, nIter)
		}

		trialSolution, trialScore := bestTrial(model, current, currentScore, streams)

		if criterion.Probability(currentScore, trialScore) > root.Float64() {
			current = trialSolution
			currentScore = trialScore
			accepted++
		}

		if currentScore.Less(bestScore) {
			best = model.CloneSolution(current)
			bestScore = currentScore
			counter = 0
		} else {
			counter++
		}

		// Return-to-best: an intermediate restart that pulls a drifting
		// current solution back to the best region without ending the
		// search. The counter keeps running.
		if e.cfg.ReturnIter > 0 && counter == e.cfg.ReturnIter {
			current = model.CloneSolution(best)
			currentScore = bestScore
		}

		if counter == e.cfg.Patience {
			stop = "patience exhausted"
			break
		}

		if callback != nil {
			callback(Progress[S]{
				Iteration:    it,
				Accepted:     accepted,
				BestSolution: model.CloneSolution(best),
				BestScore:    bestScore,
			})
		}
	}

	slog.Debug("search stopped",
		"reason", stop,
		"iterations", it,
		"accepted", accepted,
		"best_score", bestScore.Float64(),
		"elapsed", time.Since(start),
	)

	return best, bestScore
}
