package search

import (
	"context"
	"math/rand"
	"time"
)

// Optimizer is a fixed configuration of the local-search engine. Presets
// are immutable after construction and may back multiple concurrent runs.
type Optimizer[S any] interface {
	// Optimize drives the search loop from a validated initial solution and
	// returns the best solution observed with its score. Zero timeLimit
	// means no limit. The callback may be nil.
	Optimize(
		ctx context.Context,
		model Model[S],
		initial S,
		initialScore Score,
		nIter int,
		timeLimit time.Duration,
		callback Callback[S],
	) (S, Score)
}

// Initial pairs a starting solution with its score for Run.
type Initial[S any] struct {
	Solution S
	Score    Score
}

// Run is the public entry for a full search: it resolves a missing initial
// solution through the Model, applies the optional preprocess hook, runs
// the optimizer, and applies the optional postprocess hook to the result.
// On failure the returned error wraps a ModelError and no search iteration
// has executed.
func Run[S any](
	ctx context.Context,
	opt Optimizer[S],
	model Model[S],
	initial *Initial[S],
	nIter int,
	timeLimit time.Duration,
	callback Callback[S],
) (S, Score, error) {
	var (
		solution S
		score    Score
	)

	if initial != nil {
		solution, score = initial.Solution, initial.Score
	} else {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		var err error
		solution, score, err = model.GenerateRandomSolution(rng)
		if err != nil {
			var zero S
			return zero, 0, newModelError("generate random solution", err)
		}
	}

	if pre, ok := model.(Preprocessor[S]); ok {
		var err error
		solution, score, err = pre.PreprocessSolution(solution, score)
		if err != nil {
			var zero S
			return zero, 0, newModelError("preprocess solution", err)
		}
	}

	solution, score = opt.Optimize(ctx, model, solution, score, nIter, timeLimit, callback)

	if post, ok := model.(Postprocessor[S]); ok {
		solution, score = post.PostprocessSolution(solution, score)
	}
	return solution, score, nil
}
