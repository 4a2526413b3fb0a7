package search

import "math/rand"

// Model defines the problem-specific contract the engine optimizes against.
// S is the solution type; the engine treats it as opaque and only moves and
// snapshots values produced by the Model.
//
// GenerateTrialSolution is called concurrently from independent goroutines,
// each with its own *rand.Rand. Implementations must not rely on shared
// mutable state unless they synchronize it themselves.
type Model[S any] interface {
	// GenerateRandomSolution produces a feasible random solution and its
	// score. It returns an error when no feasible solution can be
	// constructed, e.g. because the problem constraints are too tight.
	GenerateRandomSolution(rng *rand.Rand) (S, Score, error)

	// GenerateTrialSolution produces one neighbor of current along with
	// optional model-specific metadata and the neighbor's score. scoreHint,
	// when non-nil, is the score of current and may be used to compute the
	// trial score incrementally instead of from scratch.
	GenerateTrialSolution(current S, rng *rand.Rand, scoreHint *Score) (S, any, Score)

	// EvaluateSolution scores a solution. Pure, no side effects.
	EvaluateSolution(solution S) Score

	// CloneSolution returns an independent copy of solution. The engine
	// uses it to snapshot the best solution and to hand owned copies to
	// progress callbacks.
	CloneSolution(solution S) S
}

// Preprocessor is an optional Model hook applied once to the initial
// solution before the search loop starts. Models that do not implement it
// get identity behavior.
type Preprocessor[S any] interface {
	PreprocessSolution(solution S, score Score) (S, Score, error)
}

// Postprocessor is an optional Model hook applied once to the result after
// the search loop ends. Models that do not implement it get identity
// behavior.
type Postprocessor[S any] interface {
	PostprocessSolution(solution S, score Score) (S, Score)
}
