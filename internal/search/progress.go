package search

// Progress is a per-iteration snapshot handed to a Callback. BestSolution
// is an owned copy; the callback may read it freely but mutations never
// reach the engine.
type Progress[S any] struct {
	// Iteration is the zero-based index of the iteration that just finished.
	Iteration int

	// Accepted counts the moves accepted so far in this run.
	Accepted int

	// BestSolution is a copy of the best solution observed so far.
	BestSolution S

	// BestScore is the score of BestSolution.
	BestScore Score
}

// Callback receives a Progress snapshot at the end of each iteration. It
// runs synchronously on the search loop: a slow callback stalls the search,
// and its latency counts against the run's time limit.
type Callback[S any] func(Progress[S])
