package search

import (
	"math/rand"

	"github.com/sourcegraph/conc/pool"
)

type trial[S any] struct {
	solution S
	score    Score
}

// bestTrial fans out one trial-generation task per RNG stream and reduces
// the batch to the minimal-score trial. Each task owns its stream, so no
// generator is shared across goroutines. Ties go to the first trial
// encountered during the reduction.
func bestTrial[S any](model Model[S], current S, currentScore Score, streams []*rand.Rand) (S, Score) {
	results := make([]trial[S], len(streams))
	hint := currentScore

	p := pool.New().WithMaxGoroutines(len(streams))
	for i := range streams {
		i := i
		p.Go(func() {
			solution, _, score := model.GenerateTrialSolution(current, streams[i], &hint)
			results[i] = trial[S]{solution: solution, score: score}
		})
	}
	p.Wait()

	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].score.Less(results[best].score) {
			best = i
		}
	}
	return results[best].solution, results[best].score
}
