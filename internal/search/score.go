package search

import (
	"fmt"
	"math"
)

// Score is the objective value of a solution. Lower is better.
//
// Scores form a total order: NaN is rejected at construction so that the
// engine can assume every pair of scores is comparable. Models that build
// Score values directly must uphold the same guarantee.
type Score float64

// NewScore wraps v as a Score. NaN values are rejected because they break
// the total order the engine relies on.
func NewScore(v float64) (Score, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("score must be comparable, got NaN")
	}
	return Score(v), nil
}

// MustScore wraps v as a Score and panics on NaN. Intended for literals
// and tests.
func MustScore(v float64) Score {
	s, err := NewScore(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Float64 returns the underlying value.
func (s Score) Float64() float64 {
	return float64(s)
}

// Less reports whether s orders strictly before other.
func (s Score) Less(other Score) bool {
	return s < other
}
