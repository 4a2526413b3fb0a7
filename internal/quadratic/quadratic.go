// Package quadratic provides a bounded quadratic-error model: minimize
// sum((x_i - target_i)^2) over points in [lower, upper]^dim. It backs the
// engine's end-to-end tests, the CLI benchmark, and the job server.
package quadratic

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/localsearch/internal/search"
)

// Model implements search.Model for []float64 solutions. The zero score is
// reached exactly at the target point, provided the target lies within the
// bounds.
type Model struct {
	dim    int
	target []float64
	lower  float64
	upper  float64
	step   float64
}

// New creates a quadratic model over dim dimensions with the given target
// point and per-coordinate bounds.
func New(dim int, target []float64, lower, upper float64) (*Model, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dim must be >= 1, got %d", dim)
	}
	if len(target) != dim {
		return nil, fmt.Errorf("target has %d components, expected %d", len(target), dim)
	}
	if lower >= upper {
		return nil, fmt.Errorf("bounds must satisfy lower < upper, got [%v, %v]", lower, upper)
	}
	return &Model{
		dim:    dim,
		target: append([]float64{}, target...),
		lower:  lower,
		upper:  upper,
		step:   (upper - lower) * 0.05,
	}, nil
}

// Dim returns the dimensionality of the search space.
func (m *Model) Dim() int {
	return m.dim
}

// GenerateRandomSolution draws a uniform point within the bounds.
func (m *Model) GenerateRandomSolution(rng *rand.Rand) ([]float64, search.Score, error) {
	x := make([]float64, m.dim)
	for i := range x {
		x[i] = m.lower + rng.Float64()*(m.upper-m.lower)
	}
	return x, m.EvaluateSolution(x), nil
}

// GenerateTrialSolution perturbs one random coordinate by a uniform step,
// clamped to the bounds. When a score hint is supplied the trial score is
// updated incrementally from the changed coordinate alone.
func (m *Model) GenerateTrialSolution(current []float64, rng *rand.Rand, scoreHint *search.Score) ([]float64, any, search.Score) {
	x := m.CloneSolution(current)

	i := rng.Intn(m.dim)
	v := x[i] + (rng.Float64()*2-1)*m.step
	if v < m.lower {
		v = m.lower
	}
	if v > m.upper {
		v = m.upper
	}

	var score search.Score
	if scoreHint != nil {
		old := x[i] - m.target[i]
		next := v - m.target[i]
		score = *scoreHint + search.Score(next*next-old*old)
	}
	x[i] = v
	if scoreHint == nil {
		score = m.EvaluateSolution(x)
	}

	return x, i, score
}

// EvaluateSolution computes the squared error against the target.
func (m *Model) EvaluateSolution(x []float64) search.Score {
	var sum float64
	for i, v := range x {
		d := v - m.target[i]
		sum += d * d
	}
	return search.Score(sum)
}

// CloneSolution copies the point.
func (m *Model) CloneSolution(x []float64) []float64 {
	return append([]float64{}, x...)
}
