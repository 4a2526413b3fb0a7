package quadratic

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/localsearch/internal/search"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	model, err := New(3, []float64{2.0, 0.0, -3.5}, -10.0, 10.0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return model
}

func assertConverged(t *testing.T, solution []float64, score search.Score) {
	t.Helper()

	target := []float64{2.0, 0.0, -3.5}
	for i, v := range solution {
		if math.Abs(v-target[i]) > 0.05 {
			t.Errorf("Component %d = %v, expected within 0.05 of %v", i, v, target[i])
		}
	}
	if math.Abs(score.Float64()) > 0.05 {
		t.Errorf("Score %v, expected within 0.05 of 0", score.Float64())
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, nil, -1, 1); err == nil {
		t.Error("Expected error for dim 0")
	}
	if _, err := New(2, []float64{1}, -1, 1); err == nil {
		t.Error("Expected error for target/dim mismatch")
	}
	if _, err := New(2, []float64{0, 0}, 1, -1); err == nil {
		t.Error("Expected error for inverted bounds")
	}
}

func TestEvaluateSolution(t *testing.T) {
	model := newTestModel(t)

	if got := model.EvaluateSolution([]float64{2.0, 0.0, -3.5}); got != 0 {
		t.Errorf("Expected score 0 at target, got %v", got)
	}
	if got := model.EvaluateSolution([]float64{3.0, 0.0, -3.5}); got != 1 {
		t.Errorf("Expected score 1, got %v", got)
	}
}

func TestTrialScoreMatchesEvaluation(t *testing.T) {
	model := newTestModel(t)
	rng := rand.New(rand.NewSource(7))

	current, score, err := model.GenerateRandomSolution(rng)
	if err != nil {
		t.Fatalf("GenerateRandomSolution failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		trial, _, trialScore := model.GenerateTrialSolution(current, rng, &score)
		want := model.EvaluateSolution(trial)
		if math.Abs(trialScore.Float64()-want.Float64()) > 1e-9 {
			t.Fatalf("Incremental score %v diverged from full evaluation %v", trialScore, want)
		}
		current, score = trial, trialScore
	}
}

func TestTrialStaysWithinBounds(t *testing.T) {
	model := newTestModel(t)
	rng := rand.New(rand.NewSource(3))

	current := []float64{10, -10, 10}
	score := model.EvaluateSolution(current)
	for i := 0; i < 500; i++ {
		trial, _, trialScore := model.GenerateTrialSolution(current, rng, &score)
		for j, v := range trial {
			if v < -10 || v > 10 {
				t.Fatalf("Component %d = %v out of bounds", j, v)
			}
		}
		current, score = trial, trialScore
	}
}

func TestCloneSolutionIsIndependent(t *testing.T) {
	model := newTestModel(t)

	original := []float64{1, 2, 3}
	clone := model.CloneSolution(original)
	clone[0] = 99

	if original[0] != 1 {
		t.Error("Clone mutation reached the original solution")
	}
}

func TestHillClimbingConvergence(t *testing.T) {
	model := newTestModel(t)

	opt, err := search.NewHillClimbing[[]float64](1000, 10, 42)
	if err != nil {
		t.Fatalf("NewHillClimbing failed: %v", err)
	}

	initial, initialScore, err := model.GenerateRandomSolution(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("GenerateRandomSolution failed: %v", err)
	}

	solution, score := opt.Optimize(context.Background(), model, initial, initialScore, 10000, 0, nil)

	assertConverged(t, solution, score)
	if initialScore.Less(score) {
		t.Errorf("Final score %v worse than initial %v", score, initialScore)
	}
}

func TestEpsilonGreedyConvergence(t *testing.T) {
	model := newTestModel(t)

	opt, err := search.NewEpsilonGreedy[[]float64](1000, 10, 0.1, 42)
	if err != nil {
		t.Fatalf("NewEpsilonGreedy failed: %v", err)
	}

	initial, initialScore, err := model.GenerateRandomSolution(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("GenerateRandomSolution failed: %v", err)
	}

	solution, score := opt.Optimize(context.Background(), model, initial, initialScore, 10000, 0, nil)
	assertConverged(t, solution, score)
}

func TestRelativeAnnealingConvergence(t *testing.T) {
	model := newTestModel(t)

	opt, err := search.NewRelativeAnnealing[[]float64](5000, 10, 200, 10, 42)
	if err != nil {
		t.Fatalf("NewRelativeAnnealing failed: %v", err)
	}

	initial, initialScore, err := model.GenerateRandomSolution(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("GenerateRandomSolution failed: %v", err)
	}

	solution, score := opt.Optimize(context.Background(), model, initial, initialScore, 10000, 0, nil)
	assertConverged(t, solution, score)
}

func TestLogisticAnnealingConvergence(t *testing.T) {
	model := newTestModel(t)

	opt, err := search.NewLogisticAnnealing[[]float64](5000, 10, 200, 10, 42)
	if err != nil {
		t.Fatalf("NewLogisticAnnealing failed: %v", err)
	}

	initial, initialScore, err := model.GenerateRandomSolution(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("GenerateRandomSolution failed: %v", err)
	}

	solution, score := opt.Optimize(context.Background(), model, initial, initialScore, 10000, 0, nil)
	assertConverged(t, solution, score)
}

func TestSimulatedAnnealingConvergence(t *testing.T) {
	model := newTestModel(t)

	opt, err := search.NewSimulatedAnnealing[[]float64](10000, 10, 200, 1.0, 0.1, 42)
	if err != nil {
		t.Fatalf("NewSimulatedAnnealing failed: %v", err)
	}

	initial, initialScore, err := model.GenerateRandomSolution(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("GenerateRandomSolution failed: %v", err)
	}

	solution, score := opt.Optimize(context.Background(), model, initial, initialScore, 10000, 0, nil)
	assertConverged(t, solution, score)
}

func TestRunWithRandomInitial(t *testing.T) {
	model := newTestModel(t)

	opt, err := search.NewHillClimbing[[]float64](1000, 10, 7)
	if err != nil {
		t.Fatalf("NewHillClimbing failed: %v", err)
	}

	solution, score, err := search.Run[[]float64](context.Background(), opt, model, nil, 10000, 0, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	assertConverged(t, solution, score)
}
