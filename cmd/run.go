package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/localsearch/internal/quadratic"
	"github.com/cwbudde/localsearch/internal/search"
	"github.com/cwbudde/localsearch/internal/server"
	"github.com/spf13/cobra"
)

var (
	preset     string
	dims       int
	target     []float64
	lower      float64
	upper      float64
	patience   int
	trials     int
	epsilon    float64
	weight     float64
	returnIter int
	maxTemp    float64
	minTemp    float64
	iters      int
	timeLimit  time.Duration
	seed       int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single search to completion",
	Long: `Runs one search over a quadratic test problem and prints the result.
The problem minimizes the squared distance to a target point; with the
default flags an exact optimum of score zero exists inside the bounds.`,
	RunE: runSearch,
}

func init() {
	runCmd.Flags().StringVar(&preset, "preset", server.PresetHillClimbing, "Optimizer preset: hill-climbing, epsilon-greedy, simulated-annealing, relative-annealing, logistic-annealing")
	runCmd.Flags().IntVar(&dims, "dims", 3, "Number of problem dimensions")
	runCmd.Flags().Float64SliceVar(&target, "target", nil, "Target point (defaults to the origin)")
	runCmd.Flags().Float64Var(&lower, "lower", -10, "Lower bound per dimension")
	runCmd.Flags().Float64Var(&upper, "upper", 10, "Upper bound per dimension")
	runCmd.Flags().IntVar(&patience, "patience", 1000, "Stop after this many iterations without improvement")
	runCmd.Flags().IntVar(&trials, "trials", 10, "Trial solutions evaluated in parallel per iteration")
	runCmd.Flags().Float64Var(&epsilon, "epsilon", 0.1, "Acceptance probability for degrading moves (epsilon-greedy)")
	runCmd.Flags().Float64Var(&weight, "weight", 10, "Relative-delta weight (relative/logistic annealing)")
	runCmd.Flags().IntVar(&returnIter, "return-iter", 0, "Return to the best solution after this many stagnant iterations (0 = never)")
	runCmd.Flags().Float64Var(&maxTemp, "max-temp", 1.0, "Starting temperature (simulated annealing)")
	runCmd.Flags().Float64Var(&minTemp, "min-temp", 0.1, "Final temperature (simulated annealing)")
	runCmd.Flags().IntVar(&iters, "iters", 100000, "Iteration budget")
	runCmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "Wall-clock limit (0 = none)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")

	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(target) == 0 {
		target = make([]float64, dims)
	}

	cfg := server.JobConfig{
		Preset:     preset,
		Dims:       dims,
		Target:     target,
		Lower:      lower,
		Upper:      upper,
		Patience:   patience,
		Trials:     trials,
		Epsilon:    epsilon,
		Weight:     weight,
		ReturnIter: returnIter,
		MaxTemp:    maxTemp,
		MinTemp:    minTemp,
		Iters:      iters,
		Seed:       seed,
	}

	model, err := quadratic.New(cfg.Dims, cfg.Target, cfg.Lower, cfg.Upper)
	if err != nil {
		return fmt.Errorf("invalid problem: %w", err)
	}

	optimizer, err := server.BuildOptimizer(cfg)
	if err != nil {
		return err
	}

	initial, initialScore, err := model.GenerateRandomSolution(rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to generate initial solution: %w", err)
	}

	slog.Info("Starting search", "preset", preset, "dims", dims, "iters", iters, "initial_score", initialScore.Float64())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lastLog := time.Now()
	callback := func(p search.Progress[[]float64]) {
		if time.Since(lastLog) >= time.Second {
			lastLog = time.Now()
			slog.Info("Progress", "iteration", p.Iteration, "accepted", p.Accepted, "best_score", p.BestScore.Float64())
		}
	}

	start := time.Now()
	solution, score, err := search.Run(ctx, optimizer, model,
		&search.Initial[[]float64]{Solution: initial, Score: initialScore},
		iters, timeLimit, callback)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	slog.Info("Search complete",
		"elapsed", elapsed,
		"initial_score", initialScore.Float64(),
		"best_score", score.Float64(),
		"improvement", initialScore.Float64()-score.Float64(),
	)

	fmt.Printf("Best score: %.6f (from %.6f in %s)\n", score.Float64(), initialScore.Float64(), elapsed.Round(time.Millisecond))
	fmt.Printf("Best solution: %v\n", formatSolution(solution))

	return nil
}

// formatSolution renders a solution vector with fixed precision, truncated
// past the first few dimensions to keep output readable.
func formatSolution(solution []float64) string {
	const maxShown = 8

	out := "["
	for i, v := range solution {
		if i == maxShown {
			out += fmt.Sprintf(" ... %d more", len(solution)-maxShown)
			break
		}
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%.4f", v)
	}
	return out + "]"
}
