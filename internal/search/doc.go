// Package search implements a generic local-search optimization engine.
//
// A caller expresses a problem as a Model: a source of random solutions,
// neighboring trial solutions, and scores (lower is better). The engine
// iteratively perturbs a current solution, evaluates a batch of trials in
// parallel, and decides whether to move using a pluggable acceptance
// criterion. Several presets parameterize the same loop:
//
//   - HillClimbing: greedy, never accepts a worse solution
//   - EpsilonGreedy: greedy with a fixed noise acceptance probability
//   - SimulatedAnnealing: Metropolis acceptance with a cooling schedule
//   - RelativeAnnealing: acceptance from the relative score degradation
//   - LogisticAnnealing: logistic transform of the relative degradation
//
// The search stops when the score has not improved for a configured number
// of iterations (patience), when the time limit expires, or when the
// iteration budget is exhausted. All three are successful terminations and
// return the best solution observed.
package search
