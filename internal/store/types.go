package store

import (
	"fmt"
	"time"
)

// JobConfig holds the configuration of a search job (checkpoint copy).
// It describes both the quadratic problem and the optimizer preset, so a
// checkpoint can be validated against the job that produced it.
type JobConfig struct {
	Preset string    `json:"preset"` // hill-climbing, epsilon-greedy, simulated-annealing, relative-annealing, logistic-annealing
	Dims   int       `json:"dims"`
	Target []float64 `json:"target"`
	Lower  float64   `json:"lower"`
	Upper  float64   `json:"upper"`

	Patience   int     `json:"patience"`
	Trials     int     `json:"trials"`
	Epsilon    float64 `json:"epsilon,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	ReturnIter int     `json:"returnIter,omitempty"`
	MaxTemp    float64 `json:"maxTemp,omitempty"`
	MinTemp    float64 `json:"minTemp,omitempty"`

	Iters              int   `json:"iters"`
	TimeLimitSec       int   `json:"timeLimitSec,omitempty"`
	Seed               int64 `json:"seed"`
	CheckpointInterval int   `json:"checkpointInterval,omitempty"` // Checkpoint every N seconds (0 = disabled)
}

// Checkpoint represents the persisted state of a search job.
//
// Only the best solution found so far is saved, never the engine's internal
// state (current solution, RNG streams, schedule position). A resumed job
// therefore starts a fresh search seeded with the best checkpointed
// solution: the best score can never get worse, but the continuation will
// diverge from an uninterrupted run.
type Checkpoint struct {
	// JobID is the unique identifier for this search job
	JobID string `json:"jobId"`

	// BestSolution is the lowest-score solution observed so far
	BestSolution []float64 `json:"bestSolution"`

	// BestScore is the score achieved by BestSolution
	BestScore float64 `json:"bestScore"`

	// InitialScore is the starting score, kept for improvement tracking
	InitialScore float64 `json:"initialScore"`

	// Iteration is the iteration count when this checkpoint was created
	Iteration int `json:"iteration"`

	// Accepted is the number of accepted moves at checkpoint time
	Accepted int `json:"accepted"`

	// Timestamp records when this checkpoint was created
	Timestamp time.Time `json:"timestamp"`

	// Config holds the job configuration, needed for validation on resume
	Config JobConfig `json:"config"`
}

// Validate checks that the checkpoint is internally consistent.
func (c *Checkpoint) Validate() error {
	if c.JobID == "" {
		return fmt.Errorf("checkpoint is missing a job ID")
	}
	if len(c.BestSolution) == 0 {
		return fmt.Errorf("checkpoint has no best solution")
	}
	if c.Config.Dims > 0 && len(c.BestSolution) != c.Config.Dims {
		return fmt.Errorf("best solution has %d components, config expects %d", len(c.BestSolution), c.Config.Dims)
	}
	if c.Iteration < 0 {
		return fmt.Errorf("iteration must be >= 0, got %d", c.Iteration)
	}
	return nil
}

// ToInfo extracts listing metadata from the checkpoint.
func (c *Checkpoint) ToInfo() CheckpointInfo {
	return CheckpointInfo{
		JobID:     c.JobID,
		BestScore: c.BestScore,
		Iteration: c.Iteration,
		Timestamp: c.Timestamp,
		Preset:    c.Config.Preset,
	}
}

// CheckpointInfo contains metadata about a checkpoint without the full
// solution vector. Used for listing checkpoints efficiently.
type CheckpointInfo struct {
	JobID     string    `json:"jobId"`
	BestScore float64   `json:"bestScore"`
	Iteration int       `json:"iteration"`
	Timestamp time.Time `json:"timestamp"`
	Preset    string    `json:"preset"`
}
