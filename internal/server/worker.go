package server

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cwbudde/localsearch/internal/quadratic"
	"github.com/cwbudde/localsearch/internal/search"
	"github.com/cwbudde/localsearch/internal/store"
)

// Preset names accepted in a JobConfig.
const (
	PresetHillClimbing       = "hill-climbing"
	PresetEpsilonGreedy      = "epsilon-greedy"
	PresetSimulatedAnnealing = "simulated-annealing"
	PresetRelativeAnnealing  = "relative-annealing"
	PresetLogisticAnnealing  = "logistic-annealing"
)

// BuildOptimizer constructs the search preset described by a job config.
func BuildOptimizer(cfg JobConfig) (search.Optimizer[[]float64], error) {
	switch cfg.Preset {
	case PresetHillClimbing:
		return search.NewHillClimbing[[]float64](cfg.Patience, cfg.Trials, cfg.Seed)
	case PresetEpsilonGreedy:
		return search.NewEpsilonGreedy[[]float64](cfg.Patience, cfg.Trials, cfg.Epsilon, cfg.Seed)
	case PresetSimulatedAnnealing:
		return search.NewSimulatedAnnealing[[]float64](cfg.Patience, cfg.Trials, cfg.ReturnIter, cfg.MaxTemp, cfg.MinTemp, cfg.Seed)
	case PresetRelativeAnnealing:
		return search.NewRelativeAnnealing[[]float64](cfg.Patience, cfg.Trials, cfg.ReturnIter, cfg.Weight, cfg.Seed)
	case PresetLogisticAnnealing:
		return search.NewLogisticAnnealing[[]float64](cfg.Patience, cfg.Trials, cfg.ReturnIter, cfg.Weight, cfg.Seed)
	default:
		return nil, fmt.Errorf("unknown preset: %q", cfg.Preset)
	}
}

// runJob executes a search job in the background. Progress flows through
// the engine callback into the job record and the event broadcaster. If
// checkpointStore is not nil, a checkpoint is saved every
// CheckpointInterval seconds and once on completion; when dataDir is set a
// score trace is written alongside.
func runJob(ctx context.Context, jm *JobManager, checkpointStore store.Store, dataDir, jobID string) error {
	job, exists := jm.GetJob(jobID)
	if !exists {
		return fmt.Errorf("job not found: %s", jobID)
	}

	if err := jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateRunning
	}); err != nil {
		return err
	}

	slog.Info("Starting job", "job_id", jobID, "preset", job.Config.Preset, "dims", job.Config.Dims)

	model, err := quadratic.New(job.Config.Dims, job.Config.Target, job.Config.Lower, job.Config.Upper)
	if err != nil {
		markJobFailed(jm, jobID, fmt.Errorf("invalid problem: %w", err))
		return err
	}

	optimizer, err := BuildOptimizer(job.Config)
	if err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}

	initial, initialScore, err := model.GenerateRandomSolution(rand.New(rand.NewSource(job.Config.Seed)))
	if err != nil {
		markJobFailed(jm, jobID, fmt.Errorf("failed to generate initial solution: %w", err))
		return err
	}

	jm.UpdateJob(jobID, func(j *Job) {
		j.InitialScore = initialScore.Float64()
	})

	var trace *store.TraceWriter
	if dataDir != "" {
		trace, err = store.NewTraceWriter(dataDir, jobID, false)
		if err != nil {
			slog.Warn("Failed to create trace writer", "job_id", jobID, "error", err)
			trace = nil
		} else {
			defer trace.Close()
		}
	}

	start := time.Now()
	lastBroadcast := time.Time{}
	lastCheckpoint := start
	checkpointEvery := time.Duration(job.Config.CheckpointInterval) * time.Second

	callback := func(p search.Progress[[]float64]) {
		jm.UpdateJob(jobID, func(j *Job) {
			j.Iterations = p.Iteration + 1
			j.Accepted = p.Accepted
			j.BestSolution = p.BestSolution
			j.BestScore = p.BestScore.Float64()
		})

		now := time.Now()

		// Throttle broadcasts and trace entries; the callback runs on the
		// search loop and its latency counts against the time limit.
		if now.Sub(lastBroadcast) >= 250*time.Millisecond {
			lastBroadcast = now
			elapsed := now.Sub(start).Seconds()
			var ips float64
			if elapsed > 0 {
				ips = float64(p.Iteration+1) / elapsed
			}
			jm.broadcaster.Broadcast(ProgressEvent{
				JobID:     jobID,
				State:     StateRunning,
				Iteration: p.Iteration,
				Accepted:  p.Accepted,
				BestScore: p.BestScore.Float64(),
				IPS:       ips,
				Timestamp: now,
			})
			if trace != nil {
				trace.Write(store.TraceEntry{
					Iteration: p.Iteration,
					BestScore: p.BestScore.Float64(),
					Accepted:  p.Accepted,
					Timestamp: now,
				})
			}
		}

		if checkpointStore != nil && checkpointEvery > 0 && now.Sub(lastCheckpoint) >= checkpointEvery {
			lastCheckpoint = now
			saveCheckpoint(checkpointStore, jobID, job.Config, p, initialScore)
		}
	}

	timeLimit := time.Duration(job.Config.TimeLimitSec) * time.Second
	solution, score := optimizer.Optimize(ctx, model, initial, initialScore, job.Config.Iters, timeLimit, callback)

	if trace != nil {
		trace.Flush()
	}

	elapsed := time.Since(start)
	endTime := time.Now()

	if ctx.Err() != nil {
		markJobCancelled(jm, jobID)
		return ctx.Err()
	}

	err = jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCompleted
		j.BestSolution = solution
		j.BestScore = score.Float64()
		j.EndTime = &endTime
	})
	if err != nil {
		return err
	}

	finalJob, _ := jm.GetJob(jobID)

	if checkpointStore != nil {
		saveCheckpoint(checkpointStore, jobID, job.Config, search.Progress[[]float64]{
			Iteration:    finalJob.Iterations - 1,
			Accepted:     finalJob.Accepted,
			BestSolution: solution,
			BestScore:    score,
		}, initialScore)
	}

	slog.Info("Job completed",
		"job_id", jobID,
		"elapsed", elapsed,
		"initial_score", initialScore.Float64(),
		"best_score", score.Float64(),
	)

	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateCompleted,
		Iteration: finalJob.Iterations,
		Accepted:  finalJob.Accepted,
		BestScore: score.Float64(),
		Timestamp: time.Now(),
	})

	return nil
}

func saveCheckpoint(s store.Store, jobID string, cfg JobConfig, p search.Progress[[]float64], initialScore search.Score) {
	err := s.SaveCheckpoint(jobID, &store.Checkpoint{
		JobID:        jobID,
		BestSolution: p.BestSolution,
		BestScore:    p.BestScore.Float64(),
		InitialScore: initialScore.Float64(),
		Iteration:    p.Iteration + 1,
		Accepted:     p.Accepted,
		Timestamp:    time.Now(),
		Config:       cfg,
	})
	if err != nil {
		slog.Warn("Failed to save checkpoint", "job_id", jobID, "error", err)
	}
}

// markJobFailed marks a job as failed with an error message
func markJobFailed(jm *JobManager, jobID string, err error) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateFailed
		j.Error = err.Error()
		j.EndTime = &endTime
	})

	slog.Error("Job failed", "job_id", jobID, "error", err)

	job, _ := jm.GetJob(jobID)
	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateFailed,
		Iteration: job.Iterations,
		BestScore: job.BestScore,
		Timestamp: endTime,
	})
}

// markJobCancelled marks a job as cancelled
func markJobCancelled(jm *JobManager, jobID string) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCancelled
		j.EndTime = &endTime
	})

	slog.Info("Job cancelled", "job_id", jobID)

	job, _ := jm.GetJob(jobID)
	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateCancelled,
		Iteration: job.Iterations,
		BestScore: job.BestScore,
		Timestamp: endTime,
	})
}
