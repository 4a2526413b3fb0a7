package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cwbudde/localsearch/internal/store"
)

// Server exposes search jobs over HTTP: JSON APIs to create and inspect
// jobs plus SSE and websocket streams for live progress.
type Server struct {
	jobManager      *JobManager
	addr            string
	dataDir         string
	checkpointStore store.Store
	server          *http.Server

	// defaultCheckpointInterval applies to jobs that do not set their own
	// interval (seconds, 0 = disabled).
	defaultCheckpointInterval int
}

// NewServer creates a new HTTP server. dataDir and checkpointStore may be
// empty/nil to disable traces and checkpoints.
func NewServer(addr, dataDir string, checkpointStore store.Store) *Server {
	return &Server{
		jobManager:      NewJobManager(),
		addr:            addr,
		dataDir:         dataDir,
		checkpointStore: checkpointStore,
	}
}

// SetDefaultCheckpointInterval sets the checkpoint interval in seconds
// used for jobs that do not specify one.
func (s *Server) SetDefaultCheckpointInterval(seconds int) {
	s.defaultCheckpointInterval = seconds
}

// Handler returns the server's HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/jobs", s.handleJobs)
	mux.HandleFunc("/api/v1/jobs/", s.handleJobsWithID)

	return s.loggingMiddleware(s.corsMiddleware(mux))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	slog.Info("Starting HTTP server", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down HTTP server")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleJobs handles /api/v1/jobs
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateJob(w, r)
	case http.MethodGet:
		s.handleListJobs(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleJobsWithID handles /api/v1/jobs/:id/*
func (s *Server) handleJobsWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/jobs/")
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		http.Error(w, "Job ID required", http.StatusBadRequest)
		return
	}

	jobID := parts[0]

	switch {
	case len(parts) == 1 || parts[1] == "status":
		s.handleGetJobStatus(w, r, jobID)
	case parts[1] == "events":
		s.handleJobStream(w, r, jobID)
	case parts[1] == "ws":
		s.handleJobSocket(w, r, jobID)
	case parts[1] == "trace":
		s.handleGetJobTrace(w, r, jobID)
	case parts[1] == "cancel":
		s.handleCancelJob(w, r, jobID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// handleCreateJob handles POST /api/v1/jobs
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var config JobConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	if config.Preset == "" {
		http.Error(w, "preset is required", http.StatusBadRequest)
		return
	}
	if config.Dims <= 0 {
		http.Error(w, "dims must be positive", http.StatusBadRequest)
		return
	}
	if config.Iters <= 0 {
		http.Error(w, "iters must be positive", http.StatusBadRequest)
		return
	}

	// Reject invalid preset parameters before the job exists.
	if _, err := BuildOptimizer(config); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if config.CheckpointInterval == 0 {
		config.CheckpointInterval = s.defaultCheckpointInterval
	}

	job := s.jobManager.CreateJob(config)

	ctx, cancel := context.WithCancel(context.Background())
	s.jobManager.RegisterCancel(job.ID, cancel)
	go runJob(ctx, s.jobManager, s.checkpointStore, s.dataDir, job.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(job)
}

// handleListJobs handles GET /api/v1/jobs
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.jobManager.ListJobs()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jobs)
}

// handleGetJobStatus handles GET /api/v1/jobs/:id/status
func (s *Server) handleGetJobStatus(w http.ResponseWriter, r *http.Request, jobID string) {
	job, exists := s.jobManager.GetJob(jobID)
	if !exists {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	var elapsed time.Duration
	if job.EndTime != nil {
		elapsed = job.EndTime.Sub(job.StartTime)
	} else {
		elapsed = time.Since(job.StartTime)
	}

	var ips float64
	if elapsed.Seconds() > 0 {
		ips = float64(job.Iterations) / elapsed.Seconds()
	}

	response := map[string]interface{}{
		"id":           job.ID,
		"state":        job.State,
		"config":       job.Config,
		"bestSolution": job.BestSolution,
		"bestScore":    job.BestScore,
		"initialScore": job.InitialScore,
		"iterations":   job.Iterations,
		"accepted":     job.Accepted,
		"elapsed":      elapsed.Seconds(),
		"ips":          ips,
		"startTime":    job.StartTime,
		"endTime":      job.EndTime,
		"error":        job.Error,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleGetJobTrace handles GET /api/v1/jobs/:id/trace
func (s *Server) handleGetJobTrace(w http.ResponseWriter, r *http.Request, jobID string) {
	if s.dataDir == "" {
		http.Error(w, "Traces not enabled", http.StatusNotFound)
		return
	}

	entries, err := store.ReadTrace(s.dataDir, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Trace not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to read trace: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// handleCancelJob handles POST /api/v1/jobs/:id/cancel
func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request, jobID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, exists := s.jobManager.GetJob(jobID); !exists {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	if !s.jobManager.CancelJob(jobID) {
		http.Error(w, "Job is not cancelable", http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// corsMiddleware adds CORS headers
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
