package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleJobSocket streams progress events for a job over a websocket.
// Events carry the same JSON payload as the SSE stream.
func (s *Server) handleJobSocket(w http.ResponseWriter, r *http.Request, jobID string) {
	job, exists := s.jobManager.GetJob(jobID)
	if !exists {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Websocket upgrade failed", "jobID", jobID, "error", err)
		return
	}
	defer conn.Close()

	eventChan := s.jobManager.broadcaster.Subscribe(jobID)
	defer s.jobManager.broadcaster.Unsubscribe(jobID, eventChan)

	// Read pump: the client sends no application messages, but reading is
	// required to observe close frames.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	initial := ProgressEvent{
		JobID:     job.ID,
		State:     job.State,
		Iteration: job.Iterations,
		Accepted:  job.Accepted,
		BestScore: job.BestScore,
		Timestamp: time.Now(),
	}
	if err := conn.WriteJSON(initial); err != nil {
		slog.Error("Failed to write initial websocket event", "jobID", jobID, "error", err)
		return
	}

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case <-closed:
			slog.Debug("Websocket client disconnected", "jobID", jobID)
			return

		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				slog.Error("Failed to write websocket event", "jobID", jobID, "error", err)
				return
			}

		case <-pingTicker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
