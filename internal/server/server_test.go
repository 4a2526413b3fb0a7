package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/localsearch/internal/store"
)

func setupTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	dataDir := t.TempDir()
	checkpointStore, err := store.NewFSStore(dataDir)
	require.NoError(t, err)

	srv := NewServer("localhost:0", dataDir, checkpointStore)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return srv, ts
}

func postJob(t *testing.T, ts *httptest.Server, cfg JobConfig) *http.Response {
	t.Helper()

	body, err := json.Marshal(cfg)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/v1/jobs", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func waitForState(t *testing.T, srv *Server, jobID string, want JobState) Job {
	t.Helper()

	var job Job
	require.Eventually(t, func() bool {
		var exists bool
		job, exists = srv.jobManager.GetJob(jobID)
		return exists && job.State == want
	}, 10*time.Second, 10*time.Millisecond, "job did not reach state %s", want)
	return job
}

func TestCreateJobEndpoint(t *testing.T) {
	srv, ts := setupTestServer(t)

	resp := postJob(t, ts, testJobConfig())
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created Job
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)

	job := waitForState(t, srv, created.ID, StateCompleted)
	assert.LessOrEqual(t, job.BestScore, job.InitialScore)
}

func TestCreateJobValidation(t *testing.T) {
	_, ts := setupTestServer(t)

	tests := []struct {
		name   string
		modify func(*JobConfig)
	}{
		{"missing preset", func(c *JobConfig) { c.Preset = "" }},
		{"zero dims", func(c *JobConfig) { c.Dims = 0 }},
		{"zero iters", func(c *JobConfig) { c.Iters = 0 }},
		{"unknown preset", func(c *JobConfig) { c.Preset = "tabu" }},
		{"bad epsilon", func(c *JobConfig) {
			c.Preset = PresetEpsilonGreedy
			c.Epsilon = 2.0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testJobConfig()
			tt.modify(&cfg)

			resp := postJob(t, ts, cfg)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestListJobsEndpoint(t *testing.T) {
	srv, ts := setupTestServer(t)

	resp := postJob(t, ts, testJobConfig())
	resp.Body.Close()

	listResp, err := http.Get(ts.URL + "/api/v1/jobs")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var jobs []Job
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&jobs))
	require.Len(t, jobs, 1)

	waitForState(t, srv, jobs[0].ID, StateCompleted)
}

func TestJobStatusEndpoint(t *testing.T) {
	srv, ts := setupTestServer(t)

	resp := postJob(t, ts, testJobConfig())
	defer resp.Body.Close()

	var created Job
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	waitForState(t, srv, created.ID, StateCompleted)

	statusResp, err := http.Get(ts.URL + "/api/v1/jobs/" + created.ID + "/status")
	require.NoError(t, err)
	defer statusResp.Body.Close()
	require.Equal(t, http.StatusOK, statusResp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(statusResp.Body).Decode(&status))
	assert.Equal(t, string(StateCompleted), status["state"])
	assert.NotNil(t, status["bestScore"])
	assert.NotNil(t, status["elapsed"])
}

func TestJobStatusNotFound(t *testing.T) {
	_, ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/jobs/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJobTraceEndpoint(t *testing.T) {
	srv, ts := setupTestServer(t)

	resp := postJob(t, ts, testJobConfig())
	defer resp.Body.Close()

	var created Job
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	waitForState(t, srv, created.ID, StateCompleted)

	traceResp, err := http.Get(ts.URL + "/api/v1/jobs/" + created.ID + "/trace")
	require.NoError(t, err)
	defer traceResp.Body.Close()
	require.Equal(t, http.StatusOK, traceResp.StatusCode)

	var entries []store.TraceEntry
	require.NoError(t, json.NewDecoder(traceResp.Body).Decode(&entries))
	assert.NotEmpty(t, entries)
}

func TestCancelJobEndpoint(t *testing.T) {
	srv, ts := setupTestServer(t)

	cfg := testJobConfig()
	cfg.Iters = 50_000_000 // long enough to still be running when cancelled
	cfg.Patience = 50_000_000

	resp := postJob(t, ts, cfg)
	defer resp.Body.Close()

	var created Job
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	waitForState(t, srv, created.ID, StateRunning)

	cancelResp, err := http.Post(ts.URL+"/api/v1/jobs/"+created.ID+"/cancel", "application/json", nil)
	require.NoError(t, err)
	defer cancelResp.Body.Close()
	assert.Equal(t, http.StatusAccepted, cancelResp.StatusCode)

	waitForState(t, srv, created.ID, StateCancelled)
}

func TestCancelJobNotFound(t *testing.T) {
	_, ts := setupTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/jobs/missing/cancel", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
