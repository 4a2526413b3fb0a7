package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceWriteAndRead(t *testing.T) {
	baseDir := t.TempDir()

	tw, err := NewTraceWriter(baseDir, "job-1", false)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, tw.Write(TraceEntry{
			Iteration: i,
			BestScore: 10.0 - float64(i),
			Accepted:  i,
			Timestamp: time.Now(),
		}))
	}
	require.NoError(t, tw.Close())

	entries, err := ReadTrace(baseDir, "job-1")
	require.NoError(t, err)
	require.Len(t, entries, 5)

	for i, entry := range entries {
		assert.Equal(t, i, entry.Iteration)
		assert.Equal(t, 10.0-float64(i), entry.BestScore)
	}
}

func TestTraceAppendMode(t *testing.T) {
	baseDir := t.TempDir()

	tw, err := NewTraceWriter(baseDir, "job-1", false)
	require.NoError(t, err)
	require.NoError(t, tw.Write(TraceEntry{Iteration: 0, BestScore: 5}))
	require.NoError(t, tw.Close())

	tw, err = NewTraceWriter(baseDir, "job-1", true)
	require.NoError(t, err)
	require.NoError(t, tw.Write(TraceEntry{Iteration: 1, BestScore: 4}))
	require.NoError(t, tw.Close())

	entries, err := ReadTrace(baseDir, "job-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[1].Iteration)
}

func TestReadTraceNotFound(t *testing.T) {
	_, err := ReadTrace(t.TempDir(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTraceSolutionOmittedWhenNil(t *testing.T) {
	baseDir := t.TempDir()

	tw, err := NewTraceWriter(baseDir, "job-1", false)
	require.NoError(t, err)
	require.NoError(t, tw.Write(TraceEntry{Iteration: 0, BestScore: 1}))
	require.NoError(t, tw.Write(TraceEntry{Iteration: 1, BestScore: 0.5, Solution: []float64{1, 2}}))
	require.NoError(t, tw.Close())

	entries, err := ReadTrace(baseDir, "job-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].Solution)
	assert.Equal(t, []float64{1, 2}, entries[1].Solution)
}
