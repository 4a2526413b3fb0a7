package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/localsearch/internal/server"
	"github.com/cwbudde/localsearch/internal/store"
	"github.com/spf13/cobra"
)

var (
	serveAddr          string
	serveDataDir       string
	checkpointInterval int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the job server",
	Long: `Starts the HTTP server for submitting search jobs and streaming
progress over SSE or websockets. Checkpoints and score traces are
written under the data directory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "./data", "Base directory for checkpoints and traces")
	serveCmd.Flags().IntVar(&checkpointInterval, "checkpoint-interval", 30, "Default checkpoint interval in seconds for jobs that do not set one (0 = disabled)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	checkpointStore, err := store.NewFSStore(serveDataDir)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint store: %w", err)
	}

	srv := server.NewServer(serveAddr, serveDataDir, checkpointStore)
	srv.SetDefaultCheckpointInterval(checkpointInterval)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
