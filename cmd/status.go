package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var serverURL string

var statusCmd = &cobra.Command{
	Use:   "status [job-id]",
	Short: "Query server status or a specific job",
	Long: `Queries the job server for status information.
If no job-id is provided, lists all jobs.
If a job-id is provided, shows detailed status for that job.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listServerJobs(fmt.Sprintf("%s/api/v1/jobs", serverURL))
	}

	jobID := args[0]
	return getServerJobStatus(fmt.Sprintf("%s/api/v1/jobs/%s/status", serverURL, jobID), jobID)
}

func listServerJobs(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned error: %s", string(body))
	}

	var jobs []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs found")
		return nil
	}

	fmt.Printf("Found %d job(s):\n\n", len(jobs))
	for _, job := range jobs {
		fmt.Printf("Job ID: %s\n", job["id"])
		fmt.Printf("  State: %s\n", job["state"])
		if config, ok := job["config"].(map[string]interface{}); ok {
			fmt.Printf("  Preset: %s\n", config["preset"])
			fmt.Printf("  Dims: %v\n", config["dims"])
		}
		if best, ok := job["bestScore"].(float64); ok {
			if initial, ok := job["initialScore"].(float64); ok && initial > 0 {
				fmt.Printf("  Score: %.4f -> %.4f\n", initial, best)
			}
		}
		fmt.Println()
	}

	return nil
}

func getServerJobStatus(url, jobID string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("job not found: %s", jobID)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned error: %s", string(body))
	}

	var status map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	fmt.Printf("Job: %s\n", status["id"])
	fmt.Printf("State: %s\n", status["state"])
	fmt.Println()

	if config, ok := status["config"].(map[string]interface{}); ok {
		fmt.Println("Configuration:")
		fmt.Printf("  Preset: %s\n", config["preset"])
		fmt.Printf("  Dims: %v\n", config["dims"])
		fmt.Printf("  Patience: %v\n", config["patience"])
		fmt.Printf("  Trials: %v\n", config["trials"])
		fmt.Printf("  Iterations: %v\n", config["iters"])
		fmt.Println()
	}

	fmt.Println("Progress:")
	if initial, ok := status["initialScore"].(float64); ok {
		fmt.Printf("  Initial Score: %.6f\n", initial)
		if best, ok := status["bestScore"].(float64); ok {
			fmt.Printf("  Best Score: %.6f\n", best)
			if initial > 0 {
				improvement := initial - best
				fmt.Printf("  Improvement: %.6f (%.1f%%)\n", improvement, improvement/initial*100)
			}
		}
	}
	if iterations, ok := status["iterations"].(float64); ok {
		fmt.Printf("  Iterations: %.0f\n", iterations)
	}
	if accepted, ok := status["accepted"].(float64); ok {
		fmt.Printf("  Accepted: %.0f\n", accepted)
	}
	if elapsedSec, ok := status["elapsed"].(float64); ok {
		elapsed := time.Duration(elapsedSec * float64(time.Second))
		fmt.Printf("  Elapsed: %s\n", elapsed.Round(time.Millisecond))
	}
	if ips, ok := status["ips"].(float64); ok && ips > 0 {
		fmt.Printf("  Throughput: %.0f iterations/sec\n", ips)
	}

	if errMsg, ok := status["error"].(string); ok && errMsg != "" {
		fmt.Printf("\nError: %s\n", errMsg)
	}

	return nil
}
