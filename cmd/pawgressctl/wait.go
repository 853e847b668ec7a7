package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the Pawgress server to be ready",
	Long: `Wait for the Pawgress server to be ready by polling /api/status.

The status endpoint only answers 200 once the database is reachable, so a
successful wait means the API can serve requests.

Example:
  pawgressctl wait
  pawgressctl wait --port 3001 --retries 60`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		retries, _ := cmd.Flags().GetInt("retries")

		url := fmt.Sprintf("http://localhost:%d/api/status", port)
		if err := waitForServer(url, retries, time.Second); err != nil {
			return fmt.Errorf("server did not become ready: %w", err)
		}
		fmt.Println("Pawgress server is ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("port", "p", defaultPortInt(), "Server port to check")
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForServer(url string, retries int, interval time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}

	fmt.Println("Waiting for Pawgress to be ready...")

	for i := 0; i < retries; i++ {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 300 {
				fmt.Println()
				return nil
			}
		}

		fmt.Print(".")
		time.Sleep(interval)
	}

	fmt.Println()
	return fmt.Errorf("not ready after %d attempts", retries)
}
