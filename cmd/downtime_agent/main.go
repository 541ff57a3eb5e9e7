// Package main provides the entry point for the downtime dataset generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "downtime_agent",
	Short: "Synthetic manufacturing downtime dataset generator",
	Long:  "downtime_agent synthesizes a fabricated dataset of manufacturing-line downtime events (line, station, robot, failure taxonomy, duration, pieces lost) from a deterministic pseudo-random stream and writes it to a CSV file.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
