package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a generated CSV against the dataset invariants",
	Long:  "Re-reads a generated downtime CSV and checks every row against the dataset invariants: station membership per line, failure-code categories, the hour-to-shift rule, timestamp ordering, the duration floor, and non-negative pieces lost. Exits non-zero when any row violates them.",
	RunE:  runVerify,
}

var (
	verifyInput      string
	verifyConfigPath string
)

func init() {
	verifyCmd.Flags().StringVarP(&verifyInput, "in", "i", "", "Path to the CSV file to verify (required)")
	verifyCmd.Flags().StringVarP(&verifyConfigPath, "config", "c", "", "Config file the dataset was generated with (optional, defaults used otherwise)")

	if err := verifyCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(verifyConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	report, err := verify.File(verifyInput, cfg)
	if err != nil {
		return err
	}

	if !report.OK() {
		for _, violation := range report.Violations {
			_, _ = fmt.Fprintf(os.Stderr, "  %s\n", violation)
		}
		return fmt.Errorf("%s: %d invariant violations across %d rows", verifyInput, len(report.Violations), report.Rows)
	}

	_, _ = fmt.Fprintf(os.Stdout, "OK: %s (%d rows)\n", verifyInput, report.Rows)

	return nil
}
