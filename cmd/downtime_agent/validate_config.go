package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate a generator config file without generating",
	Long:  "Loads a JSON config file, validates it against the config schema and the semantic rules (station map coverage, weight vector shape, date range), and reports the effective settings. Exits non-zero on any violation.",
	RunE:  runValidateConfig,
}

var validateConfigFile string

func init() {
	validateConfigCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Path to JSON config file (required)")

	if err := validateConfigCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(validateConfigFile)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Configuration OK: %s\n", validateConfigFile)
	_, _ = fmt.Fprintf(os.Stdout, "  rows:    %d\n", cfg.Rows)
	_, _ = fmt.Fprintf(os.Stdout, "  seed:    %d\n", cfg.Seed)
	_, _ = fmt.Fprintf(os.Stdout, "  range:   %s .. %s\n", cfg.StartDate, cfg.EndDate)
	_, _ = fmt.Fprintf(os.Stdout, "  lines:   %s\n", strings.Join(cfg.Lines, ", "))
	_, _ = fmt.Fprintf(os.Stdout, "  robots:  %d\n", len(cfg.Robots))
	_, _ = fmt.Fprintf(os.Stdout, "  codes:   %s\n", strings.Join(cfg.FailureCodes, ", "))
	_, _ = fmt.Fprintf(os.Stdout, "  output:  %s\n", cfg.Output)

	return nil
}
