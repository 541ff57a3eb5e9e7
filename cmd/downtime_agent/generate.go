package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/config"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/export"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/observability"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/schemas"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/synth"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic downtime event dataset",
	Long:  "Generates a CSV of fabricated downtime events with a reproducible pseudo-random stream. Flags override config file values, which override the built-in defaults of the reference dataset (8000 rows, seed 42, 2024-01-01..2024-06-30).",
	RunE:  runGenerate,
}

var (
	generateConfigPath   string
	generateOutput       string
	generateRows         int
	generateSeed         uint64
	generateStart        string
	generateEnd          string
	generateManifestPath string
	generatePreview      int
	generateQuiet        bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to JSON config file (optional)")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path of the CSV file to write (default downtime_events.csv)")
	generateCmd.Flags().IntVarP(&generateRows, "rows", "n", 0, "Number of events to generate (default 8000)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Seed for the pseudo-random stream (default 42)")
	generateCmd.Flags().StringVar(&generateStart, "start", "", "First day of the date range, YYYY-MM-DD (default 2024-01-01)")
	generateCmd.Flags().StringVar(&generateEnd, "end", "", "Last day of the date range, YYYY-MM-DD (default 2024-06-30)")
	generateCmd.Flags().StringVar(&generateManifestPath, "manifest", "", "Path to write a JSON run manifest (optional)")
	generateCmd.Flags().IntVar(&generatePreview, "preview", 0, "Number of rows shown in the console summary (default 5)")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Suppress the console summary")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	// 1. Resolve configuration: defaults, then config file, then flags
	cfg, err := resolveConfig(generateConfigPath)
	if err != nil {
		return err
	}
	applyGenerateFlags(&cfg)

	// 2. Fail fast on a broken configuration before generating anything
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 3. Generate the dataset
	synthesizer, err := synth.New(cfg)
	if err != nil {
		return err
	}
	events := synthesizer.Generate()

	// 4. Write the CSV
	if err := export.WriteCSV(cfg.Output, events); err != nil {
		return err
	}

	// 5. Optionally write the run manifest
	var manifest *export.RunManifest
	if generateManifestPath != "" {
		manifest, err = export.NewRunManifest(cfg, cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to build run manifest: %w", err)
		}
		if err := manifest.Write(generateManifestPath); err != nil {
			return err
		}
	}

	// 6. Console summary
	if !generateQuiet {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRunSummary(cfg.Output, events, cfg.Preview)
		printer.PrintManifest(manifest, generateManifestPath)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully generated %d events to %s\n", len(events), cfg.Output)

	return nil
}

// applyGenerateFlags layers set CLI flags on top of cfg.
func applyGenerateFlags(cfg *config.Config) {
	if generateOutput != "" {
		cfg.Output = generateOutput
	}
	if generateRows > 0 {
		cfg.Rows = generateRows
	}
	if generateSeed != 0 {
		cfg.Seed = generateSeed
	}
	if generateStart != "" {
		cfg.StartDate = generateStart
	}
	if generateEnd != "" {
		cfg.EndDate = generateEnd
	}
	if generatePreview > 0 {
		cfg.Preview = generatePreview
	}
}

// resolveConfig returns the built-in defaults, or the config file layered on
// top of them when path is non-empty. Config files are validated against the
// JSON Schema before being parsed; a missing schema file downgrades to a
// warning so the binary works outside the repository.
func resolveConfig(path string) (config.Config, error) {
	defaults := config.DefaultConfig()
	if path == "" {
		return defaults, nil
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ConfigSchemaFile); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &schemaLoadErr) {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate config against schema (schema loading failed): %v\n", err)
			} else {
				return config.Config{}, fmt.Errorf("config file %s failed schema validation: %w", path, err)
			}
		}
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}

	return fileCfg.MergeWithDefaults(defaults), nil
}
