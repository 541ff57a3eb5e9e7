// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for the configured date range.
const DateLayout = "2006-01-02"

// Config represents the generator configuration that can be loaded from a
// JSON file. All fields are optional; missing values fall back to the
// defaults of the reference dataset (8000 rows, seed 42, H1 2024).
type Config struct {
	// Volume and reproducibility
	Rows int    `json:"rows,omitempty" validate:"omitempty,gte=1"` // Number of events to generate
	Seed uint64 `json:"seed,omitempty"`                            // Seed for the pseudo-random stream

	// Date range (inclusive); generated timestamps fall inside it
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	// Shop-floor domain model
	Lines             []string            `json:"lines,omitempty" validate:"omitempty,min=1,dive,required"`
	StationsPerLine   map[string][]string `json:"stations_per_line,omitempty"`
	Robots            []string            `json:"robots,omitempty" validate:"omitempty,min=1,dive,required"`
	FailureCodes      []string            `json:"failure_codes,omitempty" validate:"omitempty,min=1,dive,required"`
	FailureWeights    []float64           `json:"failure_weights,omitempty"`
	FailureCategories map[string]string   `json:"failure_categories,omitempty"`

	// Output
	Output  string `json:"output,omitempty"`                             // Path of the CSV file to write
	Preview int    `json:"preview,omitempty" validate:"omitempty,gte=0"` // Rows shown in the console summary
}

// DefaultConfig returns the configuration of the reference dataset.
func DefaultConfig() Config {
	return Config{
		Rows:      8000,
		Seed:      42,
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
		Lines:     []string{"BodyShop", "PaintShop", "FinalAssembly"},
		StationsPerLine: map[string][]string{
			"BodyShop":      {"BS_Weld_01", "BS_Weld_02", "BS_Trans_01", "BS_QC_01"},
			"PaintShop":     {"PS_Prep_01", "PS_Paint_01", "PS_Oven_01", "PS_QC_01"},
			"FinalAssembly": {"FA_Conv_01", "FA_Station_01", "FA_Station_02", "FA_QC_01"},
		},
		Robots:         defaultRobots(),
		FailureCodes:   []string{"E01", "E02", "E03", "E04", "E05", "E06"},
		FailureWeights: []float64{0.25, 0.20, 0.20, 0.15, 0.15, 0.05},
		FailureCategories: map[string]string{
			"E01": "mechanical",
			"E02": "electrical",
			"E03": "programming",
			"E04": "sensor",
			"E05": "material_supply",
			"E06": "other",
		},
		Output:  "downtime_events.csv",
		Preview: 5,
	}
}

// defaultRobots returns the 30 fixed robot identifiers R001..R030.
func defaultRobots() []string {
	robots := make([]string, 0, 30)
	for i := 1; i <= 30; i++ {
		robots = append(robots, fmt.Sprintf("R%03d", i))
	}
	return robots
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// DateRange parses the configured date range. Call Validate first; this
// only fails on malformed dates.
func (c *Config) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: %w", c.StartDate, err)
	}
	end, err = time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: %w", c.EndDate, err)
	}
	return start, end, nil
}

// Validate checks that the configuration can drive a generation run.
// Structural problems are caught by validator tags; semantic problems
// (empty station lists, mismatched weights, missing categories) surface
// as *ConfigurationError so callers can fail fast before generating.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ConfigurationError{Message: "invalid field values", Cause: err}
	}

	start, end, err := c.DateRange()
	if err != nil {
		return &ConfigurationError{Message: "invalid date range", Cause: err}
	}
	if end.Before(start) {
		return &ConfigurationError{Message: fmt.Sprintf("end_date %s is before start_date %s", c.EndDate, c.StartDate)}
	}

	for _, line := range c.Lines {
		stations, ok := c.StationsPerLine[line]
		if !ok || len(stations) == 0 {
			return &ConfigurationError{Message: fmt.Sprintf("line %q has no stations configured", line)}
		}
	}

	if len(c.FailureWeights) != len(c.FailureCodes) {
		return &ConfigurationError{
			Message: fmt.Sprintf("%d failure codes but %d weights", len(c.FailureCodes), len(c.FailureWeights)),
		}
	}
	total := 0.0
	for i, w := range c.FailureWeights {
		if w < 0 {
			return &ConfigurationError{Message: fmt.Sprintf("negative weight %v for failure code %q", w, c.FailureCodes[i])}
		}
		total += w
	}
	if total <= 0 {
		return &ConfigurationError{Message: "failure weights sum to zero"}
	}

	for _, code := range c.FailureCodes {
		if _, ok := c.FailureCategories[code]; !ok {
			return &ConfigurationError{Message: fmt.Sprintf("failure code %q has no category mapping", code)}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values on top of the built-in
// defaults before CLI flags are layered on.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Rows == 0 {
		result.Rows = defaults.Rows
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.StartDate == "" {
		result.StartDate = defaults.StartDate
	}
	if result.EndDate == "" {
		result.EndDate = defaults.EndDate
	}
	if len(result.Lines) == 0 {
		result.Lines = defaults.Lines
	}
	if len(result.StationsPerLine) == 0 {
		result.StationsPerLine = defaults.StationsPerLine
	}
	if len(result.Robots) == 0 {
		result.Robots = defaults.Robots
	}
	if len(result.FailureCodes) == 0 {
		result.FailureCodes = defaults.FailureCodes
		// Only pair the default weights with the default codes; a custom
		// code list must bring its own weights or fail validation.
		if len(result.FailureWeights) == 0 {
			result.FailureWeights = defaults.FailureWeights
		}
	}
	if len(result.FailureCategories) == 0 {
		result.FailureCategories = defaults.FailureCategories
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Preview == 0 {
		result.Preview = defaults.Preview
	}

	return result
}
