package export

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/config"
)

// RunManifest records how a dataset was produced: the run identity, the
// parameters that drove generation, and a checksum of the written CSV.
// Two runs with the same seed and configuration produce the same checksum,
// which makes the manifest a cheap determinism check without re-parsing
// the CSV.
type RunManifest struct {
	RunID       uuid.UUID `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Seed        uint64    `json:"seed"`
	Rows        int       `json:"rows"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	OutputPath  string    `json:"output_path"`
	SHA256      string    `json:"sha256"`
}

// NewRunManifest builds a manifest for a CSV already written to outputPath,
// hashing the file contents.
func NewRunManifest(cfg config.Config, outputPath string) (*RunManifest, error) {
	checksum, err := fileSHA256(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to hash output file: %w", err)
	}

	return &RunManifest{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Seed:        cfg.Seed,
		Rows:        cfg.Rows,
		StartDate:   cfg.StartDate,
		EndDate:     cfg.EndDate,
		OutputPath:  outputPath,
		SHA256:      checksum,
	}, nil
}

// Write serializes the manifest as indented JSON to path, overwriting any
// existing file.
func (m *RunManifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Message: "failed to write run manifest", Cause: err}
	}

	return nil
}

func fileSHA256(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
