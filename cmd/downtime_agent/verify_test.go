package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "verify")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestVerifyCommand_GeneratedFilePasses(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "events.csv")

	cmd := exec.Command(binaryPath, "generate", "--rows", "50", "--out", outputFile, "--quiet")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "generate failed with output: %s", string(output))

	cmd = exec.Command(binaryPath, "verify", "--in", outputFile)
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, "verify failed with output: %s", string(output))

	assert.Contains(t, string(output), "OK")
	assert.Contains(t, string(output), "50 rows")
}

func TestVerifyCommand_TamperedFileFails(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "events.csv")
	content := "event_id,timestamp_start,timestamp_end,line_id,station_id,robot_id,failure_code,failure_category,downtime_minutes,shift,pieces_lost,day_of_week\n" +
		"1,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,PS_Oven_01,R007,E01,mechanical,32.0,morning,11,Thursday\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cmd := exec.Command(binaryPath, "verify", "--in", path)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "station_id")
}
