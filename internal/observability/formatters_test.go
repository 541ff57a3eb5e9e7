package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/export"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/types"
)

func previewEvents(n int) []types.DowntimeEvent {
	events := make([]types.DowntimeEvent, 0, n)
	start := time.Date(2024, 3, 14, 9, 27, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		events = append(events, types.DowntimeEvent{
			EventID:         i + 1,
			TimestampStart:  start.Add(time.Duration(i) * time.Hour),
			TimestampEnd:    start.Add(time.Duration(i)*time.Hour + 30*time.Minute),
			LineID:          types.LinePaintShop,
			StationID:       "PS_Oven_01",
			RobotID:         "R012",
			FailureCode:     "E02",
			FailureCategory: types.CategoryElectrical,
			DowntimeMinutes: 30.0,
			Shift:           types.ShiftMorning,
			PiecesLost:      10,
			DayOfWeek:       "Thursday",
		})
	}
	return events
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunSummary("downtime_events.csv", previewEvents(8), 5)
	output := buf.String()

	assert.Contains(t, output, "GENERATED DOWNTIME EVENTS")
	assert.Contains(t, output, "downtime_events.csv")
	assert.Contains(t, output, "Rows: 8")
	assert.Contains(t, output, "PaintShop")
	assert.Contains(t, output, "PS_Oven_01")
	assert.Contains(t, output, "... and 3 more rows")

	// Preview shows 5 data lines, not 8
	assert.Equal(t, 5, strings.Count(output, "E02"))
}

func TestPrintRunSummary_FewerRowsThanPreview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunSummary("out.csv", previewEvents(2), 5)
	output := buf.String()

	assert.Contains(t, output, "Rows: 2")
	assert.NotContains(t, output, "more rows")
}

func TestPrintManifest(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	manifest := &export.RunManifest{
		RunID:  uuid.New(),
		Seed:   42,
		SHA256: strings.Repeat("ab", 32),
	}
	p.PrintManifest(manifest, "manifest.json")
	output := buf.String()

	assert.Contains(t, output, "RUN MANIFEST")
	assert.Contains(t, output, "manifest.json")
	assert.Contains(t, output, "Seed:   42")
	assert.Contains(t, output, manifest.RunID.String())
}

func TestPrintManifest_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintManifest(nil, "manifest.json")

	assert.Empty(t, buf.String())
}
