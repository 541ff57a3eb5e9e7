package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/config"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/export"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/synth"
)

func writeGeneratedCSV(t *testing.T, rows int) string {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Rows = rows
	s, err := synth.New(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, export.WriteCSV(path, s.Generate()))
	return path
}

func TestFile_GeneratedDatasetPasses(t *testing.T) {
	path := writeGeneratedCSV(t, 500)

	report, err := File(path, config.DefaultConfig())
	require.NoError(t, err)

	assert.True(t, report.OK(), "violations: %v", report.Violations)
	assert.Equal(t, 500, report.Rows)
}

func TestFile_StructuralErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := File(filepath.Join(t.TempDir(), "nope.csv"), config.DefaultConfig())
		assert.Error(t, err)
	})

	t.Run("Empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := File(path, config.DefaultConfig())
		assert.Error(t, err)
	})

	t.Run("Wrong header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		content := "id,start,end,line,station,robot,code,category,minutes,shift,pieces,day\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := File(path, config.DefaultConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "column")
	})
}

func TestFile_DetectsTamperedRows(t *testing.T) {
	header := strings.Join(export.Header(), ",")
	tests := []struct {
		name      string
		row       string
		wantField string
	}{
		{
			name:      "Station from wrong line",
			row:       "1,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,PS_Oven_01,R007,E01,mechanical,32.0,morning,11,Thursday",
			wantField: "station_id",
		},
		{
			name:      "Category mismatch",
			row:       "1,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,BS_Weld_01,R007,E01,electrical,32.0,morning,11,Thursday",
			wantField: "failure_category",
		},
		{
			name:      "Shift does not match hour",
			row:       "1,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,BS_Weld_01,R007,E01,mechanical,32.0,night,11,Thursday",
			wantField: "shift",
		},
		{
			name:      "End before start",
			row:       "1,2024-03-14T09:27:00,2024-03-14T09:00:00,BodyShop,BS_Weld_01,R007,E01,mechanical,32.0,morning,11,Thursday",
			wantField: "timestamp_end",
		},
		{
			name:      "Duration below floor",
			row:       "1,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,BS_Weld_01,R007,E01,mechanical,0.5,morning,11,Thursday",
			wantField: "downtime_minutes",
		},
		{
			name:      "Negative pieces lost",
			row:       "1,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,BS_Weld_01,R007,E01,mechanical,32.0,morning,-3,Thursday",
			wantField: "pieces_lost",
		},
		{
			name:      "Non-sequential event id",
			row:       "9,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,BS_Weld_01,R007,E01,mechanical,32.0,morning,11,Thursday",
			wantField: "event_id",
		},
		{
			name:      "Wrong weekday name",
			row:       "1,2024-03-14T09:27:00,2024-03-14T09:59:00,BodyShop,BS_Weld_01,R007,E01,mechanical,32.0,morning,11,Friday",
			wantField: "day_of_week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "events.csv")
			content := header + "\n" + tt.row + "\n"
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			report, err := File(path, config.DefaultConfig())
			require.NoError(t, err)

			require.False(t, report.OK())
			found := false
			for _, v := range report.Violations {
				if v.Field == tt.wantField {
					found = true
				}
			}
			assert.True(t, found, "expected a %s violation, got %v", tt.wantField, report.Violations)
		})
	}
}
