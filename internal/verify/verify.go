// Package verify checks a written downtime CSV against the generator's invariants.
package verify

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/config"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/export"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/types"
)

// Violation is a single invariant breach at a specific row of the file.
// Row is 1-based over data rows (the header is row 0).
type Violation struct {
	Row     int
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("row %d, %s: %s", v.Row, v.Field, v.Message)
}

// Report is the outcome of verifying one CSV file.
type Report struct {
	Rows       int
	Violations []Violation
}

// OK reports whether the file satisfied every invariant.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// File parses the CSV at path and checks every row against the invariants
// implied by cfg: station membership per line, the failure-code→category
// mapping, the hour→shift rule, timestamp ordering, the duration floor, and
// non-negative pieces lost. Structural problems (missing file, wrong header)
// return an error; invariant breaches are collected into the report.
func File(path string, cfg config.Config) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty, expected a header row", path)
	}

	header := export.Header()
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("dataset %s has %d columns, expected %d", path, len(records[0]), len(header))
	}
	for i, name := range header {
		if records[0][i] != name {
			return nil, fmt.Errorf("dataset %s column %d is %q, expected %q", path, i, records[0][i], name)
		}
	}

	report := &Report{Rows: len(records) - 1}
	for i, record := range records[1:] {
		report.Violations = append(report.Violations, checkRow(i+1, record, cfg)...)
	}

	return report, nil
}

// Column indices in export.Header order.
const (
	colEventID = iota
	colTimestampStart
	colTimestampEnd
	colLineID
	colStationID
	colRobotID
	colFailureCode
	colFailureCategory
	colDowntimeMinutes
	colShift
	colPiecesLost
	colDayOfWeek
)

func checkRow(row int, record []string, cfg config.Config) []Violation {
	var violations []Violation
	add := func(field, format string, args ...any) {
		violations = append(violations, Violation{Row: row, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if id, err := strconv.Atoi(record[colEventID]); err != nil {
		add("event_id", "not an integer: %q", record[colEventID])
	} else if id != row {
		add("event_id", "expected sequential id %d, got %d", row, id)
	}

	start, startErr := export.ParseTimestamp(record[colTimestampStart])
	if startErr != nil {
		add("timestamp_start", "not an ISO-8601 timestamp: %q", record[colTimestampStart])
	}
	end, endErr := export.ParseTimestamp(record[colTimestampEnd])
	if endErr != nil {
		add("timestamp_end", "not an ISO-8601 timestamp: %q", record[colTimestampEnd])
	}
	if startErr == nil && endErr == nil && !end.After(start) {
		add("timestamp_end", "%s is not after start %s", record[colTimestampEnd], record[colTimestampStart])
	}

	stations, lineKnown := cfg.StationsPerLine[record[colLineID]]
	if !lineKnown {
		add("line_id", "unknown line %q", record[colLineID])
	} else if !contains(stations, record[colStationID]) {
		add("station_id", "station %q does not belong to line %q", record[colStationID], record[colLineID])
	}

	if !contains(cfg.Robots, record[colRobotID]) {
		add("robot_id", "unknown robot %q", record[colRobotID])
	}

	wantCategory, codeKnown := cfg.FailureCategories[record[colFailureCode]]
	if !codeKnown {
		add("failure_code", "unknown code %q", record[colFailureCode])
	} else if record[colFailureCategory] != wantCategory {
		add("failure_category", "code %s maps to %q, got %q", record[colFailureCode], wantCategory, record[colFailureCategory])
	}

	if minutes, err := strconv.ParseFloat(record[colDowntimeMinutes], 64); err != nil {
		add("downtime_minutes", "not a number: %q", record[colDowntimeMinutes])
	} else if minutes < 1.0 {
		add("downtime_minutes", "%v is below the 1.0 minute floor", minutes)
	}

	if startErr == nil {
		wantShift := types.ShiftForHour(start.Hour())
		if record[colShift] != string(wantShift) {
			add("shift", "hour %d implies %q, got %q", start.Hour(), wantShift, record[colShift])
		}
		if record[colDayOfWeek] != start.Weekday().String() {
			add("day_of_week", "start implies %q, got %q", start.Weekday().String(), record[colDayOfWeek])
		}
	}

	if pieces, err := strconv.Atoi(record[colPiecesLost]); err != nil {
		add("pieces_lost", "not an integer: %q", record[colPiecesLost])
	} else if pieces < 0 {
		add("pieces_lost", "negative value %d", pieces)
	}

	return violations
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
