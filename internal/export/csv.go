// Package export writes generated downtime datasets to disk: the CSV table
// itself plus an optional JSON run manifest describing how it was produced.
package export

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/types"
)

// timestampLayout is ISO-8601 combined date-time without a zone offset,
// matching the reference dataset (e.g. 2024-03-14T09:27:00).
const timestampLayout = "2006-01-02T15:04:05"

// Header returns the CSV column names in their fixed output order.
func Header() []string {
	return []string{
		"event_id",
		"timestamp_start",
		"timestamp_end",
		"line_id",
		"station_id",
		"robot_id",
		"failure_code",
		"failure_category",
		"downtime_minutes",
		"shift",
		"pieces_lost",
		"day_of_week",
	}
}

// Record renders one event as a CSV record in Header order. Timestamps are
// ISO-8601 and downtime_minutes always carries exactly one fractional digit.
func Record(ev types.DowntimeEvent) []string {
	return []string{
		strconv.Itoa(ev.EventID),
		ev.TimestampStart.Format(timestampLayout),
		ev.TimestampEnd.Format(timestampLayout),
		string(ev.LineID),
		ev.StationID,
		ev.RobotID,
		string(ev.FailureCode),
		string(ev.FailureCategory),
		strconv.FormatFloat(ev.DowntimeMinutes, 'f', 1, 64),
		string(ev.Shift),
		strconv.Itoa(ev.PiecesLost),
		ev.DayOfWeek,
	}
}

// WriteCSV writes header plus one row per event to path, overwriting any
// existing file. On failure the partial file is left as-is; there is no
// retry or cleanup.
func WriteCSV(path string, events []types.DowntimeEvent) error {
	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Message: "failed to create output file", Cause: err}
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(Header()); err != nil {
		_ = file.Close()
		return &WriteError{Path: path, Message: "failed to write header", Cause: err}
	}

	for _, ev := range events {
		if err := writer.Write(Record(ev)); err != nil {
			_ = file.Close()
			return &WriteError{Path: path, Message: "failed to write row", Cause: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return &WriteError{Path: path, Message: "failed to flush rows", Cause: err}
	}

	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Message: "failed to close output file", Cause: err}
	}

	return nil
}

// ParseTimestamp parses a timestamp in the output format. Exposed for
// round-trip checks against written files.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
