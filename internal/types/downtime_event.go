// Package types defines the domain model shared across the downtime generator.
package types

import "time"

// Line identifies a production line.
type Line string

const (
	LineBodyShop      Line = "BodyShop"
	LinePaintShop     Line = "PaintShop"
	LineFinalAssembly Line = "FinalAssembly"
)

// Shift is a time-of-day bucket derived from an event's start hour.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

// FailureCode is a fixed taxonomy code (E01..E06).
type FailureCode string

// FailureCategory is the coarser label a FailureCode maps to.
type FailureCategory string

const (
	CategoryMechanical     FailureCategory = "mechanical"
	CategoryElectrical     FailureCategory = "electrical"
	CategoryProgramming    FailureCategory = "programming"
	CategorySensor         FailureCategory = "sensor"
	CategoryMaterialSupply FailureCategory = "material_supply"
	CategoryOther          FailureCategory = "other"
)

// DowntimeEvent is one synthesized stoppage record: when it happened, where
// on the shop floor, what failed, and what it cost in pieces.
type DowntimeEvent struct {
	EventID         int             `json:"event_id"`
	TimestampStart  time.Time       `json:"timestamp_start"`
	TimestampEnd    time.Time       `json:"timestamp_end"`
	LineID          Line            `json:"line_id"`
	StationID       string          `json:"station_id"`
	RobotID         string          `json:"robot_id"`
	FailureCode     FailureCode     `json:"failure_code"`
	FailureCategory FailureCategory `json:"failure_category"`
	DowntimeMinutes float64         `json:"downtime_minutes"`
	Shift           Shift           `json:"shift"`
	PiecesLost      int             `json:"pieces_lost"`
	DayOfWeek       string          `json:"day_of_week"`
}

// ShiftForHour maps an hour of day to its shift bucket:
// [6,14) morning, [14,22) afternoon, everything else night.
func ShiftForHour(hour int) Shift {
	switch {
	case hour >= 6 && hour < 14:
		return ShiftMorning
	case hour >= 14 && hour < 22:
		return ShiftAfternoon
	default:
		return ShiftNight
	}
}

// WeekdayName returns the full English weekday name of t (e.g. "Thursday").
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}
