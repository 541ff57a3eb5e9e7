// Package synth implements the downtime event synthesizer: a deterministic
// pseudo-random stream over a static shop-floor model producing a bounded
// sequence of fabricated stoppage records.
package synth

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/Ldesu1/Automotive-downtime-analytics/internal/config"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/sampling"
	"github.com/Ldesu1/Automotive-downtime-analytics/internal/types"
)

const (
	// Duration model: exponential with mean 25 minutes, clamped before bias.
	meanDurationMinutes = 25.0
	minDurationMinutes  = 1.0
	maxDurationMinutes  = 240.0

	// Pieces-lost model: Normal(duration/3, 2), floored at zero.
	piecesDurationDivisor = 3.0
	piecesStdDev          = 2.0

	// Multiplicative duration biases; they compound when both apply.
	nightShiftBias = 1.10
	bodyShopBias   = 1.05
)

// Synthesizer generates downtime events from a validated configuration.
// It owns its random stream: two synthesizers built from the same config
// produce identical sequences, and a single synthesizer repeats its
// sequence after Reset. Not safe for concurrent use.
type Synthesizer struct {
	cfg       config.Config
	start     time.Time
	rangeDays int
	failures  *sampling.Categorical
	rng       *rand.Rand
}

// New builds a Synthesizer for cfg. The configuration is validated up
// front; a line with no stations, a malformed date range, or a broken
// weight vector fails here with a *config.ConfigurationError rather than
// mid-generation.
func New(cfg config.Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start, end, err := cfg.DateRange()
	if err != nil {
		return nil, &config.ConfigurationError{Message: "invalid date range", Cause: err}
	}

	failures, err := sampling.NewCategorical(cfg.FailureCodes, cfg.FailureWeights)
	if err != nil {
		return nil, &config.ConfigurationError{Message: "invalid failure weights", Cause: err}
	}

	s := &Synthesizer{
		cfg:       cfg,
		start:     start,
		rangeDays: int(end.Sub(start).Hours() / 24),
		failures:  failures,
	}
	s.Reset()

	return s, nil
}

// Reset reseeds the random stream. After Reset, Generate produces the same
// sequence as a freshly constructed Synthesizer.
func (s *Synthesizer) Reset() {
	// PCG seeded from the configured seed; this pins the generator algorithm
	// so runs are reproducible within this implementation.
	s.rng = rand.New(rand.NewPCG(s.cfg.Seed, s.cfg.Seed))
}

// Generate produces exactly cfg.Rows events with sequential IDs starting
// at 1. Each call advances the random stream, so a second call yields a
// different sequence unless Reset is called in between.
func (s *Synthesizer) Generate() []types.DowntimeEvent {
	events := make([]types.DowntimeEvent, 0, s.cfg.Rows)
	for i := 0; i < s.cfg.Rows; i++ {
		events = append(events, s.next(i+1))
	}
	return events
}

// next synthesizes a single event. Draw order is fixed; reordering draws
// changes every generated dataset.
func (s *Synthesizer) next(id int) types.DowntimeEvent {
	tsStart := s.randomTimestamp()

	rawDuration := s.rng.ExpFloat64() * meanDurationMinutes
	duration := math.Min(maxDurationMinutes, math.Max(minDurationMinutes, rawDuration))

	// End time is taken from the clamped duration before any bias is
	// applied, so downtime_minutes can disagree slightly with the
	// timestamp difference. Kept to match the reference dataset.
	tsEnd := tsStart.Add(time.Duration(duration * float64(time.Minute)))

	line := s.cfg.Lines[s.rng.IntN(len(s.cfg.Lines))]
	stations := s.cfg.StationsPerLine[line]
	station := stations[s.rng.IntN(len(stations))]
	robot := s.cfg.Robots[s.rng.IntN(len(s.cfg.Robots))]

	code := s.failures.Sample(s.rng)
	category := s.cfg.FailureCategories[code]

	shift := types.ShiftForHour(tsStart.Hour())

	rawPieces := s.rng.NormFloat64()*piecesStdDev + duration/piecesDurationDivisor
	piecesLost := int(math.Round(rawPieces))
	if piecesLost < 0 {
		piecesLost = 0
	}

	// Night shifts and the body shop run a little longer; both biases
	// apply independently and compound.
	if shift == types.ShiftNight {
		duration *= nightShiftBias
	}
	if line == string(types.LineBodyShop) {
		duration *= bodyShopBias
	}

	return types.DowntimeEvent{
		EventID:         id,
		TimestampStart:  tsStart,
		TimestampEnd:    tsEnd,
		LineID:          types.Line(line),
		StationID:       station,
		RobotID:         robot,
		FailureCode:     types.FailureCode(code),
		FailureCategory: types.FailureCategory(category),
		DowntimeMinutes: math.Round(duration*10) / 10,
		Shift:           shift,
		PiecesLost:      piecesLost,
		DayOfWeek:       types.WeekdayName(tsStart),
	}
}

// randomTimestamp draws a minute-resolution timestamp inside the configured
// date range: uniform day offset, uniform hour, uniform minute.
func (s *Synthesizer) randomTimestamp() time.Time {
	dayOffset := s.rng.IntN(s.rangeDays + 1)
	hour := s.rng.IntN(24)
	minute := s.rng.IntN(60)

	return s.start.AddDate(0, 0, dayOffset).
		Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}
