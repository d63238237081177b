package metric

import "time"

// Signal identifies one tracked collaboration signal.
type Signal string

const (
	SignalMeetingLoad    Signal = "meeting_load_index"
	SignalAfterHours     Signal = "after_hours_rate"
	SignalFocusTime      Signal = "focus_time_ratio"
	SignalResponseMedian Signal = "response_median_mins"
	SignalBDI            Signal = "bdi"
)

// TrackedSignals is the fixed signal set the engine baselines and scores.
// Order is stable so detection runs and reports are deterministic.
var TrackedSignals = []Signal{
	SignalMeetingLoad,
	SignalAfterHours,
	SignalFocusTime,
	SignalResponseMedian,
	SignalBDI,
}

// Aggregate is one team-level metric record for one period. Aggregates are
// append-only; the engine never mutates them.
type Aggregate struct {
	TeamID  string             `json:"team_id"`
	Date    time.Time          `json:"date"`
	Signals map[Signal]float64 `json:"signals"`
}

// Value returns the signal value and whether the aggregate carries it.
func (a Aggregate) Value(s Signal) (float64, bool) {
	v, ok := a.Signals[s]
	return v, ok
}

// MemberSample is one anonymized per-member workload sample. It carries no
// identifiers and is consumed only by the load-balance calculator.
type MemberSample struct {
	MeetingHours     float64 `json:"meeting_hours"`
	AfterHoursHours  float64 `json:"after_hours_hours"`
	ResponsePressure float64 `json:"response_pressure"`
}
