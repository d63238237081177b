package drift

import (
	"time"

	"github.com/ganot/teampulse/internal/domain/metric"
)

// Direction indicates which way a signal moved relative to baseline.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Severity tiers a drift event by magnitude.
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Event is one detected deviation of a signal from its baseline. Events are
// immutable once created; every detection run appends new events so outcome
// tracking over time stays possible.
type Event struct {
	ID            string        `json:"id"`
	TeamID        string        `json:"team_id"`
	Signal        metric.Signal `json:"signal"`
	CurrentValue  float64       `json:"current_value"`
	BaselineValue float64       `json:"baseline_value"`
	PercentChange float64       `json:"percent_change"`
	Direction     Direction     `json:"direction"`
	Severity      Severity      `json:"severity"`
	// Provisional marks events detected against a low-confidence baseline.
	// Consumers must treat provisional events as observational, not alertable.
	Provisional bool      `json:"provisional"`
	DetectedAt  time.Time `json:"detected_at"`
}

// severityFor tiers magnitude against the signal threshold. Boundary values
// round toward the more severe tier so drift is never under-reported.
func severityFor(absChange, threshold float64) Severity {
	if absChange >= threshold*1.5 {
		return SeverityHigh
	}
	return SeverityMedium
}
