package baseline

import (
	"time"

	"github.com/ganot/teampulse/internal/domain/metric"
)

// Confidence grades how much data backs a baseline.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Baseline is one immutable per-team calibration snapshot. Recalibration
// inserts a new snapshot rather than mutating the previous one, so history
// stays auditable and detection always reads a fully committed baseline.
type Baseline struct {
	ID            string                    `json:"id"`
	TeamID        string                    `json:"team_id"`
	Values        map[metric.Signal]float64 `json:"values"`
	Confidence    Confidence                `json:"confidence"`
	SampleSize    int                       `json:"sample_size"`
	WindowLength  int                       `json:"window_length"`
	EstablishedAt time.Time                 `json:"established_at"`
}

// Value returns the baseline value for a signal and whether one exists.
func (b *Baseline) Value(s metric.Signal) (float64, bool) {
	v, ok := b.Values[s]
	return v, ok
}

// GradeConfidence maps sample coverage of the window to a confidence grade.
// High needs 80% coverage, medium 40%. Monotonic non-decreasing in sampleSize.
func GradeConfidence(sampleSize, windowLength int) Confidence {
	if windowLength <= 0 {
		return ConfidenceLow
	}
	coverage := float64(sampleSize) / float64(windowLength)
	switch {
	case coverage >= 0.8:
		return ConfidenceHigh
	case coverage >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
