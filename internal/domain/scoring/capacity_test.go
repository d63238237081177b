package scoring_test

import (
	"testing"
	"time"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/scoring"
	"github.com/stretchr/testify/require"
)

func testBaseline(values map[metric.Signal]float64) *baseline.Baseline {
	return &baseline.Baseline{
		ID:            "b1",
		TeamID:        "t1",
		Values:        values,
		Confidence:    baseline.ConfidenceHigh,
		SampleSize:    24,
		WindowLength:  30,
		EstablishedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testRecent(values map[metric.Signal]float64) []metric.Aggregate {
	start := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	rows := make([]metric.Aggregate, 7)
	for i := range rows {
		signals := make(map[metric.Signal]float64, len(values))
		for s, v := range values {
			signals[s] = v
		}
		rows[i] = metric.Aggregate{TeamID: "t1", Date: start.AddDate(0, 0, i), Signals: signals}
	}
	return rows
}

var healthyValues = map[metric.Signal]float64{
	metric.SignalMeetingLoad:    20,
	metric.SignalAfterHours:     0.10,
	metric.SignalFocusTime:      0.50,
	metric.SignalResponseMedian: 30,
}

func TestCapacityIndex_Uncalibrated(t *testing.T) {
	score := scoring.CapacityIndex(testRecent(healthyValues), nil)
	require.False(t, score.HasData)
	require.NotEmpty(t, score.Message)
}

func TestCapacityIndex_NoRecentData(t *testing.T) {
	score := scoring.CapacityIndex(nil, testBaseline(healthyValues))
	require.False(t, score.HasData)
	require.NotEmpty(t, score.Message)
}

func TestCapacityIndex_AtBaseline(t *testing.T) {
	score := scoring.CapacityIndex(testRecent(healthyValues), testBaseline(healthyValues))
	require.True(t, score.HasData)
	require.InDelta(t, 0.0, score.Index, 1e-9)
}

func TestCapacityIndex_FullSaturation(t *testing.T) {
	// Every signal drifted adversely by at least 50%.
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad:    40,
		metric.SignalAfterHours:     0.30,
		metric.SignalFocusTime:      0.10,
		metric.SignalResponseMedian: 90,
	})
	score := scoring.CapacityIndex(recent, testBaseline(healthyValues))
	require.True(t, score.HasData)
	require.InDelta(t, 100.0, score.Index, 1e-9)
}

func TestCapacityIndex_SingleDriver(t *testing.T) {
	// Meeting load up 25%, half of saturation, weight 0.30: index 15.
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad:    25,
		metric.SignalAfterHours:     0.10,
		metric.SignalFocusTime:      0.50,
		metric.SignalResponseMedian: 30,
	})
	score := scoring.CapacityIndex(recent, testBaseline(healthyValues))
	require.True(t, score.HasData)
	require.InDelta(t, 15.0, score.Index, 1e-6)
	require.InDelta(t, 0.15, score.Drivers[metric.SignalMeetingLoad], 1e-9)
	require.InDelta(t, 0.0, score.Drivers[metric.SignalFocusTime], 1e-9)
}

func TestCapacityIndex_FavorableDriftIsNeutral(t *testing.T) {
	// Fewer meetings, more focus time: healthier, never negative.
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad:    10,
		metric.SignalAfterHours:     0.05,
		metric.SignalFocusTime:      0.70,
		metric.SignalResponseMedian: 20,
	})
	score := scoring.CapacityIndex(recent, testBaseline(healthyValues))
	require.True(t, score.HasData)
	require.InDelta(t, 0.0, score.Index, 1e-9)
}

func TestCapacityIndex_Monotonic(t *testing.T) {
	base := testBaseline(healthyValues)
	prev := -1.0
	for _, load := range []float64{20, 22, 24, 26, 28, 30, 32} {
		recent := testRecent(map[metric.Signal]float64{
			metric.SignalMeetingLoad:    load,
			metric.SignalAfterHours:     0.10,
			metric.SignalFocusTime:      0.50,
			metric.SignalResponseMedian: 30,
		})
		score := scoring.CapacityIndex(recent, base)
		require.GreaterOrEqual(t, score.Index, prev, "index decreased at meeting load %.0f", load)
		prev = score.Index
	}
}

func TestCapacityIndex_ZeroBaselineSignalIsNeutral(t *testing.T) {
	base := testBaseline(map[metric.Signal]float64{
		metric.SignalMeetingLoad: 0,
		metric.SignalAfterHours:  0.10,
	})
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad: 30,
		metric.SignalAfterHours:  0.10,
	})
	score := scoring.CapacityIndex(recent, base)
	require.True(t, score.HasData)
	require.InDelta(t, 0.0, score.Index, 1e-9)
}
