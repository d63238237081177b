package scoring_test

import (
	"testing"

	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/scoring"
	"github.com/stretchr/testify/require"
)

var testCostParams = scoring.CostParams{
	AvgHourlyCost: 75,
	WorkweekHours: 40,
	ReworkFactor:  0.3,
}

func TestCostOfDrift_Uncalibrated(t *testing.T) {
	est := scoring.CostOfDrift(testRecent(healthyValues), nil, 5, testCostParams)
	require.False(t, est.HasData)
	require.NotEmpty(t, est.Message)
}

func TestCostOfDrift_NoRecentData(t *testing.T) {
	est := scoring.CostOfDrift(nil, testBaseline(healthyValues), 5, testCostParams)
	require.False(t, est.HasData)
	require.NotEmpty(t, est.Message)
}

func TestCostOfDrift_NoDrift(t *testing.T) {
	est := scoring.CostOfDrift(testRecent(healthyValues), testBaseline(healthyValues), 5, testCostParams)
	require.True(t, est.HasData)
	require.InDelta(t, 0.0, est.TotalHoursLost, 1e-9)
	require.InDelta(t, 0.0, est.Weekly.Midpoint, 1e-9)
	require.Contains(t, est.Interpretation, "minimal")
}

func TestCostOfDrift_MeetingOverhead(t *testing.T) {
	// Two extra weekly meeting hours per member across a team of five:
	// ten hours lost, 750 midpoint at 75/hour, range 600-900.
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad:    22,
		metric.SignalAfterHours:     0.10,
		metric.SignalFocusTime:      0.50,
		metric.SignalResponseMedian: 30,
	})
	est := scoring.CostOfDrift(recent, testBaseline(healthyValues), 5, testCostParams)
	require.True(t, est.HasData)
	require.InDelta(t, 10.0, est.TotalHoursLost, 1e-6)
	require.InDelta(t, 750.0, est.Weekly.Midpoint, 1e-6)
	require.InDelta(t, 600.0, est.Weekly.Low, 1e-6)
	require.InDelta(t, 900.0, est.Weekly.High, 1e-6)
	require.InDelta(t, 3000.0, est.FourWeek.Midpoint, 1e-6)
	require.InDelta(t, 100.0, est.Breakdown["meeting_overhead"], 1e-6)
	require.InDelta(t, 0.0, est.Breakdown["rework"], 1e-6)
}

func TestCostOfDrift_FavorableDriftIsNotNegative(t *testing.T) {
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad:    15,
		metric.SignalAfterHours:     0.05,
		metric.SignalFocusTime:      0.60,
		metric.SignalResponseMedian: 20,
	})
	est := scoring.CostOfDrift(recent, testBaseline(healthyValues), 5, testCostParams)
	require.True(t, est.HasData)
	require.InDelta(t, 0.0, est.TotalHoursLost, 1e-9)
	require.GreaterOrEqual(t, est.Weekly.Low, 0.0)
}

func TestCostOfDrift_ReworkComponent(t *testing.T) {
	// After-hours rate up 0.10 over baseline: 0.10 * 40h * 0.3 * 5 = 6 hours.
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad:    20,
		metric.SignalAfterHours:     0.20,
		metric.SignalFocusTime:      0.50,
		metric.SignalResponseMedian: 30,
	})
	est := scoring.CostOfDrift(recent, testBaseline(healthyValues), 5, testCostParams)
	require.True(t, est.HasData)
	require.InDelta(t, 6.0, est.TotalHoursLost, 1e-6)
	require.InDelta(t, 100.0, est.Breakdown["rework"], 1e-6)
}

func TestCostOfDrift_ExecutionDelay(t *testing.T) {
	// Focus erosion of 0.10 costs 4h/member; a 20-minute response slowdown
	// costs 2h/member. Team of five: 30 hours.
	recent := testRecent(map[metric.Signal]float64{
		metric.SignalMeetingLoad:    20,
		metric.SignalAfterHours:     0.10,
		metric.SignalFocusTime:      0.40,
		metric.SignalResponseMedian: 50,
	})
	est := scoring.CostOfDrift(recent, testBaseline(healthyValues), 5, testCostParams)
	require.True(t, est.HasData)
	require.InDelta(t, 30.0, est.TotalHoursLost, 1e-6)
	require.InDelta(t, 100.0, est.Breakdown["execution_delay"], 1e-6)
	require.Contains(t, est.Interpretation, "significant")
}

func TestCostOfDrift_Interpretation(t *testing.T) {
	tests := []struct {
		name     string
		meeting  float64
		contains string
	}{
		{"minimal", 20.5, "minimal"},       // 2.5h -> 187.50
		{"noticeable", 22, "noticeable"},   // 10h -> 750
		{"significant", 28, "significant"}, // 40h -> 3000
		{"critical", 40, "critical"},       // 100h -> 7500
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recent := testRecent(map[metric.Signal]float64{
				metric.SignalMeetingLoad:    tt.meeting,
				metric.SignalAfterHours:     0.10,
				metric.SignalFocusTime:      0.50,
				metric.SignalResponseMedian: 30,
			})
			est := scoring.CostOfDrift(recent, testBaseline(healthyValues), 5, testCostParams)
			require.Contains(t, est.Interpretation, tt.contains)
		})
	}
}

func TestRangeAround(t *testing.T) {
	r := scoring.RangeAround(1000)
	require.InDelta(t, 800.0, r.Low, 1e-9)
	require.InDelta(t, 1000.0, r.Midpoint, 1e-9)
	require.InDelta(t, 1200.0, r.High, 1e-9)

	r = scoring.RangeAround(-50)
	require.InDelta(t, 0.0, r.Midpoint, 1e-9)
	require.InDelta(t, 0.0, r.Low, 1e-9)
}
