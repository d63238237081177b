package scoring_test

import (
	"testing"

	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/scoring"
	"github.com/stretchr/testify/require"
)

func uniformSamples(n int, meeting, afterHours, pressure float64) []metric.MemberSample {
	samples := make([]metric.MemberSample, n)
	for i := range samples {
		samples[i] = metric.MemberSample{
			MeetingHours:     meeting,
			AfterHoursHours:  afterHours,
			ResponsePressure: pressure,
		}
	}
	return samples
}

func TestBalanceIndex_EvenDistribution(t *testing.T) {
	score := scoring.BalanceIndex(uniformSamples(5, 10, 2, 0.5), 3)
	require.True(t, score.HasData)
	require.InDelta(t, 100.0, score.Index, 1e-9)
	require.Equal(t, scoring.StateBalanced, score.State)
	require.InDelta(t, 0.0, score.AverageCV, 1e-9)
	require.Equal(t, 5, score.SampleSize)
}

func TestBalanceIndex_BelowMinimumSamples(t *testing.T) {
	score := scoring.BalanceIndex(uniformSamples(2, 10, 2, 0.5), 3)
	require.False(t, score.HasData)
	require.InDelta(t, 50.0, score.Index, 1e-9)
	require.Equal(t, scoring.StateUnknown, score.State)
	require.Equal(t, 2, score.SampleSize)
	require.Contains(t, score.Explanation, "need at least 3")
}

func TestBalanceIndex_NoSamples(t *testing.T) {
	score := scoring.BalanceIndex(nil, 3)
	require.False(t, score.HasData)
	require.Equal(t, scoring.StateUnknown, score.State)
}

func TestBalanceIndex_Skewed(t *testing.T) {
	// One member carries most of the load on every dimension.
	samples := []metric.MemberSample{
		{MeetingHours: 5, AfterHoursHours: 1, ResponsePressure: 0.2},
		{MeetingHours: 5, AfterHoursHours: 1, ResponsePressure: 0.2},
		{MeetingHours: 5, AfterHoursHours: 1, ResponsePressure: 0.2},
		{MeetingHours: 30, AfterHoursHours: 8, ResponsePressure: 1.5},
	}
	score := scoring.BalanceIndex(samples, 3)
	require.True(t, score.HasData)
	require.Equal(t, scoring.StateSkewed, score.State)
	require.GreaterOrEqual(t, score.AverageCV, 0.5)
	require.Less(t, score.Index, 50.0)
	require.Contains(t, score.Explanation, "most unevenly distributed")
}

func TestBalanceIndex_Moderate(t *testing.T) {
	samples := []metric.MemberSample{
		{MeetingHours: 8, AfterHoursHours: 1.5, ResponsePressure: 0.4},
		{MeetingHours: 10, AfterHoursHours: 2, ResponsePressure: 0.5},
		{MeetingHours: 12, AfterHoursHours: 2.5, ResponsePressure: 0.6},
		{MeetingHours: 20, AfterHoursHours: 4, ResponsePressure: 1.0},
	}
	score := scoring.BalanceIndex(samples, 3)
	require.True(t, score.HasData)
	require.Equal(t, scoring.StateModerate, score.State)
	require.GreaterOrEqual(t, score.AverageCV, 0.3)
	require.Less(t, score.AverageCV, 0.5)
}

func TestBalanceIndex_ZeroMeanDimension(t *testing.T) {
	// Nobody works after hours: a zero mean is perfectly balanced, not a
	// division error.
	score := scoring.BalanceIndex(uniformSamples(4, 10, 0, 0.5), 3)
	require.True(t, score.HasData)
	require.Equal(t, scoring.StateBalanced, score.State)
	require.InDelta(t, 100.0, score.DimensionScores["after_hours_hours"], 1e-9)
}

func TestBalanceIndex_DimensionScoresPresent(t *testing.T) {
	score := scoring.BalanceIndex(uniformSamples(4, 10, 2, 0.5), 3)
	require.Len(t, score.DimensionScores, 3)
	for dim, s := range score.DimensionScores {
		require.GreaterOrEqual(t, s, 0.0, "dimension %s", dim)
		require.LessOrEqual(t, s, 100.0, "dimension %s", dim)
	}
}
