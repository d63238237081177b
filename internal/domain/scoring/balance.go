package scoring

import (
	"fmt"
	"math"

	"github.com/ganot/teampulse/internal/domain/metric"
)

// Load-balance dimension weights. They must sum to 1.0.
const (
	balanceWeightMeeting    = 0.40
	balanceWeightAfterHours = 0.35
	balanceWeightResponse   = 0.25
)

// State thresholds on the unweighted average CV. Classification deliberately
// ignores the dimension weights so the weighting scheme cannot shift the
// state boundaries.
const (
	cvBalancedBelow = 0.3
	cvModerateBelow = 0.5
)

// Load-balance dimension names.
const (
	dimMeetingHours     = "meeting_hours"
	dimAfterHoursHours  = "after_hours_hours"
	dimResponsePressure = "response_pressure"
)

// BalanceIndex measures how evenly workload is spread across team members
// from anonymized per-member samples. Below minSamples the result is the
// neutral unknown score, never a misleading number.
func BalanceIndex(samples []metric.MemberSample, minSamples int) BalanceScore {
	if len(samples) < minSamples {
		return BalanceScore{
			Index:       50,
			State:       StateUnknown,
			SampleSize:  len(samples),
			Explanation: fmt.Sprintf("need at least %d anonymized member samples, have %d", minSamples, len(samples)),
		}
	}

	cvs := map[string]float64{
		dimMeetingHours:     coefficientOfVariation(samples, func(m metric.MemberSample) float64 { return m.MeetingHours }),
		dimAfterHoursHours:  coefficientOfVariation(samples, func(m metric.MemberSample) float64 { return m.AfterHoursHours }),
		dimResponsePressure: coefficientOfVariation(samples, func(m metric.MemberSample) float64 { return m.ResponsePressure }),
	}

	scores := make(map[string]float64, len(cvs))
	for dim, cv := range cvs {
		scores[dim] = clamp100((1 - cv) * 100)
	}

	index := scores[dimMeetingHours]*balanceWeightMeeting +
		scores[dimAfterHoursHours]*balanceWeightAfterHours +
		scores[dimResponsePressure]*balanceWeightResponse

	avgCV := (cvs[dimMeetingHours] + cvs[dimAfterHoursHours] + cvs[dimResponsePressure]) / 3

	state := StateSkewed
	switch {
	case avgCV < cvBalancedBelow:
		state = StateBalanced
	case avgCV < cvModerateBelow:
		state = StateModerate
	}

	explanation := "workload is evenly distributed across the team"
	if state != StateBalanced {
		worst, worstCV := mostSkewedDimension(cvs)
		explanation = fmt.Sprintf("%s is the most unevenly distributed dimension (CV %.2f)", worst, worstCV)
	}

	return BalanceScore{
		HasData:         true,
		Index:           clamp100(index),
		State:           state,
		AverageCV:       avgCV,
		DimensionScores: scores,
		SampleSize:      len(samples),
		Explanation:     explanation,
	}
}

// coefficientOfVariation computes stddev/mean for one dimension across the
// samples. A zero mean yields zero rather than dividing by zero.
func coefficientOfVariation(samples []metric.MemberSample, value func(metric.MemberSample) float64) float64 {
	n := float64(len(samples))
	var sum float64
	for _, m := range samples {
		sum += value(m)
	}
	mean := sum / n
	if mean == 0 {
		return 0
	}

	var sq float64
	for _, m := range samples {
		d := value(m) - mean
		sq += d * d
	}
	return math.Sqrt(sq/n) / mean
}

func mostSkewedDimension(cvs map[string]float64) (string, float64) {
	// Fixed iteration order keeps the explanation deterministic on ties.
	dims := []string{dimMeetingHours, dimAfterHoursHours, dimResponsePressure}
	worst := dims[0]
	for _, dim := range dims[1:] {
		if cvs[dim] > cvs[worst] {
			worst = dim
		}
	}
	return worst, cvs[worst]
}
