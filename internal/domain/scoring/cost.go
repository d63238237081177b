package scoring

import (
	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
)

// Cost component names used in the breakdown.
const (
	costMeetingOverhead = "meeting_overhead"
	costExecutionDelay  = "execution_delay"
	costRework          = "rework"
)

// Weekly-cost interpretation tiers, in ascending midpoint order.
var costTiers = []struct {
	below          float64
	interpretation string
}{
	{500, "drift cost is minimal; current behavior is close to the team's norm"},
	{2000, "drift is producing a noticeable weekly cost; worth watching"},
	{5000, "drift is producing a significant weekly cost; intervention is likely worthwhile"},
	{0, "drift cost is critical; behavioral changes are materially impacting delivery"},
}

// CostParams are the org-level conversion factors for the cost estimator.
type CostParams struct {
	// AvgHourlyCost is the blended currency cost per person-hour.
	AvgHourlyCost float64
	// WorkweekHours converts ratio signals into weekly hours.
	WorkweekHours float64
	// ReworkFactor scales excess after-hours activity into rework hours.
	ReworkFactor float64
}

// CostOfDrift converts behavioral drift into a directional weekly currency
// range. Each component is clamped at zero: drift above baseline is cost,
// drift below baseline is not negative cost. The estimate is always a range,
// never a single figure.
//
// Components, each scaled by team size:
//   - meeting overhead: excess weekly meeting hours per member
//   - execution delay: focus-time erosion × workweek hours, plus one hour
//     per ten minutes of response-time slowdown
//   - rework: excess after-hours rate × workweek hours × rework factor
func CostOfDrift(recent []metric.Aggregate, base *baseline.Baseline, teamSize int, params CostParams) CostEstimate {
	if base == nil {
		return CostEstimate{Message: "team is uncalibrated; drift cost cannot be estimated"}
	}
	if len(recent) == 0 {
		return CostEstimate{Message: "no recent aggregates; drift cost cannot be estimated"}
	}

	size := float64(teamSize)

	meetingHours := max0(excess(recent, base, metric.SignalMeetingLoad)) * size

	focusErosion := max0(-excess(recent, base, metric.SignalFocusTime))
	responseSlowdownMins := max0(excess(recent, base, metric.SignalResponseMedian))
	delayHours := (focusErosion*params.WorkweekHours + responseSlowdownMins/10) * size

	reworkHours := max0(excess(recent, base, metric.SignalAfterHours)) * params.WorkweekHours * params.ReworkFactor * size

	totalHours := meetingHours + delayHours + reworkHours
	weekly := RangeAround(totalHours * params.AvgHourlyCost)

	return CostEstimate{
		HasData:        true,
		Weekly:         weekly,
		FourWeek:       RangeAround(weekly.Midpoint * 4),
		TotalHoursLost: totalHours,
		Breakdown:      breakdown(meetingHours, delayHours, reworkHours, totalHours),
		Interpretation: interpretCost(weekly.Midpoint),
	}
}

// excess returns recentMean - baselineValue for a signal, or 0 when either
// side is missing.
func excess(recent []metric.Aggregate, base *baseline.Baseline, s metric.Signal) float64 {
	baseValue, ok := base.Value(s)
	if !ok {
		return 0
	}
	recentMean, ok := metric.Mean(recent, s)
	if !ok {
		return 0
	}
	return recentMean - baseValue
}

func breakdown(meeting, delay, rework, total float64) map[string]float64 {
	if total == 0 {
		return map[string]float64{
			costMeetingOverhead: 0,
			costExecutionDelay:  0,
			costRework:          0,
		}
	}
	return map[string]float64{
		costMeetingOverhead: meeting / total * 100,
		costExecutionDelay:  delay / total * 100,
		costRework:          rework / total * 100,
	}
}

func interpretCost(weeklyMidpoint float64) string {
	for _, tier := range costTiers[:len(costTiers)-1] {
		if weeklyMidpoint < tier.below {
			return tier.interpretation
		}
	}
	return costTiers[len(costTiers)-1].interpretation
}
