package scoring

import (
	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
)

// Capacity index weights. They must sum to 1.0.
const (
	capacityWeightMeeting    = 0.30
	capacityWeightAfterHours = 0.25
	capacityWeightFocus      = 0.25
	capacityWeightResponse   = 0.20
)

// capacitySaturation is the adverse drift fraction at which a signal's
// contribution maxes out. A 50% deviation from baseline counts as full load
// on that dimension.
const capacitySaturation = 0.5

// CapacityIndex computes the capacity/burn-down index from recent aggregates
// and the team baseline. 0 means fully healthy, 100 means every contributing
// signal has drifted adversely to saturation. Worsening any single signal
// while holding the others fixed never decreases the index.
//
//	index = 100 * ( meetingFactor    * 0.30 +
//	                afterHoursFactor * 0.25 +
//	                focusFactor      * 0.25 +
//	                responseFactor   * 0.20 )
//
// where each factor is clamp01(adverseChange / 0.5). Increases are adverse
// for meeting load, after-hours and response time; decreases are adverse for
// focus time.
func CapacityIndex(recent []metric.Aggregate, base *baseline.Baseline) CapacityScore {
	if base == nil {
		return CapacityScore{Message: "team is uncalibrated; capacity index unavailable"}
	}
	if len(recent) == 0 {
		return CapacityScore{Message: "no recent aggregates; capacity index unavailable"}
	}

	factors := map[metric.Signal]float64{
		metric.SignalMeetingLoad:    adverseFactor(recent, base, metric.SignalMeetingLoad, false),
		metric.SignalAfterHours:     adverseFactor(recent, base, metric.SignalAfterHours, false),
		metric.SignalFocusTime:      adverseFactor(recent, base, metric.SignalFocusTime, true),
		metric.SignalResponseMedian: adverseFactor(recent, base, metric.SignalResponseMedian, false),
	}

	drivers := map[metric.Signal]float64{
		metric.SignalMeetingLoad:    factors[metric.SignalMeetingLoad] * capacityWeightMeeting,
		metric.SignalAfterHours:     factors[metric.SignalAfterHours] * capacityWeightAfterHours,
		metric.SignalFocusTime:      factors[metric.SignalFocusTime] * capacityWeightFocus,
		metric.SignalResponseMedian: factors[metric.SignalResponseMedian] * capacityWeightResponse,
	}

	var index float64
	for _, contribution := range drivers {
		index += contribution * 100
	}

	return CapacityScore{
		HasData: true,
		Index:   clamp100(index),
		Drivers: drivers,
	}
}

// adverseFactor converts a signal's recent-vs-baseline change into a 0-1
// load factor. Signals absent from either side, or with a zero baseline,
// contribute a neutral zero rather than dividing by zero.
func adverseFactor(recent []metric.Aggregate, base *baseline.Baseline, s metric.Signal, decreaseIsAdverse bool) float64 {
	baseValue, ok := base.Value(s)
	if !ok || baseValue == 0 {
		return 0
	}
	recentMean, ok := metric.Mean(recent, s)
	if !ok {
		return 0
	}

	change := (recentMean - baseValue) / baseValue
	if decreaseIsAdverse {
		change = -change
	}
	return clamp01(max0(change) / capacitySaturation)
}
