package recommend

import (
	"github.com/ganot/teampulse/internal/domain/drift"
	"github.com/ganot/teampulse/internal/domain/metric"
)

// template is a canned action for a known (signal, direction) pattern.
type template struct {
	topic  string
	action string
}

// patternKey identifies a drift pattern.
type patternKey struct {
	signal    metric.Signal
	direction drift.Direction
}

// Only adverse patterns map to actions; favorable drift (fewer meetings,
// faster responses) produces no recommendation.
var patternTemplates = map[patternKey]template{
	{metric.SignalMeetingLoad, drift.DirectionIncrease}: {
		topic:  "meeting-load",
		action: "Audit recurring meetings for this team; cancel or shorten the ones without a clear owner and agenda.",
	},
	{metric.SignalAfterHours, drift.DirectionIncrease}: {
		topic:  "after-hours",
		action: "After-hours activity is climbing; review deadlines and on-call load, and reinforce boundaries around working hours.",
	},
	{metric.SignalFocusTime, drift.DirectionDecrease}: {
		topic:  "focus-time",
		action: "Protect contiguous focus blocks; establish no-meeting windows and batch interruptions.",
	},
	{metric.SignalResponseMedian, drift.DirectionIncrease}: {
		topic:  "responsiveness",
		action: "Response times are slowing; check for overload or unclear ownership on incoming requests.",
	},
	{metric.SignalBDI, drift.DirectionIncrease}: {
		topic:  "overall-drift",
		action: "The team's overall behavioral index is drifting; schedule a working-norms retrospective.",
	},
}

// Composite-score templates.
var (
	balanceTemplate = template{
		topic:  "workload-balance",
		action: "Workload is unevenly distributed; rebalance meeting and support duties across the team.",
	}
	capacityTemplate = template{
		topic:  "capacity",
		action: "The capacity index signals sustained overload; reduce committed scope for the next cycle.",
	}
	recognitionTemplate = template{
		topic:  "recognition",
		action: "Signals look stable; use the next 1:1s for recognition and a lightweight check-in.",
	}
)

// capacityActionFloor is the capacity index at or above which the capacity
// template fires.
const capacityActionFloor = 70.0
