package scoring

import "github.com/ganot/teampulse/internal/domain/metric"

// Balance states returned by the load-balance index.
const (
	StateBalanced = "balanced"
	StateModerate = "moderate"
	StateSkewed   = "skewed"
	StateUnknown  = "unknown"
)

// CapacityScore is the capacity/burn-down index: 0-100, lower is healthier.
type CapacityScore struct {
	// HasData is false when the score could not be computed; numeric fields
	// carry no meaning in that case.
	HasData bool    `json:"has_data"`
	Index   float64 `json:"index"`
	// Drivers holds each signal's weighted contribution to the index, for
	// per-dimension breakdowns in reporting.
	Drivers map[metric.Signal]float64 `json:"drivers,omitempty"`
	Message string                    `json:"message,omitempty"`
}

// BalanceScore is the load-balance index: 0-100, higher is more evenly
// distributed.
type BalanceScore struct {
	HasData bool    `json:"has_data"`
	Index   float64 `json:"index"`
	State   string  `json:"state"`
	// AverageCV is the unweighted mean coefficient of variation across the
	// three dimensions; it drives the state classification.
	AverageCV       float64            `json:"average_cv"`
	DimensionScores map[string]float64 `json:"dimension_scores,omitempty"`
	SampleSize      int                `json:"sample_size"`
	Explanation     string             `json:"explanation,omitempty"`
}

// CostRange is a directional currency estimate. Low and High sit at ±20%
// around Midpoint; a single exact figure is never presented.
type CostRange struct {
	Low      float64 `json:"low"`
	Midpoint float64 `json:"midpoint"`
	High     float64 `json:"high"`
}

// RangeAround builds a CostRange at ±20% of midpoint, floored at zero.
func RangeAround(midpoint float64) CostRange {
	if midpoint < 0 {
		midpoint = 0
	}
	return CostRange{
		Low:      midpoint * 0.8,
		Midpoint: midpoint,
		High:     midpoint * 1.2,
	}
}

// CostEstimate converts behavioral drift into a weekly currency range plus a
// four-week projection and a per-component driver breakdown.
type CostEstimate struct {
	HasData        bool      `json:"has_data"`
	Weekly         CostRange `json:"weekly"`
	FourWeek       CostRange `json:"four_week"`
	TotalHoursLost float64   `json:"total_hours_lost"`
	// Breakdown maps component name to its percentage share of lost hours.
	Breakdown      map[string]float64 `json:"breakdown,omitempty"`
	Interpretation string             `json:"interpretation,omitempty"`
	Message        string             `json:"message,omitempty"`
}

// Set bundles the three composite scores for one team.
type Set struct {
	TeamID   string        `json:"team_id"`
	Capacity CapacityScore `json:"capacity"`
	Balance  BalanceScore  `json:"balance"`
	Cost     CostEstimate  `json:"cost"`
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
