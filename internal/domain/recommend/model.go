package recommend

import "time"

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank orders priorities for stable sorting; lower sorts first.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Recommendation is one ranked, explainable action for a team. Topics are
// deduplicated per team per run.
type Recommendation struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Topic     string    `json:"topic"`
	Action    string    `json:"action"`
	Rationale string    `json:"rationale"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}
