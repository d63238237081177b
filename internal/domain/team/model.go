package team

import "time"

// Team represents a group of organization members. All engine outputs are
// team-level; the privacy floor in MeetsGroupFloor keeps small groups from
// ever receiving scores that could expose individuals.
type Team struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	MemberCount int       `json:"member_count"`
	ManagerID   *string   `json:"manager_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MeetsGroupFloor reports whether the team is large enough to score.
func (t Team) MeetsGroupFloor(minGroupSize int) bool {
	return t.MemberCount >= minGroupSize
}
