package scoring

import "errors"

var (
	// ErrInsufficientGroupSize indicates the team is below the privacy floor.
	// Composite scores for such teams always report HasData=false.
	ErrInsufficientGroupSize = errors.New("team below minimum group size")
	// ErrTeamNotFound indicates the team doesn't exist.
	ErrTeamNotFound = errors.New("team not found")
)
