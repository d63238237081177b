package baseline

import "errors"

var (
	// ErrNoData indicates the calibration window held zero usable rows.
	// Callers must treat the team as uncalibrated, never as baseline-zero.
	ErrNoData = errors.New("no aggregates in calibration window")
	// ErrNotFound indicates no baseline snapshot exists for the team.
	ErrNotFound = errors.New("baseline not found")
	// ErrInvalidInput indicates invalid calibration input.
	ErrInvalidInput = errors.New("invalid calibration input")
)
