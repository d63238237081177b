package drift

import "errors"

var (
	// ErrUncalibrated indicates detection was requested before any baseline
	// exists. Detection fails fast; no default baseline is ever substituted.
	ErrUncalibrated = errors.New("team has no baseline")
	// ErrInvalidInput indicates invalid detection input.
	ErrInvalidInput = errors.New("invalid detection input")
)
