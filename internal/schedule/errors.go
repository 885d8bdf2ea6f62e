package schedule

import "errors"

var (
	// ErrInvalidWeekday indicates a weekday integer outside 1..7.
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTime indicates a malformed HH:MM:SS start time.
	ErrInvalidTime = errors.New("invalid time of day")

	// ErrUnknownPolicy indicates an unrecognised match policy name.
	ErrUnknownPolicy = errors.New("unknown match policy")
)
