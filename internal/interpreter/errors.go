package interpreter

import "errors"

// Per-utterance parsing errors. All are user-facing and none are retried:
// parsing is deterministic given the same model state, so retrying the same
// input cannot succeed.
var (
	ErrEmptyInput          = errors.New("input is empty")
	ErrInvalidDeadlineDate = errors.New("deadline needs a due date in d/m/yyyy hhmm format")
	ErrInvalidEventDate    = errors.New("event needs a start and an end date in d/m/yyyy hhmm format")
	ErrInvalidDateRange    = errors.New("event end date is before its start date")
	ErrMissingIndex        = errors.New("no task number found in input")
	ErrInvalidIndex        = errors.New("task number is not a valid integer")
)
