package http

import (
	"errors"
	"net/http"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/internal/tasklist"
)

// statusFor maps domain errors to HTTP status codes. Interpretation errors
// are the client's problem; storage failures are ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, interpreter.ErrEmptyInput),
		errors.Is(err, interpreter.ErrInvalidDeadlineDate),
		errors.Is(err, interpreter.ErrInvalidEventDate),
		errors.Is(err, interpreter.ErrInvalidDateRange),
		errors.Is(err, interpreter.ErrMissingIndex),
		errors.Is(err, interpreter.ErrInvalidIndex):
		return http.StatusBadRequest
	case errors.Is(err, tasklist.ErrIndexOutOfRange):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
