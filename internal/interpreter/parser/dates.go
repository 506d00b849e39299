package parser

import (
	"fmt"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/pkg/timestamp"
)

// ExtractDates scans every adjacent token pair for a parseable timestamp.
// Timestamps occupy exactly two consecutive tokens ("16/9/2025" "1800").
// The scan is deliberately non-exclusive: it does not skip ahead past a
// match, so overlapping windows are tested independently and all successful
// parses are returned in left-to-right order. Parse failures are skipped
// silently.
func ExtractDates(tokens []string) []string {
	var dates []string
	for i := 0; i+1 < len(tokens); i++ {
		pair := tokens[i] + " " + tokens[i+1]
		if _, err := timestamp.ParseInput(pair); err == nil {
			dates = append(dates, pair)
		}
	}
	return dates
}

// ValidateAndFormatDateRange parses one or two raw timestamps and renders
// them in the human-readable output format. With two timestamps it enforces
// chronology: an end strictly before its start fails with ErrInvalidDateRange.
// Any other argument count is a programming-contract violation, not a
// user-facing condition.
func ValidateAndFormatDateRange(timestamps ...string) ([]string, error) {
	switch len(timestamps) {
	case 1:
		due, err := timestamp.ParseInput(timestamps[0])
		if err != nil {
			return nil, err
		}
		return []string{timestamp.Render(due)}, nil

	case 2:
		start, err := timestamp.ParseInput(timestamps[0])
		if err != nil {
			return nil, err
		}
		end, err := timestamp.ParseInput(timestamps[1])
		if err != nil {
			return nil, err
		}
		if end.Before(start) {
			return nil, interpreter.ErrInvalidDateRange
		}
		return []string{timestamp.Render(start), timestamp.Render(end)}, nil

	default:
		return nil, fmt.Errorf("validateAndFormatDateRange: expected 1 or 2 timestamps, got %d", len(timestamps))
	}
}
