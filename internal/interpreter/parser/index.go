package parser

import (
	"fmt"
	"strconv"
	"strings"

	"shadowbuddy/internal/interpreter"
)

// ExtractIndex recovers the first contiguous digit run of the utterance as a
// 1-based task index. Non-digits before the first digit are skipped, so the
// number may appear anywhere in the sentence; the first non-digit after the
// run ends the scan. Fails with ErrMissingIndex when no digit run exists and
// ErrInvalidIndex when the run overflows or is not a positive integer.
func ExtractIndex(utterance string) (int, error) {
	var digits strings.Builder
	for _, r := range utterance {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}

	if digits.Len() == 0 {
		return 0, interpreter.ErrMissingIndex
	}

	index, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", interpreter.ErrInvalidIndex, digits.String())
	}
	if index < 1 {
		return 0, fmt.Errorf("%w: %d is not a positive task number", interpreter.ErrInvalidIndex, index)
	}
	return index, nil
}
