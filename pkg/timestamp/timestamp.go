// Package timestamp parses and renders the strict task timestamp formats.
// Input timestamps are day/month/year with a 24-hour time ("16/9/2025 1800");
// rendered timestamps use a three-letter month ("Sep 16 2025 18:00").
package timestamp

import (
	"time"
)

const (
	// InputLayout is the strict format accepted from user input.
	InputLayout = "2/1/2006 1504"
	// RenderLayout is the human-readable format used in replies and task display.
	RenderLayout = "Jan 2 2006 15:04"
)

// ParseInput parses a raw timestamp string under the strict input format.
// Calendar validity is enforced (32/13/9999 fails).
func ParseInput(raw string) (time.Time, error) {
	return time.Parse(InputLayout, raw)
}

// Render formats a parsed timestamp under the human-readable output format.
func Render(t time.Time) string {
	return t.Format(RenderLayout)
}

// ParseRendered parses a previously rendered timestamp back into a time.Time.
// The interpreter never does this; the executor uses it when scheduling
// calendar events from a command's rendered dates.
func ParseRendered(rendered string) (time.Time, error) {
	return time.Parse(RenderLayout, rendered)
}
