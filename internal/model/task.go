package model

import "fmt"

// TaskType is the single-letter task category shown in the display string.
type TaskType string

const (
	TaskTodo     TaskType = "T"
	TaskDeadline TaskType = "D"
	TaskEvent    TaskType = "E"
)

// Task is one entry of the ordered task list. List position (1-based) is the
// user-facing handle; ID exists for external links such as calendar events.
type Task struct {
	ID          string   `json:"id"`
	Type        TaskType `json:"type"`
	Description string   `json:"description"`
	Done        bool     `json:"done"`

	// Rendered timestamps, present per type: Due for deadlines,
	// Start/End for events.
	Due   string `json:"due,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
}

// Render produces the display string consumed by every shell:
//
//	[T][ ] read book
//	[D][X] return book (by: Sep 16 2025 18:00)
//	[E][ ] project meeting (from: Aug 17 2025 16:00 to: Aug 17 2025 19:00)
func (t Task) Render() string {
	status := " "
	if t.Done {
		status = "X"
	}

	switch t.Type {
	case TaskDeadline:
		return fmt.Sprintf("[%s][%s] %s (by: %s)", t.Type, status, t.Description, t.Due)
	case TaskEvent:
		return fmt.Sprintf("[%s][%s] %s (from: %s to: %s)", t.Type, status, t.Description, t.Start, t.End)
	default:
		return fmt.Sprintf("[%s][%s] %s", t.Type, status, t.Description)
	}
}
