package tasklist

import "shadowbuddy/internal/model"

// ExecuteOutput is the result of applying one command.
type ExecuteOutput struct {
	// Reply is the human-readable confirmation or help text.
	Reply string

	// Tasks is populated for List commands: the full list in display order.
	Tasks []model.Task

	// Task is the task created or modified by the command, when any.
	Task *model.Task

	// CalendarLink is a deep link to the scheduled calendar event, when
	// calendar sync is configured and succeeded.
	CalendarLink string
}
