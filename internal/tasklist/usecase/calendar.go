package usecase

import (
	"context"
	"time"

	"shadowbuddy/internal/model"
	"shadowbuddy/pkg/gcalendar"
	"shadowbuddy/pkg/timestamp"
)

const defaultDeadlineBlockMinutes = 60

// tryScheduleCalendarEvent mirrors a dated task into the configured calendar.
// Returns the event link, or "" when sync is disabled, the task carries no
// date, or the calendar call fails (graceful degradation).
func (uc *implUseCase) tryScheduleCalendarEvent(ctx context.Context, task model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	var start, end time.Time
	switch task.Type {
	case model.TaskDeadline:
		due, err := timestamp.ParseRendered(task.Due)
		if err != nil {
			uc.l.Warnf(ctx, "tasklist: unparseable due date %q: %v", task.Due, err)
			return ""
		}
		start = due
		end = due.Add(defaultDeadlineBlockMinutes * time.Minute)
	case model.TaskEvent:
		var err error
		if start, err = timestamp.ParseRendered(task.Start); err != nil {
			uc.l.Warnf(ctx, "tasklist: unparseable start date %q: %v", task.Start, err)
			return ""
		}
		if end, err = timestamp.ParseRendered(task.End); err != nil {
			uc.l.Warnf(ctx, "tasklist: unparseable end date %q: %v", task.End, err)
			return ""
		}
	default:
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     task.Description,
		Description: task.Render(),
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "tasklist: calendar sync failed for %q (non-fatal): %v", task.Description, err)
		return ""
	}
	return event.HTMLLink
}
