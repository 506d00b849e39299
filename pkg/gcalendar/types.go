package gcalendar

import "time"

// CreateEventRequest is the input for scheduling a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Singapore"
}

// Event is the subset of a Google Calendar event the service cares about.
type Event struct {
	ID       string
	Summary  string
	HTMLLink string
}
