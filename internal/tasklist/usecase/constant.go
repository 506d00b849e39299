package usecase

// Reply templates
const (
	ReplyTaskAdded   = "Got it. I've added this task:\n  %s\nNow you have %d task(s) in the list."
	ReplyTaskMarked  = "Nice! I've marked this task as done:\n  %s"
	ReplyTaskUnmark  = "OK, I've marked this task as not done yet:\n  %s"
	ReplyTaskRemoved = "Noted. I've removed this task:\n  %s\nNow you have %d task(s) in the list."
	ReplyListHeader  = "Here are the tasks in your list:"
	ReplyListEmpty   = "Your list is empty. Add something with a todo, deadline, or event."
)

// ReplyCommandsGuide answers Unknown commands and /help requests.
const ReplyCommandsGuide = `I couldn't work out what you meant. I understand things like:
- list my tasks
- todo buy milk
- deadline return book 16/9/2025 1800
- event project meeting 17/8/2025 1600 17/8/2025 1900
- mark 2 / unmark 2 / delete 2
Dates use d/m/yyyy hhmm, for example 16/9/2025 1800.`
