package model

// CommandType tags the variant of a parsed Command.
type CommandType string

const (
	CommandList     CommandType = "LIST"
	CommandMark     CommandType = "MARK"
	CommandUnmark   CommandType = "UNMARK"
	CommandDelete   CommandType = "DELETE"
	CommandTodo     CommandType = "TODO"
	CommandDeadline CommandType = "DEADLINE"
	CommandEvent    CommandType = "EVENT"
	CommandUnknown  CommandType = "UNKNOWN"
)

// Command is the terminal artifact of the interpretation pipeline: one
// structured task-management command per utterance, consumed immediately by
// the executor. Index is 1-based and positive when present. Due/Start/End are
// rendered timestamp strings ("Sep 16 2025 18:00"), not raw time values; the
// pipeline renders one-way and never re-parses its own output.
type Command struct {
	Type        CommandType `json:"type"`
	Index       int         `json:"index,omitempty"`
	Description string      `json:"description,omitempty"`
	Due         string      `json:"due,omitempty"`
	Start       string      `json:"start,omitempty"`
	End         string      `json:"end,omitempty"`
}

// NewListCommand returns a List command.
func NewListCommand() Command { return Command{Type: CommandList} }

// NewIndexCommand returns a Mark, Unmark, or Delete command for the given
// 1-based task index.
func NewIndexCommand(t CommandType, index int) Command {
	return Command{Type: t, Index: index}
}

// NewTodoCommand returns a Todo command. An empty description is structurally
// permitted; rejecting it is a caller/UI decision.
func NewTodoCommand(description string) Command {
	return Command{Type: CommandTodo, Description: description}
}

// NewDeadlineCommand returns a Deadline command with a rendered due date.
func NewDeadlineCommand(description, due string) Command {
	return Command{Type: CommandDeadline, Description: description, Due: due}
}

// NewEventCommand returns an Event command with rendered start and end dates.
func NewEventCommand(description, start, end string) Command {
	return Command{Type: CommandEvent, Description: description, Start: start, End: end}
}

// NewUnknownCommand returns the Unknown command: a valid terminal result
// meaning "could not interpret", never an error.
func NewUnknownCommand() Command { return Command{Type: CommandUnknown} }
