package intent

import "shadowbuddy/pkg/textmodel"

// Label is the coarse category of a user utterance.
type Label string

const (
	LabelList     Label = "list"
	LabelMark     Label = "mark"
	LabelUnmark   Label = "unmark"
	LabelDelete   Label = "delete"
	LabelTodo     Label = "todo"
	LabelDeadline Label = "deadline"
	LabelEvent    Label = "event"
	LabelUnknown  Label = "unknown"
)

// Labels is the frozen intent label set, in training-dataset order.
func Labels() []textmodel.Label {
	return []textmodel.Label{
		textmodel.Label(LabelList),
		textmodel.Label(LabelMark),
		textmodel.Label(LabelUnmark),
		textmodel.Label(LabelDelete),
		textmodel.Label(LabelTodo),
		textmodel.Label(LabelDeadline),
		textmodel.Label(LabelEvent),
		textmodel.Label(LabelUnknown),
	}
}
