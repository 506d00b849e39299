package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/internal/interpreter/intent"
	"shadowbuddy/internal/model"
)

// Parse runs the one-pass state machine: empty-input check → intent
// detection → per-intent build → done. No cycles, no retries; every call
// returns exactly one command or exactly one typed error.
func (p *Parser) Parse(ctx context.Context, utterance string) (model.Command, error) {
	if utterance == "" {
		return model.Command{}, interpreter.ErrEmptyInput
	}

	if p.cache != nil {
		if cmd, ok := p.cache.Get(utterance); ok {
			return cmd, nil
		}
	}

	label := p.intents.Classify(utterance)
	p.l.Debugf(ctx, "parser: classified %q as %s", utterance, label)

	var (
		cmd model.Command
		err error
	)
	switch label {
	case intent.LabelList:
		cmd = model.NewListCommand()
	case intent.LabelMark:
		cmd, err = p.buildIndexCommand(model.CommandMark, utterance)
	case intent.LabelUnmark:
		cmd, err = p.buildIndexCommand(model.CommandUnmark, utterance)
	case intent.LabelDelete:
		cmd, err = p.buildIndexCommand(model.CommandDelete, utterance)
	case intent.LabelTodo:
		cmd = model.NewTodoCommand(p.descriptions.Extract(utterance))
	case intent.LabelDeadline:
		cmd, err = p.buildDeadline(utterance)
	case intent.LabelEvent:
		cmd, err = p.buildEvent(utterance)
	default:
		// Any label the parser does not recognize, "unknown" included, is a
		// valid terminal result rather than an error.
		cmd = model.NewUnknownCommand()
	}
	if err != nil {
		return model.Command{}, err
	}

	if p.cache != nil {
		p.cache.Add(utterance, cmd)
	}
	return cmd, nil
}

func (p *Parser) buildIndexCommand(t model.CommandType, utterance string) (model.Command, error) {
	index, err := ExtractIndex(utterance)
	if err != nil {
		return model.Command{}, err
	}
	return model.NewIndexCommand(t, index), nil
}

func (p *Parser) buildDeadline(utterance string) (model.Command, error) {
	dates := ExtractDates(strings.Fields(utterance))
	if len(dates) == 0 {
		return model.Command{}, interpreter.ErrInvalidDeadlineDate
	}

	// Only the first match is used; later matches stay in the utterance and
	// are filtered by the token model. Inherited behaviour, kept on purpose.
	due := dates[0]
	formatted, err := ValidateAndFormatDateRange(due)
	if err != nil {
		return model.Command{}, fmt.Errorf("%w: %v", interpreter.ErrInvalidDeadlineDate, err)
	}

	cleaned := strings.TrimSpace(strings.Replace(utterance, due, "", 1))
	return model.NewDeadlineCommand(p.descriptions.Extract(cleaned), formatted[0]), nil
}

func (p *Parser) buildEvent(utterance string) (model.Command, error) {
	dates := ExtractDates(strings.Fields(utterance))
	if len(dates) != 2 {
		return model.Command{}, interpreter.ErrInvalidEventDate
	}

	formatted, err := ValidateAndFormatDateRange(dates[0], dates[1])
	if err != nil {
		if errors.Is(err, interpreter.ErrInvalidDateRange) {
			return model.Command{}, err
		}
		return model.Command{}, fmt.Errorf("%w: %v", interpreter.ErrInvalidEventDate, err)
	}

	// Each matched date substring is removed once before description
	// extraction so timestamps do not pollute the description.
	cleaned := utterance
	for _, date := range dates {
		cleaned = strings.Replace(cleaned, date, "", 1)
	}
	cleaned = strings.TrimSpace(cleaned)

	return model.NewEventCommand(p.descriptions.Extract(cleaned), formatted[0], formatted[1]), nil
}
