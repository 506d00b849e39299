// Package tasklist is the command executor: it applies parsed commands to the
// ordered task list and produces the replies and display strings shown to the
// user.
package tasklist

import (
	"context"

	"shadowbuddy/internal/model"
)

// UseCase is the business-logic interface for the task list domain.
type UseCase interface {
	// Execute applies one parsed command to the task list and returns the
	// user-facing result.
	Execute(ctx context.Context, sc model.Scope, cmd model.Command) (ExecuteOutput, error)

	// Tasks returns a snapshot of the current task list in display order.
	Tasks(ctx context.Context, sc model.Scope) ([]model.Task, error)
}
