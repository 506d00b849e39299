package repository

import (
	"context"

	"shadowbuddy/internal/model"
)

// TaskRepository persists the ordered task list as a whole. The list is
// small and position-keyed, so mutations rewrite the full snapshot.
type TaskRepository interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}
