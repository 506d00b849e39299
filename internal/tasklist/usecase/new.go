package usecase

import (
	"context"
	"sync"

	"shadowbuddy/internal/model"
	"shadowbuddy/internal/tasklist"
	"shadowbuddy/internal/tasklist/repository"
	"shadowbuddy/pkg/gcalendar"
	pkgLog "shadowbuddy/pkg/log"
)

// CalendarClient schedules calendar events for dated tasks. Satisfied by
// *gcalendar.Client; nil disables calendar sync.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	calendar CalendarClient
	timezone string

	mu    sync.Mutex
	tasks []model.Task
}

var _ tasklist.UseCase = (*implUseCase)(nil)

// New creates the task list UseCase, loading the persisted snapshot once.
func New(ctx context.Context, l pkgLog.Logger, repo repository.TaskRepository, calendar CalendarClient, timezone string) (*implUseCase, error) {
	tasks, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "tasklist: loaded %d task(s)", len(tasks))

	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		timezone: timezone,
		tasks:    tasks,
	}, nil
}
