package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shadowbuddy/internal/model"
	"shadowbuddy/internal/tasklist"
)

// Execute applies one parsed command to the task list. Mutating commands
// persist the new snapshot before returning; the reply always reflects the
// persisted state.
func (uc *implUseCase) Execute(ctx context.Context, sc model.Scope, cmd model.Command) (tasklist.ExecuteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.l.Infof(ctx, "tasklist: execute %s for user=%s", cmd.Type, sc.UserID)

	switch cmd.Type {
	case model.CommandList:
		return uc.list(), nil
	case model.CommandMark:
		return uc.setDone(ctx, cmd.Index, true)
	case model.CommandUnmark:
		return uc.setDone(ctx, cmd.Index, false)
	case model.CommandDelete:
		return uc.remove(ctx, cmd.Index)
	case model.CommandTodo, model.CommandDeadline, model.CommandEvent:
		return uc.add(ctx, cmd)
	default:
		return tasklist.ExecuteOutput{Reply: ReplyCommandsGuide}, nil
	}
}

// Tasks returns a snapshot of the list in display order.
func (uc *implUseCase) Tasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot := make([]model.Task, len(uc.tasks))
	copy(snapshot, uc.tasks)
	return snapshot, nil
}

func (uc *implUseCase) list() tasklist.ExecuteOutput {
	if len(uc.tasks) == 0 {
		return tasklist.ExecuteOutput{Reply: ReplyListEmpty, Tasks: []model.Task{}}
	}

	var b strings.Builder
	b.WriteString(ReplyListHeader)
	for i, t := range uc.tasks {
		b.WriteString(fmt.Sprintf("\n%d.%s", i+1, t.Render()))
	}

	snapshot := make([]model.Task, len(uc.tasks))
	copy(snapshot, uc.tasks)
	return tasklist.ExecuteOutput{Reply: b.String(), Tasks: snapshot}
}

func (uc *implUseCase) setDone(ctx context.Context, index int, done bool) (tasklist.ExecuteOutput, error) {
	if err := uc.checkIndex(index); err != nil {
		return tasklist.ExecuteOutput{}, err
	}

	prev := uc.tasks[index-1].Done
	uc.tasks[index-1].Done = done
	if err := uc.persist(ctx); err != nil {
		uc.tasks[index-1].Done = prev
		return tasklist.ExecuteOutput{}, err
	}

	task := uc.tasks[index-1]
	reply := ReplyTaskMarked
	if !done {
		reply = ReplyTaskUnmark
	}
	return tasklist.ExecuteOutput{Reply: fmt.Sprintf(reply, task.Render()), Task: &task}, nil
}

func (uc *implUseCase) remove(ctx context.Context, index int) (tasklist.ExecuteOutput, error) {
	if err := uc.checkIndex(index); err != nil {
		return tasklist.ExecuteOutput{}, err
	}

	removed := uc.tasks[index-1]
	remaining := make([]model.Task, 0, len(uc.tasks)-1)
	remaining = append(remaining, uc.tasks[:index-1]...)
	remaining = append(remaining, uc.tasks[index:]...)

	prev := uc.tasks
	uc.tasks = remaining
	if err := uc.persist(ctx); err != nil {
		uc.tasks = prev
		return tasklist.ExecuteOutput{}, err
	}

	return tasklist.ExecuteOutput{
		Reply: fmt.Sprintf(ReplyTaskRemoved, removed.Render(), len(uc.tasks)),
		Task:  &removed,
	}, nil
}

func (uc *implUseCase) add(ctx context.Context, cmd model.Command) (tasklist.ExecuteOutput, error) {
	task := model.Task{
		ID:          uuid.NewString(),
		Description: cmd.Description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	switch cmd.Type {
	case model.CommandDeadline:
		task.Type = model.TaskDeadline
		task.Due = cmd.Due
	case model.CommandEvent:
		task.Type = model.TaskEvent
		task.Start = cmd.Start
		task.End = cmd.End
	default:
		task.Type = model.TaskTodo
	}

	uc.tasks = append(uc.tasks, task)
	if err := uc.persist(ctx); err != nil {
		uc.tasks = uc.tasks[:len(uc.tasks)-1]
		return tasklist.ExecuteOutput{}, err
	}

	// Calendar sync is best-effort: a failure never rolls the task back.
	calendarLink := uc.tryScheduleCalendarEvent(ctx, task)

	return tasklist.ExecuteOutput{
		Reply:        fmt.Sprintf(ReplyTaskAdded, task.Render(), len(uc.tasks)),
		Task:         &task,
		CalendarLink: calendarLink,
	}, nil
}

func (uc *implUseCase) checkIndex(index int) error {
	if index < 1 || index > len(uc.tasks) {
		return fmt.Errorf("%w: %d (you have %d task(s))", tasklist.ErrIndexOutOfRange, index, len(uc.tasks))
	}
	return nil
}

func (uc *implUseCase) persist(ctx context.Context) error {
	if err := uc.repo.Save(ctx, uc.tasks); err != nil {
		uc.l.Errorf(ctx, "tasklist: persist failed: %v", err)
		return fmt.Errorf("%w: %v", tasklist.ErrStorage, err)
	}
	return nil
}
