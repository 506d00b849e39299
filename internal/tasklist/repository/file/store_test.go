package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"shadowbuddy/internal/model"
	"shadowbuddy/internal/tasklist/repository/file"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File Is Empty List", func(t *testing.T) {
		s := file.New(&mockLogger{}, filepath.Join(t.TempDir(), "tasks.json"))
		tasks, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected empty list, got %v", tasks)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "tasks.json")
		s := file.New(&mockLogger{}, path)

		want := []model.Task{
			{ID: "a", Type: model.TaskTodo, Description: "read book"},
			{ID: "b", Type: model.TaskDeadline, Description: "return book", Due: "Sep 16 2025 18:00", Done: true},
		}
		if err := s.Save(ctx, want); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].Due != "Sep 16 2025 18:00" || !got[1].Done {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})

	t.Run("Save Empty List", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		s := file.New(&mockLogger{}, path)
		if err := s.Save(ctx, nil); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty list, got %v", got)
		}
	})
}
