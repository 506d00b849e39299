// Package file persists the task list as a JSON snapshot on local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shadowbuddy/internal/model"
	"shadowbuddy/internal/tasklist/repository"
	pkgLog "shadowbuddy/pkg/log"
)

// Store is a flat-file TaskRepository. Writes go through a temp file and an
// atomic rename so a crash never leaves a half-written list.
type Store struct {
	l    pkgLog.Logger
	path string
}

var _ repository.TaskRepository = (*Store)(nil)

// New creates a Store persisting to the given path. Parent directories are
// created on first save.
func New(l pkgLog.Logger, path string) *Store {
	return &Store{l: l, path: path}
}

// Load reads the task snapshot. A missing file is an empty list, not an error.
func (s *Store) Load(ctx context.Context) ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.l.Infof(ctx, "task store: %s does not exist yet, starting empty", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("read task store %q: %w", s.path, err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode task store %q: %w", s.path, err)
	}
	return tasks, nil
}

// Save rewrites the full snapshot atomically.
func (s *Store) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create task store dir %q: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write task store %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace task store %q: %w", s.path, err)
	}
	return nil
}
