package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/idilsaglam/taskpad/internal/model"
)

// JSON-backed storage. One file holds the whole list, human-readable,
// portable. Every Save is a full overwrite; there is exactly one writer,
// so no locking.

const dataFileName = "tasks.json"

type Store struct {
	path string
	log  *slog.Logger
}

// New binds a store to dir/tasks.json. A nil logger falls back to the
// default slog logger.
func New(dir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: filepath.Join(dir, dataFileName), log: log}
}

// Path returns the location of the storage entry.
func (s *Store) Path() string { return s.path }

// Load reads the storage entry. A missing file yields an empty list.
// A malformed entry is discarded with a warning and also yields an empty
// list; hydration never fails hard.
func (s *Store) Load() ([]model.Task, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		s.log.Warn("discarding malformed task data", "path", s.path, "err", err)
		return []model.Task{}, nil
	}
	return tasks, nil
}

// Save overwrites the storage entry with the full list.
func (s *Store) Save(tasks []model.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
