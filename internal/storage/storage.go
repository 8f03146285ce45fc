// Package storage reads and writes the JSON task file.
package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/jacksmith/todo/internal/model"
)

// DefaultFile is the task file used when no other location is configured.
const DefaultFile = "todos.json"

// Storage provides access to a single task file. Every Load reads the whole
// file and every Save rewrites it.
type Storage struct {
	path   string
	logger *log.Logger
}

// Option configures a Storage.
type Option func(*Storage)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(l *log.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open returns a Storage backed by the file at path.
// An empty path means DefaultFile. The file need not exist.
func Open(path string, opts ...Option) *Storage {
	if path == "" {
		path = DefaultFile
	}
	s := &Storage{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location of the task file.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the full task list. A missing file is an empty list.
func (s *Storage) Load() ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("task file not found, starting empty", "path", s.path)
			return []model.Task{}, nil
		}
		return nil, &model.ReadError{Path: s.path, Err: err}
	}

	tasks, err := model.DecodeTasks(data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save replaces the task file with tasks.
// Data is written to a temp file in the same directory and renamed into place.
func (s *Storage) Save(tasks []model.Task) error {
	data, err := model.EncodeTasks(tasks)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return &model.WriteError{Path: s.path, Err: err}
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
