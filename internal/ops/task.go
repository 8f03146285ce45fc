// Package ops implements the task commands as load-modify-save cycles
// over a Store.
package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
)

// ValidateDescription checks that a task description is not empty or
// whitespace-only.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return &cli.ValidationError{Message: "task description must not be empty"}
	}
	return nil
}

// ParseTaskID parses a task ID given on the command line.
// IDs are decimal integers from 0 to model.MaxID.
func ParseTaskID(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > model.MaxID {
		return 0, &cli.ValidationError{Field: "task ID", Message: "must be a number"}
	}
	return int(n), nil
}

// AlreadyCompleteError indicates that a task was already marked complete.
// Completing it again changes nothing.
type AlreadyCompleteError struct {
	ID int
}

func (e *AlreadyCompleteError) Error() string {
	return fmt.Sprintf("task %d is already complete", e.ID)
}

// AddTask appends a new open task and returns it.
// The new ID is one past the highest existing ID.
func AddTask(s Store, description string) (*model.Task, error) {
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}

	tasks, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	task := model.Task{
		ID:          model.NextID(tasks),
		Description: description,
		Completed:   false,
	}
	tasks = append(tasks, task)

	if err := s.Save(tasks); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}
	return &task, nil
}

// ListTasks returns all tasks in stored order.
func ListTasks(s Store) ([]model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return tasks, nil
}

// CompleteTask marks a task as complete.
// Returns *cli.NotFoundError if there is no such task and
// *AlreadyCompleteError, without saving, if it is already complete.
func CompleteTask(s Store, id int) (*model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	task := model.FindTask(tasks, id)
	if task == nil {
		return nil, &cli.NotFoundError{Type: "task", ID: id}
	}
	if task.Completed {
		return nil, &AlreadyCompleteError{ID: id}
	}

	task.Completed = true
	done := *task

	if err := s.Save(tasks); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}
	return &done, nil
}

// RemoveTask deletes a task and returns it.
// IDs of the remaining tasks are unchanged.
func RemoveTask(s Store, id int) (*model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	found := model.FindTask(tasks, id)
	if found == nil {
		return nil, &cli.NotFoundError{Type: "task", ID: id}
	}
	removed := *found

	tasks, _ = model.RemoveTask(tasks, id)
	if err := s.Save(tasks); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}
	return &removed, nil
}

// ClearTasks replaces the stored list with an empty one.
// The existing file is not read.
func ClearTasks(s Store) error {
	if err := s.Save([]model.Task{}); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	return nil
}
