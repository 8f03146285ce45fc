package ops

import "github.com/jacksmith/todo/internal/model"

// Store defines the persistence interface required by business logic operations.
// The concrete implementation is storage.Storage; tests use an in-memory store.
type Store interface {
	Load() ([]model.Task, error)
	Save(tasks []model.Task) error
	Path() string
}
