// Package model defines the core data structures for todo.
package model

// Task represents a single to-do item.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NextID returns the id for a new task: one more than the highest id in
// tasks, or 1 if tasks is empty.
func NextID(tasks []Task) int {
	highest := 0
	for _, t := range tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest + 1
}

// FindTask returns a pointer into tasks for the task with the given id,
// or nil if there is none.
func FindTask(tasks []Task, id int) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// RemoveTask returns tasks without the task with the given id, preserving
// the order of the rest. The second result reports whether a task was removed.
func RemoveTask(tasks []Task, id int) ([]Task, bool) {
	for i := range tasks {
		if tasks[i].ID == id {
			out := make([]Task, 0, len(tasks)-1)
			out = append(out, tasks[:i]...)
			return append(out, tasks[i+1:]...), true
		}
	}
	return tasks, false
}
