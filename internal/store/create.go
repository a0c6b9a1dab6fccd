package store

import (
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/task"
)

// Create appends a new pending task and persists the collection.
//
// An empty title is rejected with INVALID_REQUEST and nothing changes. Only exact
// emptiness is rejected; whitespace-only titles are accepted as given.
// If persisting fails the task is still created: it is returned together with a
// PERSIST_FAILED error.
func (s *Store) Create(title, category string) (task.Task, error) {
	if title == "" {
		return task.Task{}, errors.NewInvalidRequest("title cannot be empty")
	}

	t := task.Task{
		ID:        s.nextID,
		Title:     title,
		Category:  category,
		Done:      false,
		CreatedAt: task.Stamp(s.now()),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)

	return t, s.persist()
}
