package store

import (
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/task"
)

// Toggle flips the done flag of the task with the given id and persists.
// Returns NOT_FOUND without side effects if no task has that id. A persist
// failure returns the updated task together with PERSIST_FAILED.
func (s *Store) Toggle(id int) (task.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, errors.NewNotFound(id)
	}

	s.tasks[i].Done = !s.tasks[i].Done
	return s.tasks[i], s.persist()
}
