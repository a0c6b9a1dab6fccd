package store

import (
	"slices"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/task"
)

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool `json:"deleted"`
	ID      int  `json:"id"`
}

// Delete removes the task with the given id and persists.
// Returns NOT_FOUND and leaves the collection untouched if no task matches.
// On a persist failure the task stays removed and PERSIST_FAILED is returned
// alongside the output.
func (s *Store) Delete(id int) (*DeleteOutput, error) {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
	if len(s.tasks) == before {
		return nil, errors.NewNotFound(id)
	}

	return &DeleteOutput{Deleted: true, ID: id}, s.persist()
}
