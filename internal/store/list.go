package store

import (
	"cmp"
	"slices"

	"github.com/hpungsan/todo/internal/task"
)

// List returns copies of the tasks selected by f. It never persists.
//
// Pending, completed and category listings keep collection order. The all
// listing is sorted pending-first, then by id; the stored order is not touched.
func (s *Store) List(f task.Filter) []task.Task {
	items := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			items = append(items, t)
		}
	}

	if f.Mode == task.FilterAll {
		slices.SortStableFunc(items, func(a, b task.Task) int {
			if a.Done != b.Done {
				if !a.Done {
					return -1
				}
				return 1
			}
			return cmp.Compare(a.ID, b.ID)
		})
	}

	return items
}

// ListOutput contains the result of a listing, shaped for JSON callers.
type ListOutput struct {
	Items    []task.Task     `json:"items"`
	Filter   task.FilterMode `json:"filter"`
	Category string          `json:"category,omitempty"`
	Count    int             `json:"count"`
}

// ListWithSummary runs List and wraps the result with the filter applied.
func (s *Store) ListWithSummary(f task.Filter) *ListOutput {
	items := s.List(f)
	out := &ListOutput{
		Items:  items,
		Filter: f.Mode,
		Count:  len(items),
	}
	if f.Mode == task.FilterCategory {
		out.Category = f.Category
	}
	return out
}
