package task

import (
	"fmt"
	"strings"
)

// FilterMode selects which tasks a listing returns.
type FilterMode string

const (
	FilterPending   FilterMode = "pending"   // not done, collection order
	FilterCompleted FilterMode = "completed" // done, collection order
	FilterAll       FilterMode = "all"       // every task, pending first then by id
	FilterCategory  FilterMode = "category"  // exact category match; empty matches all
)

// Filter is a listing selection.
type Filter struct {
	Mode     FilterMode
	Category string // used only by FilterCategory
}

// Pending returns a filter for tasks that are not done.
func Pending() Filter { return Filter{Mode: FilterPending} }

// Completed returns a filter for tasks that are done.
func Completed() Filter { return Filter{Mode: FilterCompleted} }

// All returns a filter for every task.
func All() Filter { return Filter{Mode: FilterAll} }

// ByCategory returns a filter for tasks in category. An empty category matches every task.
func ByCategory(category string) Filter {
	return Filter{Mode: FilterCategory, Category: category}
}

// Match reports whether t passes the filter. FilterAll matches everything;
// its ordering is applied by the caller.
func (f Filter) Match(t Task) bool {
	switch f.Mode {
	case FilterPending:
		return !t.Done
	case FilterCompleted:
		return t.Done
	case FilterCategory:
		return f.Category == "" || t.Category == f.Category
	default:
		return true
	}
}

// ParseFilterMode parses a filter mode name. The empty string means FilterAll.
func ParseFilterMode(s string) (FilterMode, error) {
	switch mode := FilterMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return FilterAll, nil
	case FilterPending, FilterCompleted, FilterAll, FilterCategory:
		return mode, nil
	default:
		return "", fmt.Errorf("filter must be one of: pending, completed, all, category (got %q)", s)
	}
}

// ParseFilter builds a filter from a mode name and a category. A category given
// without a mode selects FilterCategory; other modes ignore the category.
func ParseFilter(mode, category string) (Filter, error) {
	if strings.TrimSpace(mode) == "" && category != "" {
		return ByCategory(category), nil
	}
	m, err := ParseFilterMode(mode)
	if err != nil {
		return Filter{}, err
	}
	if m == FilterCategory {
		return ByCategory(category), nil
	}
	return Filter{Mode: m}, nil
}
