package task

import "time"

// TimeLayout is the format of CreatedAt. The value is stored as opaque text and
// never parsed back.
const TimeLayout = "2006-01-02 15:04:05"

// Task is a single to-do item.
type Task struct {
	// ID is unique within a store and never changes after creation
	ID int `json:"id"`

	// Title is the user-supplied text; never empty
	Title string `json:"title"`

	// Category is free text and may be empty
	Category string `json:"category"`

	// Done is the completion flag, flipped by toggle
	Done bool `json:"done"`

	// CreatedAt is the local wall-clock time of creation, formatted with TimeLayout
	CreatedAt string `json:"created_at"`
}

// Stamp formats t the way CreatedAt is stored.
func Stamp(t time.Time) string {
	return t.Format(TimeLayout)
}
