// Package store holds the in-memory task collection and persists it to a flat
// text file through the task codec.
//
// A Store is not safe for concurrent use. Every mutating operation rewrites the
// whole backing file before returning; callers that can run operations in
// parallel must serialize them.
package store

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/hpungsan/todo/internal/logging"
	"github.com/hpungsan/todo/internal/task"
)

// Store is an ordered task collection backed by a flat file.
type Store struct {
	path   string
	tasks  []task.Task
	nextID int
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persistence events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an empty store for the backing file at path. It does not read the file.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		tasks:  []task.Task{},
		nextID: 1,
		now:    time.Now,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and loads the backing file at path.
func Open(path string, opts ...Option) (*Store, *LoadOutput, error) {
	s := New(path, opts...)
	out, err := s.Load()
	if err != nil {
		return nil, nil, err
	}
	return s, out, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the id the next created task will receive.
func (s *Store) NextID() int {
	return s.nextID
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (task.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// indexOf returns the position of id in the collection, or -1.
func (s *Store) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
