package store

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/task"
)

// LoadOutput contains the result of the Load operation.
type LoadOutput struct {
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

// Load replaces the in-memory collection with the contents of the backing file.
//
// Lines that do not decode (blank, short, non-integer id), lines with an empty
// title and lines repeating an id already loaded are skipped, never reported as
// errors. A missing file is an
// empty store. If the file exists but cannot be read, STORE_UNREADABLE is
// returned and the collection is left as it was.
//
// The id counter never moves backwards: it becomes the larger of its current
// value and one past the highest id loaded.
func (s *Store) Load() (*LoadOutput, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			s.tasks = []task.Task{}
			s.logger.Info("no task file, starting empty", "path", s.path)
			return &LoadOutput{}, nil
		}
		return nil, errors.NewStoreUnreadable(s.path, err)
	}
	defer file.Close()

	loaded, skipped, maxID, err := s.readTasks(file)
	if err != nil {
		return nil, errors.NewStoreUnreadable(s.path, err)
	}

	s.tasks = loaded
	if maxID >= s.nextID {
		s.nextID = maxID + 1
	}

	s.logger.Info("loaded tasks", "path", s.path, "loaded", len(loaded), "skipped", skipped, "next_id", s.nextID)
	return &LoadOutput{Loaded: len(loaded), Skipped: skipped}, nil
}

// readTasks decodes r line by line. It returns the decoded tasks in file order,
// the number of non-blank lines skipped, and the highest id seen.
func (s *Store) readTasks(r io.Reader) ([]task.Task, int, int, error) {
	reader := bufio.NewReader(r)
	tasks := []task.Task{}
	seen := make(map[int]bool)
	skipped := 0
	maxID := 0
	lineNum := 0

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, 0, 0, readErr
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNum++

		line := strings.TrimRight(raw, "\r\n")
		if line != "" {
			t, ok := task.DecodeLine(line)
			switch {
			case !ok:
				skipped++
				s.logger.Debug("skipping malformed line", "path", s.path, "line", lineNum)
			case t.Title == "":
				skipped++
				s.logger.Debug("skipping empty title", "path", s.path, "line", lineNum, "id", t.ID)
			case seen[t.ID]:
				skipped++
				s.logger.Debug("skipping duplicate id", "path", s.path, "line", lineNum, "id", t.ID)
			default:
				seen[t.ID] = true
				tasks = append(tasks, t)
				maxID = max(maxID, t.ID)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return tasks, skipped, maxID, nil
}
