package store

import (
	"bufio"
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/task"
)

// SaveOutput contains the result of an explicit save.
type SaveOutput struct {
	Saved bool   `json:"saved"`
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// SaveWithSummary runs Save and reports what was written.
func (s *Store) SaveWithSummary() (*SaveOutput, error) {
	if err := s.Save(); err != nil {
		return nil, err
	}
	return &SaveOutput{Saved: true, Path: s.path, Count: len(s.tasks)}, nil
}

// Save writes every task, one line each, in collection order, replacing the
// backing file whole. On failure PERSIST_FAILED is returned; the in-memory
// collection is never affected.
func (s *Store) Save() error {
	if err := s.writeFile(); err != nil {
		return errors.NewPersistFailed(s.path, err)
	}
	return nil
}

// persist saves after a mutation and logs a failure as a warning.
func (s *Store) persist() error {
	if err := s.Save(); err != nil {
		s.logger.Warn("changes kept in memory only", "path", s.path, "err", err)
		return err
	}
	return nil
}

// newFileMode is the mode given to a task file that does not exist yet.
const newFileMode os.FileMode = 0644

// writeFile writes to a temp file next to the backing file, then renames it into
// place so readers never observe a partially written file. A symlinked backing
// file is followed, and an existing file keeps its permission bits.
func (s *Store) writeFile() error {
	target, perm, err := resolveTarget(s.path)
	if err != nil {
		return err
	}

	suffix, err := generateULID()
	if err != nil {
		return fmt.Errorf("generate temp file name: %w", err)
	}
	tempPath := target + "." + suffix + ".tmp"

	file, err := openTempFile(tempPath)
	if err != nil {
		return err
	}

	// Clean up temp file on failure (original file is preserved)
	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	w := bufio.NewWriter(file)
	for _, t := range s.tasks {
		if _, err := w.WriteString(task.EncodeRecord(t)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := file.Chmod(perm); err != nil {
		return fmt.Errorf("set file mode: %w", err)
	}
	if err := file.Sync(); err != nil {
		return err
	}

	// Close before rename (required on Windows; fine elsewhere).
	if err := file.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	file = nil

	if err := os.Rename(tempPath, target); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(target), err)
	}

	success = true
	return nil
}

// resolveTarget returns the file a save should replace and the mode to give it.
// Symlinks are followed so the link survives and the file it names is updated.
// A dangling link resolves to the path it points at.
func resolveTarget(path string) (string, os.FileMode, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if !stderrors.Is(err, os.ErrNotExist) {
			return "", 0, fmt.Errorf("resolve %s: %w", filepath.Base(path), err)
		}
		link, linkErr := os.Readlink(path)
		if linkErr != nil {
			return path, newFileMode, nil
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		return link, newFileMode, nil
	}

	fi, err := os.Stat(resolved)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", filepath.Base(resolved), err)
	}
	return resolved, fi.Mode().Perm(), nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
