package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/hpungsan/todo/internal/task"
)

// helpText lists the menu commands.
const helpText = `
Commands:
  1 - Add task
  2 - List pending tasks
  3 - List completed tasks
  4 - List all tasks
  5 - List tasks by category
  6 - Toggle complete/incomplete (by ID)
  7 - Delete task (by ID)
  8 - Save (explicit)
  9 - Load (explicit)
  h - Help
  q - Quit
`

// Banner is printed once when the shell starts.
const Banner = "=== Simple To-Do List (console) ==="

// FormatRow renders a task as one display line, without a line terminator:
//
//	[x] ID:3 | Title (category)  -- created: 2026-01-02 03:04:05
//
// The category part is omitted when the category is empty.
func FormatRow(t task.Task) string {
	var b strings.Builder
	b.WriteString("[")
	if t.Done {
		b.WriteString("x")
	} else {
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "] ID:%d | %s", t.ID, t.Title)
	if t.Category != "" {
		fmt.Fprintf(&b, " (%s)", t.Category)
	}
	b.WriteString("  -- created: ")
	b.WriteString(t.CreatedAt)
	return b.String()
}

// writeRows prints one row per task, or the empty message when there are none.
func writeRows(w io.Writer, tasks []task.Task, empty string) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, FormatRow(t))
	}
}
