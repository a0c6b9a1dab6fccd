// Package shell implements the interactive menu: a line prompt that reads one
// command character per line and runs the matching store operation.
package shell

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/logging"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// Prompt is printed before every command.
const Prompt = "Choose command (h for help): "

// Shell runs the interactive menu against a store.
type Shell struct {
	store  *store.Store
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *log.Logger) Option {
	return func(sh *Shell) {
		if logger != nil {
			sh.logger = logger
		}
	}
}

// New creates a shell reading commands from in and writing to out.
func New(st *store.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{
		store:  st,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Run prints the banner and help, then reads commands until q or end of input.
// It returns an error only if reading input fails.
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.out, Banner)
	sh.help()

	for {
		fmt.Fprint(sh.out, "\n"+Prompt)
		line, err := sh.readLine()
		if err != nil {
			return endOfInput(err)
		}

		cmd := strings.TrimSpace(line)
		if cmd == "" {
			continue
		}
		sh.logger.Debug("shell command", "cmd", cmd)

		switch cmd {
		case "1":
			err = sh.add()
		case "2":
			writeRows(sh.out, sh.store.List(task.Pending()), "No pending tasks.")
		case "3":
			writeRows(sh.out, sh.store.List(task.Completed()), "No completed tasks.")
		case "4":
			writeRows(sh.out, sh.store.List(task.All()), "No tasks yet.")
		case "5":
			err = sh.listByCategory()
		case "6":
			err = sh.toggle()
		case "7":
			err = sh.delete()
		case "8":
			sh.save()
		case "9":
			sh.load()
		case "h":
			sh.help()
		case "q":
			fmt.Fprintln(sh.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(sh.out, "Unknown command. Press h for help.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (sh *Shell) help() {
	fmt.Fprint(sh.out, helpText)
}

func (sh *Shell) add() error {
	title, err := sh.ask("Enter task title: ")
	if err != nil {
		return err
	}

	// No category prompt for an empty title; the store rejects it
	category := ""
	if title != "" {
		if category, err = sh.ask("Enter category (optional): "); err != nil {
			return err
		}
	}

	t, err := sh.store.Create(title, category)
	switch {
	case errors.Is(err, errors.ErrInvalidRequest):
		fmt.Fprintln(sh.out, "Title cannot be empty.")
		return nil
	case err != nil:
		sh.reportError(err)
	}
	fmt.Fprintf(sh.out, "Task added (id=%d).\n", t.ID)
	return nil
}

func (sh *Shell) listByCategory() error {
	category, err := sh.ask("Enter category to list (leave empty to list all categories): ")
	if err != nil {
		return err
	}
	writeRows(sh.out, sh.store.List(task.ByCategory(category)), "No tasks for that category.")
	return nil
}

func (sh *Shell) toggle() error {
	id, ok, err := sh.askID("Enter task ID to toggle complete/incomplete: ")
	if err != nil || !ok {
		return err
	}

	t, err := sh.store.Toggle(id)
	if errors.Is(err, errors.ErrNotFound) {
		fmt.Fprintln(sh.out, "Task ID not found.")
		return nil
	}
	if err != nil {
		sh.reportError(err)
	}

	state := "not completed."
	if t.Done {
		state = "completed."
	}
	fmt.Fprintf(sh.out, "Task ID %d marked %s\n", id, state)
	return nil
}

func (sh *Shell) delete() error {
	id, ok, err := sh.askID("Enter task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	if _, err := sh.store.Delete(id); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			fmt.Fprintln(sh.out, "Task ID not found.")
			return nil
		}
		sh.reportError(err)
	}
	fmt.Fprintf(sh.out, "Task ID %d deleted.\n", id)
	return nil
}

func (sh *Shell) save() {
	if err := sh.store.Save(); err != nil {
		sh.reportError(err)
		return
	}
	fmt.Fprintln(sh.out, "Saved.")
}

func (sh *Shell) load() {
	if _, err := sh.store.Load(); err != nil {
		sh.reportError(err)
		return
	}
	fmt.Fprintln(sh.out, "Loaded.")
}

// reportError prints a store error; the session continues.
func (sh *Shell) reportError(err error) {
	if e, ok := errors.As(err); ok {
		fmt.Fprintf(sh.out, "Error: %s\n", e.Message)
		return
	}
	fmt.Fprintf(sh.out, "Error: %v\n", err)
}

// ask prints prompt and returns the next input line without its terminator.
func (sh *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(sh.out, prompt)
	return sh.readLine()
}

// askID prompts for a task id. A line that is not an integer prints
// "Invalid input." and reports ok=false.
func (sh *Shell) askID(prompt string) (int, bool, error) {
	line, err := sh.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		fmt.Fprintln(sh.out, "Invalid input.")
		return 0, false, nil
	}
	return id, true, nil
}

// readLine reads one line. A final line without a terminator is returned
// normally; io.EOF is returned only when nothing is left.
func (sh *Shell) readLine() (string, error) {
	line, err := sh.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// endOfInput maps io.EOF to a clean exit.
func endOfInput(err error) error {
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
