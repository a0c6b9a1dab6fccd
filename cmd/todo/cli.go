package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/logging"
	"github.com/hpungsan/todo/internal/shell"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st *store.Store, logger *log.Logger) *cli.App {
	if logger == nil {
		logger = logging.Discard()
	}
	app := &cli.App{
		Name:    "todo",
		Usage:   "Single-user to-do list backed by a flat text file",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(st),
			listCmd(st),
			toggleCmd(st),
			deleteCmd(st),
			saveCmd(st),
			loadCmd(st),
			shellCmd(st, logger),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a pending task",
		ArgsUsage: "TITLE...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category label (optional)"},
		},
		Action: func(c *cli.Context) error {
			title := strings.Join(c.Args().Slice(), " ")

			created, err := st.Create(title, c.String("category"))
			if err := keepOnPersistFailure(err); err != nil {
				return outputError(err)
			}

			return outputJSON(created)
		},
	}
}

// listCmd creates the list command.
func listCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List tasks",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "filter", Aliases: []string{"f"}, Usage: "Filter: pending|completed|all|category (default all)"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category to match; implies --filter=category when given alone"},
		},
		Action: func(c *cli.Context) error {
			filter, err := task.ParseFilter(c.String("filter"), c.String("category"))
			if err != nil {
				return outputError(errors.NewInvalidRequest(err.Error()))
			}

			return outputJSON(st.ListWithSummary(filter))
		},
	}
}

// toggleCmd creates the toggle command.
func toggleCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Flip a task between completed and not completed",
		ArgsUsage: "ID",
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return outputError(err)
			}

			updated, err := st.Toggle(id)
			if err := keepOnPersistFailure(err); err != nil {
				return outputError(err)
			}

			return outputJSON(updated)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Permanently remove a task",
		ArgsUsage: "ID",
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := st.Delete(id)
			if err := keepOnPersistFailure(err); err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// saveCmd creates the save command.
func saveCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "save",
		Usage: "Rewrite the task file from the loaded tasks",
		Action: func(c *cli.Context) error {
			output, err := st.SaveWithSummary()
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// loadCmd creates the load command.
func loadCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Re-read the task file and report what was loaded",
		Action: func(c *cli.Context) error {
			output, err := st.Load()
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// shellCmd creates the shell command.
func shellCmd(st *store.Store, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Start the interactive menu",
		Action: func(c *cli.Context) error {
			sh := shell.New(st, os.Stdin, c.App.Writer, shell.WithLogger(logger))
			if err := sh.Run(); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if todoErr, ok := errors.As(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", todoErr.Code, todoErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// keepOnPersistFailure drops PERSIST_FAILED: the change is applied in memory
// and the store has already logged the write failure.
func keepOnPersistFailure(err error) error {
	if errors.Is(err, errors.ErrPersistFailed) {
		return nil
	}
	return err
}

// parseID reads the first positional argument as a task id.
func parseID(c *cli.Context) (int, error) {
	if c.NArg() == 0 {
		return 0, errors.NewInvalidRequest("task ID is required")
	}
	arg := c.Args().First()
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.NewInvalidRequest(fmt.Sprintf("task ID must be an integer, got %q", arg))
	}
	return id, nil
}
