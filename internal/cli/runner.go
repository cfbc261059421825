package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks bad arguments or an unknown command.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func errUsage(format string, a ...any) error {
	return usageError{msg: fmt.Sprintf(format, a...)}
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string) int {
	return run(newApp(os.Stdout, os.Stderr), args)
}

func run(app *App, args []string) int {
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(app.out)
	cmd.SetErr(app.errOut)
	return exitCode(app.errOut, cmd.Execute())
}

func exitCode(w io.Writer, err error) int {
	var uerr usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, todo.ErrEmptyValue):
		// The notice has already been printed.
		return ExitUsage
	case errors.As(err, &uerr):
		ui.Fail(w, err.Error())
		fmt.Fprintln(w, "Run 'todo --help' for usage.")
		return ExitUsage
	default:
		ui.Fail(w, err.Error())
		return ExitError
	}
}
