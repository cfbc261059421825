package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/web"
)

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return errUsage("usage: %s", usage)
		}
		return nil
	}
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errUsage("usage: %s", usage)
		}
		return nil
	}
}

// saved wraps a store failure. An empty value passes through untouched so
// it maps to the usage exit code.
func saved(err error) error {
	if err == nil || errors.Is(err, todo.ErrEmptyValue) {
		return err
	}
	return fmt.Errorf("save: %w", err)
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <value...>",
		Short: "Add an item (words are joined by one space)",
		Args:  minArgs(1, "todo add <value...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withController(func(ctrl *todo.Controller) error {
				return saved(ctrl.Submit(strings.Join(args, " ")))
			})
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <value...>",
		Short: "Change the value of an item",
		Args:  minArgs(2, "todo edit <id> <value...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withController(func(ctrl *todo.Controller) error {
				if _, ok := ctrl.BeginEdit(args[0]); !ok {
					app.logger.Warn("no item with this id", "id", args[0])
				}
				return saved(ctrl.Submit(strings.Join(args[1:], " ")))
			})
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an item",
		Args:  exactArgs(1, "todo rm <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withController(func(ctrl *todo.Controller) error {
				return saved(ctrl.Delete(args[0]))
			})
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every item",
		Args:  exactArgs(0, "todo clear"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withController(func(ctrl *todo.Controller) error {
				return saved(ctrl.Clear())
			})
		},
	}
}

func newLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  exactArgs(0, "todo ls"),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, kv, err := app.openList()
			if err != nil {
				return err
			}
			defer kv.Close()

			records := list.Load()
			t := ui.Current()
			lines := []string{
				t.Title.Render("Todos") + "  " + t.Muted.Render(fmt.Sprintf("%d total", len(records))),
				"",
			}
			if len(records) == 0 {
				lines = append(lines, t.Muted.Render("no items"))
			}
			for _, r := range records {
				lines = append(lines, t.Muted.Render(r.ID)+"  "+r.Value)
			}
			fmt.Fprintln(app.out, ui.Panel(lines))
			return nil
		},
	}
}

func newServeCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the list as a web page",
		Args:  exactArgs(0, "todo serve [--addr host:port]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = app.cfg.Addr
			}
			list, kv, err := app.openList()
			if err != nil {
				return err
			}
			defer kv.Close()

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := web.New(list, web.Options{
				NotifyDelay: app.cfg.NotifyDelay(),
				Logger:      app.logger,
				Clock:       app.clock,
			})
			fmt.Fprintf(app.out, "serving on http://%s\n", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// runTUI starts the terminal page. Logs go to log_file, or nowhere, so
// they never draw over the alternate screen.
func runTUI(app *App) error {
	logger := logging.Discard()
	if app.cfg.LogFile != "" {
		f, err := logging.OpenFile(app.cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logging.New(f, app.cfg.LogLevel)
	}
	app.logger = logger

	list, kv, err := app.openList()
	if err != nil {
		return err
	}
	defer kv.Close()

	return tui.Run(list, tui.Options{
		NotifyDelay: app.cfg.NotifyDelay(),
		Logger:      logger,
		Clock:       app.clock,
	})
}
