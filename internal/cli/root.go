// Package cli is the todo command line: the terminal page by default, plus
// scriptable commands and the web page.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/notify"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/store/sqlitestore"
	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

type App struct {
	ConfigPath string
	Backend    string
	DataDir    string
	Theme      string
	LogLevel   string

	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
	errOut io.Writer
	clock  func() time.Time
}

func newApp(out, errOut io.Writer) *App {
	return &App{
		out:    out,
		errOut: errOut,
		clock:  time.Now,
		logger: logging.Discard(),
	}
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A small to-do list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive page
  todo

  # Scriptable commands
  todo add buy milk
  todo ls
  todo edit 1718000000000 buy oat milk
  todo rm 1718000000000
  todo clear

  # Serve the list as a web page
  todo serve --addr 127.0.0.1:8080
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errUsage("unknown command %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.configure(cmd)
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errUsage("%v", err)
	})

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "Path to a config file")
	f.StringVar(&app.Backend, "backend", "", "Storage backend (json|sqlite|memory)")
	f.StringVar(&app.DataDir, "data-dir", "", "Directory holding the data file")
	f.StringVar(&app.Theme, "theme", "", "Colour theme (classic|neon|mono)")
	f.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newServeCmd(app))

	return cmd
}

// configure loads config files and env, then applies the flags that were
// set explicitly.
func (app *App) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = app.Backend
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = app.DataDir
	}
	if flags.Changed("theme") {
		cfg.Theme = app.Theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = app.LogLevel
	}
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	app.cfg = cfg
	ui.SetTheme(cfg.Theme)
	app.logger = logging.New(app.errOut, cfg.LogLevel)
	return nil
}

// openList opens the configured backend. The caller closes the returned KV.
func (app *App) openList() (*store.List, store.KV, error) {
	var kv store.KV
	switch app.cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlitestore.OpenInDir(app.cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		kv = s
	case config.BackendMemory:
		kv = store.NewMemory()
	default:
		kv = jsonstore.InDir(app.cfg.DataDir)
	}
	app.logger.Debug("store", "backend", app.cfg.Backend, "path", app.cfg.DataPath())
	list := store.NewList(kv,
		store.WithKey(app.cfg.StorageKey),
		store.WithLogger(app.logger),
	)
	return list, kv, nil
}

// printNotifier writes success notices to out and danger notices to errOut.
type printNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (p printNotifier) Notify(text string, sev notify.Severity) {
	if sev == notify.Danger {
		ui.Fail(p.errOut, text)
		return
	}
	ui.OK(p.out, text)
}

// withController runs fn against a controller over the configured store,
// printing notices as they happen.
func (app *App) withController(fn func(*todo.Controller) error) error {
	list, kv, err := app.openList()
	if err != nil {
		return err
	}
	defer kv.Close()

	ctrl := todo.NewController(list, view.New(), printNotifier{out: app.out, errOut: app.errOut},
		todo.WithLogger(app.logger),
		todo.WithClock(app.clock),
	)
	ctrl.Setup()
	return fn(ctrl)
}
