// Package cli wires configuration, logging and the presenter into the
// tada command tree.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/presenter"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

type App struct {
	ConfigPath string
	Theme      string
	LogLevel   string
	LogFile    string
	Color      bool
	NoColor    bool

	cfg    *config.Config
	logger *logging.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tada",
		Short:        "A tiny in-memory todo list for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  tada

  # Line-mode session, handy for scripts
  printf 'add Buy milk\nadd Walk dog\ndone 1\nls\n' | tada shell
`),
		Args: cobra.NoArgs,
		RunE: app.closing(func(cmd *cobra.Command, args []string) error {
			return app.runTUI()
		}),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.logger.Close()
	}

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "config file (default: tada.toml or the user config dir)")
	f.StringVar(&app.Theme, "theme", "", "theme: classic, neon or mono")
	f.StringVar(&app.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&app.LogFile, "log-file", "", "write logs to this file")
	f.BoolVar(&app.Color, "color", false, "force colour output")
	f.BoolVar(&app.NoColor, "no-color", false, "disable colour output")

	cmd.AddCommand(newShellCmd(app))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup loads config, lets explicit flags win over it, then prepares
// colours and the logger.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.Theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.LogLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.LogFile
	}
	if flags.Changed("color") {
		cfg.ForceColor = a.Color
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.NoColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ui.SetColorForcing(cfg.ForceColor, cfg.NoColor)

	logger, err := logging.New(logging.Options{
		Level:        cfg.LogLevel,
		File:         cfg.LogFile,
		ReportCaller: strings.EqualFold(cfg.LogLevel, "debug"),
	})
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "files", cfg.Files, "theme", cfg.Theme)

	a.cfg = cfg
	a.logger = logger
	return nil
}

// closing wraps a RunE so the log file is closed even when it fails;
// cobra skips PersistentPostRunE after a RunE error.
func (a *App) closing(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			a.logger.Error("command failed", "cmd", cmd.Name(), "err", err)
			if cerr := a.logger.Close(); cerr != nil {
				return errors.Join(err, cerr)
			}
		}
		return err
	}
}

func (a *App) newPresenter() *presenter.Presenter {
	s := store.New()
	s.Prompt = a.cfg.ConfirmPrompt
	return presenter.New(s,
		presenter.WithLabels(a.cfg.PresenterLabels()),
		presenter.WithLogger(a.logger.Logger),
	)
}

func (a *App) theme() ui.Theme { return ui.Lookup(a.cfg.Theme) }

func (a *App) runTUI() error {
	l := a.cfg.Labels
	pl := a.cfg.PresenterLabels()
	opts := tui.Options{
		Theme: a.theme(),
		Labels: tui.Labels{
			Edit: pl.Edit, Delete: pl.Delete, Save: pl.Save, Cancel: pl.Cancel,
			Add: l.Add, Placeholder: l.Placeholder,
		},
		ConfirmPrompt: a.cfg.ConfirmPrompt,
	}
	a.logger.Info("starting tui")
	if err := tui.Run(a.newPresenter(), opts); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func newShellCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Line-mode session reading commands from stdin",
		Long: strings.TrimSpace(`
Reads one command per line (add, ls, done, edit, rm, count, tree, help,
quit). The list exists only for the duration of the session.
`),
		Args: cobra.NoArgs,
		RunE: app.closing(func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			sh := NewShell(app.newPresenter(), in, cmd.OutOrStdout(), cmd.ErrOrStderr(), app.theme(), yes)
			if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				sh.Prompt = "tada> "
			}
			app.logger.Info("starting shell", "auto_confirm", yes)
			return sh.Run()
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "tada", Version)
			return nil
		},
	}
}
