// Package cli implements the quick command-line interface: a front end for
// running variant scenarios and rendering typed property values through the
// debug stream.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quick/internal/config"
	"github.com/mesh-intelligence/quick/internal/paths"
	"github.com/mesh-intelligence/quick/pkg/debugstream"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// annotationNoSetup marks commands that run without loading configuration.
const annotationNoSetup = "quick/no-setup"

// envDebug enables debug logging when set to any non-empty value.
const envDebug = "QUICK_DEBUG"

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func userError(err error) error { return &ExitError{Code: exitUserError, Err: err} }

func sysError(err error) error { return &ExitError{Code: exitSysError, Err: err} }

// app holds flag values and the state resolved before a subcommand runs.
type app struct {
	configDir string
	inline    string
	indent    int
	verbose   bool

	resolvedDir string
	settings    config.Settings
	logger      *slog.Logger
}

// NewRootCmd creates the top-level "quick" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "quick",
		Short: "Explore type-safe variants and typed property values",
		Long: "quick drives a demo variant over {int64, string, uuid} from YAML scenarios\n" +
			"and renders values as nested text trees.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/quick)")
	root.PersistentFlags().StringVar(&a.inline, "inline", "", "render on one line: auto, true or false (default: from config)")
	root.PersistentFlags().IntVar(&a.indent, "indent", -1, "spaces per nesting level (default: from config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newRunCmd())
	root.AddCommand(a.newPropertyCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(os.Stderr, "quick:", err)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitUserError
}

// setup resolves the config directory, loads settings, applies flag
// overrides and builds the logger. Commands that never read settings skip it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[annotationNoSetup] != "" {
		return nil
	}
	dir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.resolvedDir = dir

	v, err := config.Load(dir)
	if err != nil {
		return userError(err)
	}
	settings, err := config.Decode(v)
	if err != nil {
		return userError(fmt.Errorf("config: %w", err))
	}
	if a.inline != "" {
		settings.Render.Inline = strings.ToLower(a.inline)
	}
	if a.indent >= 0 {
		settings.Render.Indent = a.indent
	}
	if err := settings.Validate(); err != nil {
		return userError(err)
	}
	a.settings = settings

	level, err := settings.Log.SlogLevel()
	if err != nil {
		return userError(err)
	}
	if a.verbose || os.Getenv(envDebug) != "" {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	a.logger.Debug("settings loaded", "config_dir", dir, "inline", settings.Render.Inline, "indent", settings.Render.Indent)
	return nil
}

// newStream returns a debug stream configured for output written to out.
// Writers that are not files are treated as non-terminals.
func (a *app) newStream(out io.Writer) *debugstream.Stream {
	inline := a.settings.Render.Inline != config.InlineFalse
	if f, ok := out.(*os.File); ok {
		inline = a.settings.Render.InlineFor(f)
	}
	return debugstream.New().SetInline(inline).SetIndent(a.settings.Render.Indent)
}
