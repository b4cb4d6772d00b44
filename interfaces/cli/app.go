// Package cli provides the command-line interface for patrol-go.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	patrolgo "github.com/felixgeelhaar/patrol-go"
)

// Version information set at build time.
var (
	Version   = patrolgo.Version
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions holds flags shared by every command.
type globalOptions struct {
	configPath    string
	workers       int
	logLevel      string
	logFormat     string
	traceExporter string
	traceEndpoint string
	metrics       bool
}

// App represents the CLI application.
type App struct {
	root    *cobra.Command
	stdout  io.Writer
	stderr  io.Writer
	globals *globalOptions
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		globals: &globalOptions{},
	}

	app.root = &cobra.Command{
		Use:   "patrol",
		Short: "Grid patrol simulator",
		Long: `patrol simulates a guard walking a rectangular map. The guard moves
forward one cell per tick, turns clockwise in front of an obstruction (#),
and stops once it steps off the map.

It answers two questions about a map:
  visited  how many distinct cells the guard covers before leaving
  loops    how many single extra obstructions would trap it in a loop`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := app.root.PersistentFlags()
	flags.StringVarP(&app.globals.configPath, "config", "c", "", "Path to configuration file")
	flags.IntVar(&app.globals.workers, "workers", 0, "Concurrent candidate evaluations (0 = number of CPUs)")
	flags.StringVar(&app.globals.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&app.globals.logFormat, "log-format", "", "Log format (console, json)")
	flags.StringVar(&app.globals.traceExporter, "trace", "", "Trace exporter (stdout, otlp, noop)")
	flags.StringVar(&app.globals.traceEndpoint, "trace-endpoint", "", "OTLP endpoint (e.g. localhost:4317)")
	flags.BoolVar(&app.globals.metrics, "metrics", false, "Export metrics to stderr on exit")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newVisitedCmd(),
		app.newLoopsCmd(),
		app.newSolveCmd(),
		app.newValidateCmd(),
		app.newWatchCmd(),
		app.newSchemaCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used when the map path is "-".
func (a *App) WithInput(stdin io.Reader) *App {
	a.root.SetIn(stdin)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "patrol version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
