package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/patrol-go/infrastructure/input"
	"github.com/felixgeelhaar/patrol-go/infrastructure/logging"
	"github.com/felixgeelhaar/patrol-go/interfaces/api"
)

// ErrNoInput is returned when neither an argument nor the configuration names a map.
var ErrNoInput = errors.New("no map file given (pass a path or set input in the configuration)")

const shutdownTimeout = 5 * time.Second

// session is the per-command state built from flags and configuration.
type session struct {
	cfg      *api.PatrolConfig
	solver   *api.Solver
	provider *api.ObservabilityProvider
	loader   *input.Loader
}

// overrides collects the global flags the user set explicitly.
func (a *App) overrides(cmd *cobra.Command) api.ConfigOverrides {
	var o api.ConfigOverrides
	flags := cmd.Flags()
	g := a.globals

	if flags.Changed("workers") {
		o.Workers = &g.workers
	}
	if flags.Changed("log-level") {
		o.LogLevel = &g.logLevel
	}
	if flags.Changed("log-format") {
		o.LogFormat = &g.logFormat
	}
	if flags.Changed("trace") {
		o.TraceExporter = &g.traceExporter
	}
	if flags.Changed("trace-endpoint") {
		o.TraceEndpoint = &g.traceEndpoint
	}
	if flags.Changed("metrics") {
		o.Metrics = &g.metrics
	}
	return o
}

// openSession resolves configuration, installs the logger and builds the
// solver with telemetry attached. part may be nil to keep the configured part.
func (a *App) openSession(cmd *cobra.Command, args []string, part *api.Part) (*session, error) {
	o := a.overrides(cmd)
	if len(args) > 0 {
		o.Input = &args[0]
	}
	o.Part = part

	cfg, err := api.ResolveConfig(a.globals.configPath, o)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.FromDomain(cfg.Logging, a.stderr))

	provider, err := api.NewObservability(cfg.Telemetry, a.stderr, Version)
	if err != nil {
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}

	solver := api.NewSolver(
		api.WithWorkers(cfg.Analysis.Workers),
		api.WithMetrics(api.NewMetrics(provider.MeterProvider())),
		api.WithTracer(provider.Tracer("patrol")),
	)

	return &session{
		cfg:      cfg,
		solver:   solver,
		provider: provider,
		loader:   &input.Loader{Stdin: cmd.InOrStdin()},
	}, nil
}

// readMap returns the text of the configured map.
func (s *session) readMap() (string, error) {
	if s.cfg.Input == "" {
		return "", ErrNoInput
	}
	return s.loader.Load(s.cfg.Input)
}

// close flushes exporters.
func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.provider.Shutdown(ctx); err != nil {
		logging.Warn().
			Add(logging.Component("telemetry")).
			Add(logging.ErrorField(err)).
			Msg("shutdown failed")
	}
}
