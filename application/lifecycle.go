package application

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
	"github.com/felixgeelhaar/patrol-go/infrastructure/statemachine"
)

// lifecycle drives one run through the patrol statechart and reports it.
type lifecycle struct {
	run    *patrol.Run
	interp *statemachine.Interpreter
	cfg    *Config
}

func startRun(ctx context.Context, cfg *Config, kind patrol.RunKind, start grid.AgentState, candidate *grid.Coordinate) (*lifecycle, error) {
	run := patrol.NewRun(cfg.NewID(), kind, start)
	if candidate != nil {
		run.WithCandidate(*candidate)
	}

	machine, err := statemachine.NewPatrolMachine()
	if err != nil {
		return nil, fmt.Errorf("build patrol machine: %w", err)
	}
	interp := statemachine.NewInterpreter(machine, statemachine.NewContext(run))
	if err := interp.Start(); err != nil {
		return nil, fmt.Errorf("start run %s: %w", run.ID, err)
	}

	cfg.Metrics.IncrementActiveRuns(ctx)
	cfg.Metrics.RecordStateTransition(ctx, string(patrol.StatusPending), string(patrol.StatusPatrolling))

	return &lifecycle{run: run, interp: interp, cfg: cfg}, nil
}

// finish moves the run to the terminal status and records it.
func (l *lifecycle) finish(ctx context.Context, status patrol.Status) error {
	defer l.interp.Stop()
	defer l.cfg.Metrics.DecrementActiveRuns(ctx)

	var err error
	switch status {
	case patrol.StatusExited:
		err = l.interp.Exit()
	case patrol.StatusLooped:
		err = l.interp.Loop()
	default:
		err = fmt.Errorf("%w: %s is not terminal", statemachine.ErrTransitionRejected, status)
	}
	if err != nil {
		l.cfg.Metrics.RecordError(ctx, "lifecycle")
		return fmt.Errorf("finish run %s: %w", l.run.ID, err)
	}

	l.cfg.Metrics.RecordStateTransition(ctx, string(patrol.StatusPatrolling), string(status))
	l.cfg.Metrics.RecordRun(ctx, string(l.run.Kind), string(status), l.run.Steps, l.run.Duration())
	return nil
}

// abort releases the run without a terminal transition.
func (l *lifecycle) abort(ctx context.Context) {
	l.interp.Stop()
	l.cfg.Metrics.DecrementActiveRuns(ctx)
}
