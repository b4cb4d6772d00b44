package statemachine

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
)

func newTestInterpreter(t *testing.T) (*Interpreter, *patrol.Run) {
	t.Helper()

	machine, err := NewPatrolMachine()
	if err != nil {
		t.Fatalf("NewPatrolMachine() error = %v", err)
	}
	run := patrol.NewRun("test-run", patrol.RunKindTrack, grid.AgentState{Facing: grid.North})
	return NewInterpreter(machine, NewContext(run)), run
}

func TestNewPatrolMachine(t *testing.T) {
	t.Parallel()

	machine, err := NewPatrolMachine()
	if err != nil {
		t.Fatalf("NewPatrolMachine() error = %v", err)
	}
	if machine == nil {
		t.Fatal("NewPatrolMachine() returned nil machine")
	}
}

func TestStatusForEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		event    statekit.EventType
		expected patrol.Status
	}{
		{EventStart, patrol.StatusPatrolling},
		{EventExit, patrol.StatusExited},
		{EventLoop, patrol.StatusLooped},
		{statekit.EventType("custom"), patrol.Status("custom")},
	}

	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			t.Parallel()

			if got := StatusForEvent(tt.event); got != tt.expected {
				t.Errorf("StatusForEvent(%s) = %s, want %s", tt.event, got, tt.expected)
			}
		})
	}
}

func TestStatusFromMachine(t *testing.T) {
	t.Parallel()

	if got := StatusFromMachine(stateLooped); got != patrol.StatusLooped {
		t.Errorf("StatusFromMachine(looped) = %s, want looped", got)
	}
}

func TestInterpreter_ExitLifecycle(t *testing.T) {
	t.Parallel()

	interp, run := newTestInterpreter(t)
	if err := interp.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer interp.Stop()

	if interp.Status() != patrol.StatusPatrolling {
		t.Errorf("Status() = %s, want patrolling", interp.Status())
	}
	if run.Status != patrol.StatusPatrolling {
		t.Errorf("run.Status = %s, want patrolling", run.Status)
	}
	if run.StartTime.IsZero() {
		t.Error("run.StartTime should be set by the start action")
	}
	if interp.IsTerminal() {
		t.Error("IsTerminal() = true while patrolling")
	}

	if err := interp.Exit(); err != nil {
		t.Fatalf("Exit() error = %v", err)
	}
	if interp.Status() != patrol.StatusExited {
		t.Errorf("Status() = %s, want exited", interp.Status())
	}
	if run.Status != patrol.StatusExited {
		t.Errorf("run.Status = %s, want exited", run.Status)
	}
	if run.EndTime.IsZero() {
		t.Error("run.EndTime should be set by the finish action")
	}
	if !interp.IsTerminal() {
		t.Error("IsTerminal() = false after exit")
	}
}

func TestInterpreter_LoopRequiresStep(t *testing.T) {
	t.Parallel()

	interp, run := newTestInterpreter(t)
	if err := interp.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := interp.Loop(); !errors.Is(err, ErrTransitionRejected) {
		t.Fatalf("Loop() before any step error = %v, want ErrTransitionRejected", err)
	}
	if interp.Status() != patrol.StatusPatrolling {
		t.Errorf("Status() = %s, want patrolling", interp.Status())
	}

	if err := run.Record(patrol.Outcome{Kind: patrol.OutcomePivoted, State: run.Start}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := interp.Loop(); err != nil {
		t.Fatalf("Loop() error = %v", err)
	}
	if run.Status != patrol.StatusLooped {
		t.Errorf("run.Status = %s, want looped", run.Status)
	}
}

func TestInterpreter_RejectsAfterTerminal(t *testing.T) {
	t.Parallel()

	interp, _ := newTestInterpreter(t)
	if err := interp.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := interp.Exit(); err != nil {
		t.Fatalf("Exit() error = %v", err)
	}

	if err := interp.Exit(); !errors.Is(err, ErrTransitionRejected) {
		t.Errorf("second Exit() error = %v, want ErrTransitionRejected", err)
	}
	if interp.CanSend(EventLoop) {
		t.Error("CanSend(LOOP) = true after exit")
	}
}

func TestInterpreter_StartWithoutRun(t *testing.T) {
	t.Parallel()

	machine, err := NewPatrolMachine()
	if err != nil {
		t.Fatalf("NewPatrolMachine() error = %v", err)
	}
	interp := NewInterpreter(machine, NewContext(nil))

	if err := interp.Start(); !errors.Is(err, ErrTransitionRejected) {
		t.Errorf("Start() without run error = %v, want ErrTransitionRejected", err)
	}
	if interp.Context().Run != nil {
		t.Error("Context().Run should stay nil")
	}
}
