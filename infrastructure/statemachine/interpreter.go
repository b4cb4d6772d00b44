package statemachine

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/patrol-go/domain/patrol"
)

// Interpreter wraps the statekit interpreter with patrol-specific functionality.
type Interpreter struct {
	interp *statekit.Interpreter[*Context]
	ctx    *Context
}

// NewInterpreter creates a new interpreter for the patrol state machine.
func NewInterpreter(machine *statekit.MachineConfig[*Context], ctx *Context) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **Context) {
		*c = ctx
	})
	return &Interpreter{
		interp: interp,
		ctx:    ctx,
	}
}

// Start enters the initial state and begins patrolling.
func (i *Interpreter) Start() error {
	i.interp.Start()
	return i.send(EventStart)
}

// Stop stops the interpreter.
func (i *Interpreter) Stop() {
	i.interp.Stop()
}

// Status returns the current run status.
func (i *Interpreter) Status() patrol.Status {
	return patrol.Status(i.interp.State().Value)
}

// Exit finishes the run because the agent left the map.
func (i *Interpreter) Exit() error {
	return i.send(EventExit)
}

// Loop finishes the run because the agent repeated a state.
func (i *Interpreter) Loop() error {
	return i.send(EventLoop)
}

// IsTerminal returns true if the run has finished.
func (i *Interpreter) IsTerminal() bool {
	return i.interp.Done()
}

// Context returns the interpreter context.
func (i *Interpreter) Context() *Context {
	return i.ctx
}

// CanSend checks whether the chart has an enabled transition for the event
// from the current state.
func (i *Interpreter) CanSend(eventType statekit.EventType) bool {
	switch eventType {
	case EventStart:
		return i.Status() == patrol.StatusPending && guardHasRun(i.ctx, statekit.Event{})
	case EventExit:
		return i.Status() == patrol.StatusPatrolling
	case EventLoop:
		return i.Status() == patrol.StatusPatrolling && guardHasStepped(i.ctx, statekit.Event{})
	default:
		return false
	}
}

// send delivers an event and reports whether the machine accepted it.
// Events are checked against the chart first, since statekit does not
// report rejected events through a return value.
func (i *Interpreter) send(eventType statekit.EventType) error {
	from := i.Status()
	if !i.CanSend(eventType) {
		return fmt.Errorf("%w: %s from %s", ErrTransitionRejected, eventType, from)
	}

	want := StatusForEvent(eventType)
	i.interp.Send(statekit.Event{Type: eventType})

	if got := i.Status(); got != want {
		return fmt.Errorf("%w: %s from %s", ErrTransitionRejected, eventType, from)
	}
	return nil
}
