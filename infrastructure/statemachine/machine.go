// Package statemachine provides the statekit integration for patrol runs.
//
// Every run, the baseline patrol as well as each candidate evaluation, moves
// through the same statechart:
//
//	pending --START--> patrolling --EXIT--> exited
//	                              --LOOP--> looped
package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/patrol-go/domain/patrol"
)

// Context carries run state through the state machine.
type Context struct {
	Run *patrol.Run
}

// NewContext creates a new machine context.
func NewContext(run *patrol.Run) *Context {
	return &Context{Run: run}
}

// State IDs as StateID type for statekit.
const (
	statePending    statekit.StateID = statekit.StateID(patrol.StatusPending)
	statePatrolling statekit.StateID = statekit.StateID(patrol.StatusPatrolling)
	stateExited     statekit.StateID = statekit.StateID(patrol.StatusExited)
	stateLooped     statekit.StateID = statekit.StateID(patrol.StatusLooped)
)

// Event types.
const (
	EventStart statekit.EventType = "START"
	EventExit  statekit.EventType = "EXIT"
	EventLoop  statekit.EventType = "LOOP"
)

// NewPatrolMachine creates the patrol run statechart.
func NewPatrolMachine() (*statekit.MachineConfig[*Context], error) {
	return statekit.NewMachine[*Context]("patrol").
		WithInitial(statePending).
		WithContext(&Context{}).
		WithAction("beginRun", beginRun).
		WithAction("finishRun", finishRun).
		WithGuard("hasRun", guardHasRun).
		WithGuard("hasStepped", guardHasStepped).
		State(statePending).
			On(EventStart).Target(statePatrolling).Guard("hasRun").Do("beginRun").
			Done().
		State(statePatrolling).
			On(EventExit).Target(stateExited).Do("finishRun").
			On(EventLoop).Target(stateLooped).Guard("hasStepped").Do("finishRun").
			Done().
		State(stateExited).
			Final().
			Done().
		State(stateLooped).
			Final().
			Done().
		Build()
}

// StatusForEvent returns the run status an event leads to.
func StatusForEvent(eventType statekit.EventType) patrol.Status {
	switch eventType {
	case EventStart:
		return patrol.StatusPatrolling
	case EventExit:
		return patrol.StatusExited
	case EventLoop:
		return patrol.StatusLooped
	default:
		return patrol.Status(eventType)
	}
}

// StatusFromMachine converts the machine state ID to a run status.
func StatusFromMachine(stateID statekit.StateID) patrol.Status {
	return patrol.Status(stateID)
}
