package statemachine

import (
	"github.com/felixgeelhaar/statekit"
)

// guardHasRun refuses to start without a run to record into.
// Note: In statekit, guards receive the context by value. Since our context is *Context,
// the guard receives *Context directly.
func guardHasRun(ctx *Context, _ statekit.Event) bool {
	return ctx != nil && ctx.Run != nil
}

// guardHasStepped requires at least one step before a loop can be declared:
// a repeated state needs a state to repeat.
func guardHasStepped(ctx *Context, _ statekit.Event) bool {
	return ctx != nil && ctx.Run != nil && ctx.Run.Steps > 0
}
