package statemachine

import (
	"github.com/felixgeelhaar/statekit"
)

// beginRun starts the run clock.
// In statekit, actions receive a pointer to the context. Since our context is *Context,
// actions receive **Context.
func beginRun(ctx **Context, _ statekit.Event) {
	if ctx == nil || *ctx == nil || (*ctx).Run == nil {
		return
	}
	(*ctx).Run.Begin()
}

// finishRun stamps the terminal status on the run.
func finishRun(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil || (*ctx).Run == nil {
		return
	}
	(*ctx).Run.TransitionTo(StatusForEvent(event.Type))
}
