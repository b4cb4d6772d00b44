package statemachine

import "errors"

// ErrTransitionRejected indicates the statechart refused an event.
var ErrTransitionRejected = errors.New("transition rejected")
