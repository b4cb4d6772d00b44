package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Status adds a run status field.
func Status(s patrol.Status) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("status", string(s))
	}
}

// Position adds x and y fields for the agent's position.
func Position(c grid.Coordinate) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("x", c.X).Int("y", c.Y)
	}
}

// Facing adds a facing field.
func Facing(f grid.Facing) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("facing", f.String())
	}
}

// Candidate adds the coordinate of a hypothetical obstruction.
func Candidate(c grid.Coordinate) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("candidate", c.String())
	}
}

// Verdict adds a loop verdict field.
func Verdict(v patrol.Verdict) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("verdict", string(v))
	}
}

// Steps adds a step count field.
func Steps(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("steps", n)
	}
}

// Visited adds a visited cell count field.
func Visited(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("visited", n)
	}
}

// Workers adds a worker count field.
func Workers(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("workers", n)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// Int adds an int field with custom key.
func Int(key string, value int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, value)
	}
}
