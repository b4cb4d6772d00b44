// Package api provides the public API for patrol-go.
//
// patrol-go simulates an agent patrolling a rectangular grid: it walks
// forward, turns clockwise at obstructions, and stops when it steps off the
// map. The API answers two questions about a map:
//
//   - how many distinct cells the agent visits before leaving, and
//   - how many single extra obstructions would trap it in a loop.
//
// # Quick Start
//
//	solver := api.NewSolver(api.WithWorkers(4))
//	visited, err := solver.VisitedCount(ctx, mapText)
//	loops, err := solver.LoopCount(ctx, mapText)
//
// Lower-level building blocks are exposed as well: Parse turns map text into
// a Grid, Step advances one tick, and Evaluate classifies a single
// obstruction layout as looping or not.
package api

import (
	"github.com/felixgeelhaar/patrol-go/application"
	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
	"github.com/felixgeelhaar/patrol-go/infrastructure/resilience"
)

// Re-export grid types.
type (
	// Grid is a parsed map.
	Grid = grid.Grid
	// Coordinate is a cell on the map.
	Coordinate = grid.Coordinate
	// Bounds is the inclusive maximum corner of the map.
	Bounds = grid.Bounds
	// Facing is the direction the agent faces.
	Facing = grid.Facing
	// AgentState is the agent's position and facing.
	AgentState = grid.AgentState
	// Obstructions reports blocked cells.
	Obstructions = grid.Obstructions
	// ParseError describes malformed map text.
	ParseError = grid.ParseError
)

// Re-export simulation types.
type (
	// Outcome is the result of one tick.
	Outcome = patrol.Outcome
	// Verdict classifies a patrol as looped or not.
	Verdict = patrol.Verdict
	// Evaluation is the result of a patrol with loop detection.
	Evaluation = patrol.Evaluation
	// Run is the lifecycle record of one patrol.
	Run = patrol.Run
)

// Re-export application types.
type (
	// Solver turns map text into answers.
	Solver = application.Solver
	// Solution carries the answers for one map.
	Solution = application.Solution
	// Tracker runs the baseline patrol.
	Tracker = application.Tracker
	// Detector evaluates candidate obstructions.
	Detector = application.Detector
	// VisitedReport is the result of a baseline patrol.
	VisitedReport = application.VisitedReport
	// LoopReport is the result of the loop analysis.
	LoopReport = application.LoopReport
	// Option configures the solver, tracker and detector.
	Option = application.Option
	// Executor bounds concurrent evaluations.
	Executor = resilience.Executor
)

// Facings.
const (
	North = grid.North
	East  = grid.East
	South = grid.South
	West  = grid.West
)

// Verdicts.
const (
	VerdictLooped    = patrol.VerdictLooped
	VerdictNotLooped = patrol.VerdictNotLooped
)

// Errors.
var (
	// ErrParse matches every map parse failure.
	ErrParse = grid.ErrParse
	// ErrBaselineLoops indicates the unmodified map already traps the agent.
	ErrBaselineLoops = application.ErrBaselineLoops
	// ErrInvalidCandidate indicates a candidate that cannot hold an obstruction.
	ErrInvalidCandidate = application.ErrInvalidCandidate
)

// Parse parses map text.
func Parse(input string) (*Grid, error) {
	return grid.Parse(input)
}

// Step advances the agent by one tick.
func Step(state AgentState, obstructions Obstructions, bounds Bounds) Outcome {
	return patrol.Step(state, obstructions, bounds)
}

// Evaluate patrols from start until the agent exits or repeats a state.
func Evaluate(start AgentState, obstructions Obstructions, bounds Bounds) Evaluation {
	return patrol.Evaluate(start, obstructions, bounds)
}

// NewSolver creates a solver.
func NewSolver(opts ...Option) *Solver {
	return application.NewSolver(opts...)
}

// NewTracker creates a baseline tracker.
func NewTracker(opts ...Option) *Tracker {
	return application.NewTracker(opts...)
}

// NewDetector creates a loop detector.
func NewDetector(opts ...Option) *Detector {
	return application.NewDetector(opts...)
}

// NewExecutor creates an executor running at most maxConcurrent evaluations
// at once (0 = number of CPUs).
func NewExecutor(maxConcurrent int) *Executor {
	return resilience.NewExecutor(resilience.ExecutorConfig{MaxConcurrent: maxConcurrent})
}

// Re-export options.
var (
	WithWorkers     = application.WithWorkers
	WithExecutor    = application.WithExecutor
	WithMetrics     = application.WithMetrics
	WithTracer      = application.WithTracer
	WithIDGenerator = application.WithIDGenerator
)
