// Package application drives patrol runs over parsed grids: the baseline
// patrol that collects visited cells, the candidate loop analysis, and the
// solver that ties both to map text.
package application

import (
	"context"
	"strconv"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
	"github.com/felixgeelhaar/patrol-go/infrastructure/logging"
	"github.com/felixgeelhaar/patrol-go/infrastructure/observability"
)

// VisitedReport is the result of a baseline patrol.
type VisitedReport struct {
	// Positions lists every visited cell, sorted by row then column.
	Positions []grid.Coordinate
	// Steps is the number of ticks including the final exiting one.
	Steps int
	// Pivots is the number of ticks that turned in place.
	Pivots int
	// Run is the lifecycle record of the patrol.
	Run *patrol.Run
}

// Count returns the number of distinct visited cells.
func (r *VisitedReport) Count() int {
	return len(r.Positions)
}

// Answer returns the visited count as a decimal string.
func (r *VisitedReport) Answer() string {
	return strconv.Itoa(r.Count())
}

// Candidates returns the visited cells excluding the start, the only places
// where an extra obstruction can change the patrol.
func (r *VisitedReport) Candidates() []grid.Coordinate {
	start := r.Run.Start.Position
	out := make([]grid.Coordinate, 0, len(r.Positions))
	for _, c := range r.Positions {
		if c != start {
			out = append(out, c)
		}
	}
	return out
}

// Tracker runs the baseline patrol.
type Tracker struct {
	cfg Config
}

// NewTracker creates a tracker.
func NewTracker(opts ...Option) *Tracker {
	return &Tracker{cfg: newConfig(opts...)}
}

// Track steps the agent from g.Start until it leaves the map, recording each
// position before the step is taken. If the unmodified map traps the agent,
// Track returns ErrBaselineLoops instead of running forever.
func (t *Tracker) Track(ctx context.Context, g *grid.Grid) (*VisitedReport, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	ctx, span := observability.StartSpan(ctx, t.cfg.Tracer, observability.SpanTrack,
		observability.AttrWidth.Int(g.Bounds.Width()),
		observability.AttrHeight.Int(g.Bounds.Height()),
	)

	lc, err := startRun(ctx, &t.cfg, patrol.RunKindTrack, g.Start, nil)
	if err != nil {
		observability.EndSpan(span, err)
		return nil, err
	}
	run := lc.run
	span.SetAttributes(observability.AttrRunID.String(run.ID))

	logging.Info().
		Add(logging.RunID(run.ID)).
		Add(logging.Position(g.Start.Position)).
		Add(logging.Facing(g.Start.Facing)).
		Msg("patrol started")

	visited := make([]bool, g.Bounds.Area())
	positions := make([]grid.Coordinate, 0, g.Bounds.Width()+g.Bounds.Height())
	seen := patrol.NewStateSet(g.Bounds)
	seen.Add(g.Start)

	state := g.Start
	status := patrol.StatusExited
	for {
		if i := g.Bounds.Index(state.Position); !visited[i] {
			visited[i] = true
			positions = append(positions, state.Position)
		}

		out := patrol.Step(state, g.Obstructions, g.Bounds)
		if err := run.Record(out); err != nil {
			lc.abort(ctx)
			observability.EndSpan(span, err)
			return nil, err
		}
		if !out.Continues() {
			break
		}
		state = out.State
		if !seen.Add(state) {
			status = patrol.StatusLooped
			break
		}
	}

	if err := lc.finish(ctx, status); err != nil {
		observability.EndSpan(span, err)
		return nil, err
	}

	if status == patrol.StatusLooped {
		logging.Warn().
			Add(logging.RunID(run.ID)).
			Add(logging.Steps(run.Steps)).
			Add(logging.Position(state.Position)).
			Msg("patrol never exits")
		observability.EndSpan(span, ErrBaselineLoops)
		return nil, ErrBaselineLoops
	}

	grid.SortCoordinates(positions)
	span.SetAttributes(
		observability.AttrVisited.Int(len(positions)),
		observability.AttrSteps.Int(run.Steps),
	)
	observability.EndSpan(span, nil)

	logging.Info().
		Add(logging.RunID(run.ID)).
		Add(logging.Visited(len(positions))).
		Add(logging.Steps(run.Steps)).
		Add(logging.Duration(run.Duration())).
		Msg("patrol exited")

	return &VisitedReport{
		Positions: positions,
		Steps:     run.Steps,
		Pivots:    run.Pivots,
		Run:       run,
	}, nil
}
