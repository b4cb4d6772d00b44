package application

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
	"github.com/felixgeelhaar/patrol-go/infrastructure/logging"
	"github.com/felixgeelhaar/patrol-go/infrastructure/observability"
)

// CandidateResult is the verdict for one extra obstruction.
type CandidateResult struct {
	Candidate  grid.Coordinate
	Evaluation patrol.Evaluation
	RunID      string
}

// LoopReport is the result of evaluating every candidate.
type LoopReport struct {
	// Results holds one entry per candidate, in candidate order.
	Results []CandidateResult
	// Positions lists the looping placements, sorted by row then column.
	Positions []grid.Coordinate
	// Workers is the concurrency the evaluation ran with.
	Workers int
}

// Count returns the number of placements that trap the agent.
func (r *LoopReport) Count() int {
	return len(r.Positions)
}

// Answer returns the looping placement count as a decimal string.
func (r *LoopReport) Answer() string {
	return strconv.Itoa(r.Count())
}

// Detector evaluates candidate obstructions on a bounded worker pool.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector.
func NewDetector(opts ...Option) *Detector {
	return &Detector{cfg: newConfig(opts...)}
}

// Detect re-runs the patrol from g.Start once per candidate with that cell
// added to the obstructions and classifies each run as looped or not.
// Candidates must be in bounds, not obstructed, and not the start position.
func (d *Detector) Detect(ctx context.Context, g *grid.Grid, candidates []grid.Coordinate) (*LoopReport, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, c := range candidates {
		if err := checkCandidate(g, c); err != nil {
			return nil, err
		}
	}

	workers := d.cfg.Workers
	ctx, span := observability.StartSpan(ctx, d.cfg.Tracer, observability.SpanDetect,
		observability.AttrCandidates.Int(len(candidates)),
		observability.AttrWorkers.Int(workers),
	)

	logging.Info().
		Add(logging.Int("candidates", len(candidates))).
		Add(logging.Workers(workers)).
		Msg("loop detection started")

	results := make([]CandidateResult, len(candidates))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range candidates {
		eg.Go(func() error {
			res, err := d.evaluate(egCtx, g, c)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		d.cfg.Metrics.RecordError(ctx, "detect")
		observability.EndSpan(span, err)
		return nil, err
	}

	var positions []grid.Coordinate
	for _, r := range results {
		if r.Evaluation.Verdict == patrol.VerdictLooped {
			positions = append(positions, r.Candidate)
		}
	}
	grid.SortCoordinates(positions)

	span.SetAttributes(observability.AttrLooped.Int(len(positions)))
	observability.EndSpan(span, nil)

	logging.Info().
		Add(logging.Int("candidates", len(candidates))).
		Add(logging.Int("looped", len(positions))).
		Msg("loop detection finished")

	return &LoopReport{Results: results, Positions: positions, Workers: workers}, nil
}

// evaluate runs one candidate through its own lifecycle.
func (d *Detector) evaluate(ctx context.Context, g *grid.Grid, candidate grid.Coordinate) (CandidateResult, error) {
	lc, err := startRun(ctx, &d.cfg, patrol.RunKindEvaluate, g.Start, &candidate)
	if err != nil {
		return CandidateResult{}, err
	}

	ev, err := d.cfg.Executor.Evaluate(ctx, g.Start, g.Obstructions.With(candidate), g.Bounds)
	if err != nil {
		lc.abort(ctx)
		return CandidateResult{}, fmt.Errorf("candidate %s: %w", candidate, err)
	}
	if err := lc.run.Absorb(ev); err != nil {
		lc.abort(ctx)
		return CandidateResult{}, err
	}

	status := patrol.StatusExited
	if ev.Verdict == patrol.VerdictLooped {
		status = patrol.StatusLooped
	}
	if err := lc.finish(ctx, status); err != nil {
		return CandidateResult{}, err
	}
	d.cfg.Metrics.RecordCandidate(ctx, ev.Verdict.String())

	logging.Debug().
		Add(logging.RunID(lc.run.ID)).
		Add(logging.Candidate(candidate)).
		Add(logging.Verdict(ev.Verdict)).
		Add(logging.Steps(ev.Steps)).
		Msg("candidate evaluated")

	return CandidateResult{Candidate: candidate, Evaluation: ev, RunID: lc.run.ID}, nil
}

func checkCandidate(g *grid.Grid, c grid.Coordinate) error {
	switch {
	case !g.Bounds.Contains(c):
		return fmt.Errorf("%w: %s is outside the map", ErrInvalidCandidate, c)
	case c == g.Start.Position:
		return fmt.Errorf("%w: %s is the start position", ErrInvalidCandidate, c)
	case g.Obstructions.Contains(c):
		return fmt.Errorf("%w: %s is already obstructed", ErrInvalidCandidate, c)
	}
	return nil
}
