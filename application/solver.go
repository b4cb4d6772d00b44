package application

import (
	"context"
	"fmt"
	"time"

	domainconfig "github.com/felixgeelhaar/patrol-go/domain/config"
	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/infrastructure/logging"
	"github.com/felixgeelhaar/patrol-go/infrastructure/observability"
)

// Solution carries the answers for one map.
type Solution struct {
	Grid *grid.Grid
	// Visited is always set; the loop analysis needs its candidates.
	Visited *VisitedReport
	// Loops is nil when only the visited count was requested.
	Loops    *LoopReport
	Duration time.Duration
}

// Solver turns map text into answers.
type Solver struct {
	cfg      Config
	tracker  *Tracker
	detector *Detector
}

// NewSolver creates a solver. The tracker and detector share its options.
func NewSolver(opts ...Option) *Solver {
	cfg := newConfig(opts...)
	share := func(c *Config) { *c = cfg }
	return &Solver{
		cfg:      cfg,
		tracker:  NewTracker(share),
		detector: NewDetector(share),
	}
}

// Parse parses map text inside a span.
func (s *Solver) Parse(ctx context.Context, input string) (*grid.Grid, error) {
	_, span := observability.StartSpan(ctx, s.cfg.Tracer, observability.SpanParse)
	g, err := grid.Parse(input)
	if err != nil {
		s.cfg.Metrics.RecordError(ctx, "parse")
		observability.EndSpan(span, err)
		return nil, err
	}
	span.SetAttributes(
		observability.AttrWidth.Int(g.Bounds.Width()),
		observability.AttrHeight.Int(g.Bounds.Height()),
	)
	observability.EndSpan(span, nil)
	return g, nil
}

// VisitedCount returns the number of distinct cells the agent visits.
func (s *Solver) VisitedCount(ctx context.Context, input string) (string, error) {
	sol, err := s.SolvePart(ctx, input, domainconfig.PartVisited)
	if err != nil {
		return "", err
	}
	return sol.Visited.Answer(), nil
}

// LoopCount returns the number of single-obstruction placements that trap the agent.
func (s *Solver) LoopCount(ctx context.Context, input string) (string, error) {
	sol, err := s.SolvePart(ctx, input, domainconfig.PartLoops)
	if err != nil {
		return "", err
	}
	return sol.Loops.Answer(), nil
}

// Solve computes both answers from a single parse.
func (s *Solver) Solve(ctx context.Context, input string) (*Solution, error) {
	return s.SolvePart(ctx, input, domainconfig.PartAll)
}

// SolvePart computes the answers selected by part.
func (s *Solver) SolvePart(ctx context.Context, input string, part domainconfig.Part) (*Solution, error) {
	start := time.Now()

	g, err := s.Parse(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}

	sol := &Solution{Grid: g}
	sol.Visited, err = s.tracker.Track(ctx, g)
	if err != nil {
		return nil, err
	}

	if part == domainconfig.PartLoops || part == domainconfig.PartAll {
		sol.Loops, err = s.detector.Detect(ctx, g, sol.Visited.Candidates())
		if err != nil {
			return nil, err
		}
	}

	sol.Duration = time.Since(start)
	logging.Debug().
		Add(logging.Str("part", string(part))).
		Add(logging.Duration(sol.Duration)).
		Msg("solved")
	return sol, nil
}
