package application

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
)

func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return "run-" + strconv.FormatInt(n.Add(1), 10)
	}
}

func TestTracker_Track(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"scenario A", scenarioA, "41"},
		{"scenario B", scenarioB, "7"},
		{"open rectangle", openRectangle, "9"},
		{"start facing out at the edge", "..^..", "1"},
		{"single cell", "^", "1"},
		{"blocked then exits", "#\n^", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := mustParse(t, tt.input)
			report, err := NewTracker().Track(context.Background(), g)
			if err != nil {
				t.Fatalf("Track() error = %v", err)
			}
			if got := report.Answer(); got != tt.want {
				t.Errorf("Track().Answer() = %s, want %s", got, tt.want)
			}
			if report.Count() < 1 || report.Count() > g.Bounds.Area() {
				t.Errorf("Count() = %d, want within [1, %d]", report.Count(), g.Bounds.Area())
			}
		})
	}
}

func TestTracker_Track_Report(t *testing.T) {
	t.Parallel()

	g := mustParse(t, scenarioB)
	report, err := NewTracker(WithIDGenerator(sequentialIDs())).Track(context.Background(), g)
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	want := []grid.Coordinate{
		{X: 4, Y: 0},
		{X: 4, Y: 1}, {X: 5, Y: 1}, {X: 6, Y: 1}, {X: 7, Y: 1}, {X: 8, Y: 1}, {X: 9, Y: 1},
	}
	if len(report.Positions) != len(want) {
		t.Fatalf("Positions = %v, want %v", report.Positions, want)
	}
	for i := range want {
		if report.Positions[i] != want[i] {
			t.Errorf("Positions[%d] = %s, want %s", i, report.Positions[i], want[i])
		}
	}

	// One move north, one pivot, five moves east, one exiting tick.
	if report.Steps != 8 || report.Pivots != 1 {
		t.Errorf("Steps/Pivots = %d/%d, want 8/1", report.Steps, report.Pivots)
	}
	if report.Run.ID != "run-1" {
		t.Errorf("Run.ID = %s, want run-1", report.Run.ID)
	}
	if report.Run.Status != patrol.StatusExited {
		t.Errorf("Run.Status = %s, want exited", report.Run.Status)
	}
	if report.Run.Kind != patrol.RunKindTrack {
		t.Errorf("Run.Kind = %s, want track", report.Run.Kind)
	}

	candidates := report.Candidates()
	if len(candidates) != 6 {
		t.Errorf("Candidates() = %v, want 6 cells", candidates)
	}
	for _, c := range candidates {
		if c == g.Start.Position {
			t.Errorf("Candidates() includes the start %s", c)
		}
	}
}

func TestTracker_Track_Idempotent(t *testing.T) {
	t.Parallel()

	g := mustParse(t, scenarioA)
	tracker := NewTracker()

	first, err := tracker.Track(context.Background(), g)
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	second, err := tracker.Track(context.Background(), g)
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	if first.Answer() != second.Answer() || first.Steps != second.Steps {
		t.Errorf("Track() not idempotent: %s/%d then %s/%d", first.Answer(), first.Steps, second.Answer(), second.Steps)
	}
	if first.Run.ID == second.Run.ID {
		t.Error("each Track() call should get its own run ID")
	}
}

func TestTracker_Track_BaselineLoops(t *testing.T) {
	t.Parallel()

	_, err := NewTracker().Track(context.Background(), mustParse(t, rectangleTrap))
	if !errors.Is(err, ErrBaselineLoops) {
		t.Errorf("Track() error = %v, want ErrBaselineLoops", err)
	}
}

func TestTracker_Track_NilGrid(t *testing.T) {
	t.Parallel()

	if _, err := NewTracker().Track(context.Background(), nil); !errors.Is(err, ErrNilGrid) {
		t.Errorf("Track(nil) error = %v, want ErrNilGrid", err)
	}
}
