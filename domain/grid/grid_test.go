package grid

import "testing"

func TestFacing_Pivot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		facing   Facing
		expected Facing
	}{
		{North, East},
		{East, South},
		{South, West},
		{West, North},
	}

	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.facing.Pivot(); got != tt.expected {
				t.Errorf("%s.Pivot() = %s, want %s", tt.facing, got, tt.expected)
			}
		})
	}
}

func TestFacing_PivotCycle(t *testing.T) {
	t.Parallel()

	for _, f := range AllFacings() {
		if got := f.Pivot().Pivot().Pivot().Pivot(); got != f {
			t.Errorf("four pivots from %s = %s, want %s", f, got, f)
		}
	}
}

func TestFacing_Delta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		facing   Facing
		expected Coordinate
	}{
		{North, Coordinate{X: 0, Y: 1}},
		{East, Coordinate{X: 1, Y: 0}},
		{South, Coordinate{X: 0, Y: -1}},
		{West, Coordinate{X: -1, Y: 0}},
	}

	for _, tt := range tests {
		if got := tt.facing.Delta(); got != tt.expected {
			t.Errorf("%s.Delta() = %v, want %v", tt.facing, got, tt.expected)
		}
	}
}

func TestFacing_String(t *testing.T) {
	t.Parallel()

	if got := West.String(); got != "west" {
		t.Errorf("West.String() = %q, want %q", got, "west")
	}
	if got := Facing(9).String(); got != "unknown" {
		t.Errorf("Facing(9).String() = %q, want %q", got, "unknown")
	}
	if Facing(9).IsValid() {
		t.Error("Facing(9).IsValid() = true, want false")
	}

	text, err := East.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "east" {
		t.Errorf("MarshalText() = %q, want %q", text, "east")
	}
}

func TestBounds_Contains(t *testing.T) {
	t.Parallel()

	b := Bounds{MaxX: 9, MaxY: 4}

	tests := []struct {
		name     string
		c        Coordinate
		expected bool
	}{
		{"origin", Coordinate{0, 0}, true},
		{"max corner", Coordinate{9, 4}, true},
		{"inside", Coordinate{3, 2}, true},
		{"left of", Coordinate{-1, 2}, false},
		{"below", Coordinate{3, -1}, false},
		{"right of", Coordinate{10, 2}, false},
		{"above", Coordinate{3, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := b.Contains(tt.c); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.expected)
			}
		})
	}
}

func TestBounds_Dimensions(t *testing.T) {
	t.Parallel()

	b := Bounds{MaxX: 9, MaxY: 4}
	if b.Width() != 10 {
		t.Errorf("Width() = %d, want 10", b.Width())
	}
	if b.Height() != 5 {
		t.Errorf("Height() = %d, want 5", b.Height())
	}
	if b.Area() != 50 {
		t.Errorf("Area() = %d, want 50", b.Area())
	}
	if b.StateSpace() != 200 {
		t.Errorf("StateSpace() = %d, want 200", b.StateSpace())
	}
}

func TestBounds_StateIndexIsDense(t *testing.T) {
	t.Parallel()

	b := Bounds{MaxX: 3, MaxY: 2}
	seen := make(map[int]bool)
	for y := 0; y <= b.MaxY; y++ {
		for x := 0; x <= b.MaxX; x++ {
			for _, f := range AllFacings() {
				idx := b.StateIndex(AgentState{Position: Coordinate{x, y}, Facing: f})
				if idx < 0 || idx >= b.StateSpace() {
					t.Fatalf("StateIndex out of range: %d", idx)
				}
				if seen[idx] {
					t.Fatalf("StateIndex collision at %d", idx)
				}
				seen[idx] = true
			}
		}
	}
	if len(seen) != b.StateSpace() {
		t.Errorf("indexed %d states, want %d", len(seen), b.StateSpace())
	}
}

func TestObstructionSet_With(t *testing.T) {
	t.Parallel()

	base := NewObstructionSet(Coordinate{1, 1}, Coordinate{2, 2})
	extra := Coordinate{5, 5}
	view := base.With(extra)

	if !view.Contains(extra) {
		t.Error("augmented view should contain the extra cell")
	}
	if !view.Contains(Coordinate{1, 1}) {
		t.Error("augmented view should contain baseline cells")
	}
	if base.Contains(extra) {
		t.Error("baseline set must not gain the extra cell")
	}
	if base.Len() != 2 {
		t.Errorf("Len() = %d, want 2", base.Len())
	}
}

func TestObstructionSet_CellsSorted(t *testing.T) {
	t.Parallel()

	s := NewObstructionSet(Coordinate{3, 1}, Coordinate{0, 2}, Coordinate{1, 1})
	cells := s.Cells()
	want := []Coordinate{{1, 1}, {3, 1}, {0, 2}}

	if len(cells) != len(want) {
		t.Fatalf("Cells() len = %d, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestGrid_RenderRoundTrip(t *testing.T) {
	t.Parallel()

	input := "....#.....\n..........\n....^.....\n"
	g, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := g.Render(); got != input {
		t.Errorf("Render() = %q, want %q", got, input)
	}
}
