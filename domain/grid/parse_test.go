package grid

import (
	"errors"
	"strings"
	"testing"
)

const exampleMap = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestParse_Example(t *testing.T) {
	t.Parallel()

	g, err := Parse(exampleMap)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if g.Bounds != (Bounds{MaxX: 9, MaxY: 9}) {
		t.Errorf("Bounds = %+v, want {MaxX:9 MaxY:9}", g.Bounds)
	}
	wantStart := AgentState{Position: Coordinate{X: 4, Y: 3}, Facing: North}
	if g.Start != wantStart {
		t.Errorf("Start = %+v, want %+v", g.Start, wantStart)
	}
	if g.Obstructions.Len() != 8 {
		t.Errorf("Obstructions.Len() = %d, want 8", g.Obstructions.Len())
	}

	// Top row is y = 9, bottom row is y = 0.
	for _, c := range []Coordinate{{4, 9}, {9, 8}, {0, 1}, {6, 0}} {
		if !g.Obstructions.Contains(c) {
			t.Errorf("expected obstruction at %v", c)
		}
	}
	if g.Obstructions.Contains(Coordinate{4, 0}) {
		t.Error("unexpected obstruction at (4,0)")
	}
}

func TestParse_IgnoresSurroundingBlankLines(t *testing.T) {
	t.Parallel()

	g, err := Parse("\n\n  \n.^.\n...\n\n\t\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Bounds != (Bounds{MaxX: 2, MaxY: 1}) {
		t.Errorf("Bounds = %+v, want {MaxX:2 MaxY:1}", g.Bounds)
	}
	if g.Start.Position != (Coordinate{X: 1, Y: 1}) {
		t.Errorf("Start.Position = %v, want (1,1)", g.Start.Position)
	}
}

func TestParse_CRLF(t *testing.T) {
	t.Parallel()

	g, err := Parse("#..\r\n.^.\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !g.Obstructions.Contains(Coordinate{X: 0, Y: 1}) {
		t.Error("expected obstruction at (0,1)")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantErr    error
		wantLine   int
		wantColumn int
	}{
		{
			name:       "unrecognized symbol",
			input:      "...\n.^x\n...",
			wantErr:    ErrUnrecognizedSymbol,
			wantLine:   2,
			wantColumn: 3,
		},
		{
			name:       "other direction marker",
			input:      ".>.\n...",
			wantErr:    ErrUnrecognizedSymbol,
			wantLine:   1,
			wantColumn: 2,
		},
		{
			name:     "ragged rows",
			input:    "...\n.^..\n...",
			wantErr:  ErrRaggedRows,
			wantLine: 2,
		},
		{
			name:     "interior blank line",
			input:    ".^.\n\n...",
			wantErr:  ErrRaggedRows,
			wantLine: 2,
		},
		{
			name:    "missing agent",
			input:   "...\n.#.\n...",
			wantErr: ErrMissingAgent,
		},
		{
			name:       "two agents",
			input:      "\n.^.\n..^",
			wantErr:    ErrMultipleAgents,
			wantLine:   3,
			wantColumn: 3,
		},
		{
			name:    "empty input",
			input:   "\n \n",
			wantErr: ErrEmptyGrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse() = %+v, want error", g)
			}
			if g != nil {
				t.Error("Parse() returned a partial grid alongside an error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("errors.Is(err, ErrParse) = false for %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(err, %v) = false for %v", tt.wantErr, err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", perr.Line, tt.wantLine)
			}
			if perr.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", perr.Column, tt.wantColumn)
			}
		})
	}
}

func TestParseError_Message(t *testing.T) {
	t.Parallel()

	err := &ParseError{Line: 2, Column: 3, Err: ErrUnrecognizedSymbol, Detail: `'x'`}
	msg := err.Error()
	for _, want := range []string{"line 2", "column 3", "unrecognized symbol", "'x'"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}
