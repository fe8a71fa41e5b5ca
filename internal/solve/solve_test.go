package solve

import (
	"testing"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

const uniquePuzzle = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79`

func mustParse(t *testing.T, s string) grid.Grid {
	t.Helper()
	g, err := grid.ParseCanonical(s)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	return g
}

func TestSolveUniquePuzzle(t *testing.T) {
	tests := []struct {
		name   string
		helper PivotHelper
	}{
		{"MinCandidates", MinCandidates{}},
		{"JCZ", JCZ{}},
		{"Canonical", Canonical{}},
	}
	clues := mustParse(t, uniquePuzzle)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Solve(clues, 1, tt.helper)
			if summary.TooManySolutions {
				t.Fatalf("unexpectedly found more than one solution")
			}
			if len(summary.Solutions) != 1 {
				t.Fatalf("got %d solutions, want 1", len(summary.Solutions))
			}
			sg, err := grid.AsSolvedGrid(summary.Solutions[0])
			if err != nil {
				t.Fatalf("solution is not a complete grid: %v", err)
			}
			for _, l := range grid.AllLocs() {
				if clue, ok := clues.At(l); ok && sg.At(l) != clue {
					t.Errorf("solution at %v = %v, want clue %v", l, sg.At(l), clue)
				}
			}
		})
	}
}

// TestSolveCanonicalScenarios exercises the three concrete fixtures named in
// spec.md §8's testable properties.
func TestSolveCanonicalScenarios(t *testing.T) {
	tests := []struct {
		name          string
		clues         string
		wantSolutions int
	}{
		{
			name:          "unique",
			clues:         ".6.5.4.3.1...9...8.........9...5...6.4.6.2.7.7...4...5.........4...8...1.5.2.3.4.",
			wantSolutions: 1,
		},
		{
			name:          "none",
			clues:         "1....6....59.....82....8....45...3....3...7....6..3.54...325..6........17389.....",
			wantSolutions: 0,
		},
		{
			name:          "multiple",
			clues:         ".3....91.8.6.....2...8.4...5.2..7..........7.9..4.65.....7.3...3.8.....1.97...8..",
			wantSolutions: 9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clues := mustParse(t, tt.clues)
			summary := Solve(clues, tt.wantSolutions+1, MinCandidates{})
			if summary.TooManySolutions {
				t.Fatalf("found more than %d solutions", tt.wantSolutions)
			}
			if len(summary.Solutions) != tt.wantSolutions {
				t.Fatalf("got %d solutions, want %d", len(summary.Solutions), tt.wantSolutions)
			}
		})
	}
}

func TestSolveDetectsUnsolvable(t *testing.T) {
	clues := mustParse(t, `
11.......
.........
.........
.........
.........
.........
.........
.........
.........`)
	summary := Solve(clues, 1, MinCandidates{})
	if len(summary.Solutions) != 0 {
		t.Fatalf("got %d solutions for a contradictory grid, want 0", len(summary.Solutions))
	}
}

func TestSolveEmptyGridHasManySolutions(t *testing.T) {
	summary := Solve(grid.NewGrid(), 1, MinCandidates{})
	if !summary.TooManySolutions {
		t.Fatal("expected TooManySolutions on an empty grid")
	}
	if len(summary.Solutions) != 2 {
		t.Fatalf("got %d solutions, want 2 (maxSolutions+1)", len(summary.Solutions))
	}
}

func TestSummaryNumHoles(t *testing.T) {
	a := mustParse(t, uniquePuzzle)
	summary := Solve(a, 1, MinCandidates{})
	if got := summary.NumHoles(); got != 0 {
		t.Errorf("NumHoles() for a unique-solution puzzle = %d, want 0", got)
	}

	empty := Solve(grid.NewGrid(), 3, MinCandidates{})
	if got := empty.NumHoles(); got == 0 {
		t.Errorf("NumHoles() for an empty-grid search = %d, want > 0", got)
	}
}
