package rate

import (
	"testing"

	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/solve"
)

func mustSolve(t *testing.T, canonical string) (grid.Grid, grid.SolvedGrid) {
	t.Helper()
	clues, err := grid.ParseCanonical(canonical)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	summary := solve.Solve(clues, 1, solve.MinCandidates{})
	if len(summary.Solutions) != 1 {
		t.Fatalf("expected a unique solution, got %d", len(summary.Solutions))
	}
	solved, err := grid.AsSolvedGrid(summary.Solutions[0])
	if err != nil {
		t.Fatalf("AsSolvedGrid: %v", err)
	}
	return clues, solved
}

func TestEvaluateComplexity(t *testing.T) {
	tests := []struct {
		name    string
		grid    string
		want    Complexity
	}{
		{
			name: "simple",
			grid: `
			. . 1 | 7 8 . | . . .
			. 4 . | . 6 3 | 1 7 .
			6 . 8 | . . . | . . .
			- - - + - - - + - - -
			. . . | . 4 . | 9 1 .
			. . . | . . 1 | . 3 .
			. . . | . 7 . | 4 2 .
			- - - + - - - + - - -
			5 . 9 | . . . | . . .
			. 1 . | . 2 8 | 6 4 .
			. . 2 | 9 3 . | . . .
			`,
			want: Simple,
		},
		{
			name: "moderate",
			grid: `
			. . 9 | 1 . 5 | 7 . .
			2 7 . | . . 3 | . . .
			3 . . | . . 6 | . . 1
			- - - + - - - + - - -
			. 1 . | . . . | 3 5 7
			. . . | . . . | . . .
			4 . 7 | . . . | . . 2
			- - - + - - - + - - -
			. 3 . | 2 . . | . . 8
			. . 4 | . . 7 | . 2 .
			. . . | 4 . . | 9 7 .
			`,
			want: Moderate,
		},
		{
			name: "complex",
			grid: `
			7 . 6 | . 8 . | . 5 2
			. . . | 5 4 . | . . .
			. 9 5 | . . . | . . 8
			- - - + - - - + - - -
			. . 4 | 6 . . | 5 8 .
			. 2 . | 4 7 5 | . 9 1
			. 5 . | 8 . 3 | 2 4 .
			- - - + - - - + - - -
			3 . . | . . 4 | 8 2 5
			. . 1 | . 5 8 | . . .
			5 . . | . . . | 7 1 4
			`,
			want: Complex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clues, solved := mustSolve(t, tt.grid)
			got := EvaluateComplexity(clues, solved)
			if got != tt.want {
				t.Errorf("EvaluateComplexity() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComplexityString(t *testing.T) {
	if Simple.String() != "simple" || Lunatic.String() != "lunatic" {
		t.Fatalf("unexpected String() output")
	}
}
