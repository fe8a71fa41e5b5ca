package solver

import (
	"testing"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

func TestAlgorithmXSolverUniquePuzzle(t *testing.T) {
	const puzzleStr = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79`
	clues, err := grid.ParseCanonical(puzzleStr)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}

	dl := NewAlgorithmXSolver(clues, 1)
	solutions, tooMany := dl.Solve()
	if tooMany {
		t.Fatalf("unexpectedly reported too many solutions")
	}
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}

	sg, err := grid.AsSolvedGrid(solutions[0])
	if err != nil {
		t.Fatalf("solution is not a complete grid: %v", err)
	}
	for _, l := range grid.AllLocs() {
		if clue, ok := clues.At(l); ok && sg.At(l) != clue {
			t.Errorf("solution at %v = %v, want clue %v", l, sg.At(l), clue)
		}
	}
}

func TestAlgorithmXSolverDetectsMultipleSolutions(t *testing.T) {
	clues := grid.NewGrid() // empty grid: enormously many solutions
	dl := NewAlgorithmXSolver(clues, 1)
	solutions, tooMany := dl.Solve()
	if !tooMany {
		t.Fatalf("expected too-many-solutions on an empty grid")
	}
	if len(solutions) != 2 {
		t.Fatalf("got %d solutions, want 2 (maxSolutions+1)", len(solutions))
	}
}

func TestAlgorithmXSolverRejectsUnsatisfiable(t *testing.T) {
	clues, err := grid.ParseCanonical(`
11.......
.........
.........
.........
.........
.........
.........
.........
.........`)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	dl := NewAlgorithmXSolver(clues, 1)
	solutions, tooMany := dl.Solve()
	if tooMany || len(solutions) != 0 {
		t.Fatalf("got %d solutions (tooMany=%v), want 0 for a contradictory grid", len(solutions), tooMany)
	}
}
