package deduce

import (
	"testing"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

func mustParse(t *testing.T, s string) grid.Grid {
	t.Helper()
	g, err := grid.ParseCanonical(s)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	return g
}

const simplePuzzle = `
534678912
672195348
198342567
859761423
4.6853791
713924856
961537284
287419635
345286179`

func TestDeduceSolvesPureSinglesPuzzle(t *testing.T) {
	clues := mustParse(t, simplePuzzle)
	ff := NewFactFinder(clues)

	facts, err := ff.Deduce(Ignore)
	if err != nil {
		t.Fatalf("Deduce: %v", err)
	}
	placed := false
	for _, f := range facts {
		if num, loc, ok := f.Placement(); ok && loc == grid.LocAt(4, 1) {
			if num != 2 {
				t.Errorf("deduced %v at r5c2, want 2", num)
			}
			placed = true
		}
	}
	if !placed {
		t.Fatal("expected a placement fact for the single missing cell")
	}
}

func TestDeduceSinglesFastPath(t *testing.T) {
	clues := mustParse(t, simplePuzzle)
	ff := NewFactFinder(clues)
	facts := ff.DeduceSingles()
	if len(facts) == 0 {
		t.Fatal("DeduceSingles found nothing on a puzzle missing exactly one cell")
	}
}

func TestFactFinderDetectsConflict(t *testing.T) {
	clues := mustParse(t, `
55.......
.........
.........
.........
.........
.........
.........
.........
.........`)
	ff := NewFactFinder(clues)
	facts, err := ff.Deduce(Collect)
	if err != nil {
		t.Fatalf("Deduce: %v", err)
	}
	foundConflict := false
	for _, f := range facts {
		if f.Kind == KindConflict {
			foundConflict = true
		}
	}
	if !foundConflict {
		t.Error("expected at least one Conflict fact for the duplicate 5s")
	}
}

func TestFactFinderCloneIsIndependent(t *testing.T) {
	clues := mustParse(t, simplePuzzle)
	ff := NewFactFinder(clues)
	clone := ff.Clone()

	clone.Eliminate(clone.PossibleAssignments().Assignments()[0])
	if ff.PossibleAssignments().Equal(clone.PossibleAssignments()) {
		t.Error("mutating the clone should not affect the original")
	}
}
