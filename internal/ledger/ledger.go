// Package ledger implements the constraint ledger (solver state): it tracks
// remaining possibilities plus unset locations, and propagates overlap
// (locked-candidate) constraints to a fixed point. Grounded on
// original_source/crate/src/solve/ledger.rs and masks.rs, with the
// elimination style of the teacher's internal/board/board.go.
package ledger

import (
	"fmt"

	"github.com/kpitt/sudoku-engine/internal/asgmt"
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// Ledger owns an AssignmentSet plus the set of locations not yet solved.
//
// Invariants (spec.md §3):
//   - If loc is in Unset, at least one (n, loc) pair remains in Asgmts.
//   - If loc is not in Unset, exactly one (n, loc) remains, and every peer's
//     corresponding n is excluded.
type Ledger struct {
	Asgmts asgmt.Set
	Unset  bits.Set81
}

// ErrInvalid reports a dead end: a numeral has no legal location in some
// unit, or a location has no legal numeral.
type ErrInvalid struct {
	Reason string
}

func (e *ErrInvalid) Error() string { return "ledger: invalid: " + e.Reason }

func invalid(format string, a ...any) error {
	return &ErrInvalid{Reason: fmt.Sprintf(format, a...)}
}

// FromClues builds a Ledger from a clue grid.
func FromClues(clues grid.Grid) (*Ledger, error) {
	as, err := asgmt.FromGrid(clues)
	if err != nil {
		return nil, &ErrInvalid{Reason: err.Error()}
	}
	l := &Ledger{Asgmts: as, Unset: bits.FullSet81()}
	for _, loc := range grid.AllLocs() {
		if _, ok := clues.At(loc); ok {
			l.Unset.Remove(loc.Index())
		}
	}
	return l, nil
}

// Clone returns a deep copy of l, for the backtracking solver to branch on.
func (l *Ledger) Clone() *Ledger {
	c := *l
	return &c
}

// Assign records that num is placed at loc: narrows the assignment set and
// marks loc solved.
func (l *Ledger) Assign(num grid.Num, loc grid.Loc) {
	l.Asgmts.Apply(asgmt.Assignment{Num: num, Loc: loc})
	l.Unset.Remove(loc.Index())
}

// IsComplete reports whether every location has been solved.
func (l *Ledger) IsComplete() bool { return l.Unset.IsEmpty() }

// ToGrid renders the ledger's solved locations as a Grid.
func (l *Ledger) ToGrid() grid.Grid { return l.Asgmts.ToGrid() }

// ApplyImplications repeatedly propagates overlap eliminations and resulting
// singles until a fixed point or a dead end (spec.md §4.3):
//
//  1. EliminateByOverlaps narrows every numeral's remaining locations using
//     locked-candidate (block/line overlap) reasoning.
//  2. Any location left with exactly one remaining numeral is assigned.
//  3. Repeat until no new singles appear; return the set of two-candidate
//     locations ("doubles") at the fixed point, for pivot selection.
func (l *Ledger) ApplyImplications() (doubles bits.Set81, err error) {
	for {
		if err := l.eliminateByOverlaps(); err != nil {
			return bits.Set81{}, err
		}

		singles, dbls, err := l.Asgmts.SinglesAndDoubles()
		if err != nil {
			return bits.Set81{}, &ErrInvalid{Reason: err.Error()}
		}
		doubles = dbls

		newSingles := singles.And(l.Unset)
		if newSingles.IsEmpty() {
			return doubles, nil
		}
		for _, idx := range newSingles.Values() {
			loc := grid.Loc(idx)
			nums := l.Asgmts.NumsAt(loc)
			v, ok := nums.Min()
			if !ok || nums.Count() != 1 {
				return bits.Set81{}, invalid("location %s lost its single candidate mid-pass", loc)
			}
			l.Assign(grid.NumFromIndex(v), loc)
		}
	}
}
