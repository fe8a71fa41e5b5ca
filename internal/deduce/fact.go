// Package deduce implements the human-style deduction engine (C10): hidden
// and naked singles, overlaps (locked candidates), locked sets (naked/hidden
// pairs/triples/quads), error detection, and implication chains between
// deductions found only after applying prior eliminations. Grounded on
// original_source/crate/src/deduce.rs and deduce/internals.rs — the newest
// revision only (is_naked field, implication narrowing, error-mode
// parameter), per spec.md's Open Questions. The fact vocabulary mirrors the
// technique taxonomy of the teacher's internal/solver/solution.go.
package deduce

import "github.com/kpitt/sudoku-engine/internal/grid"

// Kind discriminates the tagged Fact variants of spec.md §3.
type Kind int8

const (
	KindSingleLoc Kind = iota // hidden single: only Loc in Unit admits Num
	KindSingleNum             // naked single: only Num is possible at Loc
	KindSpeculativeAssignment
	KindNoLoc    // error: Num has no remaining Loc in Unit
	KindNoNum    // error: Loc has no remaining Num
	KindConflict // error: Num placed more than once in Unit
	KindOverlap
	KindLockedSet
	KindImplication
)

func (k Kind) String() string {
	switch k {
	case KindSingleLoc:
		return "hidden-single"
	case KindSingleNum:
		return "naked-single"
	case KindSpeculativeAssignment:
		return "speculative-assignment"
	case KindNoLoc:
		return "no-loc"
	case KindNoNum:
		return "no-num"
	case KindConflict:
		return "conflict"
	case KindOverlap:
		return "overlap"
	case KindLockedSet:
		return "locked-set"
	case KindImplication:
		return "implication"
	default:
		return "unknown"
	}
}

// Elimination is a single (numeral, location) candidate removed by a Fact.
type Elimination struct {
	Num grid.Num
	Loc grid.Loc
}

// Fact is the deduction engine's tagged output type (spec.md §3).
type Fact struct {
	Kind Kind

	// SingleLoc / Overlap / NoLoc / Conflict
	Num  grid.Num
	Unit grid.Unit

	// SingleLoc / SingleNum / SpeculativeAssignment / NoNum: the cell the
	// fact is about.
	Loc grid.Loc

	// Conflict / LockedSet: the locations involved.
	Locs []grid.Loc

	// LockedSet: the numerals involved.
	Nums []grid.Num

	// Overlap / LockedSet: the second unit the locations/numerals are
	// confined to or drawn from.
	CrossUnit *grid.Unit

	// LockedSet: true for a naked set (locations whose combined candidates
	// are exactly Nums), false for a hidden set (numerals whose combined
	// locations are exactly Locs).
	IsNaked bool

	// Eliminations this fact causes once applied.
	Eliminations []Elimination

	// Implication: the prior eliminations required to reveal Consequent, in
	// source (sweep) order, and the fact they reveal.
	Antecedents []Fact
	Consequent  *Fact
}

// IsError reports whether f is one of the three error-detection variants.
func (f Fact) IsError() bool {
	return f.Kind == KindNoLoc || f.Kind == KindNoNum || f.Kind == KindConflict
}

// IsSingle reports whether f places a value outright (hidden or naked
// single), possibly wrapped in an Implication.
func (f Fact) IsSingle() bool {
	k := f.Kind
	if k == KindImplication && f.Consequent != nil {
		k = f.Consequent.Kind
	}
	return k == KindSingleLoc || k == KindSingleNum
}

// Placement returns the (num, loc) this fact places, if it places one
// directly (possibly through an Implication).
func (f Fact) Placement() (grid.Num, grid.Loc, bool) {
	target := &f
	if f.Kind == KindImplication {
		target = f.Consequent
	}
	switch target.Kind {
	case KindSingleLoc, KindSingleNum, KindSpeculativeAssignment:
		return target.Num, target.Loc, true
	default:
		return 0, 0, false
	}
}
