package deduce

import "github.com/kpitt/sudoku-engine/internal/grid"

// wrapImplication wraps f as a KindImplication fact listing, as antecedents,
// the eliminations from earlier sweeps that touch a location f's own
// reasoning depends on (its Unit, CrossUnit, and named Loc/Locs). If f would
// have been found without any of those eliminations — none of them touch its
// surface — f is returned unwrapped.
//
// This is a narrower approximation of the minimal-antecedent-subset search
// original_source/crate/src/deduce/internals.rs performs (removing candidate
// antecedents one at a time and re-checking whether the consequent still
// holds): instead of testing for minimality, every prior elimination that
// touches the surface is kept, grouped by the sweep it came from.
func wrapImplication(f Fact, allElimSweeps [][]Elimination) Fact {
	surface := touchedLocs(f)

	var antecedents []Fact
	for _, sweepElims := range allElimSweeps {
		var relevant []Elimination
		for _, e := range sweepElims {
			if surface[e.Loc] {
				relevant = append(relevant, e)
			}
		}
		if len(relevant) > 0 {
			antecedents = append(antecedents, Fact{Kind: f.Kind, Eliminations: relevant})
		}
	}
	if len(antecedents) == 0 {
		return f
	}

	consequent := f
	return Fact{
		Kind:         KindImplication,
		Antecedents:  antecedents,
		Consequent:   &consequent,
		Eliminations: f.Eliminations,
	}
}

// touchedLocs returns the set of locations f's own detection logic reads:
// its Unit and CrossUnit (if any), plus any Loc/Locs it names directly.
func touchedLocs(f Fact) map[grid.Loc]bool {
	out := map[grid.Loc]bool{}
	mark := func(u grid.Unit) {
		for _, l := range u.Locs() {
			out[l] = true
		}
	}
	switch f.Kind {
	case KindSingleLoc, KindOverlap, KindNoLoc, KindConflict, KindLockedSet:
		mark(f.Unit)
	}
	if f.CrossUnit != nil {
		mark(*f.CrossUnit)
	}
	switch f.Kind {
	case KindSingleLoc, KindSingleNum, KindSpeculativeAssignment, KindNoNum:
		out[f.Loc] = true
	}
	for _, l := range f.Locs {
		out[l] = true
	}
	return out
}
