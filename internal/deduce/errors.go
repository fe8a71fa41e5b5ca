package deduce

import "github.com/kpitt/sudoku-engine/internal/grid"

// findErrors looks for Conflict, NoLoc, and NoNum facts against the actual
// (clue + derived) assignments and the working possibility set. mode
// Ignore skips the pass; ShortCircuit stops at the first error found;
// Collect gathers all of them.
func findErrors(view sweepView, mode ErrorMode) []Fact {
	if mode == Ignore {
		return nil
	}
	var out []Fact

	for _, u := range grid.AllUnits() {
		for _, n := range grid.AllNums() {
			var placedAt []grid.Loc
			for _, l := range u.Locs() {
				if view.actual.Contains(assignmentOf(n, l)) {
					placedAt = append(placedAt, l)
				}
			}
			if len(placedAt) > 1 {
				out = append(out, Fact{Kind: KindConflict, Num: n, Unit: u, Locs: placedAt})
				if mode == ShortCircuit {
					return out
				}
				continue
			}
			if len(placedAt) == 1 {
				continue
			}
			if view.remaining.Plane(n).And(unitMask(u)).IsEmpty() {
				out = append(out, Fact{Kind: KindNoLoc, Num: n, Unit: u})
				if mode == ShortCircuit {
					return out
				}
			}
		}
	}

	for _, l := range grid.AllLocs() {
		if _, ok := view.clueOrDerived(l); ok {
			continue
		}
		if view.sukaku(l).IsEmpty() {
			out = append(out, Fact{Kind: KindNoNum, Loc: l})
			if mode == ShortCircuit {
				return out
			}
		}
	}

	return out
}
