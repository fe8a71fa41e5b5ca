package deduce

import (
	"github.com/kpitt/sudoku-engine/internal/asgmt"
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// sweepView bundles the working possibility set and the actual
// (clue/derived) assignments that a single sweep reasons over.
type sweepView struct {
	remaining asgmt.Set
	actual    asgmt.Set
}

func (v sweepView) sukaku(l grid.Loc) bits.Set9 { return v.remaining.NumsAt(l) }

func (v sweepView) clueOrDerived(l grid.Loc) (grid.Num, bool) {
	nums := v.actual.NumsAt(l)
	if val, ok := nums.Min(); ok && nums.Count() == 1 {
		return grid.NumFromIndex(val), true
	}
	return 0, false
}

func assignmentOf(n grid.Num, l grid.Loc) asgmt.Assignment {
	return asgmt.Assignment{Num: n, Loc: l}
}

var unitMaskTable = map[grid.Unit]bits.Set81{}

func init() {
	for _, u := range grid.AllUnits() {
		var m bits.Set81
		for _, l := range u.Locs() {
			m.Insert(l.Index())
		}
		unitMaskTable[u] = m
	}
}

func unitMask(u grid.Unit) bits.Set81 { return unitMaskTable[u] }

// runSweep runs, in order, error detection (if requested), overlaps, locked
// sets of size 2..=4 (hidden then naked, unit-by-unit in fixed order),
// hidden singles, and naked singles. It returns every fact found in this
// sweep plus the flattened list of eliminations they cause, for the caller
// to narrow the next sweep's possibility set.
func runSweep(remaining asgmt.Set, actual asgmt.Set, mode ErrorMode) ([]Fact, []Elimination, error) {
	view := sweepView{remaining: remaining, actual: actual}

	errs := findErrors(view, mode)
	if mode == ShortCircuit && len(errs) > 0 {
		return errs, nil, nil
	}

	var facts []Fact
	facts = append(facts, errs...)
	facts = append(facts, findOverlaps(view)...)
	facts = append(facts, findLockedSets(view)...)
	facts = append(facts, findHiddenSingles(view)...)
	facts = append(facts, findNakedSingles(view)...)

	var elims []Elimination
	for _, f := range facts {
		elims = append(elims, f.Eliminations...)
	}
	return facts, elims, nil
}
