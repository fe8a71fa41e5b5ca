package deduce

import "github.com/kpitt/sudoku-engine/internal/grid"

// findHiddenSingles reports a SingleLoc fact for every (unit, numeral) pair
// where exactly one location in the unit admits the numeral.
func findHiddenSingles(view sweepView) []Fact {
	var out []Fact
	for _, u := range grid.AllUnits() {
		for _, n := range grid.AllNums() {
			var only grid.Loc
			count := 0
			for _, l := range u.Locs() {
				if _, placed := view.clueOrDerived(l); placed {
					continue
				}
				if view.sukaku(l).Contains(n.Index()) {
					count++
					only = l
				}
			}
			if count == 1 {
				out = append(out, Fact{Kind: KindSingleLoc, Num: n, Unit: u, Loc: only})
			}
		}
	}
	return out
}

// findNakedSingles reports a SingleNum fact for every location with exactly
// one remaining numeral.
func findNakedSingles(view sweepView) []Fact {
	var out []Fact
	for _, l := range grid.AllLocs() {
		if _, placed := view.clueOrDerived(l); placed {
			continue
		}
		nums := view.sukaku(l)
		if v, ok := nums.Min(); ok && nums.Count() == 1 {
			out = append(out, Fact{Kind: KindSingleNum, Loc: l, Num: grid.NumFromIndex(v)})
		}
	}
	return out
}
