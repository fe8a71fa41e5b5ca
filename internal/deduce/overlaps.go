package deduce

import "github.com/kpitt/sudoku-engine/internal/grid"

// findOverlaps reports an Overlap fact wherever a numeral's remaining
// locations within one unit all lie inside a second, overlapping unit
// (spec.md §4.3's locked-candidate reasoning, surfaced as facts rather than
// applied in place): block-confined-to-line ("pointing") and
// line-confined-to-block ("box/line reduction").
func findOverlaps(view sweepView) []Fact {
	var out []Fact
	blocks := unitsOfKind(grid.UnitBlock)
	lines := append(unitsOfKind(grid.UnitRow), unitsOfKind(grid.UnitCol)...)

	for _, n := range grid.AllNums() {
		for _, block := range blocks {
			out = append(out, overlapFromUnit(view, n, block, lines)...)
		}
		for _, line := range lines {
			out = append(out, overlapFromUnit(view, n, line, blocks)...)
		}
	}
	return out
}

func unitsOfKind(k grid.UnitKind) []grid.Unit {
	var out []grid.Unit
	for i := range 9 {
		out = append(out, grid.Unit{Kind: k, Index: i})
	}
	return out
}

// overlapFromUnit checks whether n's remaining locations within base all lie
// in one of crossCandidates; if so, it reports the elimination of n from the
// rest of that cross unit.
func overlapFromUnit(view sweepView, n grid.Num, base grid.Unit, crossCandidates []grid.Unit) []Fact {
	var locs []grid.Loc
	for _, l := range base.Locs() {
		if view.sukaku(l).Contains(n.Index()) {
			locs = append(locs, l)
		}
	}
	if len(locs) < 2 {
		return nil
	}

	for _, cross := range crossCandidates {
		if cross.Kind == base.Kind {
			continue
		}
		if !allIn(locs, cross) {
			continue
		}
		var elims []Elimination
		for _, l := range cross.Locs() {
			if inBase(l, base) {
				continue
			}
			if view.sukaku(l).Contains(n.Index()) {
				elims = append(elims, Elimination{Num: n, Loc: l})
			}
		}
		if len(elims) == 0 {
			continue
		}
		crossCopy := cross
		return []Fact{{
			Kind:         KindOverlap,
			Num:          n,
			Unit:         base,
			CrossUnit:    &crossCopy,
			Eliminations: elims,
		}}
	}
	return nil
}

func allIn(locs []grid.Loc, u grid.Unit) bool {
	mask := unitMask(u)
	for _, l := range locs {
		if !mask.Contains(l.Index()) {
			return false
		}
	}
	return true
}

func inBase(l grid.Loc, u grid.Unit) bool {
	return unitMask(u).Contains(l.Index())
}
