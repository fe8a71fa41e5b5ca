package solve

import (
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/ledger"
)

var rowBandMask = [3]bits.Set81{}

func init() {
	for band := range 3 {
		for r := band * 3; r < band*3+3; r++ {
			for c := range 9 {
				rowBandMask[band].Insert(grid.LocAt(r, c).Index())
			}
		}
	}
}

// MinCandidates is the deterministic "best-of-three-row-band-starts"
// heuristic: among doubles if any exist, otherwise sampling the first unset
// location in each of the three row-bands and taking the one with fewest
// remaining candidates. Numerals are tried in ascending order.
type MinCandidates struct{}

func (MinCandidates) ChoosePivot(l *ledger.Ledger, doubles bits.Set81) grid.Loc {
	if loc, ok := doubles.Min(); ok {
		return grid.Loc(loc)
	}
	best := -1
	bestCount := 10
	for band := range 3 {
		cand := l.Unset.And(rowBandMask[band])
		loc, ok := cand.Min()
		if !ok {
			continue
		}
		if count := l.Asgmts.NumsAt(grid.Loc(loc)).Count(); count < bestCount {
			bestCount = count
			best = loc
		}
	}
	return grid.Loc(best)
}

func (MinCandidates) OrderNums(nums []grid.Num) {}

// JCZ picks any double, else the smallest unset location, numerals in
// ascending order.
type JCZ struct{}

func (JCZ) ChoosePivot(l *ledger.Ledger, doubles bits.Set81) grid.Loc {
	if loc, ok := doubles.Min(); ok {
		return grid.Loc(loc)
	}
	loc, _ := l.Unset.Min()
	return grid.Loc(loc)
}

func (JCZ) OrderNums(nums []grid.Num) {}

// Canonical always picks the smallest unset location, with numerals in
// ascending order, yielding the lexicographically smallest solved grid.
type Canonical struct{}

func (Canonical) ChoosePivot(l *ledger.Ledger, doubles bits.Set81) grid.Loc {
	loc, _ := l.Unset.Min()
	return grid.Loc(loc)
}

func (Canonical) OrderNums(nums []grid.Num) {}
