package xrand

import (
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/ledger"
	"github.com/kpitt/sudoku-engine/internal/solve"
)

// RandomPivot implements solve.PivotHelper: it picks uniformly among the
// doubles when any exist, otherwise uniformly among unset locations, and
// shuffles the candidate numerals before they're tried. Used by the
// generator to produce a random solved grid (spec.md §4.8).
type RandomPivot struct {
	Rand *Rand
}

var _ solve.PivotHelper = RandomPivot{}

func (p RandomPivot) ChoosePivot(l *ledger.Ledger, doubles bits.Set81) grid.Loc {
	if doubles.Count() > 0 {
		vals := doubles.Values()
		return grid.Loc(vals[p.Rand.IntN(len(vals))])
	}
	vals := l.Unset.Values()
	return grid.Loc(vals[p.Rand.IntN(len(vals))])
}

func (p RandomPivot) OrderNums(nums []grid.Num) {
	p.Rand.Shuffle(len(nums), func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
}
