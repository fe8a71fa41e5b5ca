// Package solve implements the bit-parallel backtracking solver (C5):
// depth-first search over a Ledger with a pluggable pivot-selection
// strategy, enumerating up to N solutions. Grounded on
// original_source/crate/src/solve.rs; the pass/backtrack shape follows the
// teacher's internal/solver/solver.go main loop.
package solve

import (
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/ledger"
)

// PivotHelper supplies the two hooks the search needs at each branch point
// (spec.md §4.4):
//   - ChoosePivot picks the location to branch on, preferring a location
//     from doubles when non-empty.
//   - OrderNums optionally reorders (or shuffles) the candidate numerals for
//     that location in place.
type PivotHelper interface {
	ChoosePivot(l *ledger.Ledger, doubles bits.Set81) grid.Loc
	OrderNums(nums []grid.Num)
}

// Summary is the result of a Solve call.
type Summary struct {
	Clues            grid.Grid
	Solutions        []grid.Grid
	TooManySolutions bool
}

// NumHoles counts the locations where not all of s.Solutions agree, i.e.
// 81 minus the size of their intersection. Fewer than two solutions means
// there's nothing to disagree about.
func (s Summary) NumHoles() int {
	if len(s.Solutions) < 2 {
		return 0
	}
	agree := 0
	for _, l := range grid.AllLocs() {
		n0, _ := s.Solutions[0].At(l)
		same := true
		for _, sol := range s.Solutions[1:] {
			n, _ := sol.At(l)
			if n != n0 {
				same = false
				break
			}
		}
		if same {
			agree++
		}
	}
	return 81 - agree
}

type state struct {
	led     *ledger.Ledger
	doubles bits.Set81
}

func (st *state) clone() *state {
	return &state{led: st.led.Clone(), doubles: st.doubles}
}

// Solve builds a Ledger from clues, applies implications, and performs
// depth-first search, collecting up to maxSolutions+1 solutions (the extra
// solution signals that there were too many).
func Solve(clues grid.Grid, maxSolutions int, helper PivotHelper) Summary {
	out := Summary{Clues: clues}

	led, err := ledger.FromClues(clues)
	if err != nil {
		return out
	}
	doubles, err := led.ApplyImplications()
	if err != nil {
		return out
	}

	solveFrom(&state{led: led, doubles: doubles}, helper, maxSolutions, &out)
	return out
}

// solveFrom returns true once out has collected more than maxSolutions
// solutions, signaling the caller to stop searching.
func solveFrom(st *state, helper PivotHelper, maxSolutions int, out *Summary) bool {
	if st.led.IsComplete() {
		out.Solutions = append(out.Solutions, st.led.ToGrid())
		if len(out.Solutions) > maxSolutions {
			out.TooManySolutions = true
			return true
		}
		return false
	}

	loc := helper.ChoosePivot(st.led, st.doubles)
	indices := st.led.Asgmts.NumsAt(loc).Values()
	nums := make([]grid.Num, len(indices))
	for i, v := range indices {
		nums[i] = grid.NumFromIndex(v)
	}
	helper.OrderNums(nums)

	for i, num := range nums {
		var next *state
		if i == len(nums)-1 {
			next = st // last alternative: consume this frame's ledger in place
		} else {
			next = st.clone()
		}
		next.led.Assign(num, loc)
		doubles, err := next.led.ApplyImplications()
		if err != nil {
			continue // dead end: backtrack to the next numeral
		}
		next.doubles = doubles
		if solveFrom(next, helper, maxSolutions, out) {
			return true
		}
	}
	return false
}
