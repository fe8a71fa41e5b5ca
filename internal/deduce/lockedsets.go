package deduce

import (
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// lockedSetState tracks, for a single unit, the numerals and locations
// already claimed by a smaller locked set found earlier in the same sweep
// of that unit, so a larger set that merely restates them is skipped.
type lockedSetState struct {
	nums bits.Set9
	locs bits.Set81
}

// findLockedSets reports naked and hidden sets of size 2..4 in every unit
// (spec.md §4.5). A naked set is `size` locations whose combined remaining
// numerals number exactly `size`; a hidden set is `size` numerals whose
// combined remaining locations number exactly `size`. Either variant
// eliminates the set's numerals from the rest of the unit (naked) or
// confines the unit's other numerals out of the set's locations (hidden).
//
// Within a unit, the numerals and locations already claimed by a smaller
// set found earlier in the same size 2→4, hidden-then-naked sweep are
// excluded from later searches, so a quad is never reported as a redundant
// restatement of a pair it contains.
func findLockedSets(view sweepView) []Fact {
	var out []Fact
	for _, u := range grid.AllUnits() {
		state := &lockedSetState{}
		for size := 2; size <= 4; size++ {
			out = append(out, findHiddenSetsInUnit(view, u, size, state)...)
			out = append(out, findNakedSetsInUnit(view, u, size, state)...)
		}
	}
	return out
}

func findNakedSetsInUnit(view sweepView, u grid.Unit, size int, state *lockedSetState) []Fact {
	var open []grid.Loc
	for _, l := range u.Locs() {
		if state.locs.Contains(l.Index()) {
			continue
		}
		if _, placed := view.clueOrDerived(l); placed {
			continue
		}
		open = append(open, l)
	}
	if len(open) <= size {
		return nil
	}

	var out []Fact
	forEachCombination(len(open), size, func(idx []int) {
		var combined uint16
		locs := make([]grid.Loc, size)
		for i, j := range idx {
			locs[i] = open[j]
			combined |= bitsOfSet9(view.sukaku(locs[i]))
		}
		if popcount16(combined) != size {
			return
		}
		var elims []Elimination
		for _, l := range open {
			if containsLoc(locs, l) {
				continue
			}
			nums := view.sukaku(l)
			for _, n := range grid.AllNums() {
				if combined&(1<<uint(n.Index())) != 0 && nums.Contains(n.Index()) {
					elims = append(elims, Elimination{Num: n, Loc: l})
				}
			}
		}
		if len(elims) == 0 {
			return
		}
		for _, l := range locs {
			state.locs.Insert(l.Index())
		}
		for _, n := range numsFromMask(combined) {
			state.nums.Insert(n.Index())
		}
		out = append(out, Fact{
			Kind:         KindLockedSet,
			Unit:         u,
			Locs:         append([]grid.Loc{}, locs...),
			Nums:         numsFromMask(combined),
			IsNaked:      true,
			Eliminations: elims,
		})
	})
	return out
}

func findHiddenSetsInUnit(view sweepView, u grid.Unit, size int, state *lockedSetState) []Fact {
	var openNums []grid.Num
	for _, n := range grid.AllNums() {
		if state.nums.Contains(n.Index()) {
			continue
		}
		if !view.remaining.Plane(n).And(unitMask(u)).IsEmpty() {
			openNums = append(openNums, n)
		}
	}
	if len(openNums) <= size {
		return nil
	}

	var out []Fact
	forEachCombination(len(openNums), size, func(idx []int) {
		nums := make([]grid.Num, size)
		var locUnion uint16
		for i, j := range idx {
			nums[i] = openNums[j]
			for _, l := range u.Locs() {
				if view.sukaku(l).Contains(nums[i].Index()) {
					locUnion |= 1 << uint(locIndexInUnit(u, l))
				}
			}
		}
		if popcount16(locUnion) != size {
			return
		}
		locs := locsFromUnitMask(u, locUnion)
		var elims []Elimination
		for _, l := range locs {
			have := view.sukaku(l)
			for _, n := range grid.AllNums() {
				if !containsNum(nums, n) && have.Contains(n.Index()) {
					elims = append(elims, Elimination{Num: n, Loc: l})
				}
			}
		}
		if len(elims) == 0 {
			return
		}
		for _, l := range locs {
			state.locs.Insert(l.Index())
		}
		for _, n := range nums {
			state.nums.Insert(n.Index())
		}
		out = append(out, Fact{
			Kind:         KindLockedSet,
			Unit:         u,
			Locs:         locs,
			Nums:         append([]grid.Num{}, nums...),
			IsNaked:      false,
			Eliminations: elims,
		})
	})
	return out
}

func bitsOfSet9(s bits.Set9) uint16 {
	return uint16(s)
}

func numsFromMask(mask uint16) []grid.Num {
	var out []grid.Num
	for i := range 9 {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, grid.NumFromIndex(i))
		}
	}
	return out
}

func locIndexInUnit(u grid.Unit, l grid.Loc) int {
	for i, ul := range u.Locs() {
		if ul == l {
			return i
		}
	}
	return -1
}

func locsFromUnitMask(u grid.Unit, mask uint16) []grid.Loc {
	var out []grid.Loc
	locs := u.Locs()
	for i := range 9 {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, locs[i])
		}
	}
	return out
}

func containsLoc(locs []grid.Loc, l grid.Loc) bool {
	for _, x := range locs {
		if x == l {
			return true
		}
	}
	return false
}

func containsNum(nums []grid.Num, n grid.Num) bool {
	for _, x := range nums {
		if x == n {
			return true
		}
	}
	return false
}

func popcount16(m uint16) int {
	c := 0
	for m != 0 {
		m &= m - 1
		c++
	}
	return c
}

// forEachCombination calls f with the index set (into a 0..n slice) of every
// size-element combination, in ascending order.
func forEachCombination(n, size int, f func(idx []int)) {
	if size > n {
		return
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for {
		f(idx)
		i := size - 1
		for i >= 0 && idx[i] == i+n-size {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
