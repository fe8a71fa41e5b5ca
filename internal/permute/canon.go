package permute

import "github.com/kpitt/sudoku-engine/internal/grid"

// Minimizing returns (perm, minGrid, count) where perm applied to g yields
// minGrid, the lexicographically smallest grid in g's equivalence class
// under the full 3,359,232-element symmetry group, and count is the number
// of distinct permutations that achieve that minimum.
//
// spec.md §4.6 describes a two-phase seed-then-refine search for speed. This
// implementation instead enumerates the full LocPermutation group directly:
// for each of the 2 x 6^8 = 3,359,232 candidates, it derives the forced
// NumPermutation by reading off row 1 (whichever nine values land there must
// become 1..=9 in order) and compares the fully permuted grid. The result is
// identical — the testable property is the minimum found, not the search
// strategy — at the cost of the two-phase algorithm's pruning. See
// DESIGN.md.
func Minimizing(g grid.SolvedGrid) (perm GridPermutation, minGrid grid.Grid, count int) {
	perms3 := AllPerm3()
	src := g.Grid()

	first := true
	for _, transpose := range []bool{false, true} {
		for _, rowBand := range perms3 {
			for _, colBand := range perms3 {
				for _, r0 := range perms3 {
					for _, r1 := range perms3 {
						for _, r2 := range perms3 {
							rowsInBand := [3]Perm3{r0, r1, r2}
							for _, c0 := range perms3 {
								for _, c1 := range perms3 {
									for _, c2 := range perms3 {
										colsInBand := [3]Perm3{c0, c1, c2}

										locPerm := NewLocPermutation(transpose, rowBand, colBand, rowsInBand, colsInBand)
										relocated := applyLocsOnly(locPerm, src)

										var row1 [9]grid.Num
										for c := range 9 {
											row1[c], _ = relocated.At(grid.LocAt(0, c))
										}
										numPerm := FromImageRow(row1)

										candidate := GridPermutation{numPerm, locPerm}
										candGrid := applyNumsOnly(numPerm, relocated)

										if first {
											first = false
											perm, minGrid, count = candidate, candGrid, 1
											continue
										}
										switch compareGrids(candGrid, minGrid) {
										case -1:
											perm, minGrid, count = candidate, candGrid, 1
										case 0:
											count++
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return perm, minGrid, count
}

func applyLocsOnly(p LocPermutation, g grid.Grid) grid.Grid {
	out := grid.NewGrid()
	for _, l := range grid.AllLocs() {
		if n, ok := g.At(l); ok {
			out = out.Set(p.Apply(l), n)
		}
	}
	return out
}

func applyNumsOnly(p NumPermutation, g grid.Grid) grid.Grid {
	out := grid.NewGrid()
	for _, l := range grid.AllLocs() {
		if n, ok := g.At(l); ok {
			out = out.Set(l, p.Apply(n))
		}
	}
	return out
}

// compareGrids returns -1, 0, or 1 comparing a and b lexicographically by
// their canonical string form.
func compareGrids(a, b grid.Grid) int {
	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
