package sym

import "github.com/kpitt/sudoku-engine/internal/grid"

type transform func(r, c int) (int, int)

func rot180(r, c int) (int, int) { return 8 - r, 8 - c }
func rot90(r, c int) (int, int)  { return c, 8 - r }
func mirrorX(r, c int) (int, int) { return r, 8 - c }
func mirrorY(r, c int) (int, int) { return 8 - r, c }
func diagMain(r, c int) (int, int) { return c, r }
func diagAnti(r, c int) (int, int) { return 8 - c, 8 - r }

// blockMain swaps a cell's block-row and block-col (transposing the grid of
// blocks) while leaving its position within the block untouched.
func blockMain(r, c int) (int, int) {
	br, bc := r/3, c/3
	return bc*3 + r%3, br*3 + c%3
}

// blockAnti reflects the grid of blocks across the anti-diagonal, again
// leaving a cell's position within its block untouched.
func blockAnti(r, c int) (int, int) {
	br, bc := r/3, c/3
	return (2-bc)*3 + r%3, (2-br)*3 + c%3
}

// generators returns the set of generating transformations whose closure
// defines s's orbits.
func (s Sym) generators() []transform {
	switch s {
	case None:
		return nil
	case Rotate180:
		return []transform{rot180}
	case Rotate90:
		return []transform{rot90}
	case MirrorX:
		return []transform{mirrorX}
	case MirrorY:
		return []transform{mirrorY}
	case DoubleMirror:
		return []transform{mirrorX, mirrorY}
	case DiagMain:
		return []transform{diagMain}
	case DiagAnti:
		return []transform{diagAnti}
	case DoubleDiagonal:
		return []transform{diagMain, diagAnti}
	case FullyReflective:
		return []transform{rot90, mirrorX, diagMain}
	case BlockMain:
		return []transform{blockMain}
	case BlockAnti:
		return []transform{blockAnti}
	default:
		return nil
	}
}

// orbitsOf computes the closure of the generating transformations as a
// partition of the 81 locations, returned as orbits sorted by ascending
// smallest member, each orbit itself in ascending order.
func orbitsOf(gens []transform) [][]grid.Loc {
	parent := make([]int, 81)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for idx := 0; idx < 81; idx++ {
		l := grid.Loc(idx)
		for _, g := range gens {
			r2, c2 := g(l.Row(), l.Col())
			union(idx, grid.LocAt(r2, c2).Index())
		}
	}

	groups := make(map[int][]grid.Loc)
	var order []int
	for idx := 0; idx < 81; idx++ {
		root := find(idx)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], grid.Loc(idx))
	}

	out := make([][]grid.Loc, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}
	return out
}
