package permute

import (
	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/xrand"
)

// GridPermutation is a pair (NumPermutation, LocPermutation). Applying it to
// a grid relabels numerals and relocates cells.
type GridPermutation struct {
	Nums NumPermutation
	Locs LocPermutation
}

func Identity() GridPermutation {
	return GridPermutation{IdentityNumPermutation(), IdentityLocPermutation()}
}

// Apply relabels numerals via p.Nums and relocates cells via p.Locs.
func (p GridPermutation) Apply(g grid.Grid) grid.Grid {
	out := grid.NewGrid()
	for _, l := range grid.AllLocs() {
		n, ok := g.At(l)
		if !ok {
			continue
		}
		out = out.Set(p.Locs.Apply(l), p.Nums.Apply(n))
	}
	return out
}

// ApplySolved permutes a SolvedGrid, which is guaranteed never to break the
// solved invariant since p is a bijection on both numerals and locations.
func (p GridPermutation) ApplySolved(sg grid.SolvedGrid) grid.SolvedGrid {
	out, err := grid.AsSolvedGrid(p.Apply(sg.Grid()))
	if err != nil {
		panic("permute: a GridPermutation broke a solved grid: " + err.Error())
	}
	return out
}

func (p GridPermutation) Compose(other GridPermutation) GridPermutation {
	return GridPermutation{p.Nums.Compose(other.Nums), p.Locs.Compose(other.Locs)}
}

func (p GridPermutation) Inverse() GridPermutation {
	return GridPermutation{p.Nums.Inverse(), p.Locs.Inverse()}
}

// Random draws a uniformly random GridPermutation from the seeded stream.
func Random(r *xrand.Rand) GridPermutation {
	perms := AllPerm3()
	randPerm3 := func() Perm3 { return perms[r.IntN(len(perms))] }

	loc := NewLocPermutation(
		r.Bool(0.5),
		randPerm3(), randPerm3(),
		[3]Perm3{randPerm3(), randPerm3(), randPerm3()},
		[3]Perm3{randPerm3(), randPerm3(), randPerm3()},
	)

	var order [9]int
	for i := range order {
		order[i] = i
	}
	r.Shuffle(9, func(i, j int) { order[i], order[j] = order[j], order[i] })
	var nums NumPermutation
	copy(nums[:], order[:])

	return GridPermutation{nums, loc}
}
