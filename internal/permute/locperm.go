package permute

import "github.com/kpitt/sudoku-engine/internal/grid"

// LocPermutation relocates cells. It applies as: optional transpose first,
// then reorder row-bands and column-bands, then within each band reorder its
// three lines (spec.md §4.6). It is the product of a transpose flag, two
// band permutations (row-bands, column-bands), and two arrays of three
// block-line permutations (rows within each band, columns within each
// band), for a total order of 2 x 6^2 x 6^6 = 3,359,232.
//
// The resolved 81-entry lookup table is what Apply/Compose/Inverse actually
// use. The structured fields are set by NewLocPermutation only: Compose and
// Inverse work on the resolved table and return permutations whose
// structured fields are left at their zero values.
type LocPermutation struct {
	Transpose  bool
	RowBand    Perm3
	ColBand    Perm3
	RowsInBand [3]Perm3
	ColsInBand [3]Perm3

	table [81]grid.Loc
}

// NewLocPermutation builds a LocPermutation from its structured components.
func NewLocPermutation(transpose bool, rowBand, colBand Perm3, rowsInBand, colsInBand [3]Perm3) LocPermutation {
	p := LocPermutation{
		Transpose:  transpose,
		RowBand:    rowBand,
		ColBand:    colBand,
		RowsInBand: rowsInBand,
		ColsInBand: colsInBand,
	}
	for idx := 0; idx < 81; idx++ {
		l := grid.Loc(idx)
		row, col := l.Row(), l.Col()
		if transpose {
			row, col = col, row
		}
		rBand, rLine := row/3, row%3
		cBand, cLine := col/3, col%3
		newRLine := rowsInBand[rBand].Apply(rLine)
		newCLine := colsInBand[cBand].Apply(cLine)
		newRBand := rowBand.Apply(rBand)
		newCBand := colBand.Apply(cBand)
		p.table[idx] = grid.LocAt(newRBand*3+newRLine, newCBand*3+newCLine)
	}
	return p
}

// IdentityLocPermutation is the permutation that moves nothing.
func IdentityLocPermutation() LocPermutation {
	return NewLocPermutation(false, IdentityPerm3(), IdentityPerm3(),
		[3]Perm3{IdentityPerm3(), IdentityPerm3(), IdentityPerm3()},
		[3]Perm3{IdentityPerm3(), IdentityPerm3(), IdentityPerm3()})
}

func (p LocPermutation) Apply(l grid.Loc) grid.Loc { return p.table[l] }

// Compose returns the permutation equivalent to applying p, then other.
func (p LocPermutation) Compose(other LocPermutation) LocPermutation {
	var out LocPermutation
	for i := range out.table {
		out.table[i] = other.table[p.table[i]]
	}
	return out
}

func (p LocPermutation) Inverse() LocPermutation {
	var out LocPermutation
	for i, v := range p.table {
		out.table[v] = grid.Loc(i)
	}
	return out
}
