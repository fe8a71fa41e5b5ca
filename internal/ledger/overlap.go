package ledger

import (
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// eliminateByOverlaps runs one locked-candidate propagation pass for every
// numeral, iterating until no numeral's remaining-location plane changes.
//
// For each numeral and each block: if all of its remaining locations in the
// block share a row or column, the numeral is eliminated from the rest of
// that row/column (a "pointing" overlap, cross_unit = block). Symmetrically,
// for each numeral and each row/column: if all of its remaining locations
// share a block, the numeral is eliminated from the rest of that block (a
// "box/line reduction" overlap, cross_unit = row or column). A numeral with
// no remaining location in some unit is a dead end.
//
// Iterates numerals in ascending order and units in ascending order within
// each numeral pass, matching spec.md §4.3's tie-break ordering.
func (l *Ledger) eliminateByOverlaps() error {
	for {
		changed := false
		for n := range 9 {
			num := grid.NumFromIndex(n)
			plane := l.Asgmts.Plane(num)

			for b := range 9 {
				inBlock := plane.And(blockMask[b])
				if inBlock.IsEmpty() {
					return invalid("numeral %s has no remaining location in block %d", num, b+1)
				}
				if row, ok := sharedRow(inBlock); ok {
					removed := plane.And(rowMask[row]).Diff(blockMask[b])
					if !removed.IsEmpty() {
						plane = plane.Diff(removed)
						changed = true
					}
				}
				if col, ok := sharedCol(inBlock); ok {
					removed := plane.And(colMask[col]).Diff(blockMask[b])
					if !removed.IsEmpty() {
						plane = plane.Diff(removed)
						changed = true
					}
				}
			}

			for r := range 9 {
				inRow := plane.And(rowMask[r])
				if inRow.IsEmpty() {
					return invalid("numeral %s has no remaining location in row %d", num, r+1)
				}
				if blk, ok := sharedBlock(inRow); ok {
					removed := plane.And(blockMask[blk]).Diff(rowMask[r])
					if !removed.IsEmpty() {
						plane = plane.Diff(removed)
						changed = true
					}
				}
			}

			for c := range 9 {
				inCol := plane.And(colMask[c])
				if inCol.IsEmpty() {
					return invalid("numeral %s has no remaining location in column %d", num, c+1)
				}
				if blk, ok := sharedBlock(inCol); ok {
					removed := plane.And(blockMask[blk]).Diff(colMask[c])
					if !removed.IsEmpty() {
						plane = plane.Diff(removed)
						changed = true
					}
				}
			}

			l.Asgmts.SetPlane(num, plane)
		}
		if !changed {
			return nil
		}
	}
}

// sharedRow returns the row shared by every location in s, if any.
func sharedRow(s bits.Set81) (row int, ok bool) {
	vals := s.Values()
	if len(vals) == 0 {
		return 0, false
	}
	row = grid.Loc(vals[0]).Row()
	for _, v := range vals[1:] {
		if grid.Loc(v).Row() != row {
			return 0, false
		}
	}
	return row, true
}

// sharedCol returns the column shared by every location in s, if any.
func sharedCol(s bits.Set81) (col int, ok bool) {
	vals := s.Values()
	if len(vals) == 0 {
		return 0, false
	}
	col = grid.Loc(vals[0]).Col()
	for _, v := range vals[1:] {
		if grid.Loc(v).Col() != col {
			return 0, false
		}
	}
	return col, true
}

// sharedBlock returns the block shared by every location in s, if any.
func sharedBlock(s bits.Set81) (block int, ok bool) {
	vals := s.Values()
	if len(vals) == 0 {
		return 0, false
	}
	block = grid.Loc(vals[0]).Block()
	for _, v := range vals[1:] {
		if grid.Loc(v).Block() != block {
			return 0, false
		}
	}
	return block, true
}
