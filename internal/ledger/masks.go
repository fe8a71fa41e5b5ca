package ledger

import (
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// Precomputed Set81 masks for each row, column, and block unit, built once at
// init. These play the role of spec.md §4.3's 512-entry overlap lookup
// tables: the overlap pass below intersects a numeral's remaining-location
// plane against these instead of decoding a packed band summary, which keeps
// the same observable locked-candidate behavior with a much smaller, easier
// to verify implementation.
var (
	rowMask   [9]bits.Set81
	colMask   [9]bits.Set81
	blockMask [9]bits.Set81
)

func init() {
	for i := range 9 {
		for _, l := range (grid.Unit{Kind: grid.UnitRow, Index: i}).Locs() {
			rowMask[i].Insert(l.Index())
		}
		for _, l := range (grid.Unit{Kind: grid.UnitCol, Index: i}).Locs() {
			colMask[i].Insert(l.Index())
		}
		for _, l := range (grid.Unit{Kind: grid.UnitBlock, Index: i}).Locs() {
			blockMask[i].Insert(l.Index())
		}
	}
}
