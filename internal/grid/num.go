// Package grid implements the domain entities of the engine: Num, Loc, Unit,
// and the Grid/SolvedGrid values built from them. Each location's peer set
// is memoized in a static table computed once at package init, in the spirit
// of the teacher's cached row/column/house groups in internal/solver/house.go;
// row, column, block, band and transpose are computed arithmetically.
package grid

import "fmt"

// Num is one of the nine Sudoku digits 1..=9.
type Num int8

// NumFromIndex converts a 0-based index (0..8) to a Num (1..9).
func NumFromIndex(i int) Num {
	if i < 0 || i > 8 {
		panic(fmt.Sprintf("grid: num index out of range: %d", i))
	}
	return Num(i + 1)
}

// Index returns the 0-based index of n.
func (n Num) Index() int { return int(n) - 1 }

func (n Num) String() string { return fmt.Sprintf("%d", int(n)) }

func (n Num) Valid() bool { return n >= 1 && n <= 9 }

// AllNums returns the nine numerals in ascending order.
func AllNums() []Num {
	out := make([]Num, 9)
	for i := range 9 {
		out[i] = NumFromIndex(i)
	}
	return out
}
