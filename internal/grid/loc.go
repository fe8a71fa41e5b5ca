package grid

import "fmt"

// Loc is one of the 81 grid cells, in row-major order 0..=80.
type Loc int16

// LocAt returns the location at the given row and column, each 0..8.
func LocAt(row, col int) Loc {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		panic(fmt.Sprintf("grid: row/col out of range: (%d,%d)", row, col))
	}
	return Loc(row*9 + col)
}

func (l Loc) Row() int        { return int(l) / 9 }
func (l Loc) Col() int        { return int(l) % 9 }
func (l Loc) Block() int      { return (l.Row()/3)*3 + l.Col()/3 }
func (l Loc) RowBand() int    { return l.Row() / 3 }
func (l Loc) ColBand() int    { return l.Col() / 3 }
func (l Loc) BlockRow() int   { return l.Row() % 3 }
func (l Loc) BlockCol() int   { return l.Col() % 3 }
func (l Loc) Transpose() Loc  { return LocAt(l.Col(), l.Row()) }
func (l Loc) Index() int      { return int(l) }
func (l Loc) String() string  { return fmt.Sprintf("r%dc%d", l.Row()+1, l.Col()+1) }
func (l Loc) Valid() bool     { return l >= 0 && l < 81 }

// locInfo is the memoized per-location data computed once at init.
type locInfo struct {
	peers [20]Loc
}

var locTable [81]locInfo

func init() {
	for idx := 0; idx < 81; idx++ {
		l := Loc(idx)
		peers := make(map[Loc]struct{}, 20)
		for other := Loc(0); other < 81; other++ {
			if other == l {
				continue
			}
			if other.Row() == l.Row() || other.Col() == l.Col() || other.Block() == l.Block() {
				peers[other] = struct{}{}
			}
		}
		var arr [20]Loc
		i := 0
		// Deterministic ascending order.
		for other := Loc(0); other < 81; other++ {
			if _, ok := peers[other]; ok {
				arr[i] = other
				i++
			}
		}
		if i != 20 {
			panic("grid: peer computation invariant violated")
		}
		locTable[idx].peers = arr
	}
}

// Peers returns the 20 other locations sharing l's row, column, or block.
func (l Loc) Peers() [20]Loc { return locTable[l].peers }

// AllLocs returns the 81 locations in row-major order.
func AllLocs() []Loc {
	out := make([]Loc, 81)
	for i := range 81 {
		out[i] = Loc(i)
	}
	return out
}
