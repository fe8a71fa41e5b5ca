package grid

import (
	"fmt"
	"strings"
)

// State classifies a Grid's validity.
type State int8

const (
	StateSolved State = iota
	StateIncomplete
	StateBroken
)

// Grid maps each of the 81 locations to an optional numeral.
type Grid struct {
	cells [81]Num // 0 means unset
}

// NewGrid returns an all-unset grid.
func NewGrid() Grid { return Grid{} }

// At returns the numeral at l, and whether the cell is set.
func (g Grid) At(l Loc) (Num, bool) {
	n := g.cells[l]
	return n, n != 0
}

// Set returns a copy of g with l set to n. n == 0 clears the cell.
func (g Grid) Set(l Loc, n Num) Grid {
	g.cells[l] = n
	return g
}

// NumSet returns the number of filled cells.
func (g Grid) NumSet() int {
	count := 0
	for _, n := range g.cells {
		if n != 0 {
			count++
		}
	}
	return count
}

// State classifies the grid: Solved (full, no conflicts), Incomplete (some
// unset, no conflicts), or Broken (with the offending locations).
func (g Grid) State() (State, []Loc) {
	var conflicts []Loc
	seen := map[Loc]struct{}{}
	for _, u := range AllUnits() {
		var byNum [10][]Loc
		for _, l := range u.Locs() {
			if n, ok := g.At(l); ok {
				byNum[n] = append(byNum[n], l)
			}
		}
		for _, locs := range byNum {
			if len(locs) > 1 {
				for _, l := range locs {
					if _, dup := seen[l]; !dup {
						seen[l] = struct{}{}
						conflicts = append(conflicts, l)
					}
				}
			}
		}
	}
	if len(conflicts) > 0 {
		return StateBroken, conflicts
	}
	if g.NumSet() == 81 {
		return StateSolved, nil
	}
	return StateIncomplete, nil
}

// SolvedGrid refines Grid with the invariant that every location is set and
// every unit contains each numeral exactly once.
type SolvedGrid struct {
	g Grid
}

// AsSolvedGrid checks g's invariant and wraps it, or reports the failure.
func AsSolvedGrid(g Grid) (SolvedGrid, error) {
	state, conflicts := g.State()
	switch state {
	case StateSolved:
		return SolvedGrid{g}, nil
	case StateBroken:
		return SolvedGrid{}, fmt.Errorf("grid: broken at %d location(s): %v", len(conflicts), conflicts)
	default:
		return SolvedGrid{}, fmt.Errorf("grid: incomplete, %d of 81 cells set", g.NumSet())
	}
}

func (sg SolvedGrid) Grid() Grid { return sg.g }

func (sg SolvedGrid) At(l Loc) Num {
	n, _ := sg.g.At(l)
	return n
}

// ParseCanonical parses the 81-significant-character canonical form (§6):
// digits 1-9 are clues, '0' or '.' are unset; all other runes (whitespace,
// '|', '-', '+', newlines) are ignored, so both the one-line and ASCII-art
// debug forms round-trip.
func ParseCanonical(s string) (Grid, error) {
	g := NewGrid()
	idx := 0
	for _, r := range s {
		var n Num
		switch {
		case r >= '1' && r <= '9':
			n = Num(r - '0')
		case r == '0' || r == '.':
			n = 0
		default:
			continue
		}
		if idx >= 81 {
			return Grid{}, fmt.Errorf("grid: more than 81 significant characters")
		}
		g.cells[idx] = n
		idx++
	}
	if idx != 81 {
		return Grid{}, fmt.Errorf("grid: expected 81 significant characters, got %d", idx)
	}
	return g, nil
}

// String renders the one-line canonical form.
func (g Grid) String() string {
	var b strings.Builder
	for _, n := range g.cells {
		if n == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// DebugString renders the ASCII-art debug form (§6): row-major,
// single-space-separated numerals, '.' for empty, groups of three columns
// separated by " | ", groups of three rows separated by a divider line.
func (g Grid) DebugString() string {
	var b strings.Builder
	const divider = "- - - + - - - + - - -"
	for r := range 9 {
		if r != 0 && r%3 == 0 {
			b.WriteString(divider)
			b.WriteByte('\n')
		}
		for c := range 9 {
			if c != 0 {
				if c%3 == 0 {
					b.WriteString(" | ")
				} else {
					b.WriteByte(' ')
				}
			}
			n, ok := g.At(LocAt(r, c))
			if ok {
				b.WriteByte(byte('0' + n))
			} else {
				b.WriteByte('.')
			}
		}
		if r != 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
