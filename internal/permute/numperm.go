package permute

import (
	"fmt"
	"strings"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

// NumPermutation relabels numerals: a length-9 array mapping each 0-based
// numeral index to the image's 0-based numeral index.
type NumPermutation [9]int

func IdentityNumPermutation() NumPermutation {
	var p NumPermutation
	for i := range p {
		p[i] = i
	}
	return p
}

func (p NumPermutation) Apply(n grid.Num) grid.Num {
	return grid.NumFromIndex(p[n.Index()])
}

func (p NumPermutation) Compose(other NumPermutation) NumPermutation {
	var out NumPermutation
	for i, v := range p {
		out[i] = other[v]
	}
	return out
}

func (p NumPermutation) Inverse() NumPermutation {
	var out NumPermutation
	for i, v := range p {
		out[v] = i
	}
	return out
}

// FromImageRow derives the NumPermutation that relabels each value in order
// to 1..=9: order[i] is the numeral that should become numeral i+1.
func FromImageRow(order [9]grid.Num) NumPermutation {
	var p NumPermutation
	for i, n := range order {
		p[n.Index()] = i
	}
	return p
}

// Cycles renders p as a product of disjoint cycles (1-based numerals),
// e.g. "(1 3 5)(2 4)".
func (p NumPermutation) Cycles() string {
	seen := [9]bool{}
	var b strings.Builder
	any := false
	for start := range 9 {
		if seen[start] || p[start] == start {
			seen[start] = true
			continue
		}
		b.WriteByte('(')
		i := start
		for !seen[i] {
			seen[i] = true
			if i != start {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", i+1)
			i = p[i]
		}
		b.WriteByte(')')
		any = true
	}
	if !any {
		return "()"
	}
	return b.String()
}
