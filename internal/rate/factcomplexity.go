package rate

import (
	"github.com/kpitt/sudoku-engine/internal/deduce"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// factComplexity maps a Fact to its complexity band (spec.md §4.9): singles
// are Simple; a simple overlap is Moderate; a hidden set of size <= 3 inside
// a block is Moderate, every other locked set is Complex; an implication
// with exactly one locked-set antecedent and a non-implication consequent
// inherits that antecedent's complexity, and an implication whose
// consequent touches only one numeral is Moderate; anything else is
// Complex.
func factComplexity(f deduce.Fact) Complexity {
	switch f.Kind {
	case deduce.KindSingleLoc, deduce.KindSingleNum, deduce.KindSpeculativeAssignment:
		return Simple
	case deduce.KindOverlap:
		return Moderate
	case deduce.KindLockedSet:
		if len(f.Nums) <= 3 && !f.IsNaked && f.Unit.Kind == grid.UnitBlock {
			return Moderate
		}
		return Complex
	case deduce.KindImplication:
		if len(factNums(f)) == 1 {
			return Moderate
		}
		if len(f.Antecedents) == 1 &&
			f.Antecedents[0].Kind == deduce.KindLockedSet &&
			f.Consequent != nil && f.Consequent.Kind != deduce.KindImplication {
			return factComplexity(f.Antecedents[0])
		}
		return Complex
	default:
		return Complex
	}
}

// factNums returns the numerals f's reasoning concerns (its own Num or Nums,
// plus every antecedent's and the consequent's, for an Implication).
func factNums(f deduce.Fact) []grid.Num {
	seen := map[grid.Num]bool{}
	var out []grid.Num
	add := func(n grid.Num) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	var walk func(f deduce.Fact)
	walk = func(f deduce.Fact) {
		switch f.Kind {
		case deduce.KindSingleLoc, deduce.KindSingleNum, deduce.KindSpeculativeAssignment, deduce.KindOverlap:
			add(f.Num)
		case deduce.KindLockedSet:
			for _, n := range f.Nums {
				add(n)
			}
		case deduce.KindImplication:
			if f.Consequent != nil {
				walk(*f.Consequent)
			}
			for _, a := range f.Antecedents {
				walk(a)
			}
		}
	}
	walk(f)
	return out
}
