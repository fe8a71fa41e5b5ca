package sym

import (
	"sort"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

// Evaluation is the result of scanning a symmetry's orbits against a clue
// grid, grounded on original_source/crate/src/evaluate.rs's
// Evaluation{full, partial, num_nonconforming_locs} triple.
type Evaluation struct {
	Sym                  Sym
	FullOrbits           [][]grid.Loc // every location filled
	PartialOrbits        [][]grid.Loc // some but not all locations filled
	NumNonconformingLocs int
}

// Evaluate scans each of sym's orbits, counts filled cells, and returns the
// full/partial orbit lists plus the minimum number of clue additions or
// removals needed to make every orbit uniform.
func Evaluate(s Sym, clues grid.Grid) Evaluation {
	ev := Evaluation{Sym: s}
	for _, orbit := range s.Orbits() {
		filled := 0
		for _, l := range orbit {
			if _, ok := clues.At(l); ok {
				filled++
			}
		}
		switch {
		case filled == len(orbit):
			ev.FullOrbits = append(ev.FullOrbits, orbit)
		case filled == 0:
			// Orbit already conforms (uniformly empty); nothing to add here.
		default:
			ev.PartialOrbits = append(ev.PartialOrbits, orbit)
		}
		empty := len(orbit) - filled
		if filled < empty {
			ev.NumNonconformingLocs += filled
		} else {
			ev.NumNonconformingLocs += empty
		}
	}
	return ev
}

// BestMatches filters out symmetries whose nonconforming count exceeds
// maxNonconforming, then omits a symmetry S if some previously-accepted S'
// is strictly greater (S < S') and either S is non-complete, or S' is
// complete, or S is None (spec.md §4.7). The remainder is sorted by
// nonconforming count ascending.
func BestMatches(clues grid.Grid, maxNonconforming int) []Evaluation {
	var candidates []Evaluation
	for _, s := range All() {
		ev := Evaluate(s, clues)
		if ev.NumNonconformingLocs <= maxNonconforming {
			candidates = append(candidates, ev)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].NumNonconformingLocs < candidates[j].NumNonconformingLocs
	})

	var accepted []Evaluation
	for _, ev := range candidates {
		omit := false
		sComplete := ev.NumNonconformingLocs == 0
		for _, acc := range accepted {
			if ev.Sym.LessEq(acc.Sym) && ev.Sym != acc.Sym {
				accComplete := acc.NumNonconformingLocs == 0
				if !sComplete || accComplete || ev.Sym == None {
					omit = true
					break
				}
			}
		}
		if !omit {
			accepted = append(accepted, ev)
		}
	}
	return accepted
}
