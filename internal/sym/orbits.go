package sym

import "github.com/kpitt/sudoku-engine/internal/grid"

var orbitTable = map[Sym][][]grid.Loc{}

func init() {
	for _, s := range append(All(), None) {
		if _, ok := orbitTable[s]; !ok {
			orbitTable[s] = orbitsOf(s.generators())
		}
	}
}

// Orbits returns s's partition of the 81 locations into equivalence
// classes, in a fixed deterministic order (ascending by smallest member;
// each orbit itself ascending).
func (s Sym) Orbits() [][]grid.Loc { return orbitTable[s] }

// OrbitOf returns the orbit that l belongs to under s.
func (s Sym) OrbitOf(l grid.Loc) []grid.Loc {
	for _, orbit := range s.Orbits() {
		for _, o := range orbit {
			if o == l {
				return orbit
			}
		}
	}
	return nil
}

// LessEq reports whether s's partition refines t's: every orbit of s is a
// subset of some orbit of t. Equivalently, for every location its s-orbit is
// contained in its t-orbit. This is computed directly from the orbit tables
// rather than a hardcoded relation table, so it automatically matches group
// containment (spec.md §4.7's documented relations all fall out of this).
func (s Sym) LessEq(t Sym) bool {
	tOrbitOf := make(map[grid.Loc][]grid.Loc, 81)
	for _, orbit := range t.Orbits() {
		for _, l := range orbit {
			tOrbitOf[l] = orbit
		}
	}
	for _, orbit := range s.Orbits() {
		tOrbit := tOrbitOf[orbit[0]]
		tSet := make(map[grid.Loc]bool, len(tOrbit))
		for _, l := range tOrbit {
			tSet[l] = true
		}
		for _, l := range orbit {
			if !tSet[l] {
				return false
			}
		}
	}
	return true
}
