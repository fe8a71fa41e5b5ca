// Package asgmt implements the 729-bit AssignmentSet: the set of possible
// (numeral, location) pairs that drives both the backtracking solver and the
// deduction engine. Grounded on original_source/crate/src/core/asgmt.rs, laid
// out atop internal/bits.Set729 as required by spec.md §4.1.
package asgmt

import (
	"fmt"

	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// Assignment is a single (numeral, location) pair.
type Assignment struct {
	Num grid.Num
	Loc grid.Loc
}

// Set is the 729-bit set of possible assignments.
type Set struct {
	bits bits.Set729
}

// Universal returns the set containing every (numeral, location) pair.
func Universal() Set { return Set{bits.FullSet729()} }

// Empty returns the set containing no pairs.
func Empty() Set { return Set{} }

func (s Set) Contains(a Assignment) bool {
	return s.bits.Contains(a.Num.Index(), a.Loc.Index())
}

func (s *Set) Insert(a Assignment) { s.bits.Insert(a.Num.Index(), a.Loc.Index()) }
func (s *Set) Remove(a Assignment) { s.bits.Remove(a.Num.Index(), a.Loc.Index()) }

// Plane returns the Set81 of possible locations for num.
func (s Set) Plane(num grid.Num) bits.Set81 { return s.bits.Planes[num.Index()] }

// SetPlane replaces the plane for num.
func (s *Set) SetPlane(num grid.Num, p bits.Set81) { s.bits.Planes[num.Index()] = p }

// NumsAt returns the set of numerals still possible at loc, as a Set9 keyed
// by 0-based numeral index.
func (s Set) NumsAt(l grid.Loc) bits.Set9 {
	var out bits.Set9
	for n := range 9 {
		if s.bits.Planes[n].Contains(l.Index()) {
			out.Insert(n)
		}
	}
	return out
}

// FromGrid starts from the universal set and, for each clue (n, loc) in g,
// removes every pair conflicting with it. Returns an error if a clue
// conflicts with a prior clue.
func FromGrid(g grid.Grid) (Set, error) {
	s := Universal()
	for _, l := range grid.AllLocs() {
		n, ok := g.At(l)
		if !ok {
			continue
		}
		a := Assignment{n, l}
		if !s.Contains(a) {
			return Set{}, fmt.Errorf("asgmt: clue %s=%s conflicts with an earlier clue", l, n)
		}
		s.Apply(a)
	}
	return s, nil
}

// Apply removes (a) every pair (n, l') where l' is a peer of a.Loc, since the
// same numeral cannot appear twice in any shared unit, and (b) every pair
// (n', a.Loc) where n' != a.Num, since the location now holds a.Num.
func (s *Set) Apply(a Assignment) {
	for _, peer := range a.Loc.Peers() {
		s.bits.Remove(a.Num.Index(), peer.Index())
	}
	for n := range 9 {
		if n != a.Num.Index() {
			s.bits.Remove(n, a.Loc.Index())
		}
	}
}

// ToGrid fills every location that has a unique remaining possibility. It
// never disagrees with an already-set clue because Apply already narrowed
// those locations to a single plane.
func (s Set) ToGrid() grid.Grid {
	g := grid.NewGrid()
	for _, l := range grid.AllLocs() {
		nums := s.NumsAt(l)
		if v, ok := nums.Min(); ok && nums.Count() == 1 {
			g = g.Set(l, grid.NumFromIndex(v))
		}
	}
	return g
}

// Equal reports whether s and other contain exactly the same assignments.
func (s Set) Equal(other Set) bool { return s.bits == other.bits }

// Diff returns the assignments in s but not in other.
func (s Set) Diff(other Set) Set {
	var out Set
	for n := range 9 {
		out.bits.Planes[n] = s.bits.Planes[n].Diff(other.bits.Planes[n])
	}
	return out
}

// Assignments returns every (numeral, location) pair in s, numeral-major.
func (s Set) Assignments() []Assignment {
	var out []Assignment
	for n := range 9 {
		for _, loc := range s.bits.Planes[n].Values() {
			out = append(out, Assignment{Num: grid.NumFromIndex(n), Loc: grid.Loc(loc)})
		}
	}
	return out
}

// FromSolvedGrid builds the assignment set containing exactly g's 81 filled
// cells.
func FromSolvedGrid(g grid.SolvedGrid) Set {
	var s Set
	for _, l := range grid.AllLocs() {
		s.Insert(Assignment{Num: g.At(l), Loc: l})
	}
	return s
}

// SinglesAndDoubles returns the set of locations with exactly one remaining
// numeral and the set with exactly two. Returns an error if any location has
// zero remaining numerals.
//
// Per spec.md §4.2: for each of the nine planes, accumulate three 81-bit
// words min1, min2, min3 counting "at least 1/2/3 numerals per location";
// then exactly1 = min1 XOR min2, exactly2 = min2 XOR min3; validity requires
// min1 == all-ones.
func (s Set) SinglesAndDoubles() (singles, doubles bits.Set81, err error) {
	var min1, min2, min3 bits.Set81
	for n := range 9 {
		plane := s.bits.Planes[n]
		min3 = min3.Or(min2.And(plane))
		min2 = min2.Or(min1.And(plane))
		min1 = min1.Or(plane)
	}
	if min1 != bits.FullSet81() {
		return bits.Set81{}, bits.Set81{}, fmt.Errorf("asgmt: at least one location has no remaining numeral")
	}
	singles = min1.Xor(min2)
	doubles = min2.Xor(min3)
	return singles, doubles, nil
}
