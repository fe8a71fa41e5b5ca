package deduce

import (
	"github.com/kpitt/sudoku-engine/internal/asgmt"
	"github.com/kpitt/sudoku-engine/internal/bits"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// ErrorMode controls how Deduce treats an already-inconsistent state.
type ErrorMode int8

const (
	// Ignore skips the error-detection pass entirely.
	Ignore ErrorMode = iota
	// ShortCircuit stops at the first error fact found.
	ShortCircuit
	// Collect gathers every error fact in the state.
	Collect
)

// FactFinder owns the working state a deduce() call reasons over: the
// possibilities not yet eliminated, the clues plus derived assignments, and
// a by-location view of remaining numerals (spec.md §4.5).
type FactFinder struct {
	Remaining asgmt.Set
	Actual    asgmt.Set
	SukakuMap [81]bits.Set9
}

// NewFactFinder builds a FactFinder from a clue grid. If the clues already
// conflict, Remaining degrades to the universal set rather than failing —
// the inconsistency itself is what the error-detection pass (Kind
// Conflict) exists to report.
func NewFactFinder(clues grid.Grid) *FactFinder {
	remaining, err := asgmt.FromGrid(clues)
	if err != nil {
		remaining = asgmt.Universal()
	}
	actual := asgmt.Empty()
	for _, l := range grid.AllLocs() {
		if n, ok := clues.At(l); ok {
			actual.Insert(asgmt.Assignment{Num: n, Loc: l})
		}
	}
	ff := &FactFinder{Remaining: remaining, Actual: actual}
	ff.resyncSukaku()
	return ff
}

func (ff *FactFinder) resyncSukaku() {
	for _, l := range grid.AllLocs() {
		ff.SukakuMap[l] = ff.Remaining.NumsAt(l)
	}
}

// ApplyFact applies f's effects (assignment and/or eliminations) to the
// finder's internal state.
func (ff *FactFinder) ApplyFact(f Fact) {
	for _, e := range f.Eliminations {
		ff.Remaining.Remove(asgmt.Assignment{Num: e.Num, Loc: e.Loc})
	}
	if num, loc, ok := f.Placement(); ok {
		ff.Remaining.Apply(asgmt.Assignment{Num: num, Loc: loc})
		ff.Actual.Insert(asgmt.Assignment{Num: num, Loc: loc})
	}
	ff.resyncSukaku()
}

// Clone returns an independent copy of ff; every field is a value type, so
// the copy shares no state with the original.
func (ff *FactFinder) Clone() *FactFinder {
	clone := *ff
	return &clone
}

// PossibleAssignments returns the finder's working possibility set.
func (ff *FactFinder) PossibleAssignments() asgmt.Set { return ff.Remaining }

// Eliminate removes a single assignment from the possibility set directly,
// without going through a Fact (used by disproof search: spec.md §4.9).
func (ff *FactFinder) Eliminate(a asgmt.Assignment) {
	ff.Remaining.Remove(a)
	ff.resyncSukaku()
}

// ApplyAssignment places a directly, without going through a Fact (used to
// seed a speculative disproof branch).
func (ff *FactFinder) ApplyAssignment(a asgmt.Assignment) {
	ff.Remaining.Apply(a)
	ff.Actual.Insert(a)
	ff.resyncSukaku()
}

// DeduceSingles runs only the hidden- and naked-single finders, a single
// non-iterative pass with no overlap/locked-set sweeping. This is the
// "singles only" fast path the rater's Simple-complexity case tries first
// (spec.md §4.9).
func (ff *FactFinder) DeduceSingles() []Fact {
	view := sweepView{remaining: ff.Remaining, actual: ff.Actual}
	var out []Fact
	out = append(out, findHiddenSingles(view)...)
	out = append(out, findNakedSingles(view)...)
	return out
}

// Deduce collects facts by repeated sweeps (spec.md §4.5). Each sweep finds
// errors (if mode requests it), overlaps, locked sets of size 2..=4 (hidden
// then naked, each unit in fixed order), hidden singles, and naked singles,
// against a possibility set narrowed by every previous sweep's
// eliminations. Facts that only appear once eliminations have been applied
// are wrapped as Implication{antecedents, consequent}. The loop stops once a
// sweep produces no new eliminations.
func (ff *FactFinder) Deduce(mode ErrorMode) ([]Fact, error) {
	working := ff.Remaining
	result := []Fact{}
	seen := map[string]bool{}
	var allElimSweeps [][]Elimination

	sweepFacts, elims, err := runSweep(working, ff.Actual, mode)
	if err != nil {
		return nil, err
	}
	for _, f := range sweepFacts {
		seen[factKey(f)] = true
		result = append(result, f)
	}
	allElimSweeps = append(allElimSweeps, elims)

	const maxSweeps = 256 // safety guard against a runaway loop; real puzzles converge in a handful
	for iter := 0; len(elims) > 0 && iter < maxSweeps; iter++ {
		working = applyEliminations(working, elims)
		sweepFacts, nextElims, err := runSweep(working, ff.Actual, mode)
		if err != nil {
			return nil, err
		}
		for _, f := range sweepFacts {
			key := factKey(f)
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, wrapImplication(f, allElimSweeps))
		}
		elims = nextElims
		allElimSweeps = append(allElimSweeps, elims)
	}
	return result, nil
}

func applyEliminations(s asgmt.Set, elims []Elimination) asgmt.Set {
	out := s
	for _, e := range elims {
		out.Remove(asgmt.Assignment{Num: e.Num, Loc: e.Loc})
	}
	return out
}
