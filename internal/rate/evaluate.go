package rate

import (
	"github.com/kpitt/sudoku-engine/internal/asgmt"
	"github.com/kpitt/sudoku-engine/internal/deduce"
	"github.com/kpitt/sudoku-engine/internal/grid"
)

// Evaluate classifies clues against its known solution and returns a
// Rating (spec.md §4.9).
func Evaluate(clues grid.Grid, solution grid.SolvedGrid) Rating {
	return Rating{
		Complexity:       EvaluateComplexity(clues, solution),
		EstimatedTimeMs:  0,
		EvaluatorVersion: EvaluatorVersion,
	}
}

// EvaluateComplexity drives the deduction engine over clues, raising a
// running complexity estimate as it applies facts, until no more direct
// assignments are deducible. If the result doesn't match solution, the
// puzzle requires at least one disproof; EvaluateComplexity then tests
// whether a single, non-recursive disproof per candidate suffices (Expert)
// or whether none do (Lunatic).
func EvaluateComplexity(clues grid.Grid, solution grid.SolvedGrid) Complexity {
	solutionAsgmts := asgmt.FromSolvedGrid(solution)
	ff := deduce.NewFactFinder(clues)
	answer := Simple

	for {
		facts := findFacts(ff, answer)

		type scored struct {
			fact deduce.Fact
			c    Complexity
		}
		var placements []scored
		minC := Complex
		for _, f := range facts {
			if _, _, ok := f.Placement(); !ok {
				continue
			}
			c := factComplexity(f)
			minC = minComplexity(minC, c)
			placements = append(placements, scored{f, c})
		}
		if len(placements) == 0 {
			break
		}
		answer = maxComplexity(answer, minC)
		for _, p := range placements {
			if p.c <= answer {
				ff.ApplyFact(p.fact)
			}
		}
	}

	if !ff.PossibleAssignments().Equal(solutionAsgmts) {
		if canSolveViaSingleDisproofs(ff, solutionAsgmts) {
			return Expert
		}
		return Lunatic
	}
	return answer
}

// findFacts implements the rater's "singles only" fast path: while the
// running answer is still Simple, try the cheap single-finder pass first and
// only fall back to the full sweep (overlaps, locked sets, singles) if it
// finds nothing.
func findFacts(ff *deduce.FactFinder, answer Complexity) []deduce.Fact {
	if answer == Simple {
		singles := ff.DeduceSingles()
		if len(singles) > 0 {
			return singles
		}
		facts, _ := ff.Deduce(deduce.Ignore)
		return facts
	}
	facts, _ := ff.Deduce(deduce.Ignore)
	return facts
}

// canSolveViaSingleDisproofs reports whether ff can be driven to solution by
// a sequence of non-recursive disproofs, each eliminating a single
// assignment not in solution after its speculative placement produces a
// contradiction under pure propagation.
func canSolveViaSingleDisproofs(ff *deduce.FactFinder, solution asgmt.Set) bool {
	candidates := ff.PossibleAssignments().Diff(solution).Assignments()

outer:
	for _, a := range candidates {
		inner := ff.Clone()
		inner.ApplyAssignment(a)
		for {
			applied, contradiction := applyDeducedAssignments(inner)
			if contradiction {
				break
			}
			if !applied {
				continue outer
			}
		}

		ff.Eliminate(a)
		for !ff.PossibleAssignments().Equal(solution) {
			applied, contradiction := applyDeducedAssignments(ff)
			if contradiction || !applied {
				continue outer
			}
		}
		return true
	}
	return false
}

// applyDeducedAssignments runs one error-aware deduction pass, applying any
// direct assignments it finds. It reports whether anything was applied and
// whether the pass instead discovered a contradiction (NoLoc/NoNum/Conflict).
func applyDeducedAssignments(ff *deduce.FactFinder) (applied, contradiction bool) {
	facts, _ := ff.Deduce(deduce.ShortCircuit)
	for _, f := range facts {
		if f.IsError() {
			return false, true
		}
	}
	for _, f := range facts {
		if _, _, ok := f.Placement(); ok {
			ff.ApplyFact(f)
			applied = true
		}
	}
	return applied, false
}
