// Package gen implements the puzzle generator (C9): a daily canonical
// solved grid, permuted and symmetrically reduced into individual puzzle
// variants. Grounded on original_source/crate/src/gen.rs.
package gen

import (
	"fmt"

	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/ids"
	"github.com/kpitt/sudoku-engine/internal/ledger"
	"github.com/kpitt/sudoku-engine/internal/permute"
	"github.com/kpitt/sudoku-engine/internal/solve"
	"github.com/kpitt/sudoku-engine/internal/sym"
	"github.com/kpitt/sudoku-engine/internal/xrand"
)

// Tunable generation parameters (spec.md §4.8). Changing any of these would
// invalidate previously generated puzzle IDs, so GeneratorVersion must bump
// alongside them.
const (
	BrokenSymmetryProb = 0.9
	ImproperProb       = 0.125
	MaxSolutions       = 3
	MaxHoles           = 7

	// GeneratorVersion is stamped onto every GenOpts; callers must reject a
	// puzzle whose stamp differs from the current value.
	GeneratorVersion = 0
)

// symWeights pairs each symmetry with its sampling weight, in the order
// spec.md §3/§4.8 lists them: [100,50,50,50,25,50,50,25,10,25,25,50].
var symWeights = []struct {
	Sym    sym.Sym
	Weight int
}{
	{sym.Rotate180, 100},
	{sym.Rotate90, 50},
	{sym.MirrorX, 50},
	{sym.MirrorY, 50},
	{sym.DoubleMirror, 25},
	{sym.DiagMain, 50},
	{sym.DiagAnti, 50},
	{sym.DoubleDiagonal, 25},
	{sym.FullyReflective, 10},
	{sym.BlockMain, 25},
	{sym.BlockAnti, 25},
	{sym.None, 50},
}

func sampleSym(r *xrand.Rand) sym.Sym {
	weights := make([]int, len(symWeights))
	for i, sw := range symWeights {
		weights[i] = sw.Weight
	}
	return symWeights[r.WeightedIndex(weights)].Sym
}

// DailySolution is the canonical solved grid shared by every puzzle
// generated for a given date.
type DailySolution struct {
	Date     ids.LogicalDate
	Solution grid.SolvedGrid
}

// NewDailySolution derives the day's canonical solved grid: seed the RNG
// from the date's plain ISO-8601 string, then run the solver with a
// shuffle-numerals pivot helper on an empty grid and take its first
// solution.
func NewDailySolution(date ids.LogicalDate) DailySolution {
	r := xrand.New(date.ISOSeed())
	return DailySolution{Date: date, Solution: genSolvedGrid(r)}
}

func genSolvedGrid(r *xrand.Rand) grid.SolvedGrid {
	summary := solve.Solve(grid.NewGrid(), 0, xrand.RandomPivot{Rand: r})
	if len(summary.Solutions) == 0 {
		panic("gen: empty grid produced no solution")
	}
	sg, err := grid.AsSolvedGrid(summary.Solutions[0])
	if err != nil {
		panic("gen: solver returned an incomplete grid: " + err.Error())
	}
	return sg
}

// GenOpts records the options that produced a generated puzzle, everything
// needed to reproduce or describe it.
type GenOpts struct {
	DailySolution DailySolution
	Counter       uint32
	Permutation   permute.GridPermutation
	Sym           sym.Sym
	Broken        bool
	Improper      bool
	Version       int
}

// PuzzleDesc is a generated puzzle: its clue grid, the options that
// produced it (if generated by this package), and how many solutions it
// has.
type PuzzleDesc struct {
	Puzzle       grid.Grid
	GenOpts      GenOpts
	NumSolutions int
}

// Id returns the generated puzzle's identity.
func (o GenOpts) Id() ids.PuzzleId {
	id, err := ids.NewPuzzleId(o.DailySolution.Date, o.Counter)
	if err != nil {
		panic(fmt.Sprintf("gen: %v", err))
	}
	return id
}

// Generate produces one of ds's puzzle variants (spec.md §4.8):
//  1. Seed is "{date}:{counter}".
//  2. Draw a random GridPermutation and apply it to the day's solution.
//  3. Sample a symmetry from the weighted distribution.
//  4. Sample broken (p=0.9) and improper (p=0.125).
//  5. Run gen_puzzle.
func (ds DailySolution) Generate(counter uint32) PuzzleDesc {
	id, err := ids.NewPuzzleId(ds.Date, counter)
	if err != nil {
		panic(fmt.Sprintf("gen: %v", err))
	}
	r := xrand.New(id.Seed())

	permutation := permute.Random(r)
	solution := permutation.ApplySolved(ds.Solution)

	s := sampleSym(r)
	broken := r.Bool(BrokenSymmetryProb)
	improper := r.Bool(ImproperProb)

	summary := genPuzzle(solution, s, broken, improper, r)
	return PuzzleDesc{
		Puzzle: summary.Clues,
		GenOpts: GenOpts{
			DailySolution: ds,
			Counter:       counter,
			Permutation:   permutation,
			Sym:           s,
			Broken:        broken,
			Improper:      improper,
			Version:       GeneratorVersion,
		},
		NumSolutions: len(summary.Solutions),
	}
}

// genPuzzle builds an over-cluey symmetric puzzle, then reduces it: a
// simple pass, a reduction pass bounded by (maxSolutions, maxHoles), and,
// if broken, a second unconstrained-symmetry reduction pass.
func genPuzzle(solution grid.SolvedGrid, s sym.Sym, broken, improper bool, r *xrand.Rand) solve.Summary {
	puzzle := genSimplePuzzle(solution, s, r)

	maxSolutions, maxHoles := 1, 0
	if improper {
		maxSolutions, maxHoles = MaxSolutions, MaxHoles
	}

	summary := improvePuzzle(puzzle, s, r, maxSolutions, maxHoles)
	if broken && s != sym.None {
		summary = improvePuzzle(summary.Clues, sym.None, r, maxSolutions, maxHoles)
	}
	return summary
}

// genSimplePuzzle builds a clue grid that solves uniquely under pure
// propagation, honoring sym: for each of sym's orbits (in random order), if
// any of its locations is still unset, copy the whole orbit's clues in and
// apply implications.
func genSimplePuzzle(solution grid.SolvedGrid, s sym.Sym, r *xrand.Rand) grid.Grid {
	led, err := ledger.FromClues(grid.NewGrid())
	if err != nil {
		panic("gen: empty grid rejected: " + err.Error())
	}
	answer := grid.NewGrid()

	for _, orbit := range shuffledOrbits(s, r) {
		anyUnset := false
		for _, l := range orbit {
			if led.Unset.Contains(l.Index()) {
				anyUnset = true
				break
			}
		}
		if !anyUnset {
			continue
		}
		for _, l := range orbit {
			clue := solution.At(l)
			answer = answer.Set(l, clue)
			led.Assign(clue, l)
		}
		if _, err := led.ApplyImplications(); err != nil {
			panic("gen: simple pass produced an inconsistent ledger: " + err.Error())
		}
	}
	return answer
}

// improvePuzzle subtracts clues from puzzle, honoring sym: for each orbit
// (in random order), tentatively blank its clues; keep the change iff the
// resulting puzzle still has at most maxSolutions solutions and at most
// maxHoles locations disagreeing across them.
func improvePuzzle(puzzle grid.Grid, s sym.Sym, r *xrand.Rand, maxSolutions, maxHoles int) solve.Summary {
	helper := solve.JCZ{}
	summary := solve.Solve(puzzle, maxSolutions, helper)

	for _, orbit := range shuffledOrbits(s, r) {
		prev := puzzle
		for _, l := range orbit {
			puzzle = puzzle.Set(l, 0)
		}
		next := solve.Solve(puzzle, maxSolutions, helper)
		if len(next.Solutions) <= maxSolutions && next.NumHoles() <= maxHoles {
			summary = next
		} else {
			puzzle = prev
		}
	}
	return summary
}

func shuffledOrbits(s sym.Sym, r *xrand.Rand) [][]grid.Loc {
	orbits := s.Orbits()
	out := make([][]grid.Loc, len(orbits))
	copy(out, orbits)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
