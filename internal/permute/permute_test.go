package permute

import (
	"testing"

	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/xrand"
)

const solvedGridStr = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179`

func mustSolvedGrid(t *testing.T) grid.SolvedGrid {
	t.Helper()
	g, err := grid.ParseCanonical(solvedGridStr)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	sg, err := grid.AsSolvedGrid(g)
	if err != nil {
		t.Fatalf("AsSolvedGrid: %v", err)
	}
	return sg
}

func TestIdentityIsNoOp(t *testing.T) {
	sg := mustSolvedGrid(t)
	out := Identity().ApplySolved(sg)
	if out.Grid().String() != sg.Grid().String() {
		t.Error("Identity permutation should leave the grid unchanged")
	}
}

func TestComposeInverseIsIdentity(t *testing.T) {
	r := xrand.New("permute-test")
	p := Random(r)
	roundTrip := p.Compose(p.Inverse())
	sg := mustSolvedGrid(t)
	out := roundTrip.ApplySolved(sg)
	if out.Grid().String() != sg.Grid().String() {
		t.Error("p composed with its inverse should act as identity")
	}
}

func TestApplySolvedPreservesValidity(t *testing.T) {
	r := xrand.New("permute-test-2")
	sg := mustSolvedGrid(t)
	for i := range 20 {
		p := Random(r)
		out := p.ApplySolved(sg)
		if _, err := grid.AsSolvedGrid(out.Grid()); err != nil {
			t.Fatalf("iteration %d: permuted grid is not a valid solved grid: %v", i, err)
		}
	}
}

func TestMinimizingIsStableUnderPriorPermutation(t *testing.T) {
	sg := mustSolvedGrid(t)
	_, minA, _ := Minimizing(sg)

	r := xrand.New("permute-test-3")
	permuted := Random(r).ApplySolved(sg)
	_, minB, _ := Minimizing(permuted)

	if minA.String() != minB.String() {
		t.Error("canonical form should be invariant under a prior permutation of an equivalent grid")
	}
}
