package sym

import (
	"testing"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

func TestOrbitsPartitionAllLocations(t *testing.T) {
	for _, s := range All() {
		seen := map[grid.Loc]bool{}
		for _, orbit := range s.Orbits() {
			for _, l := range orbit {
				if seen[l] {
					t.Errorf("%s: location %v appears in more than one orbit", s, l)
				}
				seen[l] = true
			}
		}
		if len(seen) != 81 {
			t.Errorf("%s: orbits cover %d locations, want 81", s, len(seen))
		}
	}
}

func TestOrbitOfIsConsistentWithOrbits(t *testing.T) {
	l := grid.LocAt(2, 3)
	orbit := Rotate180.OrbitOf(l)
	found := false
	for _, o := range Rotate180.Orbits() {
		if len(o) != len(orbit) {
			continue
		}
		match := true
		for i := range o {
			if o[i] != orbit[i] {
				match = false
				break
			}
		}
		if match {
			found = true
			break
		}
	}
	if !found {
		t.Error("OrbitOf result does not match any orbit from Orbits()")
	}
}

func TestNoneHasSingletonOrbits(t *testing.T) {
	for _, orbit := range None.Orbits() {
		if len(orbit) != 1 {
			t.Errorf("None symmetry orbit has %d members, want 1", len(orbit))
		}
	}
}

func TestRotate180LessEqFullyReflective(t *testing.T) {
	if !Rotate180.LessEq(FullyReflective) {
		t.Error("Rotate180 should refine to FullyReflective")
	}
	if FullyReflective.LessEq(Rotate180) && FullyReflective != Rotate180 {
		t.Error("FullyReflective should not be <= the strictly finer Rotate180")
	}
}

func TestEvaluateFullOrbitsOnSolvedGrid(t *testing.T) {
	const solved = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179`
	g, err := grid.ParseCanonical(solved)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	ev := Evaluate(None, g)
	if len(ev.FullOrbits) != 81 || len(ev.PartialOrbits) != 0 {
		t.Errorf("a fully solved grid under None should have 81 full and 0 partial orbits, got %d and %d", len(ev.FullOrbits), len(ev.PartialOrbits))
	}
	if ev.NumNonconformingLocs != 0 {
		t.Errorf("a fully solved grid should have 0 nonconforming locations under None, got %d", ev.NumNonconformingLocs)
	}
}
