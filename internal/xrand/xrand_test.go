package xrand

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New("seed-one")
	b := New("seed-one")
	for i := range 50 {
		va, vb := a.IntN(1000), b.IntN(1000)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New("seed-one")
	b := New("seed-two")
	same := true
	for range 20 {
		if a.IntN(1_000_000) != b.IntN(1_000_000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two different seeds produced an identical stream over 20 draws")
	}
}

func TestBoolRespectsExtremes(t *testing.T) {
	r := New("bool-test")
	for range 20 {
		if r.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
	}
	for range 20 {
		if !r.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}
}

func TestWeightedIndexRespectsZeroWeights(t *testing.T) {
	r := New("weighted-test")
	for range 100 {
		idx := r.WeightedIndex([]int{0, 0, 5, 0})
		if idx != 2 {
			t.Fatalf("WeightedIndex with a single nonzero weight returned %d, want 2", idx)
		}
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	r := New("shuffle-test")
	order := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	seen := make(map[int]bool)
	for _, v := range order {
		seen[v] = true
	}
	if len(seen) != 9 {
		t.Fatalf("shuffled slice lost elements: %v", order)
	}
}
