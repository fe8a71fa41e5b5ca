package bits

import "testing"

func TestSet9Algebra(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Set9
		wantAnd  Set9
		wantOr   Set9
		wantXor  Set9
		wantDiff Set9
	}{
		{"disjoint", 0b0001, 0b0010, 0b0000, 0b0011, 0b0011, 0b0001},
		{"overlap", 0b0111, 0b0011, 0b0011, 0b0111, 0b0100, 0b0100},
		{"identical", 0b1010, 0b1010, 0b1010, 0b1010, 0b0000, 0b0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.And(tt.b); got != tt.wantAnd {
				t.Errorf("And = %b, want %b", got, tt.wantAnd)
			}
			if got := tt.a.Or(tt.b); got != tt.wantOr {
				t.Errorf("Or = %b, want %b", got, tt.wantOr)
			}
			if got := tt.a.Xor(tt.b); got != tt.wantXor {
				t.Errorf("Xor = %b, want %b", got, tt.wantXor)
			}
			if got := tt.a.Diff(tt.b); got != tt.wantDiff {
				t.Errorf("Diff = %b, want %b", got, tt.wantDiff)
			}
		})
	}
}

func TestSet9InsertRemove(t *testing.T) {
	var s Set9
	for _, v := range []int{0, 3, 8} {
		s.Insert(v)
	}
	if s.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", s.Count())
	}
	if !s.Contains(3) {
		t.Error("expected 3 to be present")
	}
	s.Remove(3)
	if s.Contains(3) {
		t.Error("3 should have been removed")
	}
	if got, ok := s.Min(); !ok || got != 0 {
		t.Errorf("Min() = (%d, %v), want (0, true)", got, ok)
	}
}

func TestSet9OutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range Insert")
		}
	}()
	var s Set9
	s.Insert(CapSet9)
}

func TestSet81BandBitRoundTrip(t *testing.T) {
	for idx := range CapSet81 {
		band, bit := BandBit(idx)
		if got := IndexOf(band, bit); got != idx {
			t.Errorf("IndexOf(BandBit(%d)) = %d, want %d", idx, got, idx)
		}
	}
}

func TestSet81Values(t *testing.T) {
	var s Set81
	for _, idx := range []int{0, 26, 27, 53, 80} {
		s.Insert(idx)
	}
	want := []int{0, 26, 27, 53, 80}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSet729ContainsPerPlane(t *testing.T) {
	var s Set729
	s.Insert(4, 17)
	if !s.Contains(4, 17) {
		t.Error("expected (4, 17) to be present")
	}
	if s.Contains(5, 17) {
		t.Error("insertion on plane 4 should not affect plane 5")
	}
	s.Remove(4, 17)
	if s.Contains(4, 17) {
		t.Error("(4, 17) should have been removed")
	}
}

func TestSet18PackUnpack(t *testing.T) {
	lo := SingletonSet9(2).Or(SingletonSet9(5))
	hi := SingletonSet9(8)
	packed := PackSet18(lo, hi)
	gotLo, gotHi := packed.Unpack()
	if gotLo != lo || gotHi != hi {
		t.Errorf("Unpack() = (%b, %b), want (%b, %b)", gotLo, gotHi, lo, hi)
	}
}
