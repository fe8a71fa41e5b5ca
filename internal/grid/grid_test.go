package grid

import "testing"

func TestLocAtRoundTrip(t *testing.T) {
	for row := range 9 {
		for col := range 9 {
			l := LocAt(row, col)
			if l.Row() != row || l.Col() != col {
				t.Errorf("LocAt(%d,%d) -> Row=%d Col=%d", row, col, l.Row(), l.Col())
			}
		}
	}
}

func TestLocBlockAndBands(t *testing.T) {
	tests := []struct {
		row, col         int
		block, rowBand, colBand int
	}{
		{0, 0, 0, 0, 0},
		{4, 4, 4, 1, 1},
		{8, 8, 8, 2, 2},
		{2, 6, 2, 0, 2},
	}
	for _, tt := range tests {
		l := LocAt(tt.row, tt.col)
		if l.Block() != tt.block {
			t.Errorf("LocAt(%d,%d).Block() = %d, want %d", tt.row, tt.col, l.Block(), tt.block)
		}
		if l.RowBand() != tt.rowBand || l.ColBand() != tt.colBand {
			t.Errorf("LocAt(%d,%d) bands = (%d,%d), want (%d,%d)",
				tt.row, tt.col, l.RowBand(), l.ColBand(), tt.rowBand, tt.colBand)
		}
	}
}

func TestLocPeersExcludesSelf(t *testing.T) {
	l := LocAt(4, 4)
	for _, p := range l.Peers() {
		if p == l {
			t.Fatalf("Peers() included the location itself")
		}
	}
	if n := len(l.Peers()); n != 20 {
		t.Fatalf("len(Peers()) = %d, want 20", n)
	}
}

func TestUnitsOfAgreeWithLocs(t *testing.T) {
	l := LocAt(5, 2)
	for _, u := range UnitsOf(l) {
		found := false
		for _, ul := range u.Locs() {
			if ul == l {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("unit %v (%s) does not contain %v", u, u.Kind, l)
		}
	}
}

func TestGridSetAtNumSet(t *testing.T) {
	g := NewGrid()
	if g.NumSet() != 0 {
		t.Fatalf("new grid NumSet() = %d, want 0", g.NumSet())
	}
	g = g.Set(LocAt(0, 0), 5)
	if n, ok := g.At(LocAt(0, 0)); !ok || n != 5 {
		t.Errorf("At(0,0) = (%v, %v), want (5, true)", n, ok)
	}
	if g.NumSet() != 1 {
		t.Errorf("NumSet() = %d, want 1", g.NumSet())
	}
}

func TestGridStateDetectsConflict(t *testing.T) {
	g := NewGrid().Set(LocAt(0, 0), 5).Set(LocAt(0, 1), 5)
	state, conflicts := g.State()
	if state != StateBroken {
		t.Fatalf("State() = %v, want StateBroken", state)
	}
	if len(conflicts) != 2 {
		t.Errorf("len(conflicts) = %d, want 2", len(conflicts))
	}
}

func TestGridStateIncompleteThenSolved(t *testing.T) {
	solved := `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179`
	g, err := ParseCanonical(solved)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	if state, _ := g.State(); state != StateSolved {
		t.Fatalf("State() = %v, want StateSolved", state)
	}

	partial := g.Set(LocAt(0, 0), 0)
	if state, _ := partial.State(); state != StateIncomplete {
		t.Fatalf("State() = %v, want StateIncomplete", state)
	}
}

func TestParseCanonicalRejectsWrongLength(t *testing.T) {
	if _, err := ParseCanonical("123"); err == nil {
		t.Error("expected error for too few significant characters")
	}
}

func TestParseCanonicalStringRoundTrip(t *testing.T) {
	const s = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	g, err := ParseCanonical(s)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}
	if got := g.String(); got != s {
		t.Errorf("String() round trip = %q, want %q", got, s)
	}
}
