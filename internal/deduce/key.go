package deduce

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

// factKey returns a string uniquely identifying f's content (ignoring
// Eliminations ordering and any Implication wrapping), used by
// FactFinder.Deduce to avoid reporting the same underlying deduction twice
// across sweeps.
func factKey(f Fact) string {
	target := f
	if f.Kind == KindImplication && f.Consequent != nil {
		target = *f.Consequent
	}

	locs := append([]grid.Loc{}, target.Locs...)
	if target.Kind == KindSingleLoc || target.Kind == KindSingleNum {
		locs = append(locs, target.Loc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|%s", target.Kind, target.Num, target.Unit)
	if target.CrossUnit != nil {
		fmt.Fprintf(&b, "|x%s", *target.CrossUnit)
	}
	fmt.Fprintf(&b, "|l%s", locKey(locs))
	fmt.Fprintf(&b, "|n%s", numKey(target.Nums))
	fmt.Fprintf(&b, "|naked=%v", target.IsNaked)
	return b.String()
}

func locKey(locs []grid.Loc) string {
	strs := make([]string, len(locs))
	for i, l := range locs {
		strs[i] = l.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, ",")
}

func numKey(nums []grid.Num) string {
	strs := make([]string, len(nums))
	for i, n := range nums {
		strs[i] = n.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, ",")
}
