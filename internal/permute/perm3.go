// Package permute implements the permutation group (C7): composable
// permutations of numerals and locations, grid application, and the
// lexicographically-minimal canonicalizer. Grounded on
// original_source/crate/src/permute.rs.
package permute

import "fmt"

// Perm3 is a permutation of {0,1,2}, used for band orderings and the
// orderings of the three lines within a band.
type Perm3 [3]int

// IdentityPerm3 is the identity permutation of {0,1,2}.
func IdentityPerm3() Perm3 { return Perm3{0, 1, 2} }

func (p Perm3) Apply(i int) int { return p[i] }

// Compose returns the permutation equivalent to applying p, then other.
func (p Perm3) Compose(other Perm3) Perm3 {
	return Perm3{other[p[0]], other[p[1]], other[p[2]]}
}

func (p Perm3) Inverse() Perm3 {
	var out Perm3
	for i, v := range p {
		out[v] = i
	}
	return out
}

func (p Perm3) String() string {
	return fmt.Sprintf("(%d %d %d)", p[0], p[1], p[2])
}

// AllPerm3 returns all six permutations of {0,1,2}, in a fixed deterministic
// order produced by swap-based recursion: (0 1 2), (0 2 1), (1 0 2),
// (1 2 0), (2 1 0), (2 0 1).
func AllPerm3() []Perm3 {
	var out []Perm3
	idx := []int{0, 1, 2}
	var permute func(k int)
	permute = func(k int) {
		if k == len(idx) {
			var p Perm3
			copy(p[:], idx)
			out = append(out, p)
			return
		}
		for i := k; i < len(idx); i++ {
			idx[k], idx[i] = idx[i], idx[k]
			permute(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	permute(0)
	return out
}
