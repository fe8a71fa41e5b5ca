// Package sym implements the symmetry catalog (C6): the twelve Sym variants,
// their precomputed location orbits, the partial order among them, and
// puzzle/symmetry evaluation. Grounded on original_source/crate/src/sym.rs.
package sym

import "fmt"

// Sym is one of the twelve symmetry classes.
type Sym int8

const (
	None Sym = iota
	Rotate180
	Rotate90
	MirrorX
	MirrorY
	DoubleMirror
	DiagMain
	DiagAnti
	DoubleDiagonal
	FullyReflective
	BlockMain
	BlockAnti
)

// All returns the twelve symmetries in the order of the weight vector of
// spec.md §4.8 (None last, unlike the constant declarations above).
func All() []Sym {
	return []Sym{
		Rotate180, Rotate90, MirrorX, MirrorY, DoubleMirror,
		DiagMain, DiagAnti, DoubleDiagonal, FullyReflective,
		BlockMain, BlockAnti, None,
	}
}

func (s Sym) String() string {
	switch s {
	case None:
		return "none"
	case Rotate180:
		return "rotate-180"
	case Rotate90:
		return "rotate-90"
	case MirrorX:
		return "mirror-x"
	case MirrorY:
		return "mirror-y"
	case DoubleMirror:
		return "double-mirror"
	case DiagMain:
		return "diagonal-main"
	case DiagAnti:
		return "diagonal-anti"
	case DoubleDiagonal:
		return "double-diagonal"
	case FullyReflective:
		return "fully-reflective"
	case BlockMain:
		return "block-main"
	case BlockAnti:
		return "block-anti"
	default:
		return fmt.Sprintf("sym(%d)", int(s))
	}
}
