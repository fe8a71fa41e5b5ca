// Package rate implements the complexity rater (C11): it drives the
// deduction engine over a puzzle's clues, classifies the puzzle into one of
// five complexity bands, and falls back to single-assignment disproof search
// when straight deduction cannot reach the known solution. Grounded on
// original_source/crate/src/evaluate.rs and evaluate/internals.rs.
package rate

// Complexity is the evaluated difficulty band of a puzzle. The ordering
// (Simple < Moderate < ... < Lunatic) matters: fact complexities are
// compared and maxed/minned directly as Complexity values.
type Complexity int8

const (
	Simple Complexity = iota + 1
	Moderate
	Complex
	Expert
	Lunatic
)

func (c Complexity) String() string {
	switch c {
	case Simple:
		return "simple"
	case Moderate:
		return "moderate"
	case Complex:
		return "complex"
	case Expert:
		return "expert"
	case Lunatic:
		return "lunatic"
	default:
		return "unknown"
	}
}

func maxComplexity(a, b Complexity) Complexity {
	if a > b {
		return a
	}
	return b
}

func minComplexity(a, b Complexity) Complexity {
	if a < b {
		return a
	}
	return b
}

// EvaluatorVersion is stamped onto every Rating this package produces.
const EvaluatorVersion = 0

// Rating is the result of evaluating a puzzle.
type Rating struct {
	Complexity Complexity
	// EstimatedTimeMs is reserved for a future time-to-solve model; its
	// computation is undefined, so it is always 0.
	EstimatedTimeMs  float64
	EvaluatorVersion uint32
}
