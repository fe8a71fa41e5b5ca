package ids

import (
	"fmt"
	"regexp"
	"strconv"
)

// PuzzleId identifies a single generated puzzle: the daily solution's date
// plus a positive counter distinguishing the variants drawn from that day's
// solution (spec.md §4.10/§6).
type PuzzleId struct {
	Date    LogicalDate
	Counter uint32
}

// NewPuzzleId builds a PuzzleId, rejecting a zero counter.
func NewPuzzleId(date LogicalDate, counter uint32) (PuzzleId, error) {
	if counter == 0 {
		return PuzzleId{}, fmt.Errorf("ids: puzzle counter must be positive")
	}
	return PuzzleId{Date: date, Counter: counter}, nil
}

// Seed returns the string DailySolution::generate seeds its RNG with
// (spec.md §4.8): "{date}:{counter}", using the plain ISO date form.
func (id PuzzleId) Seed() string {
	return fmt.Sprintf("%s:%d", id.Date.ISOSeed(), id.Counter)
}

// String renders id as "{yyyy-mm-dd}:{counter}".
func (id PuzzleId) String() string {
	return fmt.Sprintf("%s:%d", id.Date.ISOSeed(), id.Counter)
}

var puzzleIDPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}):(\d+)$`)

// ParsePuzzleId parses the "yyyy-mm-dd:counter" form produced by String.
func ParsePuzzleId(s string) (PuzzleId, error) {
	m := puzzleIDPattern.FindStringSubmatch(s)
	if m == nil {
		return PuzzleId{}, fmt.Errorf("ids: malformed puzzle id %q", s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	counter, err := strconv.ParseUint(m[4], 10, 32)
	if err != nil {
		return PuzzleId{}, fmt.Errorf("ids: malformed counter in %q: %w", s, err)
	}
	date, err := NewLogicalDate(year, month, day)
	if err != nil {
		return PuzzleId{}, err
	}
	return NewPuzzleId(date, uint32(counter))
}
