// Command gen produces daily Sudoku puzzles: a canonical solved grid for a
// given date, and one or more puzzle variants derived from it by counter.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/kpitt/sudoku-engine/internal/gen"
	"github.com/kpitt/sudoku-engine/internal/ids"
	"github.com/kpitt/sudoku-engine/internal/rate"
)

func main() {
	dateFlag := flag.String("date", "", "date to generate for, ±YYYY-MM-DD (default: today)")
	counter := flag.Uint("counter", 1, "starting puzzle counter for the date (must be positive)")
	count := flag.Uint("count", 1, "how many consecutive puzzle variants to generate")
	rateFlag := flag.Bool("rate", false, "print each puzzle's complexity rating")
	flag.Parse()

	date, err := resolveDate(*dateFlag)
	if err != nil {
		color.HiRed("error: %v", err)
		os.Exit(1)
	}

	ds := gen.NewDailySolution(date)
	color.HiWhite("Solved grid for %s:", date)
	fmt.Println(ds.Solution.Grid().DebugString())

	for i := range *count {
		desc := ds.Generate(uint32(*counter) + uint32(i))
		id := desc.GenOpts.Id()

		fmt.Println()
		color.HiCyan("Puzzle %s (sym=%s broken=%v improper=%v solutions=%d)",
			id, desc.GenOpts.Sym, desc.GenOpts.Broken, desc.GenOpts.Improper, desc.NumSolutions)
		fmt.Println(desc.Puzzle.DebugString())

		if *rateFlag {
			printRating(desc)
		}
	}
}

func printRating(desc gen.PuzzleDesc) {
	solution := desc.GenOpts.Permutation.ApplySolved(desc.GenOpts.DailySolution.Solution)
	rating := rate.Evaluate(desc.Puzzle, solution)
	color.HiMagenta("  complexity: %s", rating.Complexity)
}

func resolveDate(s string) (ids.LogicalDate, error) {
	if s == "" {
		now := time.Now().UTC()
		return ids.NewLogicalDate(now.Year(), int(now.Month()), now.Day())
	}
	return ids.ParseLogicalDate(s)
}
