package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/rate"
	"github.com/kpitt/sudoku-engine/internal/solve"
	"github.com/kpitt/sudoku-engine/internal/solver"
)

func main() {
	backend := flag.String("backend", "bitset", "solving backend: \"bitset\" or \"dlx\"")
	rateFlag := flag.Bool("rate", false, "rate the puzzle's complexity once solved")
	flag.Parse()

	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use '.' or '0' for empty cells; other characters are ignored.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	clues, err := readBoard(os.Stdin)
	if err != nil {
		color.HiRed("error: %v", err)
		os.Exit(1)
	}

	solutions, tooMany := solveWith(*backend, clues)
	printResult(clues, solutions, tooMany)

	if *rateFlag {
		printRating(clues, solutions)
	}
}

func readBoard(r *os.File) (grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	var b []byte
	for scanner.Scan() {
		b = append(b, scanner.Bytes()...)
		b = append(b, '\n')
	}
	if err := scanner.Err(); err != nil {
		return grid.Grid{}, fmt.Errorf("reading board: %w", err)
	}
	g, err := grid.ParseCanonical(string(b))
	if err != nil {
		return grid.Grid{}, fmt.Errorf("parsing board: %w", err)
	}
	return g, nil
}

func solveWith(backend string, clues grid.Grid) (solutions []grid.Grid, tooMany bool) {
	switch backend {
	case "dlx":
		dl := solver.NewAlgorithmXSolver(clues, 1)
		return dl.Solve()
	default:
		summary := solve.Solve(clues, 1, solve.MinCandidates{})
		return summary.Solutions, summary.TooManySolutions
	}
}

func printResult(clues grid.Grid, solutions []grid.Grid, tooMany bool) {
	switch {
	case len(solutions) == 0:
		color.HiRed("\nNo solution.")
		fmt.Println(clues.DebugString())
	case tooMany:
		color.HiYellow("\nMultiple solutions; showing the first:")
		fmt.Println(solutions[0].DebugString())
	default:
		color.HiWhite("\nSolution:")
		fmt.Println(solutions[0].DebugString())
	}
}

func printRating(clues grid.Grid, solutions []grid.Grid) {
	if len(solutions) == 0 || len(solutions) > 1 {
		color.HiYellow("\nCannot rate: puzzle does not have a unique solution.")
		return
	}
	sg, err := grid.AsSolvedGrid(solutions[0])
	if err != nil {
		color.HiRed("\ncannot rate: %v", err)
		return
	}
	rating := rate.Evaluate(clues, sg)
	color.HiCyan("\nComplexity: %s", rating.Complexity)
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
