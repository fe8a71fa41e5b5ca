// Command explore exposes the canonicalizer and symmetry catalog for
// interactive poking, folding together what the original engine split across
// several small binaries (min-orbit, orbit-range, puzzle-range) into one
// tool with subcommands, in the style of cmd/sudoku.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/kpitt/sudoku-engine/internal/grid"
	"github.com/kpitt/sudoku-engine/internal/permute"
	"github.com/kpitt/sudoku-engine/internal/sym"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "canon":
		cmdCanon()
	case "sym":
		cmdSym()
	case "orbit":
		cmdOrbit(args[1:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: explore <canon|sym|orbit> [args]")
	fmt.Fprintln(os.Stderr, "  canon        read a solved grid from stdin, print its canonical form")
	fmt.Fprintln(os.Stderr, "  sym          read a clue grid from stdin, print best-matching symmetries")
	fmt.Fprintln(os.Stderr, "  orbit <sym>  print the location orbits for a named symmetry")
}

func readGrid() (grid.Grid, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var b []byte
	for scanner.Scan() {
		b = append(b, scanner.Bytes()...)
		b = append(b, '\n')
	}
	if err := scanner.Err(); err != nil {
		return grid.Grid{}, err
	}
	return grid.ParseCanonical(string(b))
}

func cmdCanon() {
	exitIfErr := func(err error) {
		if err != nil {
			color.HiRed("error: %v", err)
			os.Exit(1)
		}
	}

	g, err := readGrid()
	exitIfErr(err)
	sg, err := grid.AsSolvedGrid(g)
	exitIfErr(err)

	perm, minGrid, count := permute.Minimizing(sg)
	color.HiWhite("Canonical form (reached by %d permutation(s)):", count)
	fmt.Println(minGrid.DebugString())
	color.HiCyan("Numeral relabeling: %s", perm.Nums.Cycles())
}

func cmdSym() {
	g, err := readGrid()
	if err != nil {
		color.HiRed("error: %v", err)
		os.Exit(1)
	}

	matches := sym.BestMatches(g, 4)
	color.HiWhite("Best-matching symmetries (up to 4 nonconforming locations):")
	for _, m := range matches {
		fmt.Printf("  %-16s full=%-2d partial=%-2d nonconforming=%d\n",
			m.Sym, len(m.FullOrbits), len(m.PartialOrbits), m.NumNonconformingLocs)
	}
}

func cmdOrbit(args []string) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	s, ok := parseSym(args[0])
	if !ok {
		color.HiRed("error: unknown symmetry %q", args[0])
		os.Exit(1)
	}

	orbits := s.Orbits()
	color.HiWhite("%s: %d orbit(s)", s, len(orbits))
	for i, orbit := range orbits {
		fmt.Printf("  orbit %2d: %v\n", i, orbit)
	}
}

func parseSym(name string) (sym.Sym, bool) {
	for _, s := range sym.All() {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
