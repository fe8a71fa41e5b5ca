// Package solver implements an alternate backtracking backend (§11): Knuth's
// Algorithm X over a Dancing Links exact-cover matrix, selectable in place of
// internal/solve's bit-parallel search. It trades the ledger's implication
// propagation for the matrix's row/column cover-count heuristic, giving the
// same Grid-in/solutions-out contract through a structurally different
// algorithm. Grounded on internal/solver/dancing_links.go (Node/ColumnNode
// linked-list structure, buildMatrix/cover/uncover) from the teacher pack,
// adapted from the teacher's internal/puzzle.Puzzle representation onto
// internal/grid.
package solver

import (
	"fmt"

	"github.com/kpitt/sudoku-engine/internal/grid"
)

// Node is one intersection in the exact-cover matrix: a circular doubly
// linked list in both directions, the shape Knuth's dancing links relies on
// for O(1) cover/uncover.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *ColumnNode
	RowID                 int
}

// ColumnNode is a column header: a constraint that must be covered exactly
// once per solution.
type ColumnNode struct {
	Node
	Size int
	Name string
}

// Candidate is the (location, numeral) placement a matrix row represents.
type Candidate struct {
	Loc grid.Loc
	Num grid.Num
}

// AlgorithmXSolver solves a Grid by reducing it to exact cover: 324
// constraints (81 cell + 81 row + 81 column + 81 box), each satisfied by
// exactly one of up to 729 candidate rows.
type AlgorithmXSolver struct {
	header     *ColumnNode
	rows       []*Node
	candidates map[int]Candidate

	clues        grid.Grid
	maxSolutions int
	solution     []int
	solutions    []grid.Grid
	tooMany      bool
}

// NewAlgorithmXSolver builds the exact-cover matrix for clues. Solve stops
// as soon as it has collected maxSolutions+1 solutions and then reports
// tooMany; with maxSolutions 0 it stops at the first solution.
func NewAlgorithmXSolver(clues grid.Grid, maxSolutions int) *AlgorithmXSolver {
	dl := &AlgorithmXSolver{
		clues:        clues,
		maxSolutions: maxSolutions,
		rows:         make([]*Node, 0, 729),
		candidates:   make(map[int]Candidate),
	}
	dl.buildMatrix()
	return dl
}

const (
	cellConstraints = 81
	rowConstraints  = 81
	colConstraints  = 81
	boxConstraints  = 81
)

func (dl *AlgorithmXSolver) buildMatrix() {
	dl.header = &ColumnNode{Name: "header"}
	dl.header.Left = &dl.header.Node
	dl.header.Right = &dl.header.Node

	total := cellConstraints + rowConstraints + colConstraints + boxConstraints
	columns := make([]*ColumnNode, total)
	for i := range total {
		col := &ColumnNode{Name: dl.columnName(i)}
		col.Up = &col.Node
		col.Down = &col.Node
		col.Column = col
		columns[i] = col

		col.Left = dl.header.Left
		col.Right = &dl.header.Node
		dl.header.Left.Right = &col.Node
		dl.header.Left = &col.Node
	}

	for _, l := range grid.AllLocs() {
		if clue, ok := dl.clues.At(l); ok {
			dl.createRowNodes(l, clue, columns)
			continue
		}
		for _, n := range grid.AllNums() {
			dl.createRowNodes(l, n, columns)
		}
	}
}

func (dl *AlgorithmXSolver) createRowNodes(l grid.Loc, n grid.Num, columns []*ColumnNode) {
	cellCol := l.Index()
	rowCol := cellConstraints + l.Row()*9 + n.Index()
	colCol := cellConstraints + rowConstraints + l.Col()*9 + n.Index()
	boxCol := cellConstraints + rowConstraints + colConstraints + l.Block()*9 + n.Index()

	constraintCols := [4]int{cellCol, rowCol, colCol, boxCol}
	rowID := len(dl.rows)
	dl.candidates[rowID] = Candidate{Loc: l, Num: n}

	var nodes [4]*Node
	for i, colIdx := range constraintCols {
		node := &Node{Column: columns[colIdx], RowID: rowID}
		nodes[i] = node

		node.Down = columns[colIdx].Down
		node.Up = &columns[colIdx].Node
		columns[colIdx].Down.Up = node
		columns[colIdx].Down = node
		columns[colIdx].Size++
	}
	for i := range 4 {
		nodes[i].Left = nodes[(i+3)%4]
		nodes[i].Right = nodes[(i+1)%4]
	}
	dl.rows = append(dl.rows, nodes[0])
}

func (dl *AlgorithmXSolver) columnName(index int) string {
	switch {
	case index < cellConstraints:
		return fmt.Sprintf("R%dC%d", index/9, index%9)
	case index < cellConstraints+rowConstraints:
		idx := index - cellConstraints
		return fmt.Sprintf("R%d#%d", idx/9, idx%9+1)
	case index < cellConstraints+rowConstraints+colConstraints:
		idx := index - cellConstraints - rowConstraints
		return fmt.Sprintf("C%d#%d", idx/9, idx%9+1)
	default:
		idx := index - cellConstraints - rowConstraints - colConstraints
		return fmt.Sprintf("B%d#%d", idx/9, idx%9+1)
	}
}

// Solve runs Algorithm X to exhaustion (bounded by maxSolutions+1) and
// returns every solution found, mirroring internal/solve.Solve's summary
// shape so either backend can stand in for the other.
func (dl *AlgorithmXSolver) Solve() (solutions []grid.Grid, tooMany bool) {
	dl.search()
	return dl.solutions, dl.tooMany
}

func (dl *AlgorithmXSolver) search() bool {
	if dl.header.Right == &dl.header.Node {
		dl.recordSolution()
		return len(dl.solutions) > dl.maxSolutions
	}

	col := dl.chooseColumn()
	if col.Size == 0 {
		return false // dead end: an unsatisfiable constraint
	}
	dl.cover(col)

	for r := col.Down; r != &col.Node; r = r.Down {
		dl.solution = append(dl.solution, r.RowID)
		for j := r.Right; j != r; j = j.Right {
			dl.cover(j.Column)
		}

		if dl.search() {
			return true
		}

		for j := r.Left; j != r; j = j.Left {
			dl.uncover(j.Column)
		}
		dl.solution = dl.solution[:len(dl.solution)-1]
	}

	dl.uncover(col)
	return false
}

func (dl *AlgorithmXSolver) chooseColumn() *ColumnNode {
	var chosen *ColumnNode
	minSize := int(^uint(0) >> 1)
	for col := dl.header.Right; col != &dl.header.Node; col = col.Right {
		columnNode := col.Column
		if columnNode.Size < minSize {
			chosen = columnNode
			minSize = columnNode.Size
		}
	}
	return chosen
}

func (dl *AlgorithmXSolver) cover(col *ColumnNode) {
	col.Right.Left = col.Left
	col.Left.Right = col.Right

	for i := col.Down; i != &col.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Column.Size--
		}
	}
}

func (dl *AlgorithmXSolver) uncover(col *ColumnNode) {
	for i := col.Up; i != &col.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Column.Size++
			j.Down.Up = j
			j.Up.Down = j
		}
	}
	col.Right.Left = &col.Node
	col.Left.Right = &col.Node
}

func (dl *AlgorithmXSolver) recordSolution() {
	out := dl.clues
	for _, rowID := range dl.solution {
		can, ok := dl.candidates[rowID]
		if !ok {
			continue
		}
		out = out.Set(can.Loc, can.Num)
	}
	dl.solutions = append(dl.solutions, out)
	if len(dl.solutions) > dl.maxSolutions {
		dl.tooMany = true
	}
}
