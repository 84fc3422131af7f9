package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns
	ErrEmptyGrid = errors.New("grid must have at least one row and one column")
	// ErrRaggedGrid is returned when rows differ in length
	ErrRaggedGrid = errors.New("grid rows must all have the same length")
	// ErrOutOfBounds is returned by Cell for coordinates outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// defaultPattern is the built-in 5x5 demo board
var defaultPattern = [][]bool{
	{false, true, false, false, false},
	{true, false, false, true, true},
	{true, true, false, false, true},
	{false, true, false, false, false},
	{true, false, false, false, true},
}

// Grid is a fixed-size Game of Life board. Cells outside the board count as dead.
//
// A Grid is not safe for concurrent use: callers must serialize Step against
// every other method.
type Grid struct {
	rows int
	cols int

	// cells is the current generation, next is scratch space for Step
	cells [][]bool
	next  [][]bool

	generation int
	lastTally  rules.Tally
}

// NewGrid creates a grid from row-major cells. The input is copied.
func NewGrid(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrapf(ErrEmptyGrid, "[NewGrid] got %d rows", len(cells))
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRaggedGrid, "[NewGrid] row %d has %d cells, want %d", i, len(row), cols)
		}
	}

	g := &Grid{
		rows:  len(cells),
		cols:  cols,
		cells: allocCells(len(cells), cols),
		next:  allocCells(len(cells), cols),
	}
	for i, row := range cells {
		copy(g.cells[i], row)
	}
	return g, nil
}

// NewDefaultGrid creates the built-in 5x5 demo grid
func NewDefaultGrid() *Grid {
	g, err := NewGrid(defaultPattern)
	if err != nil {
		panic(fmt.Sprintf("default pattern is invalid: %v", err))
	}
	return g
}

func allocCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// GetRows returns the number of rows
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns
func (g *Grid) GetCols() int {
	return g.cols
}

// Generation returns how many times Step has been called
func (g *Grid) Generation() int {
	return g.generation
}

// LastTally returns the rule counts from the most recent Step
func (g *Grid) LastTally() rules.Tally {
	return g.lastTally
}

// InBounds reports whether (row, col) lies on the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsAlive reports whether (row, col) is on the grid and alive. It is safe for any coordinates.
func (g *Grid) IsAlive(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col]
}

// Cell returns the state of an on-grid cell
func (g *Grid) Cell(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Cell] (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Cells returns a copy of the grid in row-major order
func (g *Grid) Cells() [][]bool {
	out := allocCells(g.rows, g.cols)
	for i, row := range g.cells {
		copy(out[i], row)
	}
	return out
}

// NeighborCount returns the number of live cells among the 8 positions around (row, col)
func (g *Grid) NeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue // Skip the cell itself
			}
			if g.IsAlive(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// outcome classifies (row, col) against the current generation
func (g *Grid) outcome(row, col int) rules.Outcome {
	return rules.Classify(g.cells[row][col], g.NeighborCount(row, col))
}

// Step advances the grid by one generation.
//
// Every cell is evaluated against the current generation and written to a
// separate buffer, which then replaces the current one.
func (g *Grid) Step() {
	var tally rules.Tally
	for row := range g.rows {
		for col := range g.cols {
			o := g.outcome(row, col)
			tally.Add(o)
			g.next[row][col] = o.Alive()
		}
	}

	g.cells, g.next = g.next, g.cells
	g.lastTally = tally
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 fingerprint of the current cells and dimensions
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
