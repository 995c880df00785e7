package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a fixed-size board of cells stored in row-major order.
// x indexes rows and y indexes columns.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// MaxCells is the largest rows x cols a grid may hold
const MaxCells = 1 << 26

// ValidDimensions reports whether a rows x cols grid can be built
func ValidDimensions(rows, cols int) bool {
	return rows >= 1 && cols >= 1 && rows <= MaxCells/cols
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if !ValidDimensions(rows, cols) {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] failed to create %dx%d grid", rows, cols)
	}
	return newGrid(rows, cols), nil
}

// NewGridFromCells creates a grid from a row-major cell assignment covering every position
func NewGridFromCells(rows, cols int, cells []Cell) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, errors.Wrapf(ErrCellCountMismatch,
			"[NewGridFromCells] failed to fill %dx%d grid with %d cells", rows, cols, len(cells))
	}
	for i, c := range cells {
		if !c.Valid() {
			return nil, errors.Wrapf(ErrInvalidCell,
				"[NewGridFromCells] failed to set cell (%d,%d) to %v", i/cols, i%cols, c)
		}
	}
	copy(g.cells, cells)
	return g, nil
}

func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// GetRows returns the number of rows of the grid
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns of the grid
func (g *Grid) GetCols() int {
	return g.cols
}

// Reset resizes the grid to new dimensions, leaving every cell dead
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	if cap(g.cells) < rows*cols {
		g.cells = make([]Cell, rows*cols)
		return
	}
	g.cells = g.cells[:rows*cols]
	g.Clear()
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.rows || y < 0 || y >= g.cols {
		panic(fmt.Sprintf("model: cell (%d,%d) out of bounds for %dx%d grid", x, y, g.rows, g.cols))
	}
	return x*g.cols + y
}

// Set sets the cell at row x, column y. Out-of-range indices or states panic.
func (g *Grid) Set(x, y int, c Cell) {
	if !c.Valid() {
		panic(fmt.Sprintf("model: invalid cell state %d at (%d,%d)", uint8(c), x, y))
	}
	g.cells[g.index(x, y)] = c
}

// Get returns the cell at row x, column y. Out-of-range indices panic.
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// CountNeighbors counts cells equal to player in the edge-clamped Moore neighborhood of (x, y),
// excluding (x, y) itself
func (g *Grid) CountNeighbors(player Cell, x, y int) int {
	center := g.Get(x, y)
	count := 0

	minX := max(0, x-1)
	maxX := min(g.rows-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.cols-1, y+1)

	for i := minX; i <= maxX; i++ {
		row := g.cells[i*g.cols : (i+1)*g.cols]
		for j := minY; j <= maxY; j++ {
			if row[j] == player {
				count++
			}
		}
	}

	if center == player {
		count--
	}
	return count
}

// CountOf returns the number of cells in the given state
func (g *Grid) CountOf(player Cell) (count int) {
	for _, c := range g.cells {
		if c == player {
			count++
		}
	}
	return
}

// Cells returns a row-major copy of the grid contents
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: g.Cells(),
	}
}

// GetGridHash returns an MD5 fingerprint of the current grid contents
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
