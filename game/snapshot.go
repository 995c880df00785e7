package game

import (
	"fmt"

	"github.com/sheikhrachel/go-gol-duel/model"
)

// Snapshot is a consistent, detached view of one generation
type Snapshot struct {
	Generation   int
	Rows         int
	Cols         int
	Cells        []model.Cell // row-major
	Player1Count int
	Player2Count int
	Terminal     bool
	Message      string
}

// Snapshot captures the current generation. The returned cells do not alias engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p1 := e.current.CountOf(model.Player1)
	p2 := e.current.CountOf(model.Player2)
	return Snapshot{
		Generation:   e.generation,
		Rows:         e.current.GetRows(),
		Cols:         e.current.GetCols(),
		Cells:        e.current.Cells(),
		Player1Count: p1,
		Player2Count: p2,
		Terminal:     model.IsTerminal(p1, p2),
		Message:      model.OutcomeMessage(p1, p2),
	}
}

// At returns the cell at row x, column y
func (s Snapshot) At(x, y int) model.Cell {
	if x < 0 || x >= s.Rows || y < 0 || y >= s.Cols {
		panic(fmt.Sprintf("game: cell (%d,%d) out of bounds for %dx%d snapshot", x, y, s.Rows, s.Cols))
	}
	return s.Cells[x*s.Cols+y]
}
