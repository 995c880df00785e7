package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive row or column count,
	// or with more than MaxCells cells
	ErrInvalidDimensions = errors.New("grid dimensions must be positive and at most MaxCells cells")
	// ErrCellCountMismatch is returned when the supplied cells do not fill rows x cols exactly
	ErrCellCountMismatch = errors.New("cell count does not match grid dimensions")
	// ErrInvalidCell is returned when a supplied cell is not Dead, Player1 or Player2
	ErrInvalidCell = errors.New("invalid cell state")
	// ErrNilGrid is returned when an engine is constructed without an initial grid
	ErrNilGrid = errors.New("initial grid is nil")
)
