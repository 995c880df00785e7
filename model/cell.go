package model

import "fmt"

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Player1
	Player2
)

const (
	deadRune    = '.'
	player1Rune = '1'
	player2Rune = '2'
)

// Players lists the live cell states in player order
var Players = [...]Cell{Player1, Player2}

// Valid reports whether c is one of the three known states
func (c Cell) Valid() bool {
	return c <= Player2
}

// Alive reports whether the cell is owned by a player
func (c Cell) Alive() bool {
	return c == Player1 || c == Player2
}

// Rune returns the text encoding of the cell
func (c Cell) Rune() rune {
	switch c {
	case Player1:
		return player1Rune
	case Player2:
		return player2Rune
	default:
		return deadRune
	}
}

func (c Cell) String() string {
	switch c {
	case Dead:
		return "Dead"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// CellFromRune decodes a text cell, reporting false for anything outside '.', '1' and '2'
func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case deadRune:
		return Dead, true
	case player1Rune:
		return Player1, true
	case player2Rune:
		return Player2, true
	default:
		return Dead, false
	}
}
