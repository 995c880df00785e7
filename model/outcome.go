package model

import "fmt"

const tieMessage = "There is a tie."

// IsTerminal reports whether either player has run out of live cells
func IsTerminal(player1Count, player2Count int) bool {
	return player1Count == 0 || player2Count == 0
}

// OutcomeMessage derives the result text for the given live counts.
// It returns an empty string while both players still have cells.
func OutcomeMessage(player1Count, player2Count int) string {
	switch {
	case player2Count == 0 && player1Count > 0:
		return fmt.Sprintf("Player 1 wins with %d cells alive.", player1Count)
	case player1Count == 0 && player2Count > 0:
		return fmt.Sprintf("Player 2 wins with %d cells alive.", player2Count)
	case player1Count == 0 && player2Count == 0:
		return tieMessage
	default:
		return ""
	}
}

// IsTerminal reports whether the grid is in a terminal state
func (g *Grid) IsTerminal() bool {
	return IsTerminal(g.CountOf(Player1), g.CountOf(Player2))
}
