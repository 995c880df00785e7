package rules

import "github.com/sheikhrachel/go-gol-duel/model"

/*
ApplyTwoPlayerRules applies the two-player Game of Life rules to determine the next state of a cell.

n1 and n2 are the Player1 and Player2 neighbor counts. A live cell survives with 2 or 3 neighbors
of either player and keeps its owner. A dead cell with exactly 3 neighbors is born, owned by the
player holding the majority of them.
*/
func ApplyTwoPlayerRules(current model.Cell, n1, n2 int) model.Cell {
	total := n1 + n2

	if current == model.Dead {
		switch {
		case total == 3 && n1 > n2:
			return model.Player1
		case total == 3 && n2 > n1:
			return model.Player2
		default:
			return model.Dead
		}
	}

	if total == 2 || total == 3 {
		return current
	}
	return model.Dead
}
