package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Classify checks a single step from one square to another for the side to
// move. It returns Blocked unless to is on the board, the shape test passes
// and from holds a piece of the side to move; otherwise Quiet for an empty
// destination, Capture for an opposing occupant and Blocked for a friendly
// one. While a check is pending, a move that leaves the recorded attacker
// still hitting the mover's king is also Blocked. The board is not modified.
func Classify(board *chess.Board, from, to chess.Square) chess.Classification {
	class := classifyStep(board, from, to)
	if class == chess.Blocked {
		return class
	}
	if WouldExposeKing(board, from, to) {
		return chess.Blocked
	}
	return class
}

// classifyStep is Classify without the self-exposure filter.
func classifyStep(board *chess.Board, from, to chess.Square) chess.Classification {
	if !ValidMoveInBounds(board, from, to) {
		return chess.Blocked
	}
	mover := board.Get(from)
	if mover.Colour != board.ToMove {
		return chess.Blocked
	}

	target := board.Get(to)
	switch {
	case target.IsEmpty():
		return chess.Quiet
	case target.Colour != mover.Colour:
		return chess.Capture
	default:
		return chess.Blocked
	}
}
