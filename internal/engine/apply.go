package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MovePiece commits a move for the side to move. The move must classify as
// Quiet or Capture and be one of the generated destinations of from;
// otherwise a *errors.MoveError wrapping ErrIllegalMove is returned and the
// board is unchanged. Once a king has been captured the game is over and
// every further call fails with ErrGameOver.
//
// On success the piece is marked as moved, the check status is rescanned
// from the destination, capturing a king ends the game, and the side to
// move flips.
func MovePiece(board *chess.Board, from, to chess.Square) error {
	if board.Status == chess.GameOver {
		return moveError(errors.ErrGameOver, from, to, "")
	}
	if !from.Valid() || !to.Valid() {
		return moveError(errors.ErrIllegalMove, from, to, "square off the board")
	}

	class := Classify(board, from, to)
	if class == chess.Blocked {
		return moveError(errors.ErrIllegalMove, from, to, blockedReason(board, from, to))
	}
	if !slices.Contains(LegalDestinations(board, from), to) {
		return moveError(errors.ErrIllegalMove, from, to, "not a destination of "+board.Get(from).String())
	}

	piece := board.Get(from)
	captured := board.Get(to)

	piece.HasMoved = true
	board.Set(to, piece)
	board.Clear(from)

	if piece.Kind == chess.Pawn || class == chess.Capture {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	RescanFrom(board, to)
	if class == chess.Capture && captured.Kind == chess.King {
		board.Status = chess.GameOver
	}

	if piece.Colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()

	return nil
}

// blockedReason explains why a step classified as Blocked.
func blockedReason(board *chess.Board, from, to chess.Square) string {
	piece := board.Get(from)
	switch {
	case piece.IsEmpty():
		return "no piece on " + from.String()
	case piece.Colour != board.ToMove:
		return "not " + piece.Colour.String() + "'s turn"
	case !ValidMoveInBounds(board, from, to):
		return piece.Kind.String() + " cannot move that way"
	case !board.Get(to).IsEmpty() && board.Get(to).Colour == piece.Colour:
		return "destination holds own piece"
	case WouldExposeKing(board, from, to):
		return "king stays in check"
	}
	return "blocked"
}

func moveError(err error, from, to chess.Square, reason string) error {
	return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Reason: reason}
}
