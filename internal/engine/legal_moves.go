package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// classifier decides a single step; the generator is shared between the
// filtered public path and the raw path used inside simulations.
type classifier func(board *chess.Board, from, to chess.Square) chess.Classification

// LegalDestinations returns the destinations of the piece on sq in
// generation order. It is empty for an empty or off-board square and for a
// piece that does not belong to the side to move.
func LegalDestinations(board *chess.Board, sq chess.Square) []chess.Square {
	return destinations(board, sq, Classify)
}

// AllDestinations returns the destinations of every piece of the side to
// move that has at least one.
func AllDestinations(board *chess.Board) map[chess.Square][]chess.Square {
	moves := make(map[chess.Square][]chess.Square)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() || piece.Colour != board.ToMove {
			continue
		}
		if dests := LegalDestinations(board, sq); len(dests) > 0 {
			moves[sq] = dests
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one destination.
func HasLegalMoves(board *chess.Board) bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() || piece.Colour != board.ToMove {
			continue
		}
		if len(LegalDestinations(board, sq)) > 0 {
			return true
		}
	}
	return false
}

// destinations generates destinations using the given step classifier.
func destinations(board *chess.Board, sq chess.Square, classify classifier) []chess.Square {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}
	if piece.Kind == chess.Pawn {
		return pawnDestinations(board, sq, piece, classify)
	}

	var moves []chess.Square
	for _, offset := range piece.Offsets() {
		for n := 1; n <= piece.MaxSteps(); n++ {
			to, ok := step(sq, offset, n)
			if !ok {
				break
			}
			class := classify(board, sq, to)
			if class == chess.Blocked {
				break
			}
			moves = append(moves, to)
			if class == chess.Capture {
				break
			}
		}
	}
	return moves
}

// pawnDestinations generates quiet forward pushes followed by diagonal
// captures. Pawns never capture straight ahead and never move diagonally
// onto an empty square.
func pawnDestinations(board *chess.Board, sq chess.Square, pawn chess.Piece, classify classifier) []chess.Square {
	var moves []chess.Square
	offsets := pawn.Offsets()
	if len(offsets) == 0 {
		return nil
	}
	forward := offsets[0]

	for n := 1; n <= pawn.MaxSteps(); n++ {
		to, ok := step(sq, forward, n)
		if !ok || classify(board, sq, to) != chess.Quiet {
			break
		}
		moves = append(moves, to)
	}

	for _, side := range []int{1, -1} {
		to, ok := step(sq, chess.Offset{Rows: forward.Rows, Cols: side}, 1)
		if !ok {
			continue
		}
		if classify(board, sq, to) == chess.Capture {
			moves = append(moves, to)
		}
	}
	return moves
}
