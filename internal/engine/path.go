package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ValidMoveInBounds reports whether the piece on from could reach to by its
// movement shape alone. Occupancy of intermediate squares is not considered.
func ValidMoveInBounds(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	return shapeAllows(piece.Kind, from, to)
}

// shapeAllows applies the canonical row/column delta test for a kind.
func shapeAllows(kind chess.Kind, from, to chess.Square) bool {
	rowDiff := abs(to.Row() - from.Row())
	colDiff := abs(to.Col() - from.Col())
	straight := rowDiff == 0 || colDiff == 0
	diagonal := rowDiff == colDiff

	switch kind {
	case chess.Rook:
		return straight
	case chess.Bishop:
		return diagonal
	case chess.Queen, chess.King:
		return straight || diagonal
	case chess.Knight:
		return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
	case chess.Pawn:
		return diagonal || colDiff == 0
	}
	return false
}

// step returns the square reached by walking n steps along an offset, or
// false when the walk leaves the board.
func step(from chess.Square, offset chess.Offset, n int) (chess.Square, bool) {
	row := from.Row() + offset.Rows*n
	col := from.Col() + offset.Cols*n
	if !chess.OnBoard(row, col) {
		return chess.NoSquare, false
	}
	return chess.SquareAt(row, col), true
}
