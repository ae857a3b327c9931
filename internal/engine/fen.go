// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of whitespace-separated fields a descriptor must have.
const fenFieldCount = 6

// CreateBoard creates a board from a descriptor. A blank descriptor selects
// the standard starting position.
func CreateBoard(fen string) (*chess.Board, error) {
	if strings.TrimSpace(fen) == "" {
		fen = InitialFEN
	}
	return NewBoardFromFEN(fen)
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement and
// side-to-move fields carry rules meaning; castling and en passant are read
// for shape only.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFieldCount {
		return nil, &errors.ParseError{
			Err:      errors.ErrWrongFieldCount,
			Expected: fmt.Sprintf("%d fields", fenFieldCount),
			Got:      fmt.Sprintf("%d", len(parts)),
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	parseSideToMove(board, parts[1])
	parseClocks(board, parts)

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrRankCount,
			Field:    1,
			Expected: fmt.Sprintf("%d ranks", chess.BoardSize),
			Got:      fmt.Sprintf("%d", len(ranks)),
		}
	}

	for row, rank := range ranks {
		if err := parseRank(board, row, rank); err != nil {
			return err
		}
	}
	return nil
}

// parseRank fills one row of the board from a single rank of the placement.
func parseRank(board *chess.Board, row int, rank string) error {
	width := 0
	lengthErr := func(got int) error {
		return &errors.ParseError{
			Err:      errors.ErrRankLengthMismatch,
			Field:    1,
			Rank:     row + 1,
			Expected: fmt.Sprintf("%d squares", chess.BoardSize),
			Got:      fmt.Sprintf("%d", got),
		}
	}

	for i, c := range rank {
		if c >= '1' && c <= '8' {
			width += int(c - '0')
			if width > chess.BoardSize {
				return lengthErr(width)
			}
			continue
		}

		piece, ok := chess.PieceFromLetter(c)
		if !ok {
			return &errors.ParseError{
				Err:    errors.ErrInvalidPiece,
				Field:  1,
				Rank:   row + 1,
				Column: i + 1,
				Got:    fmt.Sprintf("%q", c),
			}
		}
		if width >= chess.BoardSize {
			return lengthErr(width + 1)
		}
		board.Set(chess.SquareAt(row, width), piece)
		width++
	}

	if width != chess.BoardSize {
		return lengthErr(width)
	}
	return nil
}

// parseSideToMove parses the side to move field. Anything that does not
// start with 'b' leaves White to move.
func parseSideToMove(board *chess.Board, side string) {
	board.ToMove = chess.White
	if strings.HasPrefix(side, "b") {
		board.ToMove = chess.Black
	}
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Unreadable values keep the defaults.
func parseClocks(board *chess.Board, parts []string) {
	if len(parts) >= 5 {
		fmt.Sscanf(parts[4], "%d", &board.HalfmoveClock) //nolint:errcheck // unreadable clocks keep the default
	}
	if len(parts) >= 6 {
		var n uint
		if _, err := fmt.Sscanf(parts[5], "%d", &n); err == nil && n > 0 {
			board.MoveNumber = n
		}
	}
}

// BoardToFEN converts a board to a FEN string. Castling and en passant are
// always written as "-".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	fmt.Fprintf(&sb, " - - %d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.SquareAt(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
