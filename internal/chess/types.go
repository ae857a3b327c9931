// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strconv"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type. Empty marks an unoccupied square.
type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase = 'a'
	RankTop = '8'
)

// Square is a board index in [0,64), row-major with row 0 being the first
// rank of a FEN placement (a8).
type Square int

// NoSquare marks an absent square, e.g. no current selection.
const NoSquare Square = -1

// SquareAt returns the square for a row and column. The result is only
// meaningful when OnBoard(row, col) holds.
func SquareAt(row, col int) Square {
	return Square(row*BoardSize + col)
}

// OnBoard reports whether row and col address a board square.
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Row returns the row (0 = rank 8).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column (0 = file a).
func (s Square) Col() int {
	return int(s) % BoardSize
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.Col()), byte(RankTop - s.Row())})
}

// ParseSquare accepts algebraic names ("e2") or board indices ("52").
func ParseSquare(text string) (Square, error) {
	if len(text) == 2 && text[0] >= 'a' && text[0] <= 'h' && text[1] >= '1' && text[1] <= '8' {
		return SquareAt(int(RankTop-text[1]), int(text[0]-ColBase)), nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return NoSquare, fmt.Errorf("square %q: not algebraic or an index", text)
	}
	sq := Square(n)
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("square %q: index out of range", text)
	}
	return sq, nil
}

// Status is the coarse game status kept on the board.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate // declared for completeness; never computed
	GameOver
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Classification is the outcome of a single-step move check.
type Classification int

const (
	Blocked Classification = iota
	Quiet
	Capture
)

// String returns the string representation of a classification.
func (c Classification) String() string {
	switch c {
	case Quiet:
		return "Quiet"
	case Capture:
		return "Capture"
	}
	return "Blocked"
}

// CheckAttack records a piece that attacked a king on the last rescan.
type CheckAttack struct {
	Attacker Square
	King     Square
}
