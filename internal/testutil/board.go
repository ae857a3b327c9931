// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent board setup helpers without depending on the FEN parser.
package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sq converts an algebraic name or index to a square and panics on bad
// input. Use it only with literals in tests.
func Sq(name string) chess.Square {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		panic(fmt.Sprintf("testutil.Sq(%q): %v", name, err))
	}
	return sq
}

// Squares converts a list of names to squares.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, Sq(n))
	}
	return out
}

// SquareNames converts squares to their algebraic names. A nil list yields
// an empty, non-nil slice so that nil and empty compare equal.
func SquareNames(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	return out
}

// BoardWith builds a board holding exactly the given pieces, keyed by
// square name, with the given side to move.
func BoardWith(toMove chess.Colour, pieces map[string]chess.Piece) *chess.Board {
	b := chess.NewBoard()
	b.ToMove = toMove
	for name, p := range pieces {
		b.Set(Sq(name), p)
	}
	return b
}

// MustBoardWith is BoardWith for table tests that want the failure reported
// against t rather than a panic.
func MustBoardWith(t *testing.T, toMove chess.Colour, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	for name := range pieces {
		if _, err := chess.ParseSquare(name); err != nil {
			t.Fatalf("MustBoardWith: %v", err)
		}
	}
	return BoardWith(toMove, pieces)
}

// Moved returns p marked as having moved.
func Moved(p chess.Piece) chess.Piece {
	p.HasMoved = true
	return p
}
