package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestValidMoveInBounds tests the per-kind shape test
func TestValidMoveInBounds(t *testing.T) {
	tests := []struct {
		name     string
		piece    chess.Piece
		from, to string
		want     bool
	}{
		{"rook along file", chess.W(chess.Rook), "a1", "a8", true},
		{"rook along rank", chess.W(chess.Rook), "a1", "h1", true},
		{"rook diagonal", chess.W(chess.Rook), "a1", "b2", false},
		{"bishop diagonal", chess.B(chess.Bishop), "c8", "h3", true},
		{"bishop straight", chess.B(chess.Bishop), "c8", "c1", false},
		{"queen straight", chess.W(chess.Queen), "d1", "d8", true},
		{"queen diagonal", chess.W(chess.Queen), "d1", "h5", true},
		{"queen knight jump", chess.W(chess.Queen), "d1", "e3", false},
		{"knight 2-1", chess.W(chess.Knight), "g1", "f3", true},
		{"knight 1-2", chess.W(chess.Knight), "g1", "e2", true},
		{"knight straight", chess.W(chess.Knight), "g1", "g3", false},
		{"king diagonal", chess.B(chess.King), "e8", "f7", true},
		{"king file", chess.B(chess.King), "e8", "e7", true},
		{"king knight jump", chess.B(chess.King), "e8", "f6", false},
		{"pawn file", chess.W(chess.Pawn), "e2", "e4", true},
		{"pawn diagonal", chess.W(chess.Pawn), "e2", "d3", true},
		{"pawn sideways", chess.W(chess.Pawn), "e2", "f2", false},
		{"pawn knight jump", chess.W(chess.Pawn), "e2", "f4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(chess.White, map[string]chess.Piece{tt.from: tt.piece})
			got := ValidMoveInBounds(board, testutil.Sq(tt.from), testutil.Sq(tt.to))
			if got != tt.want {
				t.Errorf("ValidMoveInBounds(%s %s-%s) = %v, want %v", tt.piece, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// TestValidMoveInBounds_Degenerate tests empty and off-board squares
func TestValidMoveInBounds_Degenerate(t *testing.T) {
	board := NewInitialBoard()
	testutil.AssertFalse(t, ValidMoveInBounds(board, testutil.Sq("e4"), testutil.Sq("e5")), "empty source")
	testutil.AssertFalse(t, ValidMoveInBounds(board, -1, 0), "negative source")
	testutil.AssertFalse(t, ValidMoveInBounds(board, 56, 64), "destination past the board")
	testutil.AssertFalse(t, ValidMoveInBounds(board, 56, chess.NoSquare), "no destination")
}

// TestClassify tests the single-step validator
func TestClassify(t *testing.T) {
	start := NewInitialBoard()
	capture := testutil.BoardWith(chess.White, map[string]chess.Piece{
		"d4": chess.W(chess.Queen),
		"d7": chess.B(chess.Pawn),
		"d2": chess.W(chess.Pawn),
	})

	tests := []struct {
		name     string
		board    *chess.Board
		from, to chess.Square
		want     chess.Classification
	}{
		{"pawn single push", start, testutil.Sq("e2"), testutil.Sq("e3"), chess.Quiet},
		{"pawn double push", start, testutil.Sq("e2"), testutil.Sq("e4"), chess.Quiet},
		{"knight out", start, testutil.Sq("b1"), testutil.Sq("c3"), chess.Quiet},
		{"knight off shape", start, testutil.Sq("b1"), testutil.Sq("b3"), chess.Blocked},
		{"king onto own pawn", start, testutil.Sq("e1"), testutil.Sq("e2"), chess.Blocked},
		{"wrong side to move", start, testutil.Sq("e7"), testutil.Sq("e6"), chess.Blocked},
		{"empty source", start, testutil.Sq("e4"), testutil.Sq("e5"), chess.Blocked},
		{"source off board", start, -1, 5, chess.Blocked},
		{"destination off board", start, testutil.Sq("h1"), 64, chess.Blocked},
		{"queen captures", capture, testutil.Sq("d4"), testutil.Sq("d7"), chess.Capture},
		{"queen onto own pawn", capture, testutil.Sq("d4"), testutil.Sq("d2"), chess.Blocked},
		{"queen quiet", capture, testutil.Sq("d4"), testutil.Sq("h8"), chess.Quiet},
		// Classification is single-step: rays are blocked by the generator.
		{"rook past own pawn", start, testutil.Sq("a1"), testutil.Sq("a3"), chess.Quiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board.Copy()
			got := Classify(tt.board, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			testutil.AssertEqual(t, tt.board, before, "Classify must not modify the board")
		})
	}
}
