package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// play applies a list of "e2e4"-style moves, failing on the first error.
func play(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := MovePiece(board, testutil.Sq(m[:2]), testutil.Sq(m[2:])); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
	}
}

func TestMovePiece_Opening(t *testing.T) {
	board := NewInitialBoard()
	play(t, board, "e2e4")

	testutil.AssertEqual(t, board.ToMove, chess.Black)
	testutil.AssertTrue(t, board.Get(testutil.Sq("e2")).IsEmpty())
	testutil.AssertEqual(t, board.Get(testutil.Sq("e4")), testutil.Moved(chess.W(chess.Pawn)))
	testutil.AssertEqual(t, board.Status, chess.InProgress)

	play(t, board, "e7e5")
	testutil.AssertEqual(t, BoardToFEN(board), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2")
}

func TestMovePiece_Clocks(t *testing.T) {
	board := NewInitialBoard()

	play(t, board, "g1f3")
	testutil.AssertEqual(t, board.HalfmoveClock, uint(1))
	testutil.AssertEqual(t, board.MoveNumber, uint(1))

	play(t, board, "g8f6")
	testutil.AssertEqual(t, board.HalfmoveClock, uint(2))
	testutil.AssertEqual(t, board.MoveNumber, uint(2))

	play(t, board, "e2e4")
	testutil.AssertEqual(t, board.HalfmoveClock, uint(0), "pawn move resets the clock")

	play(t, board, "b8c6", "f3e5", "c6e5")
	testutil.AssertEqual(t, board.HalfmoveClock, uint(0), "capture resets the clock")
	testutil.AssertEqual(t, board.MoveNumber, uint(4))
}

func TestMovePiece_MovedPawnSingleStep(t *testing.T) {
	board := NewInitialBoard()
	play(t, board, "d2d4", "a7a6")

	testutil.AssertSquares(t, LegalDestinations(board, testutil.Sq("d4")), testutil.Squares("d5"))
}

func TestMovePiece_Illegal(t *testing.T) {
	const checked = "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"

	tests := []struct {
		name     string
		fen      string
		setup    []string
		from, to chess.Square
		reason   string
	}{
		{"wrong side to move", InitialFEN, nil, 12, 20, "not Black's turn"},
		{"rook jumps its own pawn", InitialFEN, nil, 56, 40, "not a destination"},
		{"pawn diagonal onto empty", InitialFEN, nil, 52, 43, "not a destination"},
		{"knight off shape", InitialFEN, nil, 57, 41, "cannot move that way"},
		{"empty source", InitialFEN, nil, 36, 28, "no piece on e4"},
		{"own piece on destination", InitialFEN, nil, 60, 52, "destination holds own piece"},
		{"off the board", InitialFEN, nil, 60, 64, "off the board"},
		{"king stays in check", checked, []string{"a1a8"}, 4, 5, "king stays in check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			play(t, board, tt.setup...)
			before := board.Copy()

			err := MovePiece(board, tt.from, tt.to)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertContains(t, err.Error(), tt.reason)
			testutil.AssertEqual(t, board, before, "illegal move must leave the board unchanged")

			moveErr, ok := err.(*errors.MoveError)
			if !ok {
				t.Fatalf("error %T is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.From, tt.from.String())
			testutil.AssertEqual(t, moveErr.To, tt.to.String())
		})
	}
}

func TestMovePiece_KingCaptureEndsGame(t *testing.T) {
	board := mustFEN(t, "k7/8/8/8/8/8/8/R3K3 w - - 0 1")
	play(t, board, "a1a8")

	testutil.AssertEqual(t, board.Status, chess.GameOver)
	testutil.AssertEqual(t, board.Count(chess.Black), 0)

	before := board.Copy()
	err := MovePiece(board, testutil.Sq("e1"), testutil.Sq("e2"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
	testutil.AssertEqual(t, board, before)

	// Nothing on the board can restart the game.
	RescanFrom(board, testutil.Sq("a8"))
	testutil.AssertEqual(t, board.Status, chess.GameOver)
}

func TestMovePiece_CheckLifecycle(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	play(t, board, "a1a8")
	testutil.AssertEqual(t, board.Status, chess.Check)

	play(t, board, "e8d7")
	testutil.AssertEqual(t, board.Status, chess.InProgress)

	play(t, board, "a8a7")
	testutil.AssertEqual(t, board.Status, chess.Check)
	testutil.AssertEqual(t, board.CheckAttacks, []chess.CheckAttack{
		{Attacker: testutil.Sq("a7"), King: testutil.Sq("d7")},
	})

	// Only moves off the seventh rank are allowed.
	for _, to := range LegalDestinations(board, testutil.Sq("d7")) {
		if to.Row() == testutil.Sq("a7").Row() {
			t.Errorf("king may step to %v while still on the rook's rank", to)
		}
	}
}

// TestMovePiece_Game plays a short sequence and checks every position.
func TestMovePiece_Game(t *testing.T) {
	moves := strings.Fields("e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 f3g5 d7d5 e4d5 f6d5 g5f7")
	want := []string{
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 1 2",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 2 3",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b - - 3 3",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
		"r1bqkb1r/pppp1ppp/2n2n2/4p1N1/2B1P3/8/PPPP1PPP/RNBQK2R b - - 5 4",
		"r1bqkb1r/ppp2ppp/2n2n2/3pp1N1/2B1P3/8/PPPP1PPP/RNBQK2R w - - 0 5",
		"r1bqkb1r/ppp2ppp/2n2n2/3Pp1N1/2B5/8/PPPP1PPP/RNBQK2R b - - 0 5",
		"r1bqkb1r/ppp2ppp/2n5/3np1N1/2B5/8/PPPP1PPP/RNBQK2R w - - 0 6",
		"r1bqkb1r/ppp2Npp/2n5/3np3/2B5/8/PPPP1PPP/RNBQK2R b - - 0 6",
	}

	board := NewInitialBoard()
	for i, m := range moves {
		play(t, board, m)
		testutil.AssertEqual(t, BoardToFEN(board), want[i], m)
	}
	testutil.AssertEqual(t, board.Status, chess.InProgress, "knight on f7 forks but does not check")
}
