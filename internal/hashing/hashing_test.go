package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func initialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(initialBoard())
	hash2 := GenerateZobristHash(initialBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := initialBoard()

	board2 := initialBoard()
	board2.Clear(testutil.Sq("e2"))
	board2.Set(testutil.Sq("e4"), chess.W(chess.Pawn))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashSideToMove(t *testing.T) {
	board := initialBoard()
	white := GenerateZobristHash(board)
	board.ToMove = chess.Black

	if GenerateZobristHash(board) == white {
		t.Error("Side to move is not part of the hash")
	}
}

func TestZobristHashMovedFlag(t *testing.T) {
	unmoved := testutil.BoardWith(chess.White, map[string]chess.Piece{"e3": chess.W(chess.Pawn)})
	moved := testutil.BoardWith(chess.White, map[string]chess.Piece{"e3": testutil.Moved(chess.W(chess.Pawn))})
	if GenerateZobristHash(unmoved) == GenerateZobristHash(moved) {
		t.Error("A moved pawn hashes like an unmoved one")
	}

	rook := testutil.BoardWith(chess.White, map[string]chess.Piece{"a1": chess.W(chess.Rook)})
	movedRook := testutil.BoardWith(chess.White, map[string]chess.Piece{"a1": testutil.Moved(chess.W(chess.Rook))})
	testutil.AssertEqual(t, GenerateZobristHash(rook), GenerateZobristHash(movedRook), "only pawns carry the moved flag")
}

func TestZobristHashIgnoresClocksAndSelection(t *testing.T) {
	board := initialBoard()
	want := GenerateZobristHash(board)

	board.HalfmoveClock = 9
	board.MoveNumber = 30
	board.Select(testutil.Sq("e2"))
	testutil.AssertEqual(t, GenerateZobristHash(board), want)
}

func TestWeakHashConsistency(t *testing.T) {
	if WeakHash(initialBoard()) != WeakHash(initialBoard()) {
		t.Error("Identical boards produced different weak hashes")
	}
	if WeakHash(initialBoard()) == WeakHash(chess.NewBoard()) {
		t.Error("Full and empty boards share a weak hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	testutil.AssertFalse(t, detector.CheckAndAdd(initialBoard()), "first position")
	testutil.AssertTrue(t, detector.CheckAndAdd(initialBoard()), "same position again")

	other := initialBoard()
	other.ToMove = chess.Black
	testutil.AssertFalse(t, detector.CheckAndAdd(other), "other side to move")

	later := initialBoard()
	later.MoveNumber = 12
	testutil.AssertTrue(t, detector.CheckAndAdd(later), "clocks ignored")

	testutil.AssertFalse(t, detector.CheckAndAdd(nil))

	testutil.AssertEqual(t, detector.DuplicateCount(), 2)
	testutil.AssertEqual(t, detector.UniqueCount(), 2)
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	detector := NewDuplicateDetector(true, 0)

	testutil.AssertFalse(t, detector.CheckAndAdd(initialBoard()))

	later := initialBoard()
	later.MoveNumber = 12
	testutil.AssertFalse(t, detector.CheckAndAdd(later), "clocks differ")
	testutil.AssertTrue(t, detector.CheckAndAdd(initialBoard()))
	testutil.AssertEqual(t, detector.UniqueCount(), 2)
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)

	testutil.AssertFalse(t, detector.CheckAndAdd(initialBoard()))
	testutil.AssertTrue(t, detector.IsFull())

	other := initialBoard()
	other.ToMove = chess.Black
	testutil.AssertFalse(t, detector.CheckAndAdd(other))
	testutil.AssertFalse(t, detector.CheckAndAdd(other), "not recorded once full")
	testutil.AssertTrue(t, detector.CheckAndAdd(initialBoard()), "recorded positions still match")
	testutil.AssertEqual(t, detector.UniqueCount(), 1)
}

func TestDuplicateDetector_Reset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	detector.CheckAndAdd(initialBoard())
	detector.CheckAndAdd(initialBoard())

	detector.Reset()
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 0)
	testutil.AssertFalse(t, detector.CheckAndAdd(initialBoard()))
}
