package chess

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The 64 squares, row-major from a8.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Interactive selection; NoSquare when nothing is selected.
	// Carries no rules authority.
	Selected Square

	// Status after the last committed move.
	Status Status

	// Check-delivering attacks recorded by the last rescan. Consulted when
	// deciding whether a reply leaves the mover's king exposed.
	CheckAttacks []CheckAttack

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		Selected:   NoSquare,
		Status:     InProgress,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[SquareAt(0, col)] = B(backRank[col])
		b.Squares[SquareAt(1, col)] = B(Pawn)
		b.Squares[SquareAt(6, col)] = W(Pawn)
		b.Squares[SquareAt(7, col)] = W(backRank[col])
	}

	b.ToMove = White
	b.Selected = NoSquare
	b.Status = InProgress
	b.CheckAttacks = nil
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// Get returns the piece on a square, or an empty piece when the square is
// empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.Squares[sq]
}

// PieceAt returns a snapshot of the piece on sq and whether one is there.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.Get(sq)
	return p, !p.IsEmpty()
}

// Set places a piece on a square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Select records the interactive selection. Invalid squares clear it.
func (b *Board) Select(sq Square) {
	if !sq.Valid() {
		sq = NoSquare
	}
	b.Selected = sq
}

// HasSelection reports whether a square is currently selected.
func (b *Board) HasSelection() bool {
	return b.Selected.Valid()
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for i, p := range b.Squares {
		if p.Kind == King && p.Colour == colour {
			return Square(i), true
		}
	}
	return NoSquare, false
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for _, p := range b.Squares {
		if !p.IsEmpty() && p.Colour == colour {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	if b.CheckAttacks != nil {
		newBoard.CheckAttacks = append([]CheckAttack(nil), b.CheckAttacks...)
	}
	return newBoard
}

// BoardState captures the mutable rules state for save/restore operations.
// This is cheaper than Copy() when a move is applied, inspected and undone.
type BoardState struct {
	Squares       [NumSquares]Piece
	ToMove        Colour
	Status        Status
	CheckAttacks  []CheckAttack
	HalfmoveClock uint
	MoveNumber    uint
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:       b.Squares,
		ToMove:        b.ToMove,
		Status:        b.Status,
		CheckAttacks:  append([]CheckAttack(nil), b.CheckAttacks...),
		HalfmoveClock: b.HalfmoveClock,
		MoveNumber:    b.MoveNumber,
	}
}

// RestoreState restores the board to a previously saved state.
// The selection is left alone.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.ToMove = s.ToMove
	b.Status = s.Status
	b.CheckAttacks = s.CheckAttacks
	b.HalfmoveClock = s.HalfmoveClock
	b.MoveNumber = s.MoveNumber
}
