package chess

import "unicode"

// Offset is a single step direction expressed in rows and columns.
type Offset struct {
	Rows int
	Cols int
}

// Delta returns the step as a row-major square delta (e.g. -8 for one rank
// towards the top of the board).
func (o Offset) Delta() int {
	return o.Rows*BoardSize + o.Cols
}

// MoveTable is the static movement data for one piece kind.
type MoveTable struct {
	Offsets  []Offset
	MaxSteps int
}

var (
	orthogonal = []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}   // +8 -8 +1 -1
	diagonal   = []Offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}} // +9 +7 -9 -7
	knightJump = []Offset{
		{2, 1}, {2, -1}, {1, 2}, {1, -2}, // +17 +15 +10 +6
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, // -17 -15 -10 -6
	}
	allDirections = append(append([]Offset{}, orthogonal...), diagonal...)

	whitePawnPush = []Offset{{-1, 0}}
	blackPawnPush = []Offset{{1, 0}}
)

var moveTables = [NumKinds]MoveTable{
	Knight: {Offsets: knightJump, MaxSteps: 1},
	Bishop: {Offsets: diagonal, MaxSteps: BoardSize},
	Rook:   {Offsets: orthogonal, MaxSteps: BoardSize},
	Queen:  {Offsets: allDirections, MaxSteps: BoardSize},
	King:   {Offsets: allDirections, MaxSteps: 1},
}

// TableFor returns the move table for a kind and colour. Only the pawn table
// depends on colour. The returned slices must not be modified.
func TableFor(kind Kind, colour Colour) MoveTable {
	if kind == Pawn {
		if colour == White {
			return MoveTable{Offsets: whitePawnPush, MaxSteps: 1}
		}
		return MoveTable{Offsets: blackPawnPush, MaxSteps: 1}
	}
	if kind <= Empty || kind >= NumKinds {
		return MoveTable{}
	}
	return moveTables[kind]
}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Kind     Kind
	Colour   Colour
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Offsets returns the step directions from the piece's move table.
func (p Piece) Offsets() []Offset {
	return TableFor(p.Kind, p.Colour).Offsets
}

// MaxSteps returns how far the piece may walk along one offset.
// An unmoved pawn may advance two squares.
func (p Piece) MaxSteps() int {
	if p.Kind == Pawn && !p.HasMoved {
		return 2
	}
	return TableFor(p.Kind, p.Colour).MaxSteps
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter to an unmoved piece.
func PieceFromLetter(c rune) (Piece, bool) {
	var kind Kind
	switch unicode.ToLower(c) {
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return Piece{}, false
	}
	colour := White
	if unicode.IsLower(c) {
		colour = Black
	}
	return NewPiece(kind, colour), true
}
