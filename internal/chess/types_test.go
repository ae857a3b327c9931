package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
}

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq       Square
		row, col int
		name     string
	}{
		{0, 0, 0, "a8"},
		{7, 0, 7, "h8"},
		{52, 6, 4, "e2"},
		{56, 7, 0, "a1"},
		{63, 7, 7, "h1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sq.Row() != tt.row || tt.sq.Col() != tt.col {
				t.Errorf("Square(%d) = (%d,%d); want (%d,%d)", tt.sq, tt.sq.Row(), tt.sq.Col(), tt.row, tt.col)
			}
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("Square(%d).String() = %q; want %q", tt.sq, got, tt.name)
			}
			if got := SquareAt(tt.row, tt.col); got != tt.sq {
				t.Errorf("SquareAt(%d,%d) = %d; want %d", tt.row, tt.col, got, tt.sq)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a8", 0, false},
		{"e2", 52, false},
		{"h1", 63, false},
		{"56", 56, false},
		{"0", 0, false},
		{"64", NoSquare, true},
		{"-1", NoSquare, true},
		{"i9", NoSquare, true},
		{"", NoSquare, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %d; want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInvalidSquareString(t *testing.T) {
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want \"-\"", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		InProgress: "InProgress",
		Check:      "Check",
		Checkmate:  "Checkmate",
		GameOver:   "GameOver",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q; want %q", s, got, want)
		}
	}
}

func TestMoveTables(t *testing.T) {
	deltas := func(offsets []Offset) []int {
		out := make([]int, len(offsets))
		for i, o := range offsets {
			out[i] = o.Delta()
		}
		return out
	}
	equal := func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	tests := []struct {
		name     string
		piece    Piece
		deltas   []int
		maxSteps int
	}{
		{"white pawn", W(Pawn), []int{-8}, 2},
		{"black pawn", B(Pawn), []int{8}, 2},
		{"moved pawn", Piece{Kind: Pawn, Colour: White, HasMoved: true}, []int{-8}, 1},
		{"rook", W(Rook), []int{8, -8, 1, -1}, 8},
		{"knight", B(Knight), []int{17, 15, 10, 6, -17, -15, -10, -6}, 1},
		{"bishop", W(Bishop), []int{9, 7, -9, -7}, 8},
		{"queen", B(Queen), []int{8, -8, 1, -1, 9, 7, -9, -7}, 8},
		{"king", W(King), []int{8, -8, 1, -1, 9, 7, -9, -7}, 1},
		{"empty", Piece{}, []int{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deltas(tt.piece.Offsets()); !equal(got, tt.deltas) {
				t.Errorf("Offsets() deltas = %v; want %v", got, tt.deltas)
			}
			if got := tt.piece.MaxSteps(); got != tt.maxSteps {
				t.Errorf("MaxSteps() = %d; want %d", got, tt.maxSteps)
			}
		})
	}
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		c    rune
		want Piece
		ok   bool
	}{
		{'P', W(Pawn), true},
		{'n', B(Knight), true},
		{'B', W(Bishop), true},
		{'r', B(Rook), true},
		{'Q', W(Queen), true},
		{'k', B(King), true},
		{'x', Piece{}, false},
		{'9', Piece{}, false},
	}
	for _, tt := range tests {
		got, ok := PieceFromLetter(tt.c)
		if ok != tt.ok || got != tt.want {
			t.Errorf("PieceFromLetter(%q) = %v, %v; want %v, %v", tt.c, got, ok, tt.want, tt.ok)
		}
		if ok && got.Letter() != byte(tt.c) {
			t.Errorf("PieceFromLetter(%q).Letter() = %q", tt.c, got.Letter())
		}
	}
}
