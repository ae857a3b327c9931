package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONBoard represents a position in JSON format.
type JSONBoard struct {
	FEN           string              `json:"fen"`
	ToMove        string              `json:"toMove"` // "white" or "black"
	Status        string              `json:"status"`
	MoveNumber    uint                `json:"moveNumber"`
	HalfmoveClock uint                `json:"halfmoveClock"`
	Selected      string              `json:"selected,omitempty"`
	Pieces        []JSONPiece         `json:"pieces"`
	Checks        []JSONCheck         `json:"checks,omitempty"`
	Destinations  map[string][]string `json:"destinations,omitempty"`
}

// JSONPiece represents one occupied square.
type JSONPiece struct {
	Square string `json:"square"`
	Color  string `json:"color"`
	Kind   string `json:"kind"`
	Moved  bool   `json:"moved,omitempty"`
}

// JSONCheck represents a pending attack on a king.
type JSONCheck struct {
	Attacker string `json:"attacker"`
	King     string `json:"king"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONBoard `json:"positions"`
}

// BoardToJSON converts a board to its JSON snapshot, including the
// destinations of every movable piece of the side to move.
func BoardToJSON(board *chess.Board) *JSONBoard {
	jb := &JSONBoard{
		FEN:           engine.BoardToFEN(board),
		ToMove:        strings.ToLower(board.ToMove.String()),
		Status:        board.Status.String(),
		MoveNumber:    board.MoveNumber,
		HalfmoveClock: board.HalfmoveClock,
		Pieces:        make([]JSONPiece, 0, board.Count(chess.White)+board.Count(chess.Black)),
	}
	if board.HasSelection() {
		jb.Selected = board.Selected.String()
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := board.Get(sq)
		if p.IsEmpty() {
			continue
		}
		jb.Pieces = append(jb.Pieces, JSONPiece{
			Square: sq.String(),
			Color:  strings.ToLower(p.Colour.String()),
			Kind:   strings.ToLower(p.Kind.String()),
			Moved:  p.HasMoved,
		})
	}

	for _, attack := range board.CheckAttacks {
		jb.Checks = append(jb.Checks, JSONCheck{Attacker: attack.Attacker.String(), King: attack.King.String()})
	}

	if board.Status != chess.GameOver {
		for from, dests := range engine.AllDestinations(board) {
			if jb.Destinations == nil {
				jb.Destinations = make(map[string][]string)
			}
			names := make([]string, len(dests))
			for i, to := range dests {
				names[i] = to.String()
			}
			jb.Destinations[from.String()] = names
		}
	}
	return jb
}

// WriteBoardJSON writes a single board snapshot.
func WriteBoardJSON(w io.Writer, board *chess.Board, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	return enc.Encode(BoardToJSON(board))
}
