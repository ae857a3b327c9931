// Package output provides board output in text, JSON and FEN form.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Cell markers used in the text diagram.
const (
	selectedOpen  = '['
	selectedClose = ']'
	destOpen      = '('
	destClose     = ')'
)

// OutputBoard writes the board to cfg.OutputFile in the configured format.
func OutputBoard(board *chess.Board, cfg *config.Config) error {
	w := NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteBoard(board); err != nil {
		return err
	}
	return w.Close()
}

// FormatDiagram renders the board as an 8x8 grid, top rank first. When
// highlighting is on, the selected square is shown as [X] and each of its
// destinations as (x).
func FormatDiagram(board *chess.Board, opts config.OutputConfig) string {
	var marks map[chess.Square]bool
	if opts.Highlight && board.HasSelection() {
		marks = make(map[chess.Square]bool)
		for _, sq := range engine.LegalDestinations(board, board.Selected) {
			marks[sq] = true
		}
	}

	var sb strings.Builder
	border := "  +" + strings.Repeat("-", chess.BoardSize*3) + "+\n"
	if opts.Coordinates {
		sb.WriteString(border)
	}
	for row := 0; row < chess.BoardSize; row++ {
		if opts.Coordinates {
			sb.WriteByte(byte(chess.RankTop - row))
			sb.WriteString(" |")
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.SquareAt(row, col)
			left, right := byte(' '), byte(' ')
			switch {
			case opts.Highlight && sq == board.Selected:
				left, right = selectedOpen, selectedClose
			case marks[sq]:
				left, right = destOpen, destClose
			}
			sb.WriteByte(left)
			sb.WriteByte(board.Get(sq).Letter())
			sb.WriteByte(right)
		}
		if opts.Coordinates {
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString(border)
		sb.WriteString("   ")
		for col := 0; col < chess.BoardSize; col++ {
			fmt.Fprintf(&sb, " %c ", chess.ColBase+col)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StatusLine describes whose turn it is and the game status.
func StatusLine(board *chess.Board) string {
	var sb strings.Builder
	switch board.Status {
	case chess.GameOver:
		fmt.Fprintf(&sb, "Game over after move %d", board.MoveNumber)
		if _, ok := board.FindKing(board.ToMove); !ok {
			fmt.Fprintf(&sb, ", %s wins", board.ToMove.Opposite())
		}
		return sb.String()
	case chess.Check:
		fmt.Fprintf(&sb, "%s to move (move %d), in check", board.ToMove, board.MoveNumber)
		for _, attack := range board.CheckAttacks {
			fmt.Fprintf(&sb, " from %s", attack.Attacker)
		}
	default:
		fmt.Fprintf(&sb, "%s to move (move %d)", board.ToMove, board.MoveNumber)
	}
	return sb.String()
}

// FormatDestinations lists every movable piece of the side to move with its
// destinations, one piece per line in square order.
func FormatDestinations(board *chess.Board) string {
	all := engine.AllDestinations(board)
	from := maps.Keys(all)
	slices.Sort(from)

	var sb strings.Builder
	for _, sq := range from {
		fmt.Fprintf(&sb, "%c%s:", board.Get(sq).Letter(), sq)
		for _, to := range all[sq] {
			sb.WriteByte(' ')
			sb.WriteString(to.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// writeText writes the diagram and status line for one board.
func writeText(w io.Writer, board *chess.Board, opts config.OutputConfig) error {
	if _, err := io.WriteString(w, FormatDiagram(board, opts)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, StatusLine(board))
	return err
}
