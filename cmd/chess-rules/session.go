// session.go - Interactive command loop over a single board
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const helpText = `  select SQ        select a square and list its destinations
  click SQ         select, or move the selected piece to SQ
  moves [SQ|all]   list destinations (default: selection, else all)
  move FROM TO     commit a move; "e2e4" also works
  undo             take back the last move
  reset [FEN]      start again from a position
  board            print the board
  fen              print the position as FEN
  status           print whose turn it is and the status
  json             print a JSON snapshot
  help             show this list
  quit             leave
Squares are algebraic (e2) or indices 0-63 from a8.
`

// Session plays one game from text commands. It stands in for a pointer
// driven front end: squares are selected, destinations queried and moves
// committed through the engine.
type Session struct {
	cfg     *config.Config
	board   *chess.Board
	out     io.Writer
	history []chess.BoardState
}

// NewSession creates a session on the configured starting position.
func NewSession(cfg *config.Config) (*Session, error) {
	board, err := engine.CreateBoard(cfg.FEN)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, board: board, out: cfg.OutputFile}, nil
}

// Board returns the board being played.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Run reads commands from r until end of input or quit. Command errors are
// logged and the session continues.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			s.cfg.Logf(1, "%v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command line.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = io.WriteString(s.out, helpText)
	case "select":
		err = s.cmdSelect(args)
	case "click":
		err = s.cmdClick(args)
	case "moves":
		err = s.cmdMoves(args)
	case "move":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: move FROM TO")
		}
		err = s.move(args[0], args[1])
	case "undo":
		err = s.cmdUndo()
	case "reset":
		err = s.cmdReset(args)
	case "board":
		err = output.NewTextWriter(s.out, s.cfg).WriteBoard(s.board)
	case "fen":
		_, err = fmt.Fprintln(s.out, engine.BoardToFEN(s.board))
	case "status":
		_, err = fmt.Fprintln(s.out, output.StatusLine(s.board))
	case "json":
		err = output.WriteBoardJSON(s.out, s.board, s.cfg.Output.Indent)
	default:
		if len(fields) == 1 && len(cmd) == 4 {
			return false, s.move(cmd[:2], cmd[2:])
		}
		err = fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	return false, err
}

// parseSquare reads a square argument.
func parseSquare(text string) (chess.Square, error) {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		return chess.NoSquare, fmt.Errorf("%v: %w", err, errors.ErrInvalidSquare)
	}
	return sq, nil
}

func (s *Session) cmdSelect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: select SQ")
	}
	sq, err := parseSquare(args[0])
	if err != nil {
		return err
	}
	s.board.Select(sq)
	return s.printDestinations(sq)
}

// cmdClick mirrors pointer input: clicking a destination of the selected
// piece moves it, anything else changes the selection.
func (s *Session) cmdClick(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: click SQ")
	}
	sq, err := parseSquare(args[0])
	if err != nil {
		return err
	}

	if s.board.HasSelection() {
		for _, to := range engine.LegalDestinations(s.board, s.board.Selected) {
			if to == sq {
				return s.commit(s.board.Selected, sq)
			}
		}
	}

	if p := s.board.Get(sq); p.IsEmpty() || p.Colour != s.board.ToMove {
		s.board.Select(chess.NoSquare)
		return nil
	}
	s.board.Select(sq)
	return s.printDestinations(sq)
}

func (s *Session) cmdMoves(args []string) error {
	switch {
	case len(args) == 0 && s.board.HasSelection():
		return s.printDestinations(s.board.Selected)
	case len(args) == 0 || strings.EqualFold(args[0], "all"):
		_, err := io.WriteString(s.out, output.FormatDestinations(s.board))
		return err
	}
	sq, err := parseSquare(args[0])
	if err != nil {
		return err
	}
	return s.printDestinations(sq)
}

// printDestinations writes "sq: d1 d2 ..." for one square.
func (s *Session) printDestinations(sq chess.Square) error {
	dests := engine.LegalDestinations(s.board, sq)
	names := make([]string, len(dests))
	for i, to := range dests {
		names[i] = to.String()
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	_, err := fmt.Fprintf(s.out, "%s: %s\n", sq, strings.Join(names, " "))
	return err
}

// move parses and commits a move given as two square arguments.
func (s *Session) move(fromText, toText string) error {
	from, err := parseSquare(fromText)
	if err != nil {
		return err
	}
	to, err := parseSquare(toText)
	if err != nil {
		return err
	}
	return s.commit(from, to)
}

// commit plays a move, records it for undo and reports the new status.
func (s *Session) commit(from, to chess.Square) error {
	mover := s.board.Get(from)
	state := s.board.SaveState()
	if err := engine.MovePiece(s.board, from, to); err != nil {
		return err
	}
	s.history = append(s.history, state)
	s.board.Select(chess.NoSquare)

	s.cfg.Logf(2, "%s %s-%s\n", mover, from, to)
	switch s.board.Status {
	case chess.Check:
		s.cfg.Logf(1, "%s is in check\n", s.board.ToMove)
	case chess.GameOver:
		s.cfg.Logf(1, "King captured, game over\n")
	}
	_, err := fmt.Fprintf(s.out, "%s-%s: %s\n", from, to, output.StatusLine(s.board))
	return err
}

func (s *Session) cmdUndo() error {
	if len(s.history) == 0 {
		return fmt.Errorf("nothing to undo")
	}
	last := len(s.history) - 1
	s.board.RestoreState(s.history[last])
	s.history = s.history[:last]
	s.board.Select(chess.NoSquare)
	_, err := fmt.Fprintln(s.out, output.StatusLine(s.board))
	return err
}

func (s *Session) cmdReset(args []string) error {
	board, err := engine.CreateBoard(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.board = board
	s.history = nil
	_, err = fmt.Fprintln(s.out, output.StatusLine(s.board))
	return err
}
