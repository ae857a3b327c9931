package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// RescanFrom recomputes the check status after a piece has landed on sq.
// The pending attack list is rebuilt from scratch: every destination of the
// piece that would capture the opposing king is recorded and sets Check.
// It must run before the side to move is flipped, since generation only
// considers pieces of the side to move. GameOver is never overwritten.
func RescanFrom(board *chess.Board, sq chess.Square) {
	board.CheckAttacks = nil
	if board.Status == chess.GameOver {
		return
	}
	board.Status = chess.InProgress

	attacker := board.Get(sq)
	if attacker.IsEmpty() {
		return
	}
	for _, to := range destinations(board, sq, classifyStep) {
		target := board.Get(to)
		if target.Kind == chess.King && target.Colour != attacker.Colour {
			board.CheckAttacks = append(board.CheckAttacks, chess.CheckAttack{Attacker: sq, King: to})
			board.Status = chess.Check
		}
	}
}

// WouldExposeKing reports whether moving from -> to leaves a previously
// recorded checking piece still attacking the mover's king. The move is
// played on a copy of the board with the opponent to move, and each recorded
// attacker that survived is regenerated there. Only attackers found by the
// last rescan are considered; this is not a general pin detector.
func WouldExposeKing(board *chess.Board, from, to chess.Square) bool {
	if len(board.CheckAttacks) == 0 {
		return false
	}
	mover := board.Get(from)
	if mover.IsEmpty() || !to.Valid() {
		return false
	}

	sim := board.Copy()
	sim.Set(to, mover)
	sim.Clear(from)
	sim.ToMove = mover.Colour.Opposite()

	for _, attack := range board.CheckAttacks {
		attacker := sim.Get(attack.Attacker)
		if attacker.IsEmpty() || attacker.Colour == mover.Colour {
			continue
		}
		for _, dst := range destinations(sim, attack.Attacker, classifyStep) {
			if hit := sim.Get(dst); hit.Kind == chess.King && hit.Colour == mover.Colour {
				return true
			}
		}
	}
	return false
}
