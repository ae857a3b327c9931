package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x5eed

var (
	pieceKeys [chess.NumSquares][chess.NumKinds][2]uint64
	movedKeys [chess.NumSquares]uint64
	blackKey  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: hash keys, not secrets
	for sq := range pieceKeys {
		for kind := range pieceKeys[sq] {
			pieceKeys[sq][kind][chess.White] = rng.Uint64()
			pieceKeys[sq][kind][chess.Black] = rng.Uint64()
		}
		movedKeys[sq] = rng.Uint64()
	}
	blackKey = rng.Uint64()
}

// GenerateZobristHash hashes the placement, the moved flag of every pawn
// and the side to move. Clocks, status and selection are not included.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for sq, piece := range board.Squares {
		if piece.IsEmpty() {
			continue
		}
		hash ^= pieceKeys[sq][piece.Kind][piece.Colour]
		// Only a pawn's moved flag changes what it can do.
		if piece.Kind == chess.Pawn && piece.HasMoved {
			hash ^= movedKeys[sq]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// WeakHash is a cheap order-dependent checksum of the placement, used as a
// second opinion when Zobrist hashes collide.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for sq, piece := range board.Squares {
		if piece.IsEmpty() {
			continue
		}
		hash = hash*31 + uint32(sq)<<4 + uint32(piece.Kind)<<1 + uint32(piece.Colour)
	}
	return hash
}
