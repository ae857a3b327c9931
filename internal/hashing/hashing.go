// Package hashing provides duplicate detection for positions.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// useExactMatch also compares the clocks
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	count       int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Clocks, compared only for exact matching
	HalfmoveClock uint
	MoveNumber    uint
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a board.
func Signature(board *chess.Board) PositionSignature {
	return PositionSignature{
		Hash:          GenerateZobristHash(board),
		WeakHash:      WeakHash(board),
		HalfmoveClock: board.HalfmoveClock,
		MoveNumber:    board.MoveNumber,
	}
}

// CheckAndAdd checks if a position is a duplicate and records it.
// Returns true if the position was seen before. Once the detector is full,
// new positions are checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := Signature(board)
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.count++
	return false
}

// signaturesMatch checks if two signatures describe the same position.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch {
		return a.HalfmoveClock == b.HalfmoveClock && a.MoveNumber == b.MoveNumber
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.count = 0
	d.duplicateCount = 0
}
