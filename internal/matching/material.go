// Package matching selects positions by the material on the board.
package matching

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// counts holds the number of pieces of each kind for one side.
type counts [chess.NumKinds]int

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	white      counts
	black      counts
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// Letters follow FEN: uppercase for white, lowercase for black. Either side
// may be empty. In exact mode, pieces not named must be absent.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}

	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return nil, fmt.Errorf("material pattern %q has more than one ':': %w", pattern, errors.ErrInvalidConfig)
	}
	if err := mm.white.parse(parts[0], chess.White); err != nil {
		return nil, fmt.Errorf("material pattern %q: %v: %w", pattern, err, errors.ErrInvalidConfig)
	}
	if len(parts) == 2 {
		if err := mm.black.parse(parts[1], chess.Black); err != nil {
			return nil, fmt.Errorf("material pattern %q: %v: %w", pattern, err, errors.ErrInvalidConfig)
		}
	}
	return mm, nil
}

// parse adds the pieces named in s, which must all be of colour.
func (c *counts) parse(s string, colour chess.Colour) error {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		piece, ok := chess.PieceFromLetter(r)
		if !ok {
			return fmt.Errorf("unknown piece %q", r)
		}
		if piece.Colour != colour {
			return fmt.Errorf("%q is not a %s piece", r, colour)
		}
		c[piece.Kind]++
	}
	return nil
}

// MatchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchPosition(board *chess.Board) bool {
	var white, black counts
	for _, piece := range board.Squares {
		if piece.IsEmpty() {
			continue
		}
		if piece.Colour == chess.White {
			white[piece.Kind]++
		} else {
			black[piece.Kind]++
		}
	}

	if mm.exactMatch {
		return white == mm.white && black == mm.black
	}
	return covers(white, mm.white) && covers(black, mm.black)
}

// covers reports whether have holds at least the pieces in want.
func covers(have, want counts) bool {
	for kind, n := range want {
		if have[kind] < n {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// String returns the pattern the matcher was built from.
func (mm *MaterialMatcher) String() string {
	return mm.pattern
}
