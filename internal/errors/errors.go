// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed position descriptor.
	// Every ParseError matches it.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrWrongFieldCount indicates a descriptor without exactly six fields.
	ErrWrongFieldCount = errors.New("wrong number of FEN fields")

	// ErrRankLengthMismatch indicates a rank that does not cover eight squares.
	ErrRankLengthMismatch = errors.New("rank does not cover eight squares")

	// ErrRankCount indicates a placement without exactly eight ranks.
	ErrRankCount = errors.New("placement does not have eight ranks")

	// ErrInvalidPiece indicates a placement character outside the piece table.
	ErrInvalidPiece = errors.New("invalid piece character")

	// ErrIllegalMove indicates a move that violates the engine's rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move attempted after a king was captured.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSquare indicates a square outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError represents a descriptor parsing error with position context.
type ParseError struct {
	Err      error  // The underlying sentinel
	Field    int    // 1-based FEN field (0 if not applicable)
	Rank     int    // 1-based rank within the placement field (0 if not applicable)
	Column   int    // 1-based character column within the field (0 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	var loc []string
	if e.Field > 0 {
		loc = append(loc, fmt.Sprintf("field %d", e.Field))
	}
	if e.Rank > 0 {
		loc = append(loc, fmt.Sprintf("rank %d", e.Rank))
	}
	if e.Column > 0 {
		loc = append(loc, fmt.Sprintf("column %d", e.Column))
	}
	if len(loc) > 0 {
		parts = append(parts, strings.Join(loc, " "))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrInvalidFEN.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFEN
}

// MoveError describes a rejected move attempt. The board is unchanged when
// one is returned.
type MoveError struct {
	Err    error  // The underlying sentinel
	From   string // Source square name
	To     string // Destination square name
	Reason string // Short explanation (optional)
}

// Error returns a formatted error message including the squares.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %s-%s", e.From, e.To)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
