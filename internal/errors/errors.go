// Package errors provides sentinel errors and error types for the chess rules engine.
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
	// ErrInvalidMove indicates a move that the game refused to play.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidNotation indicates a square or move that could not be parsed.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrEmptySquare indicates a query about a square with no piece on it.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrGameNotFound indicates an unknown game identifier.
	ErrGameNotFound = errors.New("game not found")

	// ErrTooManyGames indicates the session registry is at capacity.
	ErrTooManyGames = errors.New("too many games")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Reasons reported by MoveError.
const (
	ReasonNoPiece   = "no piece at start position"
	ReasonWrongTurn = "piece does not belong to the side to move"
	ReasonIllegal   = "move is not in the legal move set"
)

// MoveError wraps ErrInvalidMove with the offending move and a
// human-readable reason.
type MoveError struct {
	Err      error  // The underlying error, normally ErrInvalidMove
	MoveText string // The move in long algebraic form (if known)
	Reason   string // Why the move was refused
}

// Error returns a message such as "invalid move e2e5: move is not in the legal move set".
func (e *MoveError) Error() string {
	var sb strings.Builder
	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString(ErrInvalidMove.Error())
	}
	if e.MoveText != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.MoveText)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NewMoveError returns an ErrInvalidMove-wrapping MoveError.
func NewMoveError(moveText, reason string) *MoveError {
	return &MoveError{Err: ErrInvalidMove, MoveText: moveText, Reason: reason}
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

// Is reports whether any error in err's chain matches target.
// It lets callers that import this package as "errors" avoid a second import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
