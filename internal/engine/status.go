package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status summarises the position from one side's point of view.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsTerminal reports whether the side to move has no legal move.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// PositionStatus classifies the position for colour.
func PositionStatus(board *chess.Board, colour chess.Colour) Status {
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}
