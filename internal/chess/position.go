package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a square on the board. Rows and columns are 1-based:
// row 1 is White's back rank and column 1 is the a-file.
type Position struct {
	row int
	col int
}

// NewPosition creates a position from 1-based coordinates.
func NewPosition(row, col int) Position {
	return Position{row: row, col: col}
}

// Row returns the 1-based row.
func (p Position) Row() int { return p.row }

// Column returns the 1-based column.
func (p Position) Column() int { return p.col }

// Translate returns the position offset by (dr, dc). The result is not
// bounds checked.
func (p Position) Translate(dr, dc int) Position {
	return Position{row: p.row + dr, col: p.col + dc}
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.row >= 1 && p.row <= BoardSize && p.col >= 1 && p.col <= BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
// Off-board positions are printed as coordinates.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.row, p.col)
	}
	return string([]byte{byte('a' + p.col - 1), byte('0' + p.row)})
}

// ParsePosition parses an algebraic square such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	return NewPosition(int(rank-'0'), int(file-'a')+1), nil
}

// Equal reports whether both positions name the same square.
func (p Position) Equal(other Position) bool {
	return p == other
}

// Less orders positions rank by rank from row 1, then by column.
func (p Position) Less(other Position) bool {
	if p.row != other.row {
		return p.row < other.row
	}
	return p.col < other.col
}
