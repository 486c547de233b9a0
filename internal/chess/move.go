package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is a from/to pair with an optional promotion kind.
// Promotion is NoKind for every move that does not promote.
type Move struct {
	From      Position
	To        Position
	Promotion Kind
}

// NewMove creates a non-promoting move.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a pawn move that promotes to kind.
func NewPromotion(from, to Position, kind Kind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// IsPromotion reports whether the move carries a promotion kind.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// String returns the move in long algebraic (UCI) form, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove parses a move in long algebraic form. Hyphens are accepted
// between the squares ("e2-e4") and the promotion letter may be either case.
func ParseMove(text string) (Move, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidNotation)
	}
	from, err := ParsePosition(s[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParsePosition(s[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	move := NewMove(from, to)
	if len(s) == 5 {
		kind := KindFromLetter(s[4])
		if !kind.IsPromotionKind() {
			return Move{}, fmt.Errorf("move %q: bad promotion %q: %w", text, s[4], errors.ErrInvalidNotation)
		}
		move.Promotion = kind
	}
	return move, nil
}

// Less orders moves by origin, destination, then promotion kind. It gives
// move lists a stable order for display and comparison.
func (m Move) Less(other Move) bool {
	if m.From != other.From {
		return m.From.Less(other.From)
	}
	if m.To != other.To {
		return m.To.Less(other.To)
	}
	return m.Promotion < other.Promotion
}
