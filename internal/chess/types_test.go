package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestColourOpposite(t *testing.T) {
	for _, c := range []Colour{White, Black} {
		if c.Opposite() == c {
			t.Errorf("%v.Opposite() = %v; want the other colour", c, c.Opposite())
		}
		if c.Opposite().Opposite() != c {
			t.Errorf("%v.Opposite().Opposite() = %v; want %v", c, c.Opposite().Opposite(), c)
		}
	}
}

func TestColourRanks(t *testing.T) {
	tests := []struct {
		colour    Colour
		forward   int
		pawnRank  int
		promoRank int
	}{
		{White, 1, 2, 8},
		{Black, -1, 7, 1},
	}
	for _, tt := range tests {
		if got := tt.colour.Forward(); got != tt.forward {
			t.Errorf("%v.Forward() = %d; want %d", tt.colour, got, tt.forward)
		}
		if got := tt.colour.PawnRank(); got != tt.pawnRank {
			t.Errorf("%v.PawnRank() = %d; want %d", tt.colour, got, tt.pawnRank)
		}
		if got := tt.colour.PromotionRank(); got != tt.promoRank {
			t.Errorf("%v.PromotionRank() = %d; want %d", tt.colour, got, tt.promoRank)
		}
	}
}

func TestPieceEquality(t *testing.T) {
	if NewPiece(White, Knight) != W(Knight) {
		t.Error("NewPiece(White, Knight) != W(Knight)")
	}
	if W(Knight) == B(Knight) {
		t.Error("pieces of different colour compare equal")
	}
	if !(Piece{}).IsEmpty() {
		t.Error("zero Piece should be empty")
	}
	seen := map[Piece]bool{W(King): true}
	if !seen[NewPiece(White, King)] {
		t.Error("equal pieces should hash to the same map key")
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(Queen), 'q'},
		{W(Knight), 'N'},
		{B(Pawn), 'p'},
		{Piece{}, '.'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestKindFromLetter(t *testing.T) {
	for _, k := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		if got := KindFromLetter(k.Letter()); got != k {
			t.Errorf("KindFromLetter(%c) = %v; want %v", k.Letter(), got, k)
		}
	}
	if got := KindFromLetter('x'); got != NoKind {
		t.Errorf("KindFromLetter('x') = %v; want NoKind", got)
	}
}

func TestIsPromotionKind(t *testing.T) {
	want := map[Kind]bool{Queen: true, Rook: true, Bishop: true, Knight: true}
	for _, k := range []Kind{NoKind, Pawn, Knight, Bishop, Rook, Queen, King} {
		if got := k.IsPromotionKind(); got != want[k] {
			t.Errorf("%v.IsPromotionKind() = %v; want %v", k, got, want[k])
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	for r := 1; r <= BoardSize; r++ {
		for c := 1; c <= BoardSize; c++ {
			p := NewPosition(r, c)
			if p.Row() != r || p.Column() != c {
				t.Errorf("NewPosition(%d, %d) = (%d, %d)", r, c, p.Row(), p.Column())
			}
			parsed, err := ParsePosition(p.String())
			if err != nil || parsed != p {
				t.Errorf("ParsePosition(%q) = %v, %v; want %v", p.String(), parsed, err, p)
			}
		}
	}
}

func TestPositionTranslate(t *testing.T) {
	p := NewPosition(1, 1)
	if got := p.Translate(2, 1); got != NewPosition(3, 2) {
		t.Errorf("Translate(2, 1) = %v; want %v", got, NewPosition(3, 2))
	}
	off := p.Translate(-1, 0)
	if off.Valid() {
		t.Errorf("Translate(-1, 0) from a1 = %v should be off the board", off)
	}
	if off.Row() != 0 || off.Column() != 1 {
		t.Errorf("Translate does not bounds check: got (%d, %d), want (0, 1)", off.Row(), off.Column())
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{NewPosition(1, 1), "a1"},
		{NewPosition(4, 5), "e4"},
		{NewPosition(8, 8), "h8"},
		{NewPosition(0, 3), "(0,3)"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestParsePosition_Invalid(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i1", "e10", "11"} {
		if _, err := ParsePosition(s); !errors.Is(err, chesserrors.ErrInvalidNotation) {
			t.Errorf("ParsePosition(%q) error = %v; want ErrInvalidNotation", s, err)
		}
	}
	if p, err := ParsePosition("E4"); err != nil || p != NewPosition(4, 5) {
		t.Errorf("ParsePosition(\"E4\") = %v, %v; want e4", p, err)
	}
}

func TestMoveEquality(t *testing.T) {
	a, b := NewPosition(7, 1), NewPosition(8, 1)
	if NewMove(a, b) == NewPromotion(a, b, Queen) {
		t.Error("promotion must take part in move equality")
	}
	if NewPromotion(a, b, Queen) != NewPromotion(a, b, Queen) {
		t.Error("identical promotions should be equal")
	}
	if NewMove(a, b).IsPromotion() {
		t.Error("NewMove should not be a promotion")
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		text    string
		want    Move
		wantStr string
	}{
		{"e2e4", NewMove(NewPosition(2, 5), NewPosition(4, 5)), "e2e4"},
		{"e2-e4", NewMove(NewPosition(2, 5), NewPosition(4, 5)), "e2e4"},
		{" g1f3 ", NewMove(NewPosition(1, 7), NewPosition(3, 6)), "g1f3"},
		{"a7a8q", NewPromotion(NewPosition(7, 1), NewPosition(8, 1), Queen), "a7a8q"},
		{"h2h1N", NewPromotion(NewPosition(2, 8), NewPosition(1, 8), Knight), "h2h1n"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v; want %v", tt.text, got, tt.want)
			}
			if got.String() != tt.wantStr {
				t.Errorf("String() = %q; want %q", got.String(), tt.wantStr)
			}
		})
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, text := range []string{"", "e2", "e2e9", "e7e8k", "e7e8p", "e2e4e5"} {
		if _, err := ParseMove(text); !errors.Is(err, chesserrors.ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v; want ErrInvalidNotation", text, err)
		}
	}
}

func TestMoveLess(t *testing.T) {
	a := NewMove(NewPosition(2, 1), NewPosition(3, 1))
	b := NewMove(NewPosition(2, 1), NewPosition(4, 1))
	if !a.Less(b) || b.Less(a) {
		t.Errorf("Less ordering wrong for %v and %v", a, b)
	}
	q := NewPromotion(NewPosition(7, 1), NewPosition(8, 1), Queen)
	n := NewPromotion(NewPosition(7, 1), NewPosition(8, 1), Knight)
	if !n.Less(q) {
		t.Errorf("%v should sort before %v", n, q)
	}
}
