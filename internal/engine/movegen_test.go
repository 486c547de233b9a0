package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// boardWith builds a board holding the given pieces keyed by algebraic square.
func boardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for sq, p := range pieces {
		b.Set(testutil.Square(t, sq), p)
	}
	return b
}

func TestPieceMoves_Counts(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		from   string
		want   int
	}{
		{"king centre", map[string]chess.Piece{"e4": chess.W(chess.King)}, "e4", 8},
		{"king corner", map[string]chess.Piece{"a1": chess.W(chess.King)}, "a1", 3},
		{"king edge", map[string]chess.Piece{"e1": chess.B(chess.King)}, "e1", 5},
		{"queen centre", map[string]chess.Piece{"d4": chess.W(chess.Queen)}, "d4", 27},
		{"queen corner", map[string]chess.Piece{"h8": chess.B(chess.Queen)}, "h8", 21},
		{"rook centre", map[string]chess.Piece{"d4": chess.W(chess.Rook)}, "d4", 14},
		{"rook corner", map[string]chess.Piece{"a1": chess.W(chess.Rook)}, "a1", 14},
		{"bishop centre", map[string]chess.Piece{"d4": chess.W(chess.Bishop)}, "d4", 13},
		{"bishop corner", map[string]chess.Piece{"a1": chess.B(chess.Bishop)}, "a1", 7},
		{"knight centre", map[string]chess.Piece{"d4": chess.W(chess.Knight)}, "d4", 8},
		{"knight corner", map[string]chess.Piece{"a1": chess.W(chess.Knight)}, "a1", 2},
		{"knight edge", map[string]chess.Piece{"a4": chess.B(chess.Knight)}, "a4", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.pieces)
			moves := PieceMoves(b, testutil.Square(t, tt.from))
			if len(moves) != tt.want {
				t.Errorf("len(PieceMoves(%s)) = %d, want %d: %v", tt.from, len(moves), tt.want, moves)
			}
		})
	}
}

func TestPieceMoves_EmptyOrigin(t *testing.T) {
	if moves := PieceMoves(chess.NewBoard(), chess.NewPosition(4, 4)); moves != nil {
		t.Errorf("PieceMoves(empty square) = %v, want nil", moves)
	}
}

func TestPieceMoves_Exact(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		from   string
		want   []string
	}{
		{
			name: "king blocked by friend, captures enemy",
			pieces: map[string]chess.Piece{
				"a1": chess.W(chess.King),
				"a2": chess.W(chess.Pawn),
				"b2": chess.B(chess.Pawn),
			},
			from: "a1",
			want: []string{"a1b1", "a1b2"},
		},
		{
			name: "rook stops at friend and after enemy",
			pieces: map[string]chess.Piece{
				"a1": chess.W(chess.Rook),
				"a3": chess.W(chess.Pawn),
				"c1": chess.B(chess.Bishop),
			},
			from: "a1",
			want: []string{"a1a2", "a1b1", "a1c1"},
		},
		{
			name: "bishop rays",
			pieces: map[string]chess.Piece{
				"c1": chess.W(chess.Bishop),
				"b2": chess.W(chess.Pawn),
				"e3": chess.B(chess.Pawn),
			},
			from: "c1",
			want: []string{"c1d2", "c1e3"},
		},
		{
			name: "queen hemmed in",
			pieces: map[string]chess.Piece{
				"d1": chess.B(chess.Queen),
				"c1": chess.B(chess.Bishop),
				"e1": chess.B(chess.King),
				"c2": chess.B(chess.Pawn),
				"d2": chess.W(chess.Pawn),
				"e2": chess.B(chess.Pawn),
			},
			from: "d1",
			want: []string{"d1d2"},
		},
		{
			name: "knight jumps over pieces",
			pieces: map[string]chess.Piece{
				"b1": chess.W(chess.Knight),
				"a2": chess.W(chess.Pawn),
				"b2": chess.W(chess.Pawn),
				"c2": chess.W(chess.Pawn),
				"d2": chess.W(chess.Pawn),
				"c3": chess.B(chess.Pawn),
			},
			from: "b1",
			want: []string{"b1a3", "b1c3"},
		},
		{
			name:   "white pawn from start",
			pieces: map[string]chess.Piece{"e2": chess.W(chess.Pawn)},
			from:   "e2",
			want:   []string{"e2e3", "e2e4"},
		},
		{
			name:   "black pawn from start",
			pieces: map[string]chess.Piece{"d7": chess.B(chess.Pawn)},
			from:   "d7",
			want:   []string{"d7d6", "d7d5"},
		},
		{
			name:   "pawn off start has single push",
			pieces: map[string]chess.Piece{"e3": chess.W(chess.Pawn)},
			from:   "e3",
			want:   []string{"e3e4"},
		},
		{
			name: "double push blocked on destination",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e4": chess.B(chess.Knight),
			},
			from: "e2",
			want: []string{"e2e3"},
		},
		{
			name: "push blocked on intermediate square",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e3": chess.W(chess.Knight),
			},
			from: "e2",
			want: nil,
		},
		{
			name: "pawn captures diagonally only onto enemies",
			pieces: map[string]chess.Piece{
				"e4": chess.W(chess.Pawn),
				"d5": chess.B(chess.Pawn),
				"f5": chess.W(chess.Pawn),
				"e5": chess.B(chess.Pawn),
			},
			from: "e4",
			want: []string{"e4d5"},
		},
		{
			name: "a-file pawn captures one side",
			pieces: map[string]chess.Piece{
				"a5": chess.B(chess.Pawn),
				"b4": chess.W(chess.Rook),
			},
			from: "a5",
			want: []string{"a5a4", "a5b4"},
		},
		{
			name:   "white promotion",
			pieces: map[string]chess.Piece{"a7": chess.W(chess.Pawn)},
			from:   "a7",
			want:   []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"},
		},
		{
			name: "black promotion by push and capture",
			pieces: map[string]chess.Piece{
				"b2": chess.B(chess.Pawn),
				"a1": chess.W(chess.Rook),
				"c1": chess.B(chess.Rook),
			},
			from: "b2",
			want: []string{
				"b2b1q", "b2b1r", "b2b1b", "b2b1n",
				"b2a1q", "b2a1r", "b2a1b", "b2a1n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.pieces)
			got := PieceMoves(b, testutil.Square(t, tt.from))
			testutil.AssertMovesMatch(t, got, testutil.Moves(t, tt.want...))
		})
	}
}

// TestPieceMoves_Invariants checks every generated move on a spread of
// positions: it starts at the origin, lands on the board, moves somewhere,
// never lands on a friendly piece and is listed once.
func TestPieceMoves_Invariants(t *testing.T) {
	for _, fen := range sampleFENs {
		setup := mustParseFEN(t, fen)
		b := setup.Board
		for _, from := range b.Positions() {
			mover, _ := b.Get(from)
			seen := make(map[chess.Move]bool)
			for _, m := range PieceMoves(b, from) {
				if m.From != from {
					t.Errorf("%s: move %v does not start at %v", fen, m, from)
				}
				if !b.InBounds(m.To) {
					t.Errorf("%s: move %v leaves the board", fen, m)
				}
				if m.To == from {
					t.Errorf("%s: move %v does not move", fen, m)
				}
				if target, ok := b.Get(m.To); ok && target.Colour == mover.Colour {
					t.Errorf("%s: move %v captures a friendly piece", fen, m)
				}
				if m.IsPromotion() && mover.Kind != chess.Pawn {
					t.Errorf("%s: non-pawn move %v carries a promotion", fen, m)
				}
				if seen[m] {
					t.Errorf("%s: move %v generated twice", fen, m)
				}
				seen[m] = true
			}
		}
	}
}

// sampleFENs is a spread of test positions shared by the generator and
// game tests.
var sampleFENs = []string{
	InitialFEN,
	"rnbqkbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
	"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 4 4",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w - - 0 1",
	"8/P6k/8/8/8/8/6Kp/8 b - - 0 1",
	"7k/8/8/8/8/8/8/K7 w - - 0 1",
}
