package chess

import "strings"

// Board maps squares to pieces. The grid is indexed [row-1][col-1];
// an empty square holds the zero Piece.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// backRank is the opening arrangement of the first and last rows.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

// Reset sets up the standard chess starting position.
func (b *Board) Reset() {
	b.squares = [BoardSize][BoardSize]Piece{}
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = W(backRank[col])
		b.squares[1][col] = W(Pawn)
		b.squares[6][col] = B(Pawn)
		b.squares[7][col] = B(backRank[col])
	}
}

// InBounds reports whether pos lies on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.Valid()
}

// Get returns the piece at pos. The second result is false when the
// square is empty or off the board.
func (b *Board) Get(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	p := b.squares[pos.row-1][pos.col-1]
	return p, !p.IsEmpty()
}

// Set places a piece at pos. Setting any piece with no kind clears the
// square. Off-board positions are ignored.
func (b *Board) Set(pos Position, piece Piece) {
	if !pos.Valid() {
		return
	}
	if piece.IsEmpty() {
		piece = Piece{}
	}
	b.squares[pos.row-1][pos.col-1] = piece
}

// Remove clears the square at pos.
func (b *Board) Remove(pos Position) {
	b.Set(pos, Piece{})
}

// Positions returns every occupied square, rank by rank from row 1.
func (b *Board) Positions() []Position {
	var out []Position
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			if !b.squares[row-1][col-1].IsEmpty() {
				out = append(out, NewPosition(row, col))
			}
		}
	}
	return out
}

// PositionsOf returns the occupied squares holding pieces of colour.
func (b *Board) PositionsOf(colour Colour) []Position {
	var out []Position
	for _, pos := range b.Positions() {
		if p, _ := b.Get(pos); p.Colour == colour {
			out = append(out, pos)
		}
	}
	return out
}

// FindKing returns the square of colour's king.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	king := NewPiece(colour, King)
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			if b.squares[row-1][col-1] == king {
				return NewPosition(row, col), true
			}
		}
	}
	return Position{}, false
}

// IsCaptureLegal reports whether the piece on from may land on to: the
// destination is empty or holds a piece of the other colour.
// from must be occupied.
func (b *Board) IsCaptureLegal(from, to Position) bool {
	target, ok := b.Get(to)
	if !ok {
		return true
	}
	mover, _ := b.Get(from)
	return target.Colour != mover.Colour
}

// CloneFrom replaces the contents of b with a copy of other.
func (b *Board) CloneFrom(other *Board) {
	b.squares = other.squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards map the same squares to equal pieces.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.squares == other.squares
}

// Mirror returns the board reflected across the horizontal midline with
// the colours of every piece swapped.
func (b *Board) Mirror() *Board {
	m := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if !p.IsEmpty() {
				p.Colour = p.Colour.Opposite()
			}
			m.squares[BoardSize-1-row][col] = p
		}
	}
	return m
}

// String renders the board from White's side, row 8 first, one line per
// row, using FEN letters and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
