package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game owns a board and the colour to move. A Game is not safe for
// concurrent use; hosts running many games confine each one to a single
// goroutine at a time.
type Game struct {
	board      *chess.Board
	turn       chess.Colour
	history    []chess.Move
	moveNumber int
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		board:      chess.NewInitialBoard(),
		turn:       chess.White,
		moveNumber: 1,
	}
}

// NewGameFromBoard creates a game on a copy of board with colour to move.
func NewGameFromBoard(board *chess.Board, colour chess.Colour) *Game {
	return &Game{
		board:      board.Copy(),
		turn:       colour,
		moveNumber: 1,
	}
}

// TeamTurn returns the colour to move.
func (g *Game) TeamTurn() chess.Colour {
	return g.turn
}

// SetTeamTurn sets the colour to move.
func (g *Game) SetTeamTurn(colour chess.Colour) {
	g.turn = colour
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// SetBoard replaces the game's board with a copy of board.
// The move history is cleared since it no longer leads to the position.
func (g *Game) SetBoard(board *chess.Board) {
	g.board.CloneFrom(board)
	g.history = nil
	g.moveNumber = 1
}

// History returns the moves played through MakeMove since the game was
// created or its board last replaced.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// MoveNumber returns the full-move number, starting at 1 and incremented
// after each Black move.
func (g *Game) MoveNumber() int {
	return g.moveNumber
}

// SetMoveNumber sets the full-move number, e.g. from a FEN record.
func (g *Game) SetMoveNumber(n int) {
	if n >= 1 {
		g.moveNumber = n
	}
}

// ValidMoves returns the legal moves of the piece on from, whichever side it
// belongs to. The second result is false if from is empty.
func (g *Game) ValidMoves(from chess.Position) ([]chess.Move, bool) {
	return LegalMoves(g.board, from)
}

// MakeMove plays m for the side to move. It fails with an error wrapping
// errors.ErrInvalidMove when the origin is empty, the piece belongs to the
// other side, or m is not one of the piece's legal moves (promotion kind
// included). On failure neither the board nor the turn changes.
func (g *Game) MakeMove(m chess.Move) error {
	piece, ok := g.board.Get(m.From)
	if !ok {
		return errors.NewMoveError(m.String(), errors.ReasonNoPiece)
	}
	if piece.Colour != g.turn {
		return errors.NewMoveError(m.String(), errors.ReasonWrongTurn)
	}

	legal, _ := LegalMoves(g.board, m.From)
	if !slices.Contains(legal, m) {
		return errors.NewMoveError(m.String(), errors.ReasonIllegal)
	}

	applyMove(g.board, m)
	g.history = append(g.history, m)
	if g.turn == chess.Black {
		g.moveNumber++
	}
	g.turn = g.turn.Opposite()
	return nil
}

// IsInCheck reports whether colour's king is attacked.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return IsInCheck(g.board, colour)
}

// IsInCheckmate reports whether colour is in check with no legal move.
func (g *Game) IsInCheckmate(colour chess.Colour) bool {
	return IsCheckmate(g.board, colour)
}

// IsInStalemate reports whether colour is not in check but has no legal move.
func (g *Game) IsInStalemate(colour chess.Colour) bool {
	return IsStalemate(g.board, colour)
}

// Status classifies the position for colour.
func (g *Game) Status(colour chess.Colour) Status {
	return PositionStatus(g.board, colour)
}
