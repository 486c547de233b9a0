package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position. Castling
// and en passant are not played by this engine, so those fields are empty.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// Setup is what a FEN record describes: the board, the side to move and
// the full-move number.
type Setup struct {
	Board      *chess.Board
	ToMove     chess.Colour
	MoveNumber int
}

// ParseFEN parses a FEN string. The piece placement field is required; the
// side to move defaults to White. Castling, en passant and halfmove fields
// are accepted but ignored.
func ParseFEN(fen string) (Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Setup{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return Setup{}, err
	}

	setup := Setup{Board: board, ToMove: chess.White, MoveNumber: 1}
	if err := parseSideToMove(&setup, parts); err != nil {
		return Setup{}, err
	}
	if err := parseMoveNumber(&setup, parts); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, rankText := range ranks {
		row := chess.BoardSize - i
		col := 1
		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col > chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", row, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewPosition(row, col), chess.NewPiece(colour, kind))
				col++
			}
		}
		if col != chess.BoardSize+1 {
			return fmt.Errorf("rank %d has %d squares: %w", row, col-1, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseMoveNumber parses the optional full-move number field.
func parseMoveNumber(setup *Setup, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	setup.MoveNumber = n
	return nil
}

// FormatFEN converts a board and side to move to a FEN string.
func FormatFEN(board *chess.Board, toMove chess.Colour, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	if moveNumber < 1 {
		moveNumber = 1
	}
	fmt.Fprintf(&sb, " - - 0 %d", moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize; row >= 1; row-- {
		emptyCount := 0
		for col := 1; col <= chess.BoardSize; col++ {
			piece, ok := board.Get(chess.NewPosition(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
}

// NewGameFromFEN creates a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	setup, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := NewGameFromBoard(setup.Board, setup.ToMove)
	g.SetMoveNumber(setup.MoveNumber)
	return g, nil
}

// FEN returns the game's current position as a FEN string.
func (g *Game) FEN() string {
	return FormatFEN(g.board, g.turn, g.moveNumber)
}
