// Package output provides board diagrams, move listings and JSON views of games.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// unicodeSymbols maps each kind to its white and black chess symbol.
var unicodeSymbols = map[chess.Kind][2]string{
	chess.King:   {"♔", "♚"},
	chess.Queen:  {"♕", "♛"},
	chess.Rook:   {"♖", "♜"},
	chess.Bishop: {"♗", "♝"},
	chess.Knight: {"♘", "♞"},
	chess.Pawn:   {"♙", "♟"},
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderBoard draws board from White's side with rank and file labels.
func RenderBoard(w io.Writer, board *chess.Board, style config.BoardStyle) error {
	var sb strings.Builder
	for row := chess.BoardSize; row >= 1; row-- {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 1; col <= chess.BoardSize; col++ {
			piece, _ := board.Get(chess.NewPosition(row, col))
			sb.WriteString(squareSymbol(piece, style))
			if col < chess.BoardSize {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func squareSymbol(piece chess.Piece, style config.BoardStyle) string {
	if style == config.UnicodeBoard && !piece.IsEmpty() {
		return unicodeSymbols[piece.Kind][piece.Colour]
	}
	if style == config.UnicodeBoard {
		return "·"
	}
	return string(piece.Letter())
}

// WriteMoveList writes moves in numbered pairs ("1. e2e4 e7e5 2. ..."),
// wrapping at maxLineLength. first is the colour that played moves[0] and
// moveNumber its full-move number.
func WriteMoveList(w io.Writer, moves []chess.Move, first chess.Colour, moveNumber int, maxLineLength int) {
	if len(moves) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)
	colour := first
	for i, m := range moves {
		switch {
		case colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", moveNumber))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNumber))
		}
		ow.Write(m.String())
		if colour == chess.Black {
			moveNumber++
		}
		colour = colour.Opposite()
	}
	ow.NewLine()
}
