package output

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameState is the JSON view of a game from the side to move's perspective.
type GameState struct {
	ID         string      `json:"id,omitempty"`
	FEN        string      `json:"fen"`
	Turn       string      `json:"turn"`
	MoveNumber int         `json:"moveNumber"`
	Status     string      `json:"status"`
	InCheck    bool        `json:"inCheck"`
	Pieces     []JSONPiece `json:"pieces"`
	History    []string    `json:"history"`
	LastMove   string      `json:"lastMove,omitempty"`
}

// JSONPiece is one occupied square.
type JSONPiece struct {
	Square string `json:"square"`
	Colour string `json:"colour"`
	Kind   string `json:"kind"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveList is the JSON view of a set of legal moves. From is set when the
// moves all start on one square.
type MoveList struct {
	From  string     `json:"from,omitempty"`
	Moves []JSONMove `json:"moves"`
}

// NewGameState builds the JSON view of g.
func NewGameState(g *engine.Game) *GameState {
	board := g.Board()
	turn := g.TeamTurn()

	gs := &GameState{
		FEN:        g.FEN(),
		Turn:       strings.ToLower(turn.String()),
		MoveNumber: g.MoveNumber(),
		Status:     g.Status(turn).String(),
		InCheck:    g.IsInCheck(turn),
		Pieces:     make([]JSONPiece, 0, 32),
	}

	for _, pos := range board.Positions() {
		piece, _ := board.Get(pos)
		gs.Pieces = append(gs.Pieces, JSONPiece{
			Square: pos.String(),
			Colour: strings.ToLower(piece.Colour.String()),
			Kind:   strings.ToLower(piece.Kind.String()),
		})
	}

	history := g.History()
	gs.History = make([]string, len(history))
	for i, m := range history {
		gs.History[i] = m.String()
	}
	if len(history) > 0 {
		gs.LastMove = gs.History[len(history)-1]
	}
	return gs
}

// NewMoveList converts moves to JSON form, sorted by origin then destination.
func NewMoveList(from string, moves []chess.Move) *MoveList {
	sorted := append([]chess.Move(nil), moves...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	ml := &MoveList{From: from, Moves: make([]JSONMove, len(sorted))}
	for i, m := range sorted {
		ml.Moves[i] = moveToJSON(m)
	}
	return ml
}

func moveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		UCI:  m.String(),
		From: m.From.String(),
		To:   m.To.String(),
	}
	if m.IsPromotion() {
		jm.Promotion = strings.ToLower(m.Promotion.String())
	}
	return jm
}

// HistoryStart returns the colour that played the first move in g's history
// and that move's full-move number.
func HistoryStart(g *engine.Game) (chess.Colour, int) {
	colour := g.TeamTurn()
	n := g.MoveNumber()
	for range g.History() {
		colour = colour.Opposite()
		if colour == chess.Black {
			n--
		}
	}
	return colour, n
}

// WriteJSON encodes v with two-space indentation.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
