package worker

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantToMove chess.Colour
		wantStatus engine.Status
		wantCheck  bool
		wantMoves  int
	}{
		{"opening", engine.InitialFEN, chess.White, engine.Ongoing, false, 20},
		{"black to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1", chess.Black, engine.Ongoing, false, 20},
		{"fool's mate", "rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 3", chess.White, engine.Checkmate, true, 0},
		{"stalemate", "8/8/8/8/8/6k1/5q2/7K w - - 0 1", chess.White, engine.Stalemate, false, 0},
		{"check", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", chess.White, engine.Check, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(WorkItem{Index: 3, FEN: tt.fen, Line: 7})
			testutil.AssertNoError(t, res.Err)
			testutil.AssertEqual(t, res.Index, 3)
			testutil.AssertEqual(t, res.Line, 7)
			testutil.AssertEqual(t, res.ToMove, tt.wantToMove)
			testutil.AssertEqual(t, res.Status, tt.wantStatus)
			testutil.AssertEqual(t, res.InCheck, tt.wantCheck)
			testutil.AssertEqual(t, res.LegalMoves, tt.wantMoves)
		})
	}
}

func TestAnalyze_InvalidFEN(t *testing.T) {
	res := Analyze(WorkItem{Index: 0, FEN: "rnbqkbnr/pppppppp w"})
	testutil.AssertErrorIs(t, res.Err, errors.ErrInvalidFEN)
}

func TestAnalyze_Parallel(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"bad",
		"8/8/8/8/8/6k1/5q2/7K w - - 0 1",
		"rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 3",
	}
	items := make([]WorkItem, len(fens))
	for i, fen := range fens {
		items[i] = WorkItem{Index: i, FEN: fen, Line: i + 1}
	}

	results := NewPool(Analyze, WithWorkers(3)).Run(context.Background(), items)

	testutil.AssertEqual(t, results[0].Status, engine.Ongoing)
	testutil.AssertErrorIs(t, results[1].Err, errors.ErrInvalidFEN)
	testutil.AssertEqual(t, results[2].Status, engine.Stalemate)
	testutil.AssertEqual(t, results[3].Status, engine.Checkmate)
	for i, res := range results {
		testutil.AssertEqual(t, res.Line, i+1)
	}
}
