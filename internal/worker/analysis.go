package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	Index int // Position in the input, used to restore order
	FEN   string
	Line  int // Source line number, 0 if unknown
}

// ProcessResult is the analysis of one position from the side to move's
// point of view.
type ProcessResult struct {
	Index      int
	FEN        string
	Line       int
	ToMove     chess.Colour
	Status     engine.Status
	InCheck    bool
	LegalMoves int
	Err        error
}

// Analyze parses item.FEN and classifies the position for the side to move.
// It is the ProcessFunc used for batch analysis.
func Analyze(item WorkItem) ProcessResult {
	res := ProcessResult{Index: item.Index, FEN: item.FEN, Line: item.Line}

	setup, err := engine.ParseFEN(item.FEN)
	if err != nil {
		res.Err = err
		return res
	}

	res.ToMove = setup.ToMove
	res.InCheck = engine.IsInCheck(setup.Board, setup.ToMove)
	res.LegalMoves = len(engine.AllLegalMoves(setup.Board, setup.ToMove))
	res.Status = engine.PositionStatus(setup.Board, setup.ToMove)
	return res
}
