package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// AnalysisSummary counts what a batch run saw.
type AnalysisSummary struct {
	Positions int
	Invalid   int
}

// jsonResult is the JSON form of one analysed position.
type jsonResult struct {
	Line       int    `json:"line"`
	FEN        string `json:"fen"`
	ToMove     string `json:"toMove,omitempty"`
	Status     string `json:"status,omitempty"`
	InCheck    bool   `json:"inCheck"`
	LegalMoves int    `json:"legalMoves"`
	Error      string `json:"error,omitempty"`
}

// readPositions reads one FEN per line, skipping blank lines and lines
// starting with '#'.
func readPositions(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{Index: len(items), FEN: text, Line: line})
	}
	return items, scanner.Err()
}

// Analyze classifies every position read from r on a worker pool and writes
// one result per position, in input order, to cfg.OutputFile.
func Analyze(ctx context.Context, r io.Reader, cfg *config.Config) (AnalysisSummary, error) {
	items, err := readPositions(r)
	if err != nil {
		return AnalysisSummary{}, err
	}

	pool := worker.NewPool(worker.Analyze,
		worker.WithWorkers(cfg.Analysis.WorkerCount()),
		worker.WithBufferSize(cfg.Analysis.BufferSize),
	)
	results := pool.Run(ctx, items)

	summary := AnalysisSummary{Positions: len(results)}
	for _, res := range results {
		if res.Err != nil {
			summary.Invalid++
		}
	}

	if cfg.Output.JSONFormat {
		out := make([]jsonResult, len(results))
		for i, res := range results {
			out[i] = toJSONResult(res)
		}
		return summary, output.WriteJSON(cfg.OutputFile, out)
	}

	for _, res := range results {
		if err := writeResult(cfg.OutputFile, res); err != nil {
			return summary, err
		}
	}
	return summary, ctx.Err()
}

func writeResult(w io.Writer, res worker.ProcessResult) error {
	if res.Err != nil {
		_, err := fmt.Fprintf(w, "%d: error: %v\n", res.Line, res.Err)
		return err
	}
	_, err := fmt.Fprintf(w, "%d: %s to move, %s, %d legal moves\n",
		res.Line, res.ToMove, res.Status, res.LegalMoves)
	return err
}

func toJSONResult(res worker.ProcessResult) jsonResult {
	jr := jsonResult{Line: res.Line, FEN: res.FEN}
	if res.Err != nil {
		jr.Error = res.Err.Error()
		return jr
	}
	jr.ToMove = strings.ToLower(res.ToMove.String())
	jr.Status = res.Status.String()
	jr.InCheck = res.InCheck
	jr.LegalMoves = res.LegalMoves
	return jr
}
