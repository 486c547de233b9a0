package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const positions = `# sample positions
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1

rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 3
8/8/8/8/8/6k1/5q2/7K w - - 0 1
not-a-fen
`

func TestReadPositions(t *testing.T) {
	items, err := readPositions(strings.NewReader(positions))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(items), 4)

	wantLines := []int{2, 4, 5, 6}
	for i, item := range items {
		testutil.AssertEqual(t, item.Index, i)
		testutil.AssertEqual(t, item.Line, wantLines[i])
	}
	testutil.AssertEqual(t, items[0].FEN, engine.InitialFEN)
}

func TestAnalyze_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).WithWorkers(2).Build()

	summary, err := Analyze(context.Background(), strings.NewReader(positions), cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, AnalysisSummary{Positions: 4, Invalid: 1})

	want := []string{
		"2: White to move, ongoing, 20 legal moves",
		"4: White to move, checkmate, 0 legal moves",
		"5: White to move, stalemate, 0 legal moves",
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, lines[:3], want)
	testutil.AssertContains(t, lines[3], "6: error:")
	testutil.AssertContains(t, lines[3], "invalid FEN")
}

func TestAnalyze_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).WithJSONOutput(true).Build()

	_, err := Analyze(context.Background(), strings.NewReader(positions), cfg)
	testutil.AssertNoError(t, err)

	var results []jsonResult
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(results), 4)
	testutil.AssertEqual(t, results[1], jsonResult{
		Line:       4,
		FEN:        "rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 3",
		ToMove:     "white",
		Status:     "checkmate",
		InCheck:    true,
		LegalMoves: 0,
	})
	testutil.AssertContains(t, results[3].Error, "invalid FEN")
}

func TestAnalyze_Empty(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).Build()

	summary, err := Analyze(context.Background(), strings.NewReader("\n# nothing\n"), cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, AnalysisSummary{})
	testutil.AssertEqual(t, buf.String(), "")
}
