package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameWriter is the interface for writing game positions to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes the current position of a game.
	WriteGame(g *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes a board diagram followed by a status line.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes the board, the history and the status of the side to move.
func (tw *TextWriter) WriteGame(g *engine.Game) error {
	if err := RenderBoard(tw.w, g.Board(), tw.cfg.Style); err != nil {
		return err
	}

	if history := g.History(); len(history) > 0 {
		first, n := HistoryStart(g)
		WriteMoveList(tw.w, history, first, n, int(tw.cfg.MaxLineLength))
	}

	turn := g.TeamTurn()
	if _, err := fmt.Fprintf(tw.w, "%s to move (%s)\n", turn, g.Status(turn)); err != nil {
		return err
	}

	if tw.cfg.ShowLegalMoves {
		ow := NewOutputWriter(tw.w, int(tw.cfg.MaxLineLength))
		for _, jm := range NewMoveList("", engine.AllLegalMoves(g.Board(), turn)).Moves {
			ow.Write(jm.UCI)
		}
		ow.NewLine()
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes game states in JSON format.
// It buffers states and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	states []*GameState
	single bool // If true, write each state immediately instead of batching
}

// JSONOutput holds multiple states for array output.
type JSONOutput struct {
	Games []*GameState `json:"games"`
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches states and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		states: make([]*GameState, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each state immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a state for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	state := NewGameState(g)
	if jw.single {
		return WriteJSON(jw.w, state)
	}
	jw.states = append(jw.states, state)
	return nil
}

// Flush writes all buffered states as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.states) == 0 {
		return nil
	}

	err := WriteJSON(jw.w, &JSONOutput{Games: jw.states})
	jw.states = jw.states[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
