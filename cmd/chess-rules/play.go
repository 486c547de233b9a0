package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// newGame creates a game from the configured starting position.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(cfg.StartFEN)
}

// Play runs an interactive game, reading commands from in and writing
// positions to cfg.OutputFile until in is exhausted or "quit" is entered.
func Play(in io.Reader, cfg *config.Config) error {
	out := cfg.OutputFile
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	writer := output.NewGameWriter(out, cfg.Output)
	defer writer.Close()
	if err := writer.WriteGame(g); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		case "board":
			err = writer.WriteGame(g)
		case "fen":
			_, err = fmt.Fprintln(out, g.FEN())
		case "moves":
			err = listMoves(out, g, fields[1:], cfg)
		case "new":
			if g, err = newGame(cfg); err == nil {
				err = writer.WriteGame(g)
			}
		default:
			err = playMove(out, writer, g, fields[0], cfg)
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

// playMove parses and plays text. Refused moves are reported to out and do
// not end the session.
func playMove(out io.Writer, writer output.GameWriter, g *engine.Game, text string, cfg *config.Config) error {
	m, err := chess.ParseMove(text)
	if err == nil {
		err = g.MakeMove(m)
	}
	if err != nil {
		_, werr := fmt.Fprintf(out, "Error: %v\n", err)
		return werr
	}

	if err := writer.WriteGame(g); err != nil {
		return err
	}
	if cfg.Output.JSONFormat {
		return nil
	}
	if msg := announcement(g); msg != "" {
		_, err = fmt.Fprintln(out, msg)
	}
	return err
}

// announcement describes check, checkmate or stalemate of the side to move.
func announcement(g *engine.Game) string {
	turn := g.TeamTurn()
	switch g.Status(turn) {
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate. %s wins.", turn.Opposite())
	case engine.Stalemate:
		return "Stalemate. The game is drawn."
	case engine.Check:
		return fmt.Sprintf("%s is in check.", turn)
	}
	return ""
}

// listMoves prints the legal moves of the side to move, or of the piece on
// the given square.
func listMoves(out io.Writer, g *engine.Game, args []string, cfg *config.Config) error {
	var moves []chess.Move
	from := ""
	if len(args) == 0 {
		moves = engine.AllLegalMoves(g.Board(), g.TeamTurn())
	} else {
		pos, err := chess.ParsePosition(args[0])
		if err != nil {
			_, werr := fmt.Fprintf(out, "Error: %v\n", err)
			return werr
		}
		var ok bool
		if moves, ok = g.ValidMoves(pos); !ok {
			_, err := fmt.Fprintf(out, "No piece on %s\n", pos)
			return err
		}
		from = pos.String()
	}

	list := output.NewMoveList(from, moves)
	if cfg.Output.JSONFormat {
		return output.WriteJSON(out, list)
	}
	if len(list.Moves) == 0 {
		_, err := fmt.Fprintln(out, "No legal moves")
		return err
	}
	ow := output.NewOutputWriter(out, int(cfg.Output.MaxLineLength))
	for _, jm := range list.Moves {
		ow.Write(jm.UCI)
	}
	ow.NewLine()
	return nil
}
