// chess-rules plays, analyses and serves chess games under the standard
// movement rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch {
	case *serve:
		err = runServer(ctx, cfg)
	case cfg.Analysis.Input != "":
		err = analyzeInput(ctx, cfg)
	default:
		err = Play(os.Stdin, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// analyzeInput opens the configured input and runs batch analysis on it.
func analyzeInput(ctx context.Context, cfg *config.Config) error {
	var in io.Reader = os.Stdin
	if cfg.Analysis.Input != "-" {
		file, err := os.Open(cfg.Analysis.Input)
		if err != nil {
			return fmt.Errorf("opening %s: %w", cfg.Analysis.Input, err)
		}
		defer file.Close()
		in = file
	}

	summary, err := Analyze(ctx, in, cfg)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d positions analysed, %d invalid\n", summary.Positions, summary.Invalid)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play, analyse or serve chess games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprintf(os.Stderr, "  e2e4, a7a8q   Play a move in long algebraic form\n")
	fmt.Fprintf(os.Stderr, "  moves [sq]    List legal moves (of the piece on sq)\n")
	fmt.Fprintf(os.Stderr, "  board         Show the position again\n")
	fmt.Fprintf(os.Stderr, "  fen           Print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  new           Start again from the starting position\n")
	fmt.Fprintf(os.Stderr, "  quit          Leave\n")
}
