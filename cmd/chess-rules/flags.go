// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Modes
	serve       = flag.Bool("serve", false, "Run the HTTP/WebSocket server")
	analyzeFile = flag.String("analyze", "", "Analyse FEN positions from this file, one per line (- for stdin)")

	// Game setup
	startFEN = flag.String("fen", "", "Starting position in FEN (default: the opening position)")

	// Output options
	jsonOutput = flag.Bool("json", false, "Output game states in JSON format")
	boardStyle = flag.String("style", "ascii", "Board diagram style: ascii, unicode")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")
	showMoves  = flag.Bool("moves", false, "List the legal moves after each position")
	quiet      = flag.Bool("q", false, "Quiet mode (no summaries)")

	// Server options
	listenAddr   = flag.String("addr", ":8080", "Server listen address")
	allowOrigins = flag.String("origins", "*", "Comma-separated CORS origins")
	maxGames     = flag.Int("maxgames", 1000, "Maximum concurrent games on the server (0 = unlimited)")
	noRequestLog = flag.Bool("nolog", false, "Disable HTTP request logging")

	// Analysis options
	workers = flag.Int("workers", 0, "Analysis worker goroutines (0 = one per CPU)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.StartFEN = strings.TrimSpace(*startFEN)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyServerFlags(cfg)
	applyAnalysisFlags(cfg)

	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) error {
	style, err := config.ParseBoardStyle(*boardStyle)
	if err != nil {
		return err
	}
	cfg.Output.Style = style
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowLegalMoves = *showMoves
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	return nil
}

// applyServerFlags configures the server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *listenAddr
	cfg.Server.AllowOrigins = *allowOrigins
	cfg.Server.MaxGames = *maxGames
	cfg.Server.RequestLogging = !*noRequestLog
}

// applyAnalysisFlags configures batch analysis.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.Workers = *workers
	cfg.Analysis.Input = *analyzeFile
}
