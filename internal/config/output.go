package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BoardStyle selects how boards are drawn.
type BoardStyle int

const (
	ASCIIBoard   BoardStyle = iota // FEN letters, '.' for empty squares
	UnicodeBoard                   // chess symbols
)

// String returns the flag value for the style.
func (s BoardStyle) String() string {
	switch s {
	case ASCIIBoard:
		return "ascii"
	case UnicodeBoard:
		return "unicode"
	}
	return "unknown"
}

// ParseBoardStyle converts a flag value to a BoardStyle.
func ParseBoardStyle(s string) (BoardStyle, error) {
	switch s {
	case "ascii", "":
		return ASCIIBoard, nil
	case "unicode":
		return UnicodeBoard, nil
	}
	return ASCIIBoard, fmt.Errorf("unknown board style %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Style is the board diagram style for text output
	Style BoardStyle

	// MaxLineLength is the wrap column for move lists
	MaxLineLength uint

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowLegalMoves lists the side to move's legal moves after each position
	ShowLegalMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Style:         ASCIIBoard,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Style != ASCIIBoard && o.Style != UnicodeBoard {
		return fmt.Errorf("board style %d: %w", o.Style, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
