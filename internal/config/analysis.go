package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// AnalysisConfig holds settings for batch position analysis.
type AnalysisConfig struct {
	Workers    int // 0 = one per CPU
	BufferSize int // 0 = twice the worker count

	// Input is a file of FEN records, one per line, or "-" for stdin
	Input string
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// WorkerCount resolves the zero default to the number of CPUs.
func (a *AnalysisConfig) WorkerCount() int {
	if a.Workers <= 0 {
		return runtime.NumCPU()
	}
	return a.Workers
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) < 0: %w", a.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
