// Package config provides configuration for the chess-rules tools.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries

	// Starting position for new games; empty means the opening position.
	StartFEN string

	Server   *ServerConfig
	Output   *OutputConfig
	Analysis *AnalysisConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Server:     NewServerConfig(),
		Output:     NewOutputConfig(),
		Analysis:   NewAnalysisConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Analysis.Validate()
}
