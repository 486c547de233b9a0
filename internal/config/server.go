package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP/WebSocket server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowOrigins is the CORS allow list, comma separated
	AllowOrigins string

	// MaxGames caps the number of games held at once (0 = unlimited)
	MaxGames int

	// RequestLogging enables the request log middleware
	RequestLogging bool

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		AllowOrigins:    "*",
		MaxGames:        1000,
		RequestLogging:  true,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) < 0: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout (%v) < 0: %w", s.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	return nil
}
