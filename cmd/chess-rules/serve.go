package main

import (
	"context"
	"log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/server"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg *config.Config) error {
	games := session.NewManager(cfg.Server.MaxGames)
	srv := server.New(cfg.Server, games, cfg.LogFile)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Listen()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.New(cfg.LogFile, "chess-rules: ", log.LstdFlags).Printf("shutting down, %d games open", games.Len())
	return srv.Shutdown()
}
