// Package server exposes hosted games over HTTP and WebSocket.
package server

import (
	"io"
	"log"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// Server routes requests to a session.Manager.
type Server struct {
	app   *fiber.App
	cfg   *config.ServerConfig
	games *session.Manager
	log   *log.Logger
}

// New builds the fiber app. Request logs go to logOutput when enabled in cfg.
func New(cfg *config.ServerConfig, games *session.Manager, logOutput io.Writer) *Server {
	s := &Server{
		cfg:   cfg,
		games: games,
		log:   log.New(logOutput, "chess-rules: ", log.LstdFlags),
	}

	app := fiber.New(fiber.Config{
		AppName:               "chess-rules",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	if cfg.RequestLogging {
		app.Use(logger.New(logger.Config{Output: logOutput}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	api := app.Group("/api")
	api.Post("/games", s.createGame)
	api.Get("/games", s.listGames)
	api.Get("/games/:id", s.getGame)
	api.Delete("/games/:id", s.deleteGame)
	api.Get("/games/:id/moves", s.listMoves)
	api.Post("/games/:id/moves", s.makeMove)

	app.Use("/ws", requireUpgrade)
	app.Get("/ws/games/:id", websocket.New(s.watchGame, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	s.app = app
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown is called.
func (s *Server) Listen() error {
	s.log.Printf("listening on %s", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Serve serves on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown stops accepting connections and waits for active requests,
// up to the configured timeout.
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout)
}

// requireUpgrade rejects plain HTTP requests to WebSocket routes.
func requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
