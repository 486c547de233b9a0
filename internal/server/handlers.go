package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	id, state, err := s.games.Create(req.FEN)
	if err != nil {
		return err
	}
	c.Location("/api/games/" + id)
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (s *Server) listGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": s.games.IDs(),
	})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	state, err := s.games.State(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listMoves(c *fiber.Ctx) error {
	moves, err := s.games.ValidMoves(c.Params("id"), c.Query("from"))
	if err != nil {
		return err
	}
	return c.JSON(moves)
}

func (s *Server) makeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Move == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing move")
	}

	state, err := s.games.Move(c.Params("id"), req.Move)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errors.ErrGameNotFound), errors.Is(err, errors.ErrEmptySquare):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrInvalidMove), errors.Is(err, errors.ErrInvalidNotation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrInvalidFEN):
		return fiber.StatusBadRequest
	case errors.Is(err, errors.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// errorHandler renders every handler error as {"error": ..., "reason": ...}.
func errorHandler(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) {
		body["reason"] = moveErr.Reason
	}
	return c.Status(statusFor(err)).JSON(body)
}
