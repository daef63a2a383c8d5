package handlers

import (
	"Planta-Backend/domain"
	"Planta-Backend/internal/api/presenters"
	"Planta-Backend/pkg/games"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GameHandler interface {
		ListGames(c *fiber.Ctx) error
		GetGame(c *fiber.Ctx) error
		CheckAnswer(c *fiber.Ctx) error
	}

	gameHandler struct {
		gamesService games.GamesService
		validator    *validator.Validate
	}
)

func NewGameHandler(gamesService games.GamesService, validator *validator.Validate) GameHandler {
	return &gameHandler{
		gamesService: gamesService,
		validator:    validator,
	}
}

func (h *gameHandler) ListGames(c *fiber.Ctx) error {
	res := h.gamesService.ListGames()
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGames)
}

func (h *gameHandler) GetGame(c *fiber.Ctx) error {
	kind := c.Params("kind")

	res, err := h.gamesService.GetGame(kind)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetGame, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGame)
}

func (h *gameHandler) CheckAnswer(c *fiber.Ctx) error {
	kind := c.Params("kind")
	req := new(domain.GameAnswerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.gamesService.CheckAnswer(kind, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckAnswer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckAnswer)
}
