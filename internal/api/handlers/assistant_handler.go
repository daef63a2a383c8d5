package handlers

import (
	"Planta-Backend/domain"
	"Planta-Backend/internal/api/presenters"
	"Planta-Backend/pkg/assistant"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		IdentifyPlant(c *fiber.Ctx) error
		SearchPlant(c *fiber.Ctx) error
		GetWeather(c *fiber.Ctx) error
		GetCareTip(c *fiber.Ctx) error
		AddGrowthLog(c *fiber.Ctx) error
		GetGrowthLog(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService, validator *validator.Validate) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *assistantHandler) IdentifyPlant(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.assistantService.Identify(c.Context(), file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIdentifyPlant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessIdentifyPlant)
}

func (h *assistantHandler) SearchPlant(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchPlant, domain.ErrMissingSearchName)
	}

	res, err := h.assistantService.SearchByName(c.Context(), name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchPlant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchPlant)
}

func (h *assistantHandler) GetWeather(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.assistantService.GetWeather(c.Context(), lat, lon)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeather, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeather)
}

func (h *assistantHandler) GetCareTip(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	tip, err := h.assistantService.GetTip(c.Context(), lat, lon, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeather, err)
	}

	return presenters.SuccessResponse(c, domain.TipResponse{Tip: tip}, fiber.StatusOK, domain.MessageSuccessGetTip)
}

func (h *assistantHandler) AddGrowthLog(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	req := new(domain.AddGrowthLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGrowthLog, err)
	}

	res, err := h.assistantService.AddGrowthLog(sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGrowthLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGrowthLog)
}

func (h *assistantHandler) GetGrowthLog(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	res, err := h.assistantService.GetGrowthLog(sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddGrowthLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGrowthLog)
}
