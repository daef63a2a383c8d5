package handlers

import (
	"Planta-Backend/domain"
	"Planta-Backend/internal/api/presenters"
	"Planta-Backend/pkg/reminder"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReminderHandler interface {
		AddReminder(c *fiber.Ctx) error
		UpdateReminder(c *fiber.Ctx) error
		DeleteReminder(c *fiber.Ctx) error
		GetReminders(c *fiber.Ctx) error
		GetActiveReminder(c *fiber.Ctx) error
		DismissReminder(c *fiber.Ctx) error
	}

	reminderHandler struct {
		reminderService reminder.ReminderService
		engine          *reminder.Engine
		validator       *validator.Validate
	}
)

func NewReminderHandler(reminderService reminder.ReminderService, engine *reminder.Engine, validator *validator.Validate) ReminderHandler {
	return &reminderHandler{
		reminderService: reminderService,
		engine:          engine,
		validator:       validator,
	}
}

func (h *reminderHandler) AddReminder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveReminderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReminder, err)
	}

	res, err := h.reminderService.AddReminder(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReminder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveReminder)
}

func (h *reminderHandler) UpdateReminder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reminderID := c.Params("id")
	req := new(domain.SaveReminderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReminder, err)
	}

	res, err := h.reminderService.UpdateReminder(c.Context(), reminderID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReminder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveReminder)
}

func (h *reminderHandler) DeleteReminder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reminderID := c.Params("id")

	if err := h.reminderService.DeleteReminder(c.Context(), reminderID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReminder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReminder)
}

func (h *reminderHandler) GetReminders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reminderService.GetReminders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReminders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReminders)
}

func (h *reminderHandler) GetActiveReminder(c *fiber.Ctx) error {
	res, ok := h.engine.Active(c.Context())
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReminders, domain.ErrNoActiveReminder)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReminders)
}

func (h *reminderHandler) DismissReminder(c *fiber.Ctx) error {
	h.engine.Dismiss()
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDismissReminder)
}
