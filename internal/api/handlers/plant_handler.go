package handlers

import (
	"Planta-Backend/domain"
	"Planta-Backend/internal/api/presenters"
	"Planta-Backend/pkg/plant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlantHandler interface {
		AddPlant(c *fiber.Ctx) error
		UpdatePlant(c *fiber.Ctx) error
		DeletePlant(c *fiber.Ctx) error
		GetPlants(c *fiber.Ctx) error
		GetPlantDetails(c *fiber.Ctx) error
		UploadPlantImage(c *fiber.Ctx) error
		AddCareLog(c *fiber.Ctx) error
		UpdateCareLog(c *fiber.Ctx) error
		DeleteCareLog(c *fiber.Ctx) error
		GetCareLogs(c *fiber.Ctx) error
	}

	plantHandler struct {
		plantService plant.PlantService
		validator    *validator.Validate
	}
)

func NewPlantHandler(plantService plant.PlantService, validator *validator.Validate) PlantHandler {
	return &plantHandler{
		plantService: plantService,
		validator:    validator,
	}
}

func (h *plantHandler) AddPlant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddPlantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPlant, err)
	}

	res, err := h.plantService.AddPlant(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPlant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPlant)
}

func (h *plantHandler) UpdatePlant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	plantID := c.Params("id")
	req := new(domain.UpdatePlantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlant, err)
	}

	res, err := h.plantService.UpdatePlant(c.Context(), plantID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePlant)
}

func (h *plantHandler) DeletePlant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	plantID := c.Params("id")
	req := new(domain.DeletePlantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePlant, err)
	}

	if err := h.plantService.DeletePlant(c.Context(), plantID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePlant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePlant)
}

func (h *plantHandler) GetPlants(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	category := c.Query("category", "all")
	search := c.Query("search")

	res, err := h.plantService.GetPlants(c.Context(), userID, category, search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlants)
}

func (h *plantHandler) GetPlantDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	plantID := c.Params("id")

	res, err := h.plantService.GetPlantByID(c.Context(), plantID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlants)
}

func (h *plantHandler) UploadPlantImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadPlantImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	link, err := h.plantService.UploadPlantImage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": link}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *plantHandler) AddCareLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	plantID := c.Params("id")
	req := new(domain.AddCareLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCareLog, err)
	}

	res, err := h.plantService.AddCareLog(c.Context(), plantID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCareLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCareLog)
}

func (h *plantHandler) UpdateCareLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	plantID := c.Params("id")
	logID := c.Params("logId")
	req := new(domain.UpdateCareLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCareLog, err)
	}

	res, err := h.plantService.UpdateCareLog(c.Context(), plantID, logID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCareLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCareLog)
}

func (h *plantHandler) DeleteCareLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	plantID := c.Params("id")
	logID := c.Params("logId")

	if err := h.plantService.DeleteCareLog(c.Context(), plantID, logID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCareLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCareLog)
}

func (h *plantHandler) GetCareLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	plantID := c.Params("id")
	activity := c.Query("activity", "all")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	res, err := h.plantService.GetCareLogs(c.Context(), plantID, userID, activity, startDate, endDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCareLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCareLogs)
}
