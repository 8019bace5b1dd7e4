package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/station-booking/internal/pkg/utils"
	"github.com/station-booking/internal/pkg/validator"
	"github.com/station-booking/internal/usecase"
	"github.com/station-booking/internal/usecase/dto"
)

// TrainHandler serves both trains and train types.
type TrainHandler struct {
	trainUC *usecase.TrainUseCase
	pager   Pager
	logger  *zap.Logger
}

func NewTrainHandler(trainUC *usecase.TrainUseCase, pager Pager, logger *zap.Logger) *TrainHandler {
	return &TrainHandler{
		trainUC: trainUC,
		pager:   pager,
		logger:  logger,
	}
}

func (h *TrainHandler) Create(c *fiber.Ctx) error {
	var req dto.TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	train, err := h.trainUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, train)
}

func (h *TrainHandler) List(c *fiber.Ctx) error {
	page := h.pager.Parse(c)

	trains, total, err := h.trainUC.List(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trains, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *TrainHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	train, err := h.trainUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, train, nil)
}

func (h *TrainHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	train, err := h.trainUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, train, nil)
}

func (h *TrainHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.trainUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TrainHandler) CreateType(c *fiber.Ctx) error {
	var req dto.TrainTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trainType, err := h.trainUC.CreateType(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, trainType)
}

func (h *TrainHandler) ListTypes(c *fiber.Ctx) error {
	page := h.pager.Parse(c)

	trainTypes, total, err := h.trainUC.ListTypes(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trainTypes, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *TrainHandler) GetType(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	trainType, err := h.trainUC.GetType(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trainType, nil)
}

func (h *TrainHandler) UpdateType(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TrainTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trainType, err := h.trainUC.UpdateType(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trainType, nil)
}

func (h *TrainHandler) DeleteType(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.trainUC.DeleteType(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
