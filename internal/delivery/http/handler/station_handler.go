package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/station-booking/internal/pkg/utils"
	"github.com/station-booking/internal/pkg/validator"
	"github.com/station-booking/internal/usecase"
	"github.com/station-booking/internal/usecase/dto"
)

type StationHandler struct {
	stationUC *usecase.StationUseCase
	pager     Pager
	logger    *zap.Logger
}

func NewStationHandler(stationUC *usecase.StationUseCase, pager Pager, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		pager:     pager,
		logger:    logger,
	}
}

func (h *StationHandler) Create(c *fiber.Ctx) error {
	var req dto.StationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, station)
}

func (h *StationHandler) List(c *fiber.Ctx) error {
	page := h.pager.Parse(c)

	stations, total, err := h.stationUC.List(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *StationHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, station, nil)
}

func (h *StationHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.StationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, station, nil)
}

func (h *StationHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.stationUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
