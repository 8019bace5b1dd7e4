package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/station-booking/internal/pkg/utils"
	"github.com/station-booking/internal/pkg/validator"
	"github.com/station-booking/internal/usecase"
	"github.com/station-booking/internal/usecase/dto"
)

type JourneyHandler struct {
	journeyUC *usecase.JourneyUseCase
	pager     Pager
	logger    *zap.Logger
}

func NewJourneyHandler(journeyUC *usecase.JourneyUseCase, pager Pager, logger *zap.Logger) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: journeyUC,
		pager:     pager,
		logger:    logger,
	}
}

func (h *JourneyHandler) Create(c *fiber.Ctx) error {
	var req dto.JourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	journey, err := h.journeyUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, journey)
}

// List supports filtering by source, destination (station name substring)
// and departure-date (YYYY-MM-DD). Every item carries tickets_available
// computed at read time.
func (h *JourneyHandler) List(c *fiber.Ctx) error {
	page := h.pager.Parse(c)
	req := dto.JourneyListRequest{
		Source:        c.Query("source"),
		Destination:   c.Query("destination"),
		DepartureDate: c.Query("departure-date"),
	}

	journeys, total, err := h.journeyUC.List(c.Context(), req, page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, journeys, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *JourneyHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	journey, err := h.journeyUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, journey, nil)
}

func (h *JourneyHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.JourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	journey, err := h.journeyUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, journey, nil)
}

func (h *JourneyHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.journeyUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
